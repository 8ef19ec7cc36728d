/*
Copyright 2026 Uriel Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uriel-dev/uriel/uri"
)

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <uri>",
		Short: "Split a URI into its components",
		Long: `Split a URI into its components and print each present one.

The only rejected input is one with no ":" anywhere: everything before
the first ":" is the scheme, and the rest is carved up by "//", "@",
":", "/", "?" and "#" without validation. The canonical line at the end
is the string rebuilt from the stored components.`,
		Args:          commandArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runParse(opts *RootOptions, raw string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	u, err := uri.Parse(raw)
	if err != nil {
		_ = formatter.Error(ErrCodeParse, err.Error(), nil)
		return WrapExitError(ExitFailure, "parse failed", err)
	}

	components := make(map[string]string)
	for _, c := range uri.Components() {
		if v, ok := u.Get(c); ok {
			components[c.String()] = v
		}
	}
	formatter.VerboseLog("parsed %d present component(s)", len(components))

	canonical, err := render(opts, u)
	if err != nil {
		_ = formatter.Error(ErrCodeRender, err.Error(), nil)
		return WrapExitError(ExitFailure, "rendering failed", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(URIReport{
			Components: components,
			Canonical:  canonical,
		})
	}

	// Text format: one line per present component, in build order, then
	// the canonical form.
	for _, c := range uri.Components() {
		if v, ok := u.Get(c); ok {
			fmt.Fprintf(formatter.Writer, "%-10s %s\n", c.String()+":", v)
		}
	}
	fmt.Fprintf(formatter.Writer, "%-10s %s\n", "canonical:", canonical)
	return nil
}
