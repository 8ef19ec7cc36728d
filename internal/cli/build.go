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
	"github.com/spf13/cobra"

	"github.com/uriel-dev/uriel/uri"
)

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	values := make([]string, len(uri.Components()))

	cmd := &cobra.Command{
		Use:   "build [--scheme s] [--host h] [--path p] ...",
		Short: "Assemble a URI from component flags",
		Long: `Assemble a URI from individual component flags and print it.

Only components whose flag was given end up in the result, so passing
--query "" produces a bare "?" while omitting --query produces nothing.
Values are taken verbatim; no separators are expected in them and none
are stripped.`,
		Args:          commandArgs(cobra.NoArgs),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			u := uri.New()
			for i, c := range uri.Components() {
				if cmd.Flags().Changed(c.String()) {
					u.Set(c, values[i])
				}
			}

			return outputCanonical(formatter, rootOpts, u)
		},
	}

	// One flag per component, named after it.
	for i, c := range uri.Components() {
		cmd.Flags().StringVar(&values[i], c.String(), "", "set the "+c.String()+" component")
	}

	return cmd
}
