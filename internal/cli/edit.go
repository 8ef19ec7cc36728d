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
	"strings"

	"github.com/spf13/cobra"

	"github.com/uriel-dev/uriel/uri"
)

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		sets   []string
		unsets []string
	)

	cmd := &cobra.Command{
		Use:   "edit <uri> [--set comp=value ...] [--unset comp ...]",
		Short: "Parse a URI, change components, and print the rebuilt result",
		Long: `Parse a URI, apply component mutations, and print the rebuilt string.

All --set mutations are applied first, then all --unset mutations, so
"--set query=a --unset query" removes the query. Component names are
scheme, userinfo, host, port, path, query and fragment, matched
case-insensitively. Set values are stored verbatim.`,
		Args:          commandArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(rootOpts, args[0], sets, unsets, cmd)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "set a component, as name=value (repeatable)")
	cmd.Flags().StringArrayVar(&unsets, "unset", nil, "remove a component by name (repeatable)")

	return cmd
}

func runEdit(opts *RootOptions, raw string, sets, unsets []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	u, err := uri.Parse(raw)
	if err != nil {
		_ = formatter.Error(ErrCodeParse, err.Error(), nil)
		return WrapExitError(ExitFailure, "parse failed", err)
	}

	for _, kv := range sets {
		name, value, found := strings.Cut(kv, "=")
		if !found {
			msg := fmt.Sprintf("bad --set %q: want name=value", kv)
			_ = formatter.Error(ErrCodeComponent, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		c, err := uri.ParseComponent(name)
		if err != nil {
			_ = formatter.Error(ErrCodeComponent, err.Error(), nil)
			return WrapExitError(ExitCommandError, "bad --set", err)
		}
		formatter.VerboseLog("set %s = %q", c, value)
		u.Set(c, value)
	}

	for _, name := range unsets {
		c, err := uri.ParseComponent(name)
		if err != nil {
			_ = formatter.Error(ErrCodeComponent, err.Error(), nil)
			return WrapExitError(ExitCommandError, "bad --unset", err)
		}
		old, present := u.Remove(c)
		if present {
			formatter.VerboseLog("unset %s (was %q)", c, old)
		} else {
			formatter.VerboseLog("unset %s (was absent)", c)
		}
	}

	return outputCanonical(formatter, opts, u)
}
