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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditSetComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEditCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"http://example.com/a", "--set", "path=/b"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/b\n", buf.String())
}

func TestEditUnsetComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEditCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"http://example.com/a?x=1#top", "--unset", "query", "--unset", "fragment"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/a\n", buf.String())
}

func TestEditSetsApplyBeforeUnsets(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEditCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"http://h/p", "--unset", "query", "--set", "query=a=1"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "http://h/p\n", buf.String(), "--unset runs after --set regardless of argument order")
}

func TestEditSetValueMayContainEquals(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEditCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"http://h/p", "--set", "query=a=1&b=2"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "http://h/p?a=1&b=2\n", buf.String())
}

func TestEditComponentNameCaseInsensitive(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEditCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"http://h/p", "--set", "Fragment=f"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "http://h/p#f\n", buf.String())
}

func TestEditBadSetSyntax(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEditCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"http://h/p", "--set", "no-equals-here"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E002]")
	assert.Contains(t, buf.String(), "want name=value")
}

func TestEditUnknownComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEditCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"http://h/p", "--unset", "authority"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E002]")
	assert.Contains(t, buf.String(), "authority")
}

func TestEditUnparseableInput(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEditCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"noColonHere", "--set", "path=/p"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E001]")
}

func TestEditVaryOneComponent(t *testing.T) {
	// The sequential-URI pattern: one parse, then repeated cheap edits.
	for _, tc := range []struct {
		page string
		want string
	}{
		{"/page/1", "http://example.com/page/1\n"},
		{"/page/2", "http://example.com/page/2\n"},
	} {
		buf := &bytes.Buffer{}
		rootOpts := &RootOptions{Format: "text"}
		cmd := NewEditCommand(rootOpts)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"http://example.com/page/0", "--set", "path=" + tc.page})

		err := cmd.Execute()
		require.NoError(t, err)
		assert.Equal(t, tc.want, buf.String())
	}
}
