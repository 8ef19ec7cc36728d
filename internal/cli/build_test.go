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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFromFlags(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewBuildCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		"--scheme", "http",
		"--userinfo", "user",
		"--host", "example.com",
		"--port", "8080",
		"--path", "/a/b",
		"--query", "x=1",
		"--fragment", "top",
	})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "http://user@example.com:8080/a/b?x=1#top\n", buf.String())
}

func TestBuildOmittedFlagStaysAbsent(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewBuildCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--scheme", "s", "--host", "h"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "s://h\n", buf.String())
}

func TestBuildEmptyFlagIsPresent(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewBuildCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--scheme", "s", "--host", "h", "--query", ""})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "s://h?\n", buf.String())
}

func TestBuildUserinfoNeedsHost(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewBuildCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--scheme", "s", "--userinfo", "u", "--port", "80"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "s:\n", buf.String())
}

func TestBuildNoFlags(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewBuildCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "\n", buf.String())
}

func TestBuildJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewBuildCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--scheme", "http", "--host", "h", "--path", "/p"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "http://h/p", data["canonical"])
	_, hasComponents := data["components"]
	assert.False(t, hasComponents, "build output should carry only the canonical string")
}

func TestBuildASCII(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", ASCII: true}
	cmd := NewBuildCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--scheme", "http", "--host", "résumé.com", "--path", "/p"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "http://xn--rsum-bpad.com/p\n", buf.String())
}

func TestBuildASCIIHostError(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", ASCII: true}
	cmd := NewBuildCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--scheme", "http", "--host", "xn--ü", "--path", "/x"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E003]")
}
