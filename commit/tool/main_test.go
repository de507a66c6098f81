// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xsoniclabs/xcommit/group/bandersnatch"
	"github.com/stretchr/testify/require"
)

// run executes the tool with the given arguments and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(append([]string{"tool"}, args...))
	return out.String(), err
}

func setupParameters(t *testing.T, backend string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params")
	_, err := run(t, "setup", "--backend", backend, "--path", path, "--layout", "test", "--seed", "xcommit conformance")
	require.NoError(t, err)
	return path
}

func TestAllCommands_Run(t *testing.T) {
	for _, cmd := range commands {
		t.Run(cmd.Name, func(t *testing.T) {
			os.Args = []string{"tool", cmd.Name, "--help"}
			main() // ensure commands can be invoked without error
		})
	}
}

func TestMain_ErrorArgument(t *testing.T) {
	cmd := exec.Command("go", "run", ".", "--nonexistent-command")
	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "expected process to exit with error")
	require.Equal(t, 1, exitErr.ExitCode(), "expected exit code 1")
}

func TestTool_CommitsWithStoredParameters(t *testing.T) {
	for _, backend := range []string{"file", "ldb", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			path := setupParameters(t, backend)

			out, err := run(t, "commit", "--backend", backend, "--path", path, "--randomness", "7", "hello")
			require.NoError(t, err)
			require.Equal(t, "0x0535a4276282fb02e7ce52f3ec890c53474a0e3d75e97e4b823c0cb3a7db03cf 0x7\n", out)

			out, err = run(t, "commit", "--backend", backend, "--path", path, "--randomness", "0x8", "--hex", "0x68656c6c6f")
			require.NoError(t, err)
			require.Equal(t, "0x074e32a0b8009d0b11a4254c7d6b90e762dc786c3300c69e8fe274c9ff967622 0x8\n", out)
		})
	}
}

func TestTool_InfoDescribesParameters(t *testing.T) {
	path := setupParameters(t, "file")
	out, err := run(t, "info", "--path", path)
	require.NoError(t, err)
	require.Contains(t, out, "group:       bandersnatch")
	require.Contains(t, out, "layout:      4x32")
	require.Contains(t, out, "capacity:    16 bytes")
	require.Contains(t, out, "fingerprint: 0x")
}

func TestTool_SetupReportsFingerprint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params")
	setupOut, err := run(t, "setup", "--path", path, "--layout", "test", "--seed", "s")
	require.NoError(t, err)
	infoOut, err := run(t, "info", "--path", path)
	require.NoError(t, err)
	require.Contains(t, infoOut, strings.TrimSpace(setupOut))
}

func TestTool_CommitWithFreshRandomnessVerifies(t *testing.T) {
	path := setupParameters(t, "file")
	out, err := run(t, "commit", "--path", path, "first", "second")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	for i, message := range []string{"first", "second"} {
		fields := strings.Fields(lines[i])
		require.Len(t, fields, 2)
		out, err = run(t, "verify", "--path", path, "--randomness", fields[1], message, fields[0])
		require.NoError(t, err)
		require.Equal(t, "valid\n", out)
	}
}

func TestTool_VerifyRejectsWrongOpening(t *testing.T) {
	path := setupParameters(t, "file")
	commitment := "0x0535a4276282fb02e7ce52f3ec890c53474a0e3d75e97e4b823c0cb3a7db03cf"

	_, err := run(t, "verify", "--path", path, "--randomness", "7", "hello", commitment)
	require.NoError(t, err)
	_, err = run(t, "verify", "--path", path, "--randomness", "8", "hello", commitment)
	require.ErrorContains(t, err, "does not match")
	_, err = run(t, "verify", "--path", path, "hello", commitment)
	require.ErrorContains(t, err, "--randomness")
}

func TestTool_CommitRejectsInvalidInput(t *testing.T) {
	path := setupParameters(t, "file")
	order := bandersnatch.New().Order().String()
	tests := map[string][]string{
		"no message":           {"commit", "--path", path},
		"bad randomness":       {"commit", "--path", path, "--randomness", "seven", "hello"},
		"randomness too big":   {"commit", "--path", path, "--randomness", order, "hello"},
		"shared randomness":    {"commit", "--path", path, "--randomness", "7", "a", "b"},
		"bad hex message":      {"commit", "--path", path, "--hex", "hello"},
		"message too long":     {"commit", "--path", path, strings.Repeat("x", 17)},
		"unknown group":        {"commit", "--path", path, "--group", "ed25519", "hello"},
		"unknown backend":      {"commit", "--path", path, "--backend", "s3", "hello"},
		"missing parameters":   {"commit", "--path", path, "--key", "other", "hello"},
		"mismatching group":    {"commit", "--path", path, "--group", "secp256k1", "hello"},
		"unknown layout":       {"setup", "--path", path, "--layout", "huge"},
		"missing path":         {"info"},
		"malformed commitment": {"verify", "--path", path, "--randomness", "1", "hello", "0x12zz"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, args...)
			require.Error(t, err)
		})
	}
}

func TestTool_GroupsListsOptions(t *testing.T) {
	out, err := run(t, "groups")
	require.NoError(t, err)
	for _, name := range []string{"bandersnatch", "bls12-381-g1", "secp256k1", "default", "test", "wide"} {
		require.Contains(t, out, name)
	}
}

func TestParseRandomness(t *testing.T) {
	g := bandersnatch.New()
	tests := map[string]int64{
		"0":     0,
		"42":    42,
		"0x2a":  42,
		"0X2A":  42,
		"65535": 65535,
	}
	for input, want := range tests {
		got, err := parseRandomness(input, g)
		require.NoError(t, err, input)
		require.Equal(t, want, got.Int64(), input)
	}

	fresh, err := parseRandomness("", g)
	require.NoError(t, err)
	require.Negative(t, fresh.Cmp(g.Order()))

	for _, input := range []string{"-1", "0x", "1e5", "0xg"} {
		_, err := parseRandomness(input, g)
		require.Error(t, err, input)
	}
}
