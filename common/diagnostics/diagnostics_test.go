// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package diagnostics

import (
	"net/http"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestWrap_EnablesRequestedDiagnostics(t *testing.T) {
	dir := t.TempDir()
	called := false
	action := func(ctx *cli.Context) error {
		// profile files created
		require.FileExists(t, path.Join(dir, "cpu.profile"))
		require.FileExists(t, path.Join(dir, "tracer.out"))

		// server started
		var statusCode int
		var counter int
		const loops = 10
		var lastHttpGetErr error
		wait := 100 * time.Millisecond
		for statusCode != http.StatusOK && counter < loops {
			resp, err := http.Get("http://localhost:6061/debug/pprof/")
			lastHttpGetErr = err
			if resp != nil {
				statusCode = resp.StatusCode
				_ = resp.Body.Close()
			}
			counter++
			time.Sleep(wait)
			wait *= 2
		}

		require.NoError(t, lastHttpGetErr)
		require.Equal(t, http.StatusOK, statusCode)

		called = true
		return nil
	}

	app := &cli.App{
		Action: Wrap(action),
		Flags:  Flags(),
	}

	set := []string{"cmd", "--diagnostic-port", "6061", "--cpuprofile", path.Join(dir, "cpu.profile"), "--tracefile", path.Join(dir, "tracer.out")}
	require.NoError(t, app.Run(set))
	require.True(t, called, "action should be called")
}

func TestStart_WithoutConfigurationDoesNothing(t *testing.T) {
	stop, err := Start(Config{})
	require.NoError(t, err)
	require.NoError(t, stop())
}

func TestStart_ProfilesCanBeRestarted(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 2; i++ {
		stop, err := Start(Config{
			CpuProfile: path.Join(dir, "cpu.profile"),
			Trace:      path.Join(dir, "trace.out"),
		})
		require.NoError(t, err)
		require.NoError(t, stop())
	}
}

func TestStart_UnwritableTargetsAreReported(t *testing.T) {
	missing := path.Join(t.TempDir(), "missing", "file")
	_, err := Start(Config{CpuProfile: missing})
	require.ErrorContains(t, err, "could not create CPU profile")

	// the failed trace setup must release the CPU profiler again
	_, err = Start(Config{CpuProfile: path.Join(t.TempDir(), "cpu.profile"), Trace: missing})
	require.ErrorContains(t, err, "failed to create trace file")

	stop, err := Start(Config{CpuProfile: path.Join(t.TempDir(), "cpu.profile")})
	require.NoError(t, err)
	require.NoError(t, stop())
}

func TestWrap_ReportsActionErrors(t *testing.T) {
	app := &cli.App{
		Action: Wrap(func(*cli.Context) error { return cli.Exit("failed", 2) }),
		Flags:  Flags(),
	}
	app.ExitErrHandler = func(*cli.Context, error) {}
	require.ErrorContains(t, app.Run([]string{"cmd"}), "failed")
}
