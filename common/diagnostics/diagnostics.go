// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package diagnostics enables performance diagnostics for command line
// tools: a pprof server, CPU profiling and execution tracing.
package diagnostics

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/urfave/cli/v2"
)

var (
	PortFlag = cli.IntFlag{
		Name:  "diagnostic-port",
		Usage: "enable hosting of a realtime diagnostic server by providing a port",
		Value: 0,
	}
	CpuProfileFlag = cli.StringFlag{
		Name:  "cpuprofile",
		Usage: "sets the target file for storing CPU profiles to, disabled if empty",
		Value: "",
	}
	TraceFlag = cli.StringFlag{
		Name:  "tracefile",
		Usage: "sets the target file for traces to, disabled if empty",
		Value: "",
	}
)

// Flags lists the flags read by Wrap.
func Flags() []cli.Flag {
	return []cli.Flag{&PortFlag, &CpuProfileFlag, &TraceFlag}
}

// Config selects the diagnostics to enable. Zero values disable the
// respective facility.
type Config struct {
	Port       int    // port of the pprof server, valid ports are in (0, 65536)
	CpuProfile string // file to write a CPU profile to
	Trace      string // file to write an execution trace to
}

// ConfigFromContext reads the diagnostics flags of a command line context.
func ConfigFromContext(context *cli.Context) Config {
	return Config{
		Port:       context.Int(PortFlag.Name),
		CpuProfile: strings.TrimSpace(context.String(CpuProfileFlag.Name)),
		Trace:      strings.TrimSpace(context.String(TraceFlag.Name)),
	}
}

// Wrap extends an action such that the diagnostics requested on the command
// line are active while it runs.
func Wrap(action cli.ActionFunc) cli.ActionFunc {
	return func(context *cli.Context) error {
		stop, err := Start(ConfigFromContext(context))
		if err != nil {
			return err
		}
		err = action(context)
		if stopErr := stop(); stopErr != nil {
			return errors.Join(err, stopErr)
		}
		return err
	}
}

// Start enables the configured diagnostics. The returned function stops
// profiling and tracing and closes the output files. The diagnostic server,
// once started, keeps running until the process ends.
func Start(config Config) (stop func() error, err error) {
	startDiagnosticServer(config.Port)

	var stops []func() error
	stop = func() error {
		var errs []error
		for i := len(stops) - 1; i >= 0; i-- {
			errs = append(errs, stops[i]())
		}
		return errors.Join(errs...)
	}

	if config.CpuProfile != "" {
		f, err := os.Create(config.CpuProfile)
		if err != nil {
			return nil, fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return nil, errors.Join(fmt.Errorf("could not start CPU profile: %w", err), f.Close())
		}
		stops = append(stops, func() error {
			pprof.StopCPUProfile()
			return f.Close()
		})
	}

	if config.Trace != "" {
		f, err := os.Create(config.Trace)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("failed to create trace file: %w", err), stop())
		}
		if err := trace.Start(f); err != nil {
			return nil, errors.Join(fmt.Errorf("failed to start trace: %w", err), f.Close(), stop())
		}
		stops = append(stops, func() error {
			trace.Stop()
			return f.Close()
		})
	}
	return stop, nil
}

func startDiagnosticServer(port int) {
	if port <= 0 || port >= (1<<16) {
		return
	}
	log.Printf("Starting diagnostic server at port http://localhost:%d", port)
	log.Printf("(see https://pkg.go.dev/net/http/pprof#hdr-Usage_examples for usage examples)")
	log.Printf("Block and mutex sampling rate is set to 100%% for diagnostics, which may impact overall performance")
	go func() {
		addr := fmt.Sprintf("localhost:%d", port)
		log.Println(http.ListenAndServe(addr, nil))
	}()
	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)
}
