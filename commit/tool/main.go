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
	"fmt"
	"os"

	"github.com/0xsoniclabs/xcommit/common/diagnostics"
	_ "github.com/0xsoniclabs/xcommit/group/all"
	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./commit/tool <command> <flags>

var commands = []*cli.Command{
	&SetupCmd,
	&InfoCmd,
	&CommitCmd,
	&VerifyCmd,
	&GroupsCmd,
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "tool",
		Usage:     "compressed Pedersen commitment toolbox",
		Copyright: "(c) 2025 Sonic Operations Ltd",
		Flags:     diagnostics.Flags(),
		Commands:  commands,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addPerformanceDiagnoses(action cli.ActionFunc) cli.ActionFunc {
	return diagnostics.Wrap(action)
}
