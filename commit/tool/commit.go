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
	"math/big"

	"github.com/0xsoniclabs/xcommit/commit"
	"github.com/urfave/cli/v2"
)

var CommitCmd = cli.Command{
	Action:    addPerformanceDiagnoses(doCommit),
	Name:      "commit",
	Usage:     "commits to messages using stored parameters",
	ArgsUsage: "<message>...",
	Flags: append([]cli.Flag{
		&randomnessFlag,
		&hexFlag,
	}, storageFlags...),
}

// doCommit prints one line per message holding the commitment followed by
// the randomness used.
func doCommit(context *cli.Context) error {
	args := context.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("missing message parameter")
	}
	randomness := context.String(randomnessFlag.Name)
	if randomness != "" && len(args) > 1 {
		return fmt.Errorf("--%s may only be used with a single message", randomnessFlag.Name)
	}

	scheme, err := loadScheme(context)
	if err != nil {
		return err
	}

	openings := make([]commit.Opening, len(args))
	for i, arg := range args {
		message, err := parseMessage(context, arg)
		if err != nil {
			return fmt.Errorf("invalid message %q: %w", arg, err)
		}
		r, err := parseRandomness(randomness, scheme.Group())
		if err != nil {
			return err
		}
		openings[i] = commit.Opening{Message: message, Randomness: r}
	}

	commitments, err := scheme.CommitBatch(context.Context, openings)
	if err != nil {
		return err
	}
	for i, c := range commitments {
		fmt.Fprintf(output(context), "%v %s\n", c, formatRandomness(openings[i].Randomness))
	}
	return nil
}

func formatRandomness(r *big.Int) string {
	return "0x" + r.Text(16)
}
