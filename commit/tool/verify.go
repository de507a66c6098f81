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

	"github.com/0xsoniclabs/xcommit/commit"
	"github.com/urfave/cli/v2"
)

var VerifyCmd = cli.Command{
	Action:    addPerformanceDiagnoses(doVerify),
	Name:      "verify",
	Usage:     "checks that a message and randomness open a commitment",
	ArgsUsage: "<message> <commitment>",
	Flags: append([]cli.Flag{
		&randomnessFlag,
		&hexFlag,
	}, storageFlags...),
}

func doVerify(context *cli.Context) error {
	if context.Args().Len() != 2 {
		return fmt.Errorf("expected message and commitment parameters")
	}
	if !context.IsSet(randomnessFlag.Name) {
		return fmt.Errorf("you need to specify --%s", randomnessFlag.Name)
	}
	message, err := parseMessage(context, context.Args().Get(0))
	if err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}
	c, err := commit.ParseCommitment(context.Args().Get(1))
	if err != nil {
		return err
	}

	scheme, err := loadScheme(context)
	if err != nil {
		return err
	}
	r, err := parseRandomness(context.String(randomnessFlag.Name), scheme.Group())
	if err != nil {
		return err
	}
	ok, err := scheme.Verify(message, r, c)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("commitment %v does not match the given opening", c)
	}
	fmt.Fprintln(output(context), "valid")
	return nil
}
