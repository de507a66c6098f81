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

	"github.com/urfave/cli/v2"
)

var InfoCmd = cli.Command{
	Action: addPerformanceDiagnoses(doInfo),
	Name:   "info",
	Usage:  "prints a summary of stored commitment parameters",
	Flags:  storageFlags,
}

func doInfo(context *cli.Context) error {
	scheme, err := loadScheme(context)
	if err != nil {
		return err
	}
	fingerprint, err := scheme.Fingerprint()
	if err != nil {
		return err
	}
	g := scheme.Group()
	layout := scheme.Layout()
	w := output(context)
	fmt.Fprintf(w, "group:       %s\n", g.Name())
	fmt.Fprintf(w, "layout:      %v\n", layout)
	fmt.Fprintf(w, "capacity:    %d bytes\n", layout.MaxMessageLength())
	fmt.Fprintf(w, "commitment:  %d bytes\n", g.CoordinateSize())
	fmt.Fprintf(w, "fingerprint: %v\n", fingerprint)
	return nil
}
