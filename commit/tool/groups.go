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

	"github.com/0xsoniclabs/xcommit/group"
	"github.com/0xsoniclabs/xcommit/pedersen"
	"github.com/urfave/cli/v2"
)

var GroupsCmd = cli.Command{
	Action: doGroups,
	Name:   "groups",
	Usage:  "lists supported groups and layout presets",
}

func doGroups(context *cli.Context) error {
	w := output(context)
	fmt.Fprintln(w, "groups:")
	for _, name := range group.Names() {
		g, err := group.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-14s %d-bit order, %d byte commitments\n", name, g.Order().BitLen(), g.CoordinateSize())
	}
	fmt.Fprintln(w, "layouts:")
	for _, name := range pedersen.LayoutNames() {
		layout, err := pedersen.LookupLayout(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-14s %d windows of %d bits, up to %d bytes\n", name, layout.NumWindows, layout.WindowSize, layout.MaxMessageLength())
	}
	return nil
}
