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
	"crypto/rand"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/0xsoniclabs/xcommit/commit"
	"github.com/0xsoniclabs/xcommit/pedersen"
	"github.com/urfave/cli/v2"
)

var SetupCmd = cli.Command{
	Action: addPerformanceDiagnoses(doSetup),
	Name:   "setup",
	Usage:  "generates new commitment parameters and stores them",
	Flags: append([]cli.Flag{
		&layoutFlag,
		&seedFlag,
	}, storageFlags...),
}

func doSetup(context *cli.Context) error {
	g, err := lookupGroup(context)
	if err != nil {
		return err
	}
	layout, err := lookupLayout(context)
	if err != nil {
		return err
	}

	var rng io.Reader = rand.Reader
	if seed := context.String(seedFlag.Name); seed != "" {
		rng = pedersen.NewSeededReader([]byte(seed))
	}

	start := time.Now()
	scheme, err := commit.Setup(g, layout, rng)
	if err != nil {
		return err
	}
	log.Printf("generated %s parameters with layout %v in %v", g.Name(), layout, time.Since(start))

	store, err := openStore(context)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := scheme.Store(store, context.String(keyFlag.Name)); err != nil {
		return err
	}

	fingerprint, err := scheme.Fingerprint()
	if err != nil {
		return err
	}
	fmt.Fprintf(output(context), "%v\n", fingerprint)
	return nil
}
