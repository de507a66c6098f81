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
	"math/big"
	"strings"

	"github.com/0xsoniclabs/xcommit/backend/blob"
	"github.com/0xsoniclabs/xcommit/backend/blob/file"
	"github.com/0xsoniclabs/xcommit/backend/blob/ldb"
	"github.com/0xsoniclabs/xcommit/backend/blob/sqlite"
	"github.com/0xsoniclabs/xcommit/commit"
	"github.com/0xsoniclabs/xcommit/group"
	"github.com/0xsoniclabs/xcommit/pedersen"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
)

var (
	groupFlag = cli.StringFlag{
		Name:  "group",
		Usage: "the group to commit in, see the groups command for options",
		Value: "bandersnatch",
	}
	layoutFlag = cli.StringFlag{
		Name:  "layout",
		Usage: "the window layout preset of new parameters",
		Value: "default",
	}
	seedFlag = cli.StringFlag{
		Name:  "seed",
		Usage: "derive parameters deterministically from this seed, random if empty",
		Value: "",
	}
	backendFlag = cli.StringFlag{
		Name:  "backend",
		Usage: "the parameter storage backend: file, ldb or sqlite",
		Value: "file",
	}
	pathFlag = cli.StringFlag{
		Name:     "path",
		Usage:    "the location of the parameter storage",
		Required: true,
	}
	keyFlag = cli.StringFlag{
		Name:  "key",
		Usage: "the key parameters are stored under",
		Value: "params",
	}
	randomnessFlag = cli.StringFlag{
		Name:  "randomness",
		Usage: "the blinding randomness as decimal or 0x-prefixed hex number, fresh if empty",
		Value: "",
	}
	hexFlag = cli.BoolFlag{
		Name:  "hex",
		Usage: "interpret messages as 0x-prefixed hex strings",
	}
)

var storageFlags = []cli.Flag{
	&groupFlag,
	&backendFlag,
	&pathFlag,
	&keyFlag,
}

func openStore(context *cli.Context) (blob.Store, error) {
	path := context.String(pathFlag.Name)
	switch backend := context.String(backendFlag.Name); backend {
	case "file":
		return file.NewStore(path)
	case "ldb":
		return ldb.NewStore(path)
	case "sqlite":
		return sqlite.NewStore(path)
	default:
		return nil, fmt.Errorf("unknown backend %q, supported: file, ldb, sqlite", backend)
	}
}

func lookupGroup(context *cli.Context) (group.Group, error) {
	return group.Lookup(context.String(groupFlag.Name))
}

// loadScheme opens the configured storage and loads the parameters from it.
func loadScheme(context *cli.Context) (*commit.Scheme, error) {
	g, err := lookupGroup(context)
	if err != nil {
		return nil, err
	}
	store, err := openStore(context)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return commit.Load(g, store, context.String(keyFlag.Name))
}

func lookupLayout(context *cli.Context) (pedersen.Layout, error) {
	return pedersen.LookupLayout(context.String(layoutFlag.Name))
}

// parseRandomness parses a decimal or 0x-prefixed hexadecimal number. An
// empty string yields fresh randomness below the order of g.
func parseRandomness(s string, g group.Group) (*big.Int, error) {
	if s == "" {
		return rand.Int(rand.Reader, g.Order())
	}
	var value *uint256.Int
	var err error
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		value, err = uint256.FromHex(strings.ToLower(s))
	} else {
		value, err = uint256.FromDecimal(s)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid randomness %q: %w", s, err)
	}
	return value.ToBig(), nil
}

func parseMessage(context *cli.Context, s string) ([]byte, error) {
	if context.Bool(hexFlag.Name) {
		return hexutil.Decode(s)
	}
	return []byte(s), nil
}

func output(context *cli.Context) io.Writer {
	return context.App.Writer
}
