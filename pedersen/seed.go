// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package pedersen

import (
	"io"

	"golang.org/x/crypto/sha3"
)

const setupDomain = "pedersen-setup"

// NewSeededReader returns the deterministic stream parameters are sampled
// from for a given seed: the SHAKE256 output for "pedersen-setup" || seed.
func NewSeededReader(seed []byte) io.Reader {
	shake := sha3.NewShake256()
	shake.Write([]byte(setupDomain))
	shake.Write(seed)
	return shake
}
