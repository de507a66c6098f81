// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package all registers every group implementation of this module. Tools
// and tests that resolve groups by name import it for its side effects:
//
//	import _ "github.com/0xsoniclabs/xcommit/group/all"
package all

import (
	_ "github.com/0xsoniclabs/xcommit/group/bandersnatch"
	_ "github.com/0xsoniclabs/xcommit/group/bls12381"
	_ "github.com/0xsoniclabs/xcommit/group/secp256k1"
)
