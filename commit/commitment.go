// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package commit

import (
	"bytes"
	"cmp"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// maxCoordinateSize is the widest coordinate of any supported group
// (BLS12-381 base field elements).
const maxCoordinateSize = 48

// Commitment is a compressed commitment: the affine x-coordinate of the
// committed point in fixed-width big-endian encoding. Commitments are
// comparable and may be used as map keys. The zero value is not a valid
// commitment.
type Commitment struct {
	width uint8
	x     [maxCoordinateSize]byte
}

// NewCommitment wraps an encoded x-coordinate. It does not check that the
// coordinate belongs to any group; see Candidates for that.
func NewCommitment(x []byte) (Commitment, error) {
	if len(x) == 0 || len(x) > maxCoordinateSize {
		return Commitment{}, fmt.Errorf("%w: unsupported width of %d bytes", ErrInvalidCommitment, len(x))
	}
	res := Commitment{width: uint8(len(x))}
	copy(res.x[:], x)
	return res, nil
}

// ParseCommitment decodes a 0x-prefixed hex string.
func ParseCommitment(s string) (Commitment, error) {
	x, err := hexutil.Decode(s)
	if err != nil {
		return Commitment{}, fmt.Errorf("%w: %w", ErrInvalidCommitment, err)
	}
	return NewCommitment(x)
}

// Bytes returns a copy of the encoded x-coordinate.
func (c Commitment) Bytes() []byte {
	return bytes.Clone(c.x[:c.width])
}

// Width is the number of bytes of the encoded coordinate.
func (c Commitment) Width() int {
	return int(c.width)
}

// Compare orders commitments by width, then by coordinate value.
func (c Commitment) Compare(other Commitment) int {
	if c.width != other.width {
		return cmp.Compare(c.width, other.width)
	}
	return bytes.Compare(c.x[:c.width], other.x[:other.width])
}

func (c Commitment) String() string {
	return hexutil.Encode(c.x[:c.width])
}

func (c Commitment) MarshalText() ([]byte, error) {
	if c.width == 0 {
		return nil, fmt.Errorf("%w: empty commitment", ErrInvalidCommitment)
	}
	return []byte(c.String()), nil
}

func (c *Commitment) UnmarshalText(text []byte) error {
	res, err := ParseCommitment(string(text))
	if err != nil {
		return err
	}
	*c = res
	return nil
}
