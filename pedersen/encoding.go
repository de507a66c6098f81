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
	"bytes"
	"encoding/binary"
	"fmt"
	"runtime"

	"github.com/0xsoniclabs/xcommit/group"
	"golang.org/x/sync/errgroup"
)

// Serialized parameters are laid out as
//
//	magic "PDSN" | version u8 | name length u8 | group name |
//	windows u32 | window size u32 | generators... | blinding generator
//
// with integers in big-endian order and points encoded as affine X || Y.
var magic = []byte("PDSN")

const formatVersion = 1

// MarshalBinary encodes the group name, layout and generators. Power tables
// are not serialized; they are recomputed on load.
func (p *Parameters) MarshalBinary() ([]byte, error) {
	name := p.group.Name()
	if len(name) > 255 {
		return nil, fmt.Errorf("group name %q too long", name)
	}
	pointSize := 2 * p.group.CoordinateSize()
	res := make([]byte, 0, headerSize(name)+(len(p.generators)+1)*pointSize)
	res = append(res, magic...)
	res = append(res, formatVersion, byte(len(name)))
	res = append(res, name...)
	res = binary.BigEndian.AppendUint32(res, uint32(p.layout.NumWindows))
	res = binary.BigEndian.AppendUint32(res, uint32(p.layout.WindowSize))
	for _, point := range p.Generators() {
		encoded, err := group.Encode(p.group, point)
		if err != nil {
			return nil, err
		}
		res = append(res, encoded...)
	}
	return res, nil
}

// PointCheck validates a decoded generator. The index refers to the order of
// Generators, with the blinding generator last.
type PointCheck func(index int, point group.Point) error

// Unmarshal decodes parameters produced by MarshalBinary for the given group.
// Points are checked for canonical encoding and curve membership only;
// callers needing subgroup guarantees have to check them separately.
func Unmarshal(g group.Group, data []byte) (*Parameters, error) {
	return UnmarshalChecked(g, data, nil)
}

// UnmarshalChecked is Unmarshal applying check to every decoded generator.
// The first failing check aborts decoding before any power table is built.
// A nil check accepts all points.
func UnmarshalChecked(g group.Group, data []byte, check PointCheck) (*Parameters, error) {
	name := g.Name()
	if len(data) < headerSize(name) || !bytes.Equal(data[:len(magic)], magic) {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedParameters)
	}
	data = data[len(magic):]
	if version := data[0]; version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedParameters, version)
	}
	nameLength := int(data[1])
	data = data[2:]
	if len(data) < nameLength+8 {
		return nil, fmt.Errorf("%w: truncated header", ErrMalformedParameters)
	}
	if got := string(data[:nameLength]); got != name {
		return nil, fmt.Errorf("%w: parameters are for group %q, not %q", ErrMalformedParameters, got, name)
	}
	data = data[nameLength:]

	layout := Layout{
		NumWindows: int(binary.BigEndian.Uint32(data[0:4])),
		WindowSize: int(binary.BigEndian.Uint32(data[4:8])),
	}
	if err := layout.Validate(g); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedParameters, err)
	}
	data = data[8:]

	pointSize := 2 * g.CoordinateSize()
	if want := (layout.NumWindows + 1) * pointSize; len(data) != want {
		return nil, fmt.Errorf("%w: expected %d bytes of points, got %d", ErrMalformedParameters, want, len(data))
	}
	points := make([]group.Point, layout.NumWindows+1)
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range points {
		eg.Go(func() error {
			point, err := group.Decode(g, data[i*pointSize:(i+1)*pointSize])
			if err != nil {
				return fmt.Errorf("%w: point %d: %w", ErrMalformedParameters, i, err)
			}
			if check != nil {
				if err := check(i, point); err != nil {
					return err
				}
			}
			points[i] = point
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return newParameters(g, layout, points[:layout.NumWindows], points[layout.NumWindows])
}

func headerSize(name string) int {
	return len(magic) + 2 + len(name) + 8
}
