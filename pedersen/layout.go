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
	"fmt"
	"slices"

	"github.com/0xsoniclabs/xcommit/group"
)

// Layout describes how messages are split into windows. A message is read as
// a little-endian bit string (least significant bit of each byte first),
// padded with zeros to NumWindows*WindowSize bits, and cut into NumWindows
// digits of WindowSize bits each. Each digit is committed against its own
// generator.
type Layout struct {
	NumWindows int
	WindowSize int
}

// Capacity is the number of message bits the layout can commit to.
func (l Layout) Capacity() int {
	return l.NumWindows * l.WindowSize
}

// MaxMessageLength is the length in bytes of the longest accepted message.
func (l Layout) MaxMessageLength() int {
	return l.Capacity() / 8
}

// Validate checks that the layout can be used with the given group. Window
// digits must be strictly smaller than the group order, so the window size
// is bounded by the bit length of the order.
func (l Layout) Validate(g group.Group) error {
	if l.NumWindows < 1 || l.NumWindows > maxNumWindows {
		return fmt.Errorf("%w: number of windows %d not in [1,%d]", ErrInvalidLayout, l.NumWindows, maxNumWindows)
	}
	if limit := g.Order().BitLen() - 1; l.WindowSize < 1 || l.WindowSize > limit {
		return fmt.Errorf("%w: window size %d not in [1,%d] for %s", ErrInvalidLayout, l.WindowSize, limit, g.Name())
	}
	return nil
}

func (l Layout) String() string {
	return fmt.Sprintf("%dx%d", l.NumWindows, l.WindowSize)
}

const maxNumWindows = 1 << 12

var layouts = map[string]Layout{
	"test":    {NumWindows: 4, WindowSize: 32},
	"default": {NumWindows: 8, WindowSize: 128},
	"wide":    {NumWindows: 32, WindowSize: 248},
}

// LookupLayout returns the layout preset with the given name.
func LookupLayout(name string) (Layout, error) {
	layout, found := layouts[name]
	if !found {
		return Layout{}, fmt.Errorf("%w: unknown layout preset %q", ErrInvalidLayout, name)
	}
	return layout, nil
}

// LayoutNames lists the names of all layout presets.
func LayoutNames() []string {
	res := make([]string, 0, len(layouts))
	for name := range layouts {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}
