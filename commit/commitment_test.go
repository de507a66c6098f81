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
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommitment_TextRoundTrip(t *testing.T) {
	c, err := NewCommitment([]byte{0x00, 0x01, 0xab})
	require.NoError(t, err)
	require.Equal(t, "0x0001ab", c.String())

	text, err := c.MarshalText()
	require.NoError(t, err)
	var restored Commitment
	require.NoError(t, restored.UnmarshalText(text))
	require.Equal(t, c, restored)

	parsed, err := ParseCommitment("0x0001ab")
	require.NoError(t, err)
	require.Equal(t, c, parsed)
}

func TestCommitment_JsonEncoding(t *testing.T) {
	c, err := NewCommitment([]byte{0xca, 0xfe})
	require.NoError(t, err)
	data, err := json.Marshal(map[string]Commitment{"c": c})
	require.NoError(t, err)
	require.JSONEq(t, `{"c":"0xcafe"}`, string(data))

	var restored map[string]Commitment
	require.NoError(t, json.Unmarshal(data, &restored))
	require.Equal(t, c, restored["c"])
}

func TestCommitment_LeadingZerosArePreserved(t *testing.T) {
	x := make([]byte, 32)
	x[31] = 1
	c, err := NewCommitment(x)
	require.NoError(t, err)
	require.Equal(t, 32, c.Width())
	require.Equal(t, x, c.Bytes())
	require.Len(t, c.String(), 2+64)
}

func TestCommitment_BytesReturnsCopy(t *testing.T) {
	c, err := NewCommitment([]byte{1, 2})
	require.NoError(t, err)
	c.Bytes()[0] = 9
	require.Equal(t, []byte{1, 2}, c.Bytes())
}

func TestCommitment_InvalidInputsAreRejected(t *testing.T) {
	for _, s := range []string{"", "0x", "abcd", "0xabc", "0xzz", "0x" + string(bytes.Repeat([]byte("00"), 49))} {
		_, err := ParseCommitment(s)
		require.ErrorIs(t, err, ErrInvalidCommitment, "input %q", s)
	}
	_, err := Commitment{}.MarshalText()
	require.ErrorIs(t, err, ErrInvalidCommitment)
}

func TestCommitment_Compare(t *testing.T) {
	mk := func(x ...byte) Commitment {
		c, err := NewCommitment(x)
		require.NoError(t, err)
		return c
	}
	list := []Commitment{mk(2, 0), mk(1), mk(1, 255), mk(0, 1), mk(1, 0)}
	slices.SortFunc(list, Commitment.Compare)
	require.Equal(t, []Commitment{mk(1), mk(0, 1), mk(1, 0), mk(1, 255), mk(2, 0)}, list)
	require.Zero(t, mk(3, 4).Compare(mk(3, 4)))
}
