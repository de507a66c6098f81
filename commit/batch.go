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
	"context"
	"fmt"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Opening is a message together with the randomness committing to it.
type Opening struct {
	Message    []byte
	Randomness *big.Int
}

// CommitBatch commits to all openings concurrently. The result holds the
// commitment of openings[i] at position i. The first failure cancels the
// remaining work and is returned.
func (s *Scheme) CommitBatch(ctx context.Context, openings []Opening) ([]Commitment, error) {
	res := make([]Commitment, len(openings))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, opening := range openings {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := s.Commit(opening.Message, opening.Randomness)
			if err != nil {
				return fmt.Errorf("opening %d: %w", i, err)
			}
			res[i] = c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
