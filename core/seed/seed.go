// Copyright 2026 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package seed provides the public per-round input to the secret number VRF.
package seed

//go:generate mockgen -destination mock_seed/mock_seed.go github.com/honestcpu/honestgame/core/seed Source

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// Size is the length of a seed in bytes.
const Size = 32

var (
	// ErrEntropy occurs when the randomness source cannot fill a seed.
	// A round must not continue without a full seed.
	ErrEntropy = errors.New("seed: could not obtain secure randomness")
	// ErrInvalidLength occurs when decoding a seed of the wrong width.
	ErrInvalidLength = errors.New("seed: invalid length")
)

// Seed is a fresh random value, chosen per round and published alongside the
// proof so that anyone can recompute the secret number.
type Seed [Size]byte

// String returns the hex encoding of the seed.
func (s Seed) String() string {
	return hex.EncodeToString(s[:])
}

// FromHex decodes a hex encoded seed.
func FromHex(h string) (Seed, error) {
	var s Seed
	b, err := hex.DecodeString(h)
	if err != nil {
		return s, err
	}
	if got, want := len(b), Size; got != want {
		return s, fmt.Errorf("%w: %v bytes, want %v", ErrInvalidLength, got, want)
	}
	copy(s[:], b)
	return s, nil
}

// Source produces seeds.
type Source interface {
	// Next returns a new seed.
	Next() (Seed, error)
}

// Random reads seeds from a cryptographically secure random reader.
type Random struct {
	r io.Reader
}

// NewRandom returns a Source backed by r. If r is nil, crypto/rand is used.
func NewRandom(r io.Reader) *Random {
	if r == nil {
		r = rand.Reader
	}
	return &Random{r: r}
}

// Next fills a seed from the underlying reader. Partial reads are errors.
func (s *Random) Next() (Seed, error) {
	var out Seed
	if _, err := io.ReadFull(s.r, out[:]); err != nil {
		return Seed{}, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return out, nil
}
