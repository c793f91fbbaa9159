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

package game

import (
	"errors"
	"fmt"

	"github.com/honestcpu/honestgame/core/crypto/commitments"
	"github.com/honestcpu/honestgame/core/crypto/vrf"
	"github.com/honestcpu/honestgame/core/seed"
)

// State is the position of a round in its lifecycle.
type State int

// A round only moves forward: SeedGenerated -> Committed -> Verified.
const (
	SeedGenerated State = iota
	Committed
	Verified
)

func (s State) String() string {
	switch s {
	case SeedGenerated:
		return "SeedGenerated"
	case Committed:
		return "Committed"
	case Verified:
		return "Verified"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrWrongState occurs when an operation is attempted out of order.
var ErrWrongState = errors.New("game: operation not allowed in this state")

// Hint tells the guesser where the secret lies relative to a guess.
type Hint int

// Hints returned by Round.Guess.
const (
	TooSmall Hint = iota - 1
	Correct
	TooBig
)

func (h Hint) String() string {
	switch h {
	case TooSmall:
		return "Too small."
	case TooBig:
		return "Too big."
	default:
		return "Correct."
	}
}

// Verification is the outcome of checking a round's proof.
type Verification struct {
	// Committed is the secret the prover used for the round.
	Committed commitments.Secret
	// Recovered is the secret recomputed from the proof. Only meaningful
	// when Err is nil.
	Recovered commitments.Secret
	// Err is set when the proof was rejected outright.
	Err error
}

// OK reports whether the proof verified to the committed secret.
func (v Verification) OK() bool {
	return v.Err == nil && v.Recovered == v.Committed
}

// Round holds one seed, its commitment and the guesses made against it.
type Round struct {
	state   State
	seed    seed.Seed
	secret  commitments.Secret
	proof   vrf.Proof
	guesses int
	result  Verification
}

// NewRound draws a fresh seed from src.
func NewRound(src seed.Source) (*Round, error) {
	s, err := src.Next()
	if err != nil {
		return nil, err
	}
	return &Round{state: SeedGenerated, seed: s}, nil
}

// State returns the current state of the round.
func (r *Round) State() State { return r.state }

// Seed returns the public seed of the round.
func (r *Round) Seed() seed.Seed { return r.seed }

// Proof returns the published proof. Zero until the round is committed.
func (r *Round) Proof() vrf.Proof { return r.proof }

// Guesses returns the number of guesses made so far.
func (r *Round) Guesses() int { return r.guesses }

// Secret returns the committed secret.
func (r *Round) Secret() (commitments.Secret, error) {
	if r.state == SeedGenerated {
		return 0, ErrWrongState
	}
	return r.secret, nil
}

// Commit fixes the secret for this round. It may only be called once.
func (r *Round) Commit(k vrf.PrivateKey) error {
	if r.state != SeedGenerated {
		return fmt.Errorf("%w: commit in %v", ErrWrongState, r.state)
	}
	secret, proof, err := commitments.Commit(k, r.seed)
	if err != nil {
		return err
	}
	r.secret, r.proof = secret, proof
	r.state = Committed
	return nil
}

// Guess compares n against the committed secret.
func (r *Round) Guess(n uint8) (Hint, error) {
	if r.state != Committed {
		return 0, fmt.Errorf("%w: guess in %v", ErrWrongState, r.state)
	}
	r.guesses++
	switch s := uint8(r.secret); {
	case n > s:
		return TooBig, nil
	case n < s:
		return TooSmall, nil
	default:
		return Correct, nil
	}
}

// Verify checks the round's proof against pk and ends the round.
// Rejected proofs are reported in the Verification, not as an error.
func (r *Round) Verify(pk vrf.PublicKey) (Verification, error) {
	if r.state != Committed {
		return Verification{}, fmt.Errorf("%w: verify in %v", ErrWrongState, r.state)
	}
	v := Verification{Committed: r.secret}
	v.Recovered, v.Err = commitments.Verify(pk, r.seed, r.proof)
	r.result = v
	r.state = Verified
	return v, nil
}

// Result returns the outcome of Verify.
func (r *Round) Result() (Verification, error) {
	if r.state != Verified {
		return Verification{}, ErrWrongState
	}
	return r.result, nil
}
