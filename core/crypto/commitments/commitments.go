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

// Package commitments commits a prover to a secret number before any guess is
// made, and lets anyone holding the public key check the commitment later.
//
// Commitment scheme is as follows:
// T = Transcript("Secret Number Transcript", "seed" || seed)
// (out, proof) = VRF_sk(T)
// secret = LE64(MakeBytes(out, "secret", 8)) mod Bound
// The published commitment is out || proof.
//
// Reducing a 64 bit value modulo Bound favours small residues: each residue is
// off from 1/Bound by less than 2^-64. That is fine for a guessing game. Uses
// that need uniform output must switch to rejection sampling.
package commitments

import (
	"encoding/binary"
	"fmt"

	"github.com/honestcpu/honestgame/core/crypto/transcript"
	"github.com/honestcpu/honestgame/core/crypto/vrf"
	"github.com/honestcpu/honestgame/core/seed"
)

const (
	// Bound is the exclusive upper limit of a secret number.
	Bound = 10
	// secretLen is the number of pseudorandom bytes drawn from the output.
	secretLen = 8
)

// secretContext separates secret extraction from any other use of the output.
var secretContext = []byte("secret")

// Secret is the committed number, in [0, Bound).
type Secret uint8

// SecretFromOutput derives a number in [0, bound) from a VRF output.
// Commit and Verify both go through here so the two paths cannot drift apart.
func SecretFromOutput(out vrf.Output, bound uint64) (Secret, error) {
	if bound == 0 || bound > 256 {
		return 0, fmt.Errorf("commitments: bound %v out of range (0, 256]", bound)
	}
	b, err := out.MakeBytes(secretLen, secretContext)
	if err != nil {
		return 0, err
	}
	return Secret(binary.LittleEndian.Uint64(b) % bound), nil
}

// Commit evaluates the VRF on s and returns the secret along with the proof
// that binds it to s and the public half of k.
// An error means the key is unusable and the round must not proceed.
func Commit(k vrf.PrivateKey, s seed.Seed) (Secret, vrf.Proof, error) {
	out, proof, err := k.Evaluate(transcript.Builder(s))
	if err != nil {
		return 0, vrf.Proof{}, fmt.Errorf("commitments: vrf sign: %v", err)
	}
	secret, err := SecretFromOutput(out, Bound)
	if err != nil {
		return 0, vrf.Proof{}, err
	}
	return secret, proof, nil
}

// Verify recovers the secret committed to by p for seed s.
// Errors wrap vrf.ErrMalformedProof or vrf.ErrInvalidProof.
func Verify(pk vrf.PublicKey, s seed.Seed, p vrf.Proof) (Secret, error) {
	out, err := pk.ProofToOutput(transcript.Builder(s), p)
	if err != nil {
		return 0, err
	}
	return SecretFromOutput(out, Bound)
}
