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

// Package vrf defines the interface to a verifiable random function.
package vrf

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/gtank/merlin"
)

// A VRF is a pseudorandom function f_k from a secret key k, such that that
// knowledge of k not only enables one to evaluate f_k at for any message m,
// but also to provide an NP-proof that the value f_k(m) is indeed correct
// without compromising the unpredictability of f_k for any m' != m.
// http://ieeexplore.ieee.org/stamp/stamp.jsp?tp=&arnumber=814584

const (
	// OutputSize is the width of the encoded VRF output commitment.
	OutputSize = 32
	// DLEQSize is the width of the encoded proof of correct derivation.
	DLEQSize = 64
	// ProofSize is the width of a Proof on the wire.
	ProofSize = OutputSize + DLEQSize
)

var (
	// ErrMalformedProof occurs when proof bytes do not decode.
	ErrMalformedProof = errors.New("vrf: malformed proof")
	// ErrInvalidProof occurs when a well formed proof does not validate.
	ErrInvalidProof = errors.New("vrf: invalid proof")
)

// TranscriptFunc returns a fresh signing transcript. Merlin transcripts are
// stateful, so every sign or verify step needs its own.
type TranscriptFunc func() *merlin.Transcript

// PrivateKey supports evaluating the VRF function.
type PrivateKey interface {
	// Evaluate returns the VRF output for the transcript and its proof.
	Evaluate(t TranscriptFunc) (Output, Proof, error)
	// Public returns the corresponding public key.
	Public() PublicKey
}

// PublicKey supports verifying output from the VRF function.
type PublicKey interface {
	// ProofToOutput verifies the proof and returns the output it is bound to.
	ProofToOutput(t TranscriptFunc, p Proof) (Output, error)
	// Encode returns the compressed public key.
	Encode() [32]byte
}

// Output is a VRF output that has been paired with its input.
type Output interface {
	// MakeBytes extracts size pseudorandom bytes under context.
	MakeBytes(size int, context []byte) ([]byte, error)
}

// Proof is the output commitment followed by the proof of correct derivation.
type Proof [ProofSize]byte

// NewProof lays out out and dleq in wire order.
func NewProof(out [OutputSize]byte, dleq [DLEQSize]byte) Proof {
	var p Proof
	copy(p[:OutputSize], out[:])
	copy(p[OutputSize:], dleq[:])
	return p
}

// Output returns the output commitment half of the proof.
func (p Proof) Output() [OutputSize]byte {
	var out [OutputSize]byte
	copy(out[:], p[:OutputSize])
	return out
}

// DLEQ returns the proof of correct derivation.
func (p Proof) DLEQ() [DLEQSize]byte {
	var d [DLEQSize]byte
	copy(d[:], p[OutputSize:])
	return d
}

func (p Proof) String() string {
	return hex.EncodeToString(p[:])
}

// ParseProof copies b into a Proof.
func ParseProof(b []byte) (Proof, error) {
	var p Proof
	if got, want := len(b), ProofSize; got != want {
		return p, fmt.Errorf("%w: %v bytes, want %v", ErrMalformedProof, got, want)
	}
	copy(p[:], b)
	return p, nil
}

// ProofFromHex decodes a hex encoded proof.
func ProofFromHex(h string) (Proof, error) {
	b, err := hex.DecodeString(h)
	if err != nil {
		return Proof{}, fmt.Errorf("%w: %v", ErrMalformedProof, err)
	}
	return ParseProof(b)
}
