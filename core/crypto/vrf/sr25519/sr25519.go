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

// Package sr25519 implements a verifiable random function using Schnorr
// signatures over the Ristretto group of curve25519.
package sr25519

// The VRF is the DLEQ construction of schnorrkel:
// https://github.com/w3f/schnorrkel/blob/master/src/vrf.rs
// Keys are 32 byte mini secrets expanded in Ed25519 mode.

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/honestcpu/honestgame/core/crypto/vrf"

	schnorrkel "github.com/ChainSafe/go-schnorrkel"
)

// MiniSecretSize is the length of an encoded private key.
const MiniSecretSize = 32

var (
	// ErrWrongKeySize occurs when raw key bytes have the wrong length.
	ErrWrongKeySize = errors.New("sr25519: wrong key size")
	// ErrInvalidPublicKey occurs when a public key is not a valid group element.
	ErrInvalidPublicKey = errors.New("sr25519: invalid public key")
)

// PublicKey holds a public VRF key.
type PublicKey struct {
	key *schnorrkel.PublicKey
}

// PrivateKey holds a private VRF key.
type PrivateKey struct {
	secret *schnorrkel.SecretKey
	public *PublicKey
}

// GenerateKey generates a fresh keypair for this VRF, reading the mini secret
// from r. A nil r uses crypto/rand.
func GenerateKey(r io.Reader) (*PrivateKey, *PublicKey, error) {
	if r == nil {
		r = rand.Reader
	}
	var mini [MiniSecretSize]byte
	if _, err := io.ReadFull(r, mini[:]); err != nil {
		return nil, nil, fmt.Errorf("reading mini secret: %v", err)
	}
	k, err := NewVRFSigner(mini)
	if err != nil {
		return nil, nil, err
	}
	return k, k.public, nil
}

// DeriveKey derives a keypair from secret using HKDF-SHA512. The same secret
// and info always yield the same key.
func DeriveKey(secret []byte, info string) (*PrivateKey, error) {
	var mini [MiniSecretSize]byte
	kdf := hkdf.New(sha512.New, secret, nil, []byte(info))
	if _, err := io.ReadFull(kdf, mini[:]); err != nil {
		return nil, err
	}
	return NewVRFSigner(mini)
}

// NewVRFSigner creates a signer object from a mini secret key.
func NewVRFSigner(mini [MiniSecretSize]byte) (*PrivateKey, error) {
	msk, err := schnorrkel.NewMiniSecretKeyFromRaw(mini)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{
		secret: msk.ExpandEd25519(),
		public: &PublicKey{key: msk.Public()},
	}, nil
}

// NewVRFSignerFromHex creates a signer object from a hex encoded mini secret.
func NewVRFSignerFromHex(h string) (*PrivateKey, error) {
	var mini [MiniSecretSize]byte
	if err := decodeHex(h, mini[:]); err != nil {
		return nil, err
	}
	return NewVRFSigner(mini)
}

// Evaluate signs the transcript and returns the VRF in/out with its proof.
// The proof is randomized; the output is not.
func (k *PrivateKey) Evaluate(t vrf.TranscriptFunc) (vrf.Output, vrf.Proof, error) {
	inout, proof, err := k.secret.VrfSign(t())
	if err != nil {
		return nil, vrf.Proof{}, err
	}
	return inout, vrf.NewProof(inout.Output().Encode(), proof.Encode()), nil
}

// Public returns the corresponding public key.
func (k *PrivateKey) Public() vrf.PublicKey {
	return k.public
}

// PublicKey returns the corresponding public key as its concrete type.
func (k *PrivateKey) PublicKey() *PublicKey {
	return k.public
}

// NewVRFVerifier creates a verifier object from a compressed public key.
func NewVRFVerifier(b [32]byte) (*PublicKey, error) {
	key := new(schnorrkel.PublicKey)
	if err := key.Decode(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return &PublicKey{key: key}, nil
}

// NewVRFVerifierFromHex creates a verifier object from a hex encoded key.
func NewVRFVerifierFromHex(h string) (*PublicKey, error) {
	var b [32]byte
	if err := decodeHex(h, b[:]); err != nil {
		return nil, err
	}
	return NewVRFVerifier(b)
}

// ProofToOutput asserts that p is correct for the transcript and returns the
// output bound to it.
func (pk *PublicKey) ProofToOutput(t vrf.TranscriptFunc, p vrf.Proof) (vrf.Output, error) {
	out := new(schnorrkel.VrfOutput)
	if err := out.Decode(p.Output()); err != nil {
		return nil, fmt.Errorf("%w: output: %v", vrf.ErrMalformedProof, err)
	}
	proof := new(schnorrkel.VrfProof)
	if err := proof.Decode(p.DLEQ()); err != nil {
		return nil, fmt.Errorf("%w: dleq: %v", vrf.ErrMalformedProof, err)
	}

	ok, err := pk.key.VrfVerify(t(), out, proof)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vrf.ErrInvalidProof, err)
	}
	if !ok {
		return nil, vrf.ErrInvalidProof
	}

	// VrfVerify consumed its transcript.
	inout, err := out.AttachInput(pk.key, t())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vrf.ErrInvalidProof, err)
	}
	return inout, nil
}

// Encode returns the compressed public key.
func (pk *PublicKey) Encode() [32]byte {
	return pk.key.Encode()
}

func (pk *PublicKey) String() string {
	b := pk.Encode()
	return hex.EncodeToString(b[:])
}

func decodeHex(h string, dst []byte) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return err
	}
	if got, want := len(b), len(dst); got != want {
		return fmt.Errorf("%w: %v bytes, want %v", ErrWrongKeySize, got, want)
	}
	copy(dst, b)
	return nil
}
