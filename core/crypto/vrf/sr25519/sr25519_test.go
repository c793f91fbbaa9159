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

package sr25519

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/honestcpu/honestgame/core/crypto/dev"
	"github.com/honestcpu/honestgame/core/crypto/transcript"
	"github.com/honestcpu/honestgame/core/crypto/vrf"
	"github.com/honestcpu/honestgame/core/seed"
)

var secretContext = []byte("secret")

func mustKey(t testing.TB) (*PrivateKey, *PublicKey) {
	t.Helper()
	k, pk, err := GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey(): %v", err)
	}
	return k, pk
}

func makeBytes(t *testing.T, out vrf.Output) []byte {
	t.Helper()
	b, err := out.MakeBytes(32, secretContext)
	if err != nil {
		t.Fatalf("MakeBytes(): %v", err)
	}
	return b
}

func TestVRF(t *testing.T) {
	k, pk := mustKey(t)

	m1 := transcript.Builder(seed.Seed{1})
	m2 := transcript.Builder(seed.Seed{2})
	m3 := transcript.Builder(seed.Seed{2})
	out1, proof1, err := k.Evaluate(m1)
	if err != nil {
		t.Fatalf("Evaluate(): %v", err)
	}
	out2, proof2, err := k.Evaluate(m2)
	if err != nil {
		t.Fatalf("Evaluate(): %v", err)
	}
	out3, proof3, err := k.Evaluate(m3)
	if err != nil {
		t.Fatalf("Evaluate(): %v", err)
	}
	for i, tc := range []struct {
		m     vrf.TranscriptFunc
		out   vrf.Output
		proof vrf.Proof
		err   error
	}{
		{m1, out1, proof1, nil},
		{m2, out2, proof2, nil},
		{m3, out3, proof3, nil},
		{m3, out3, proof2, nil},
		{m3, out3, proof1, vrf.ErrInvalidProof},
		{m1, out1, proof2, vrf.ErrInvalidProof},
	} {
		out, err := pk.ProofToOutput(tc.m, tc.proof)
		if got, want := err, tc.err; !errors.Is(got, want) {
			t.Errorf("%v: ProofToOutput(%v): %v, want %v", i, tc.proof, got, want)
		}
		if err != nil {
			continue
		}
		if got, want := makeBytes(t, out), makeBytes(t, tc.out); !bytes.Equal(got, want) {
			t.Errorf("%v: ProofToOutput(%v): %x, want %x", i, tc.proof, got, want)
		}
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	k, _ := mustKey(t)
	m := transcript.Builder(seed.Seed{})
	out1, proof1, err := k.Evaluate(m)
	if err != nil {
		t.Fatalf("Evaluate(): %v", err)
	}
	out2, proof2, err := k.Evaluate(m)
	if err != nil {
		t.Fatalf("Evaluate(): %v", err)
	}
	if got, want := proof1.Output(), proof2.Output(); got != want {
		t.Errorf("Evaluate().Output: %x, want %x", got, want)
	}
	if got, want := makeBytes(t, out1), makeBytes(t, out2); !bytes.Equal(got, want) {
		t.Errorf("Evaluate().MakeBytes: %x, want %x", got, want)
	}
}

func TestWrongKey(t *testing.T) {
	k, _ := mustKey(t)
	_, other := mustKey(t)
	m := transcript.Builder(seed.Seed{9})
	_, proof, err := k.Evaluate(m)
	if err != nil {
		t.Fatalf("Evaluate(): %v", err)
	}
	if _, err := other.ProofToOutput(m, proof); !errors.Is(err, vrf.ErrInvalidProof) {
		t.Errorf("ProofToOutput() with other key: %v, want %v", err, vrf.ErrInvalidProof)
	}
}

func TestBitFlip(t *testing.T) {
	k, pk := mustKey(t)

	m := transcript.Builder(seed.Seed{3})
	_, proof, err := k.Evaluate(m)
	if err != nil {
		t.Fatalf("Evaluate(): %v", err)
	}
	for i := 0; i < len(proof)*8; i++ {
		// Flip bit in position i.
		if _, err := pk.ProofToOutput(m, flipBit(proof, i)); err == nil {
			t.Errorf("Verify unexpectedly succeeded after flipping bit %v of vrf", i)
		}
	}
}

func flipBit(p vrf.Proof, pos int) vrf.Proof {
	p[pos/8] ^= 1 << uint(pos%8)
	return p
}

func TestMalformedOutput(t *testing.T) {
	k, pk := mustKey(t)
	m := transcript.Builder(seed.Seed{4})
	_, proof, err := k.Evaluate(m)
	if err != nil {
		t.Fatalf("Evaluate(): %v", err)
	}
	// All 0xff bytes is not a canonical ristretto encoding.
	for i := 0; i < vrf.OutputSize; i++ {
		proof[i] = 0xff
	}
	if _, err := pk.ProofToOutput(m, proof); !errors.Is(err, vrf.ErrMalformedProof) {
		t.Errorf("ProofToOutput(): %v, want %v", err, vrf.ErrMalformedProof)
	}
}

func TestGenerateKeyFromReader(t *testing.T) {
	k1, pk1, err := GenerateKey(dev.Zeros)
	if err != nil {
		t.Fatalf("GenerateKey(): %v", err)
	}
	k2, pk2, err := GenerateKey(dev.Zeros)
	if err != nil {
		t.Fatalf("GenerateKey(): %v", err)
	}
	if got, want := pk1.Encode(), pk2.Encode(); got != want {
		t.Errorf("GenerateKey(Zeros) public keys differ: %x, %x", got, want)
	}
	k3, err := NewVRFSignerFromHex(strings.Repeat("00", MiniSecretSize))
	if err != nil {
		t.Fatalf("NewVRFSignerFromHex(): %v", err)
	}
	if got, want := k3.Public().Encode(), k1.Public().Encode(); got != want {
		t.Errorf("zero mini secret public key: %x, want %x", got, want)
	}
	if got, want := k2.Public().Encode(), pk1.Encode(); got != want {
		t.Errorf("Public(): %x, want %x", got, want)
	}
	if _, _, err := GenerateKey(bytes.NewReader(make([]byte, 3))); err == nil {
		t.Errorf("GenerateKey(short reader): nil error")
	}
}

func TestDeriveKey(t *testing.T) {
	a, err := DeriveKey([]byte("towel"), "honestgame")
	if err != nil {
		t.Fatalf("DeriveKey(): %v", err)
	}
	b, err := DeriveKey([]byte("towel"), "honestgame")
	if err != nil {
		t.Fatalf("DeriveKey(): %v", err)
	}
	c, err := DeriveKey([]byte("towel"), "other")
	if err != nil {
		t.Fatalf("DeriveKey(): %v", err)
	}
	if got, want := a.Public().Encode(), b.Public().Encode(); got != want {
		t.Errorf("DeriveKey() not deterministic: %x != %x", got, want)
	}
	if a.Public().Encode() == c.Public().Encode() {
		t.Errorf("DeriveKey() ignores info: %x", a.Public().Encode())
	}
}

func TestHexRoundTrip(t *testing.T) {
	k2, err := NewVRFSignerFromHex(strings.Repeat("5a", MiniSecretSize))
	if err != nil {
		t.Fatalf("NewVRFSignerFromHex(): %v", err)
	}
	pk := k2.PublicKey()
	pk2, err := NewVRFVerifierFromHex(pk.String())
	if err != nil {
		t.Fatalf("NewVRFVerifierFromHex(): %v", err)
	}
	m := transcript.Builder(seed.Seed{5})
	_, proof, err := k2.Evaluate(m)
	if err != nil {
		t.Fatalf("Evaluate(): %v", err)
	}
	if _, err := pk2.ProofToOutput(m, proof); err != nil {
		t.Errorf("ProofToOutput(): %v", err)
	}

	for _, h := range []string{"", "00", "zz", strings.Repeat("00", 33)} {
		if _, err := NewVRFSignerFromHex(h); err == nil {
			t.Errorf("NewVRFSignerFromHex(%q): nil error", h)
		}
		if _, err := NewVRFVerifierFromHex(h); err == nil {
			t.Errorf("NewVRFVerifierFromHex(%q): nil error", h)
		}
	}
}

func BenchmarkEvaluate(b *testing.B) {
	k, _ := mustKey(b)
	m1 := transcript.Builder(seed.Seed{1})
	for _, routines := range []int{1, 2, 4, 8, 16, 32, 64, 128} {
		b.Run(fmt.Sprintf("%d goroutines", routines), func(b *testing.B) {
			var wg sync.WaitGroup
			defer wg.Wait()
			for i := 0; i < routines; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for n := 0; n < b.N/routines; n++ {
						if _, _, err := k.Evaluate(m1); err != nil {
							b.Error(err)
						}
					}
				}()
			}
		})
	}
}
