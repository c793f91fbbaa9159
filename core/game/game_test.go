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
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/honestcpu/honestgame/core/crypto/commitments"
	"github.com/honestcpu/honestgame/core/crypto/vrf"
	"github.com/honestcpu/honestgame/core/crypto/vrf/sr25519"
	"github.com/honestcpu/honestgame/core/seed"
	"github.com/honestcpu/honestgame/core/seed/mock_seed"
)

// allGuesses walks every possible secret in order, so any round ends.
var allGuesses = "0\n1\n2\n3\n4\n5\n6\n7\n8\n9\n"

func fixedSeeds(t *testing.T, seeds ...seed.Seed) seed.Source {
	ctrl := gomock.NewController(t)
	src := mock_seed.NewMockSource(ctrl)
	calls := make([]*gomock.Call, 0, len(seeds))
	for _, s := range seeds {
		calls = append(calls, src.EXPECT().Next().Return(s, nil))
	}
	gomock.InOrder(calls...)
	return src
}

func TestPlayRound(t *testing.T) {
	k := mustKey(t)
	s := seed.Seed{1, 2, 3}
	secret, proof, err := commitments.Commit(k, s)
	if err != nil {
		t.Fatalf("Commit(): %v", err)
	}

	var out bytes.Buffer
	in := strings.NewReader("banana\n-1\n" + allGuesses)
	g := New(k, fixedSeeds(t, s), in, &out, Options{Rounds: 1})
	if err := g.Play(context.Background()); err != nil {
		t.Fatalf("Play(): %v", err)
	}

	got := out.String()
	pub := k.Public().Encode()
	for _, want := range []string{
		"Welcome to Honest guessing game.",
		fmt.Sprintf("Public key: %x", pub),
		fmt.Sprintf("Seed: %v", s),
		// The proof is randomized, only the output half is stable.
		fmt.Sprintf("Signature: %x", proof[:vrf.OutputSize]),
		"Error: strconv.ParseUint: parsing \"banana\"",
		"Error: strconv.ParseUint: parsing \"-1\"",
		fmt.Sprintf("Congratulations you found %v in %v tries", secret, int(secret)+1),
		"Please verify signature by yourself",
		"Verification done, i am an honest cpu",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Play() output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "DEBUG") {
		t.Errorf("Play() printed the secret without Debug:\n%s", got)
	}
	if got, want := strings.Count(got, "Too small."), int(secret); got != want {
		t.Errorf("Play() printed %v hints, want %v", got, want)
	}
}

func TestPlayDebugPrintsSecret(t *testing.T) {
	k := mustKey(t)
	s := seed.Seed{9}
	secret, _, err := commitments.Commit(k, s)
	if err != nil {
		t.Fatalf("Commit(): %v", err)
	}
	var out bytes.Buffer
	g := New(k, fixedSeeds(t, s), strings.NewReader(allGuesses), &out, Options{Rounds: 1, Debug: true})
	if err := g.Play(context.Background()); err != nil {
		t.Fatalf("Play(): %v", err)
	}
	if want := fmt.Sprintf("DEBUG: secret_number = %v", secret); !strings.Contains(out.String(), want) {
		t.Errorf("Play() output missing %q:\n%s", want, out.String())
	}
}

func TestPlayStopsAtEOF(t *testing.T) {
	k := mustKey(t)
	secret, _, err := commitments.Commit(k, seed.Seed{1})
	if err != nil {
		t.Fatalf("Commit(): %v", err)
	}
	// Just enough guesses to finish the first round; the second runs dry.
	in := strings.Join(strings.Split(allGuesses, "\n")[:int(secret)+1], "\n") + "\n"
	var out bytes.Buffer
	g := New(k, fixedSeeds(t, seed.Seed{1}, seed.Seed{2}), strings.NewReader(in), &out, Options{})
	if err := g.Play(context.Background()); err != nil {
		t.Fatalf("Play(): %v", err)
	}
	if got, want := strings.Count(out.String(), "Verification done"), 1; got != want {
		t.Errorf("Play() verified %v rounds, want %v", got, want)
	}
}

func TestPlayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	g := New(mustKey(t), fixedSeeds(t, seed.Seed{}), strings.NewReader(allGuesses), &out, Options{})
	if err := g.Play(ctx); err != context.Canceled {
		t.Errorf("Play(): %v, want %v", err, context.Canceled)
	}
}

// cancelOnRead cancels its context on the first read and then serves r.
type cancelOnRead struct {
	cancel context.CancelFunc
	r      io.Reader
}

func (c cancelOnRead) Read(p []byte) (int, error) {
	c.cancel()
	return c.r.Read(p)
}

func TestPlayCancelledDuringRead(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	in := cancelOnRead{cancel: cancel, r: strings.NewReader("x\n" + allGuesses)}
	var out bytes.Buffer
	g := New(mustKey(t), fixedSeeds(t, seed.Seed{}), in, &out, Options{})
	if err := g.Play(ctx); err != context.Canceled {
		t.Errorf("Play(): %v, want %v", err, context.Canceled)
	}
	// The pending line is still consumed before cancellation is seen.
	if got, want := strings.Count(out.String(), "Enter your guess"), 1; got != want {
		t.Errorf("Play() prompted %v times, want %v", got, want)
	}
	if strings.Contains(out.String(), "Congratulations") {
		t.Errorf("Play() finished a round after cancellation: %q", out.String())
	}
}

func TestPlayEntropyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mock_seed.NewMockSource(ctrl)
	src.EXPECT().Next().Return(seed.Seed{}, seed.ErrEntropy)
	var out bytes.Buffer
	g := New(mustKey(t), src, strings.NewReader(allGuesses), &out, Options{})
	if err := g.Play(context.Background()); err == nil {
		t.Errorf("Play(): nil error, want %v", seed.ErrEntropy)
	}
}

// lyingKey commits with one key but publishes another.
type lyingKey struct {
	vrf.PrivateKey
	pub vrf.PublicKey
}

func (k lyingKey) Public() vrf.PublicKey { return k.pub }

func TestPlayReportsRejectedProof(t *testing.T) {
	_, other, err := sr25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey(): %v", err)
	}
	k := lyingKey{PrivateKey: mustKey(t), pub: other}
	rejected := verificationsTotal.WithLabelValues("rejected")
	before := testutil.ToFloat64(rejected)

	var out bytes.Buffer
	g := New(k, fixedSeeds(t, seed.Seed{5}), strings.NewReader(allGuesses), &out, Options{Rounds: 1})
	r, err := g.PlayRound(context.Background())
	if err != nil {
		t.Fatalf("PlayRound(): %v", err)
	}
	if !strings.Contains(out.String(), "Verification failed, proof rejected") {
		t.Errorf("PlayRound() output:\n%s", out.String())
	}
	if got, want := testutil.ToFloat64(rejected)-before, 1.0; got != want {
		t.Errorf("rejected verifications: +%v, want +%v", got, want)
	}
	v, err := r.Result()
	if err != nil {
		t.Fatalf("Result(): %v", err)
	}
	if v.OK() {
		t.Errorf("Result(): %+v, want rejected", v)
	}
}

func TestReport(t *testing.T) {
	for _, tc := range []struct {
		v    Verification
		want string
	}{
		{Verification{Committed: 3, Recovered: 3}, "Verification done, i am an honest cpu\n"},
		{Verification{Committed: 3, Recovered: 4}, "Verification failed, 3 != 4\n"},
		{Verification{Committed: 3, Err: vrf.ErrMalformedProof}, "Verification failed, proof rejected: vrf: malformed proof\n"},
	} {
		var out bytes.Buffer
		g := New(nil, nil, strings.NewReader(""), &out, Options{})
		g.report(tc.v)
		if diff := cmp.Diff(tc.want, out.String()); diff != "" {
			t.Errorf("report(%+v) (-want +got):\n%s", tc.v, diff)
		}
	}
}
