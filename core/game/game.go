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

// Package game runs the honest guessing game: the computer commits to a secret
// number with a VRF, the player guesses, and the commitment is checked at the
// end of every round.
package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/logrusorgru/aurora"

	"github.com/honestcpu/honestgame/core/crypto/commitments"
	"github.com/honestcpu/honestgame/core/crypto/vrf"
	"github.com/honestcpu/honestgame/core/seed"
)

// Options configures a Game.
type Options struct {
	// Rounds is the number of rounds to play. Zero plays until input ends.
	Rounds int
	// Color enables ANSI colors on labels.
	Color bool
	// Debug prints the secret as soon as it is committed.
	Debug bool
}

// Game plays rounds against a single prover key.
type Game struct {
	key   vrf.PrivateKey
	seeds seed.Source
	in    *bufio.Scanner
	out   io.Writer
	au    aurora.Aurora
	opts  Options
}

// New returns a game that reads guesses from in and writes to out.
func New(key vrf.PrivateKey, seeds seed.Source, in io.Reader, out io.Writer, opts Options) *Game {
	return &Game{
		key:   key,
		seeds: seeds,
		in:    bufio.NewScanner(in),
		out:   out,
		au:    aurora.NewAurora(opts.Color),
		opts:  opts,
	}
}

// Play runs rounds until the configured count is reached, input ends, or ctx
// is cancelled. Running out of input is not an error.
// Cancellation is observed between input lines: a read already blocked on in
// returns only when a line arrives or in is closed.
func (g *Game) Play(ctx context.Context) error {
	g.printf("Welcome to Honest guessing game.\n")
	for i := 0; g.opts.Rounds == 0 || i < g.opts.Rounds; i++ {
		r, err := g.PlayRound(ctx)
		switch {
		case err == io.EOF:
			glog.Infof("Input closed after %v rounds", i)
			return nil
		case err != nil:
			return err
		}
		glog.V(2).Infof("Round %v finished in state %v after %v guesses", i, r.State(), r.Guesses())
	}
	return nil
}

// PlayRound plays a single round and returns it in the Verified state.
// io.EOF is returned if input ends before the secret is found.
func (g *Game) PlayRound(ctx context.Context) (*Round, error) {
	r, err := NewRound(g.seeds)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(g.key); err != nil {
		return nil, err
	}
	roundsTotal.Inc()

	pub := g.key.Public().Encode()
	g.printf("%v: %x\n", g.au.Blue("Public key"), pub)
	g.printf("%v: %v\n", g.au.Blue("Seed"), r.Seed())
	g.printf("%v: %v\n", g.au.Blue("Signature"), r.Proof())
	if g.opts.Debug {
		secret, _ := r.Secret()
		g.printf("%v %v\n", g.au.Red("DEBUG: secret_number ="), secret)
	}

	if err := g.guessUntilFound(ctx, r); err != nil {
		return nil, err
	}
	guessesPerRound.Observe(float64(r.Guesses()))

	g.printf("Please verify signature by yourself\n")
	v, err := r.Verify(g.key.Public())
	if err != nil {
		return nil, err
	}
	g.report(v)
	return r, nil
}

func (g *Game) guessUntilFound(ctx context.Context, r *Round) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.printf("\nEnter your guess between 0 and %v: \n", commitments.Bound-1)
		if !g.in.Scan() {
			if err := g.in.Err(); err != nil {
				return err
			}
			return io.EOF
		}
		n, err := strconv.ParseUint(strings.TrimSpace(g.in.Text()), 10, 8)
		if err != nil {
			g.printf("Error: %v\n", err)
			continue
		}

		hint, err := r.Guess(uint8(n))
		if err != nil {
			return err
		}
		guessesTotal.Inc()
		if hint != Correct {
			g.printf("%v\n", hint)
			continue
		}
		secret, _ := r.Secret()
		g.printf("Congratulations you found %v in %v tries\n", secret, r.Guesses())
		return nil
	}
}

func (g *Game) report(v Verification) {
	switch {
	case v.Err != nil:
		verificationsTotal.WithLabelValues("rejected").Inc()
		glog.Errorf("Proof rejected: %v", v.Err)
		g.printf("Verification failed, proof rejected: %v\n", v.Err)
	case !v.OK():
		verificationsTotal.WithLabelValues("mismatch").Inc()
		glog.Errorf("Proof recovered %v, committed %v", v.Recovered, v.Committed)
		g.printf("Verification failed, %v != %v\n", v.Committed, v.Recovered)
	default:
		verificationsTotal.WithLabelValues("ok").Inc()
		g.printf("Verification done, i am an honest cpu\n")
	}
}

func (g *Game) printf(format string, a ...interface{}) {
	fmt.Fprintf(g.out, format, a...)
}
