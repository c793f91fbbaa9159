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

// Package bench runs many independent commit and verify pairs at the same time.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"
	"golang.org/x/time/rate"

	"github.com/honestcpu/honestgame/core/crypto/commitments"
	"github.com/honestcpu/honestgame/core/crypto/vrf"
	"github.com/honestcpu/honestgame/core/seed"
)

// ErrMismatch occurs when a proof verifies to a different secret than the one
// committed.
var ErrMismatch = errors.New("bench: verified secret differs from committed secret")

// Config tells the bench how fast to go.
type Config struct {
	Workers int
	Count   int
	// QPS limits the rate of new requests. Zero means no limit.
	QPS      int
	Duration time.Duration
}

// Bench represents a single run of the bench.
type Bench struct {
	key   vrf.PrivateKey
	seeds seed.Source
}

// New returns a new bench job.
func New(key vrf.PrivateKey, seeds seed.Source) *Bench {
	return &Bench{key: key, seeds: seeds}
}

type request struct {
	Seed seed.Seed
}

// Run commits to and verifies c.Count seeds across c.Workers goroutines.
func (b *Bench) Run(ctx context.Context, c Config) (*Stats, error) {
	if c.Workers < 1 {
		return nil, fmt.Errorf("bench: need at least one worker, got %v", c.Workers)
	}
	glog.Infof("Bench: %v requests over %v workers", c.Count, c.Workers)
	requests := b.genRequests(ctx, c.QPS, c.Count, c.Duration)
	handlers := make([]ReqHandler, 0, c.Workers)
	for i := 0; i < c.Workers; i++ {
		handlers = append(handlers, b.commitVerifyOp)
	}

	results := make(chan Result)
	go func() {
		defer close(results)
		executeRequests(ctx, requests, handlers, results)
	}()
	return collectStats(results), nil
}

func (b *Bench) genRequests(ctx context.Context, qps, count int, duration time.Duration) <-chan request {
	inflightReqs := make(chan request)
	go func() {
		cctx := ctx
		if duration > 0 {
			var cancel context.CancelFunc
			cctx, cancel = context.WithTimeout(ctx, duration)
			defer cancel()
		}
		defer close(inflightReqs)

		limit := rate.Inf
		if qps > 0 {
			limit = rate.Limit(qps)
		}
		rateLimiter := rate.NewLimiter(limit, qps+1)
		for i := 0; i < count; i++ {
			s, err := b.seeds.Next()
			if err != nil {
				glog.Errorf("Bench: stopping after %v requests: %v", i, err)
				return
			}
			if err := rateLimiter.Wait(cctx); err != nil {
				return
			}
			select {
			case inflightReqs <- request{Seed: s}:
			case <-cctx.Done():
				return
			}
		}
	}()
	return inflightReqs
}

// commitVerifyOp commits to a seed and checks the proof round trips.
func (b *Bench) commitVerifyOp(_ context.Context, req *request) error {
	secret, proof, err := commitments.Commit(b.key, req.Seed)
	if err != nil {
		return err
	}
	got, err := commitments.Verify(b.key.Public(), req.Seed, proof)
	if err != nil {
		return err
	}
	if got != secret {
		return fmt.Errorf("%w: %v != %v", ErrMismatch, secret, got)
	}
	return nil
}
