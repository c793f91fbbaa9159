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

// Package transcript builds the domain separated signing input for the
// secret number VRF.
package transcript

import (
	"github.com/gtank/merlin"

	"github.com/honestcpu/honestgame/core/seed"
)

const (
	// Label separates transcripts of this protocol from any other use of
	// the same key.
	Label = "Secret Number Transcript"
	// SeedLabel tags the seed bytes inside the transcript.
	SeedLabel = "seed"
)

// Build returns a new transcript bound to s.
// Transcripts are consumed by signing and verifying, so callers need a fresh
// one for each VRF operation.
func Build(s seed.Seed) *merlin.Transcript {
	t := merlin.NewTranscript(Label)
	t.AppendMessage([]byte(SeedLabel), s[:])
	return t
}

// Builder returns a function that produces fresh transcripts for s.
func Builder(s seed.Seed) func() *merlin.Transcript {
	return func() *merlin.Transcript { return Build(s) }
}
