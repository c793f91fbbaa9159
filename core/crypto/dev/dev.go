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

// Package dev contains deterministic readers for tests and reproducible demos.
// Nothing in here is suitable as a source of key material.
package dev

// Zeros is an io.Reader that fills every buffer with zero bytes.
var Zeros = zeros{}

type zeros struct{}

func (zeros) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// Counter is an io.Reader that emits the byte sequence b, b+1, b+2, ...
// wrapping at 255. Successive reads continue the sequence.
type Counter struct {
	next byte
}

// NewCounter returns a Counter starting at b.
func NewCounter(b byte) *Counter {
	return &Counter{next: b}
}

func (c *Counter) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = c.next
		c.next++
	}
	return len(p), nil
}
