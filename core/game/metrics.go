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

import "github.com/prometheus/client_golang/prometheus"

var (
	roundsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "honestgame",
		Name:      "rounds_total",
		Help:      "Rounds committed.",
	})
	guessesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "honestgame",
		Name:      "guesses_total",
		Help:      "Well formed guesses received.",
	})
	verificationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "honestgame",
		Name:      "verifications_total",
		Help:      "Round verifications by result: ok, mismatch or rejected.",
	}, []string{"result"})
	guessesPerRound = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "honestgame",
		Name:      "guesses_per_round",
		Help:      "Guesses needed to find the secret.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	})
)

func init() {
	prometheus.MustRegister(roundsTotal, guessesTotal, verificationsTotal, guessesPerRound)
}
