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

package bench

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Result represents the output of one operation.
type Result struct {
	Err        error
	Start, End time.Time
}

// Stats hold statistics on the output of many operations.
type Stats struct {
	RequestCount int64
	ErrorCount   int64
	avgTotal     time.Duration // Sum of individual latencies.
	Total        time.Duration // Total wall time.
	Fastest      time.Duration
	Slowest      time.Duration
	Average      time.Duration // Sum of latencies / count
	QPS          float64       // Count / wall time
	ErrorDist    map[string]int
}

func collectStats(results <-chan Result) *Stats {
	s := Stats{ErrorDist: make(map[string]int)}
	st := time.Now()
	for res := range results {
		if res.Err != nil {
			s.ErrorCount++
			s.ErrorDist[res.Err.Error()]++
			continue
		}

		s.RequestCount++
		l := res.End.Sub(res.Start)
		s.avgTotal += l
		if s.Fastest == 0 || l < s.Fastest {
			s.Fastest = l
		}
		if l > s.Slowest {
			s.Slowest = l
		}
	}
	s.Total = time.Since(st)
	if s.RequestCount > 0 {
		s.QPS = float64(s.RequestCount) / s.Total.Seconds()
		s.Average = s.avgTotal / time.Duration(s.RequestCount)
	}
	return &s
}

// ErrCount is the number of times an error was seen.
type ErrCount struct {
	Error string
	Count int
}

// Errors returns the observed errors, most frequent first.
func (s *Stats) Errors() []ErrCount {
	errCounts := make([]ErrCount, 0, len(s.ErrorDist))
	for err, cnt := range s.ErrorDist {
		errCounts = append(errCounts, ErrCount{Error: err, Count: cnt})
	}
	sort.Slice(errCounts, func(i, j int) bool {
		if errCounts[i].Count != errCounts[j].Count {
			return errCounts[i].Count > errCounts[j].Count
		}
		return errCounts[i].Error < errCounts[j].Error
	})
	return errCounts
}

// Print writes the current stats to w as a table.
func (s *Stats) Print(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Statistic", "Value"})
	table.Append([]string{"Total Requests", fmt.Sprint(s.RequestCount)})
	table.Append([]string{"Average Latency", s.Average.String()})
	table.Append([]string{"Fastest Latency", s.Fastest.String()})
	table.Append([]string{"Slowest Latency", s.Slowest.String()})
	table.Append([]string{"Total QPS", fmt.Sprintf("%.1f", s.QPS)})
	for _, errCount := range s.Errors() {
		table.Append([]string{fmt.Sprintf("Error x%v", errCount.Count), errCount.Error})
	}
	table.Render()
}
