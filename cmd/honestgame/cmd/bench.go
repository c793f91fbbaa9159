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

package cmd

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/honestcpu/honestgame/core/bench"
	"github.com/honestcpu/honestgame/core/seed"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure commit and verify throughput",
	Long: `Bench commits to and verifies many fresh seeds in parallel and prints
latency and throughput statistics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := proverKey()
		if err != nil {
			return err
		}
		c := bench.Config{
			Workers:  viper.GetInt("workers"),
			Count:    viper.GetInt("count"),
			QPS:      viper.GetInt("qps"),
			Duration: viper.GetDuration("duration"),
		}
		stats, err := bench.New(key, seed.NewRandom(nil)).Run(context.Background(), c)
		if err != nil {
			return err
		}
		stats.Print(cmd.OutOrStdout())
		if stats.ErrorCount > 0 {
			glog.Errorf("Bench saw %v failed round trips", stats.ErrorCount)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(benchCmd)

	benchCmd.Flags().Int("workers", 8, "Number of concurrent workers")
	benchCmd.Flags().Int("count", 1000, "Number of commit and verify round trips")
	benchCmd.Flags().Int("qps", 0, "Maximum round trips started per second, 0 is unlimited")
	benchCmd.Flags().Duration("duration", 5*time.Minute, "Give up after this long")
	bindFlags(benchCmd.Flags())
}
