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
	"os"
	"os/signal"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/honestcpu/honestgame/cmd/serverutil"
	"github.com/honestcpu/honestgame/core/game"
	"github.com/honestcpu/honestgame/core/seed"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the guessing game on the terminal",
	Long: `Play rounds of the guessing game. Each round prints the public key,
the seed and the proof before the first guess, and verifies the proof once the
number is found. Ctrl+C stops after the guess being typed; press it twice to
quit at once.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt)
		// The first interrupt ends the game once the pending guess is
		// read. A second one exits immediately.
		go func() {
			<-sigs
			cancel()
			<-sigs
			glog.Exitf("Interrupted")
		}()

		key, err := proverKey()
		if err != nil {
			glog.Exitf("Could not load prover key: %v", err)
		}

		if addr := viper.GetString("metrics-addr"); addr != "" {
			go func() {
				if err := serverutil.ServeHTTPMetrics(ctx, addr); err != nil {
					glog.Errorf("ServeHTTPMetrics(%v): %v", addr, err)
				}
			}()
		}

		g := game.New(key, seed.NewRandom(nil), os.Stdin, os.Stdout, game.Options{
			Rounds: viper.GetInt("rounds"),
			Color:  !viper.GetBool("no-color"),
			Debug:  viper.GetBool("debug"),
		})
		// Entropy and signing failures leave no safe way to continue.
		if err := g.Play(ctx); err != nil && err != context.Canceled {
			glog.Exitf("Game aborted: %v", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Int("rounds", 0, "Number of rounds to play, 0 plays until input ends")
	playCmd.Flags().Bool("no-color", false, "Disable colored output")
	playCmd.Flags().Bool("debug", false, "Print the secret number as soon as it is committed")
	playCmd.Flags().String("metrics-addr", "", "The ip:port to publish metrics on, empty disables")
	bindFlags(playCmd.Flags())
}
