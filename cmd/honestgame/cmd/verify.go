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
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/honestcpu/honestgame/core/crypto/commitments"
	"github.com/honestcpu/honestgame/core/crypto/vrf"
	"github.com/honestcpu/honestgame/core/crypto/vrf/sr25519"
	"github.com/honestcpu/honestgame/core/seed"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Recompute a round's secret number from its public data",
	Long: `Verify checks the proof printed by a round against the prover's public
key and seed, and prints the secret number it commits to. With --secret the
recovered number must also match the one the game revealed.

  honestgame verify --pubkey <hex> --seed <hex> --proof <hex> [--secret n]`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := sr25519.NewVRFVerifierFromHex(viper.GetString("pubkey"))
		if err != nil {
			return fmt.Errorf("--pubkey: %v", err)
		}
		s, err := seed.FromHex(viper.GetString("seed"))
		if err != nil {
			return fmt.Errorf("--seed: %v", err)
		}
		proof, err := vrf.ProofFromHex(viper.GetString("proof"))
		if err != nil {
			return fmt.Errorf("--proof: %v", err)
		}

		secret, err := commitments.Verify(pk, s, proof)
		switch {
		case errors.Is(err, vrf.ErrMalformedProof):
			return fmt.Errorf("proof does not parse: %v", err)
		case err != nil:
			return fmt.Errorf("proof rejected: %v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Recovered secret number: %v\n", secret)

		// An empty secret means there is no claim to check.
		if v := viper.GetString("secret"); v != "" {
			claimed, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("--secret: %v", err)
			}
			if claimed != int(secret) {
				return fmt.Errorf("verification failed, %v != %v", claimed, secret)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Verification done, the cpu was honest\n")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().String("pubkey", "", "Hex encoded public key of the prover")
	verifyCmd.Flags().String("seed", "", "Hex encoded 32 byte seed of the round")
	verifyCmd.Flags().String("proof", "", "Hex encoded 96 byte proof of the round")
	verifyCmd.Flags().String("secret", "", "Secret number revealed by the game, checked if set")
	bindFlags(verifyCmd.Flags())
}
