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
	"fmt"

	"github.com/spf13/cobra"
)

var pubkeyCmd = &cobra.Command{
	Use:   "pubkey",
	Short: "Print the prover's public key",
	Long: `Print the public key for the configured --key or --key-secret so it can
be handed to verifiers ahead of a game.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := proverKey()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), k.PublicKey())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(pubkeyCmd)
}
