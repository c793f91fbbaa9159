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
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/honestcpu/honestgame/core/crypto/vrf/sr25519"
)

// keyInfo separates keys derived for this game from other uses of a secret.
const keyInfo = "honestgame sr25519 vrf key"

var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "honestgame",
	Short: "A guessing game whose computer player proves it never cheats",
	Long: `The honest guessing game picks a secret number with a verifiable
random function before you start guessing. After each round it publishes the
seed and a proof so that anyone with the public key can recompute the number
and check the computer did not change it.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.honestgame.yaml)")

	RootCmd.PersistentFlags().String("key", "", "Hex encoded 32 byte sr25519 mini secret for the prover")
	RootCmd.PersistentFlags().String("key-secret", "", "Passphrase to derive the prover key from. Ignored if --key is set")

	// glog registers its flags on the standard flag set.
	RootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		glog.Exitf("%v", err)
	}
}

// initConfig reads in config file and ENV variables if set.
// initConfig is run during a command's preRun().
func initConfig() {
	// Silences glog's "logging before flag.Parse" warning.
	if err := flag.CommandLine.Parse(nil); err != nil {
		glog.Exitf("%v", err)
	}
	viper.SetEnvPrefix("honestgame")
	viper.AutomaticEnv() // Read in environment variables that match.

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			glog.Exitf("Failed reading config file: %v: %v", viper.ConfigFileUsed(), err)
		}
	} else {
		viper.SetConfigName(".honestgame")
		viper.AddConfigPath("$HOME")
		if err := viper.ReadInConfig(); err == nil {
			glog.Infof("Using config file: %v", viper.ConfigFileUsed())
		}
	}
}

// bindFlags exposes a subcommand's local flags through viper.
func bindFlags(flags *pflag.FlagSet) {
	if err := viper.BindPFlags(flags); err != nil {
		glog.Exitf("%v", err)
	}
}

// proverKey returns the configured prover key, or a fresh one when none is
// configured.
func proverKey() (*sr25519.PrivateKey, error) {
	hexKey := viper.GetString("key")
	secret := viper.GetString("key-secret")

	switch {
	case hexKey != "":
		k, err := sr25519.NewVRFSignerFromHex(hexKey)
		if err != nil {
			return nil, fmt.Errorf("--key: %v", err)
		}
		return k, nil
	case secret != "":
		return sr25519.DeriveKey([]byte(secret), keyInfo)
	default:
		k, _, err := sr25519.GenerateKey(nil)
		return k, err
	}
}
