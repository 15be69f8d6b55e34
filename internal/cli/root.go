// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package cli wires the cppslc command tree: cobra for the command/flag
// surface, viper layered underneath for .cppsl.yaml defaults, matching
// the config/flag split in nmakod-codecontext's internal/cli package.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "cppslc",
	Short: "CppSL demonstration compiler",
	Long: `cppslc builds one of a handful of built-in sample shader programs
through the CppSL AST factory API and compiles it to HLSL. There is no
source-text front end in this module (by design); cppslc exists to
exercise the AST, generics, intrinsic catalog, binding allocator and
HLSL backend end to end.`,
	SilenceUsage: true,
}

// Execute runs the command tree, returning the first error encountered.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .cppsl.yaml)")
	rootCmd.PersistentFlags().String("shader-model", "sm6.5", "target HLSL shader model")
	rootCmd.PersistentFlags().Uint32("register-space", 0, "default register space for unpinned resources")

	viper.BindPFlag("shader_model", rootCmd.PersistentFlags().Lookup("shader-model"))
	viper.BindPFlag("register_space", rootCmd.PersistentFlags().Lookup("register-space"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".cppsl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CPPSLC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			fmt.Fprintf(os.Stderr, "cppslc: reading config: %v\n", err)
		}
	}
}
