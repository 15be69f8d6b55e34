// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print cppslc's version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cppslc version %s\n", moduleVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// moduleVersion returns the module version from build info, falling
// back to "dev" for a locally built binary.
func moduleVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "dev"
}
