// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/cppsl/internal/demo"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in sample programs",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range demo.Samples {
			fmt.Printf("%-8s %s\n", s.Name, s.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
