// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/cppsl/hlsl"
)

var emitOutput string

var emitCmd = &cobra.Command{
	Use:   "emit <sample>",
	Short: "Compile a sample program to HLSL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arena, err := buildSample(args[0])
		if err != nil {
			return err
		}

		opts, err := resolveOptions()
		if err != nil {
			return err
		}

		source, err := hlsl.Compile(arena, opts)
		if err != nil {
			return fmt.Errorf("compile: %w", err)
		}

		if emitOutput == "" {
			_, err = fmt.Print(source)
			return err
		}
		if err := os.WriteFile(emitOutput, []byte(source), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", emitOutput, err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", emitOutput, len(source))
		return nil
	},
}

func init() {
	emitCmd.Flags().StringVarP(&emitOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(emitCmd)
}
