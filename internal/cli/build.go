// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/binding"
	"github.com/gogpu/cppsl/diag"
)

var buildCmd = &cobra.Command{
	Use:   "build <sample>",
	Short: "Build and validate a sample program without emitting HLSL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arena, err := buildSample(args[0])
		if err != nil {
			return err
		}

		var resources []*ast.GlobalResourceDecl
		funcs, methods := 0, 0
		for _, d := range arena.Decls() {
			switch d := d.(type) {
			case *ast.GlobalResourceDecl:
				resources = append(resources, d)
			case *ast.FunctionDecl:
				funcs++
			case *ast.MethodDecl:
				methods++
			}
		}

		opts, err := resolveOptions()
		if err != nil {
			return err
		}
		table := binding.NewTable(arena.Types(), diag.NopSink{}).WithDefaultSpace(opts.DefaultRegisterSpace)
		slots, err := table.Allocate(resources)
		if err != nil {
			return fmt.Errorf("binding allocation: %w", err)
		}

		fmt.Printf("ok: %d resources bound, %d functions, %d methods\n", len(slots), funcs, methods)
		for _, r := range resources {
			slot := slots[r]
			fmt.Printf("  %-16s %s%d, space%d\n", r.Name, slot.Type, slot.Register, slot.Space)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
