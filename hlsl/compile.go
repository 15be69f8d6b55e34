// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/binding"
	"github.com/gogpu/cppsl/codegen"
	"github.com/gogpu/cppsl/diag"
)

// Compile renders arena's declarations as HLSL source text. Resource
// globals are run through a fresh binding.Table first so EmitGlobal can
// print each one's resolved register/space; opts is optional (nil
// selects DefaultOptions()).
func Compile(arena *ast.Arena, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	sink := opts.Diagnostics
	if sink == nil {
		sink = diag.NopSink{}
	}

	var resources []*ast.GlobalResourceDecl
	for _, d := range arena.Decls() {
		if r, ok := d.(*ast.GlobalResourceDecl); ok {
			resources = append(resources, r)
		}
	}

	table := binding.NewTable(arena.Types(), sink).WithDefaultSpace(opts.DefaultRegisterSpace)
	slots, err := table.Allocate(resources)
	if err != nil {
		return "", err
	}

	scan := scanArena(arena)
	backend := NewBackend(arena.Types(), opts, scan, slots)
	return codegen.EmitModule(backend, arena), nil
}
