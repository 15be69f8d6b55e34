// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import "github.com/gogpu/cppsl/ast"

// EmitModule renders every declaration owned by arena in the fixed
// section order every backend must follow: preamble, then globals, then
// struct type declarations, then functions and methods — each section
// in declaration order within itself.
func EmitModule(backend Backend, arena *ast.Arena) string {
	b := NewSourceBuilder()
	backend.EmitPreamble(b)

	decls := arena.Decls()

	for _, d := range decls {
		switch d.(type) {
		case *ast.VarDecl, *ast.GlobalResourceDecl:
			backend.EmitGlobal(b, d)
		}
	}

	for _, d := range decls {
		if sd, ok := d.(*ast.StructDecl); ok {
			backend.EmitStructDecl(b, sd)
		}
	}

	for _, d := range decls {
		switch fd := d.(type) {
		case *ast.FunctionDecl:
			backend.EmitFunction(b, fd)
		case *ast.MethodDecl:
			backend.EmitMethod(b, fd)
		}
	}

	return b.String()
}
