// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import "github.com/gogpu/cppsl/ast"

// Backend is implemented by every text-emitting target. The generator
// core drives the uniform parts of traversal (statement/block
// structure, module section ordering) and calls back into Backend for
// every point where a target's spelling differs: expression printing,
// declaration printing, and statement-attribute printing.
//
// Go's embedding does not give virtual dispatch the way the original
// implementation's visitor-subclass inheritance does, so "a backend
// overrides the parts it needs" is realized here as an interface a
// generic walker calls through, not as a base struct a backend embeds
// and shadows methods of (see DESIGN.md).
type Backend interface {
	// EmitExpr renders e as an inline expression fragment (no trailing
	// newline, no indentation of its own — the caller is mid-line).
	EmitExpr(e ast.Expr) string

	// EmitPreamble writes any fixed header/boilerplate text that
	// precedes every other module section.
	EmitPreamble(b *SourceBuilder)

	// EmitGlobal writes one global declaration (VarDecl or
	// GlobalResourceDecl).
	EmitGlobal(b *SourceBuilder, d ast.Decl)

	// DeclInline renders a local variable's "type name" text with no
	// trailing newline or semicolon, for both a plain declaration
	// statement and a for-loop initializer clause.
	DeclInline(d *ast.VarDecl) string

	// EmitStructDecl writes one struct type's full definition.
	EmitStructDecl(b *SourceBuilder, d *ast.StructDecl)

	// EmitFunction writes one free function, including its signature,
	// any entry-point stage header, and its body (via EmitBlock).
	EmitFunction(b *SourceBuilder, d *ast.FunctionDecl)

	// EmitMethod writes one method definition.
	EmitMethod(b *SourceBuilder, d *ast.MethodDecl)

	// EmitStmtAttrs writes any statement attributes ([loop], [branch],
	// ...) that must appear on their own line immediately before the
	// statement they control. Called with nil/empty for statements that
	// carry none.
	EmitStmtAttrs(b *SourceBuilder, attrs []ast.Attr)
}
