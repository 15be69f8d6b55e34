// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/diag"
	"github.com/gogpu/cppsl/types"
)

// fakeBackend is a minimal Backend used to exercise the shared walker
// without pulling in the full hlsl package.
type fakeBackend struct {
	reg *types.Registry
}

func (f *fakeBackend) EmitExpr(e ast.Expr) string {
	switch ex := e.(type) {
	case *ast.ConstantExpr:
		return fmt.Sprintf("%d", ex.Bits)
	case *ast.DeclRefExpr:
		switch d := ex.Decl.(type) {
		case *ast.VarDecl:
			return d.Name
		case *ast.ParamDecl:
			return d.Name
		}
	case *ast.BinaryExpr:
		return f.EmitExpr(ex.Left) + " + " + f.EmitExpr(ex.Right)
	}
	return "?"
}

func (f *fakeBackend) EmitPreamble(b *SourceBuilder) { b.WriteLine("// preamble") }
func (f *fakeBackend) EmitGlobal(b *SourceBuilder, d ast.Decl) {
	if vd, ok := d.(*ast.VarDecl); ok {
		b.WriteLine("global %s;", vd.Name)
	}
}
func (f *fakeBackend) DeclInline(d *ast.VarDecl) string { return "var " + d.Name }
func (f *fakeBackend) EmitStructDecl(b *SourceBuilder, d *ast.StructDecl) {
	b.WriteLine("struct %d", d.Type)
}
func (f *fakeBackend) EmitFunction(b *SourceBuilder, d *ast.FunctionDecl) {
	b.WriteLine("function %s()", d.Name)
	EmitBlock(b, f, d.Body)
}
func (f *fakeBackend) EmitMethod(b *SourceBuilder, d *ast.MethodDecl) {}
func (f *fakeBackend) EmitStmtAttrs(b *SourceBuilder, attrs []ast.Attr) {}

func TestEmitModule_Ordering(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	f := reg.Scalar(types.ScalarFloat)

	a.NewVar("g", f, ast.QualConst, nil, true)
	body := a.NewBlock(a.NewReturn(a.NewConstant(f, 1)))
	a.NewFunction("main", nil, f, body)

	out := EmitModule(&fakeBackend{reg: reg}, a)
	require.Contains(t, out, "// preamble")
	require.Contains(t, out, "global g;")
	require.Contains(t, out, "function main()")
	require.Contains(t, out, "return 1;")

	preambleIdx := indexOf(out, "// preamble")
	globalIdx := indexOf(out, "global g;")
	funcIdx := indexOf(out, "function main()")
	require.True(t, preambleIdx < globalIdx)
	require.True(t, globalIdx < funcIdx)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
