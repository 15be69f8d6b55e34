// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package intrinsics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/diag"
	"github.com/gogpu/cppsl/types"
)

func TestNew_RegistersAtLeast85Intrinsics(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	cat := New(reg, diag.NopSink{})
	require.GreaterOrEqual(t, cat.Count(), 85)
}

func TestCatalog_Specialize_Dot(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	cat := New(reg, diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})

	f3, _ := reg.GetType("float3")
	lhs := a.NewConstant(f3, 0)
	rhs := a.NewConstant(f3, 0)

	decl, err := cat.Specialize("DOT", []ast.Expr{lhs, rhs})
	require.NoError(t, err)

	sf := decl.(*ast.SpecializedFunctionDecl)
	require.Equal(t, reg.Scalar(types.ScalarFloat), sf.Return)
}

func TestCatalog_Specialize_Sample2D(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	cat := New(reg, diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})

	f4, _ := reg.GetType("float4")
	texT := reg.Texture2D(f4, types.TextureReadOnly)
	samplerT := reg.Sampler()
	f2, _ := reg.GetType("float2")

	tex := a.NewConstant(texT, 0)
	sampler := a.NewConstant(samplerT, 0)
	uv := a.NewConstant(f2, 0)

	decl, err := cat.Specialize("SAMPLE2D", []ast.Expr{tex, sampler, uv})
	require.NoError(t, err)
	sf := decl.(*ast.SpecializedFunctionDecl)
	require.Equal(t, f4, sf.Return)
}

func TestCatalog_Specialize_UnknownIntrinsic(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	cat := New(reg, diag.NopSink{})

	_, err := cat.Specialize("NOT_REAL", nil)
	require.Error(t, err)
	var aerr *ast.Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, ast.UnknownNamedType, aerr.Kind)
}
