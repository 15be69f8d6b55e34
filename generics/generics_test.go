// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package generics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/diag"
	"github.com/gogpu/cppsl/types"
)

func TestTemplate_Specialize_ReturnFirstArgType(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	f3, _ := reg.GetType("float3")

	tmpl := &Template{
		Name:   "ABS",
		Params: []*Concept{IsScalarOrVector("arithmetic")},
		Return: ReturnFirstArgType,
	}

	arg := a.NewConstant(f3, 0)
	decl, err := tmpl.Specialize(reg, []ast.Expr{arg}, types.Invalid)
	require.NoError(t, err)

	sf, ok := decl.(*ast.SpecializedFunctionDecl)
	require.True(t, ok)
	require.Equal(t, f3, sf.Return)
}

func TestTemplate_Specialize_ArityMismatch(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	f, _ := reg.GetType("float")

	tmpl := &Template{Name: "CLAMP", Params: []*Concept{IsScalarOrVector("x"), IsScalarOrVector("x"), IsScalarOrVector("x")}, Return: ReturnFirstArgType}
	arg := a.NewConstant(f, 0)

	_, err := tmpl.Specialize(reg, []ast.Expr{arg}, types.Invalid)
	require.Error(t, err)
	var aerr *ast.Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, ast.ArityMismatch, aerr.Kind)
}

func TestTemplate_Specialize_ConceptMismatch(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	samplerT := reg.Sampler()

	tmpl := &Template{Name: "ABS", Params: []*Concept{IsScalarOrVector("arithmetic")}, Return: ReturnFirstArgType}
	arg := a.NewConstant(samplerT, 0)

	_, err := tmpl.Specialize(reg, []ast.Expr{arg}, types.Invalid)
	require.Error(t, err)
	var aerr *ast.Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, ast.ConceptMismatch, aerr.Kind)
}

func TestResolveBoolVariant(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	f3, _ := reg.GetType("float3")

	b := ResolveBoolVariant(reg, f3)
	require.Equal(t, types.KindVector, reg.Lookup(b).Kind)
	require.Equal(t, uint32(3), reg.Lookup(b).Count)
	require.Equal(t, types.ScalarBool, reg.Lookup(reg.Lookup(b).Element).Scalar)
}
