// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package binding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/diag"
	"github.com/gogpu/cppsl/types"
)

func u32(v uint32) *uint32 { return &v }

func TestTable_RegularResourcesShareOneSpace(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	cbT := reg.ConstantBuffer(reg.Scalar(types.ScalarFloat))
	texT := reg.Texture2D(reg.Scalar(types.ScalarFloat), types.TextureReadOnly)

	cb := a.NewGlobalResource("Scene", cbT)
	tex := a.NewGlobalResource("Albedo", texT)

	tbl := NewTable(reg, diag.NopSink{})
	slots, err := tbl.Allocate([]*ast.GlobalResourceDecl{cb, tex})
	require.NoError(t, err)
	require.Equal(t, slots[cb].Space, slots[tex].Space)
	require.Equal(t, RegisterB, slots[cb].Type)
	require.Equal(t, RegisterT, slots[tex].Type)
}

func TestTable_BindlessGetsExclusiveSpace(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	cbT := reg.ConstantBuffer(reg.Scalar(types.ScalarFloat))
	bindlessArr := reg.Array(reg.Texture2D(reg.Scalar(types.ScalarFloat), types.TextureReadOnly), 0, types.ArrayUnbounded)

	cb := a.NewGlobalResource("Scene", cbT)
	arr := a.NewGlobalResource("Textures", bindlessArr, &ast.BindlessAttr{})

	tbl := NewTable(reg, diag.NopSink{})
	slots, err := tbl.Allocate([]*ast.GlobalResourceDecl{cb, arr})
	require.NoError(t, err)
	require.NotEqual(t, slots[cb].Space, slots[arr].Space)
}

func TestTable_PushConstantGetsExclusiveSpace(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	cbT := reg.ConstantBuffer(reg.Scalar(types.ScalarFloat))

	pc := a.NewGlobalResource("PushConstants", cbT, &ast.PushConstantAttr{})
	other := a.NewGlobalResource("Scene", cbT)

	tbl := NewTable(reg, diag.NopSink{})
	slots, err := tbl.Allocate([]*ast.GlobalResourceDecl{pc, other})
	require.NoError(t, err)
	require.NotEqual(t, slots[pc].Space, slots[other].Space)
}

func TestTable_PartialConstraintAllocatesWithDiagnostic(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	cbT := reg.ConstantBuffer(reg.Scalar(types.ScalarFloat))

	first := a.NewGlobalResource("A", cbT, &ast.BindingAttr{Register: u32(0)})
	second := a.NewGlobalResource("B", cbT, &ast.BindingAttr{Register: u32(0)})

	tbl := NewTable(reg, diag.NopSink{})
	slots, err := tbl.Allocate([]*ast.GlobalResourceDecl{first, second})
	require.NoError(t, err)
	// Both allocate at register 0 in the same space - a real conflict a
	// diagnostic is emitted for, not re-homed to a different space.
	require.Equal(t, uint32(0), slots[first].Register)
	require.Equal(t, uint32(0), slots[second].Register)
	require.Equal(t, slots[first].Space, slots[second].Space)
}

func TestTable_UnconstrainedResourceYieldsToLaterExplicitRegisterInSameSpace(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	cbT := reg.ConstantBuffer(reg.Scalar(types.ScalarFloat))

	// "A" only pins the space and would, absent pre-reservation, grab
	// register 0 by decl order - the exact register "B" pins explicitly
	// in the same space.
	first := a.NewGlobalResource("A", cbT, &ast.BindingAttr{Space: u32(5)})
	second := a.NewGlobalResource("B", cbT, &ast.BindingAttr{Space: u32(5), Register: u32(0)})

	tbl := NewTable(reg, diag.NopSink{})
	slots, err := tbl.Allocate([]*ast.GlobalResourceDecl{first, second})
	require.NoError(t, err)
	require.Equal(t, uint32(0), slots[second].Register)
	require.NotEqual(t, slots[first].Register, slots[second].Register)
}

func TestTable_FixedSpaceHonored(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	cbT := reg.ConstantBuffer(reg.Scalar(types.ScalarFloat))

	d := a.NewGlobalResource("A", cbT, &ast.BindingAttr{Space: u32(5), Register: u32(2)})

	tbl := NewTable(reg, diag.NopSink{})
	slots, err := tbl.Allocate([]*ast.GlobalResourceDecl{d})
	require.NoError(t, err)
	require.Equal(t, uint32(5), slots[d].Space)
	require.Equal(t, uint32(2), slots[d].Register)
}
