// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/diag"
	"github.com/gogpu/cppsl/types"
)

func newTestBackend(reg *types.Registry) *Backend {
	return NewBackend(reg, DefaultOptions(), &moduleScan{ctorTypes: map[types.Handle]bool{}}, nil)
}

func TestEmitExpr_MatrixVectorMultiplyRewritesToMul(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	f4x4, _ := reg.GetType("float4x4")
	f4, _ := reg.GetType("float4")

	m := a.NewVar("m", f4x4, ast.QualIn, nil, false)
	v := a.NewVar("v", f4, ast.QualIn, nil, false)
	bin := a.NewBinary(ast.BinaryMul, a.NewDeclRef(m, f4x4), a.NewDeclRef(v, f4), f4)

	b := newTestBackend(reg)
	require.Equal(t, "mul(m, v)", b.EmitExpr(bin))
}

func TestEmitExpr_MatrixCompoundMultiplyRewritesToMul(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	f4x4, _ := reg.GetType("float4x4")

	r := a.NewVar("r", f4x4, ast.QualIn, nil, false)
	m := a.NewVar("m", f4x4, ast.QualIn, nil, false)
	bin := a.NewBinary(ast.BinaryMulAssign, a.NewDeclRef(r, f4x4), a.NewDeclRef(m, f4x4), f4x4)

	b := newTestBackend(reg)
	require.Equal(t, "r = mul(r, m)", b.EmitExpr(bin))
}

func TestEmitExpr_PlainMultiplyStaysInfix(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	f, _ := reg.GetType("float")

	x := a.NewVar("x", f, ast.QualIn, nil, false)
	y := a.NewVar("y", f, ast.QualIn, nil, false)
	bin := a.NewBinary(ast.BinaryMul, a.NewDeclRef(x, f), a.NewDeclRef(y, f), f)

	b := newTestBackend(reg)
	require.Equal(t, "(x * y)", b.EmitExpr(bin))
}

func TestEmitExpr_SwizzleSelectsComponentLetters(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	f3, _ := reg.GetType("float3")
	f2, _ := reg.GetType("float2")

	v := a.NewVar("v", f3, ast.QualIn, nil, false)
	sw := a.NewSwizzle(a.NewDeclRef(v, f3), []uint8{0, 2}, f2)

	b := newTestBackend(reg)
	require.Equal(t, "v.xz", b.EmitExpr(sw))
}

func TestEmitExpr_BindlessAccessWrapsNonUniformResourceIndex(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	texT := reg.Texture2D(reg.Scalar(types.ScalarFloat), types.TextureReadOnly)
	arrT := reg.Array(texT, 0, types.ArrayUnbounded)
	f, _ := reg.GetType("float")

	arr := a.NewVar("g_textures", arrT, ast.QualIn, nil, true)
	idx := a.NewVar("idx", reg.Scalar(types.ScalarUInt), ast.QualIn, nil, false)
	access := a.NewAccess(a.NewDeclRef(arr, arrT), a.NewDeclRef(idx, reg.Scalar(types.ScalarUInt)), texT, true)
	_ = f

	b := newTestBackend(reg)
	require.Equal(t, "g_textures[NonUniformResourceIndex(idx)]", b.EmitExpr(access))
}

func TestEmitExpr_BufferReadIndexesDirectly(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	sbT := reg.StructuredBuffer(reg.Scalar(types.ScalarFloat), types.BufferReadOnly)
	buf := a.NewVar("g_data", sbT, ast.QualIn, nil, true)
	idx := a.NewConstant(reg.Scalar(types.ScalarUInt), 3)

	fn := &ast.SpecializedFunctionDecl{FunctionDecl: &ast.FunctionDecl{Name: "BUFFER_READ"}}
	call := a.NewCall(fn, []ast.Expr{a.NewDeclRef(buf, sbT), idx}, reg.Scalar(types.ScalarFloat))

	b := newTestBackend(reg)
	require.Equal(t, "g_data[3u]", b.EmitExpr(call))
}

func TestEmitExpr_BitcastToFloatUsesAsfloat(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	u := a.NewVar("bits", reg.Scalar(types.ScalarUInt), ast.QualIn, nil, false)
	cast := a.NewCast(ast.CastBitwise, a.NewDeclRef(u, reg.Scalar(types.ScalarUInt)), reg.Scalar(types.ScalarFloat))

	b := newTestBackend(reg)
	require.Equal(t, "asfloat(bits)", b.EmitExpr(cast))
}

func TestEmitExpr_ConstructDesugarsToStaticNew(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	f3, _ := reg.GetType("float3")
	f, _ := reg.GetType("float")

	zero := a.NewConstant(f, 0)
	ctor := a.NewConstruct(f3, []ast.Expr{zero, zero, zero})

	b := newTestBackend(reg)
	require.Equal(t, "float3::New(0f, 0f, 0f)", b.EmitExpr(ctor))
}

func TestEmitExpr_ConstructBroadcastsLoneScalarToEveryComponent(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	f3, _ := reg.GetType("float3")
	f, _ := reg.GetType("float")

	one := a.NewConstant(f, uint64(math.Float32bits(1)))
	ctor := a.NewConstruct(f3, []ast.Expr{one})

	b := newTestBackend(reg)
	require.Equal(t, "float3::New(1f, 1f, 1f)", b.EmitExpr(ctor))
}

func TestEmitExpr_ConstructWithNoArgsZeroFills(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	f4, _ := reg.GetType("float4")

	ctor := a.NewConstruct(f4, nil)

	b := newTestBackend(reg)
	require.Equal(t, "float4::New(0.0f, 0.0f, 0.0f, 0.0f)", b.EmitExpr(ctor))
}

func TestEmitExpr_ConstructArrayDesugarsToMakeArrayHelper(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	f, _ := reg.GetType("float")
	arrT := reg.Array(f, 3, types.ArrayNone)

	zero := a.NewConstant(f, 0)
	one := a.NewConstant(f, uint64(math.Float32bits(1)))
	two := a.NewConstant(f, uint64(math.Float32bits(2)))
	ctor := a.NewConstruct(arrT, []ast.Expr{zero, one, two})

	b := newTestBackend(reg)
	require.Equal(t, "make_array3<float, 3>(0f, 1f, 2f)", b.EmitExpr(ctor))
}
