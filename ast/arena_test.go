// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/cppsl/diag"
	"github.com/gogpu/cppsl/types"
)

func newTestArena(t *testing.T) (*Arena, *types.Registry) {
	t.Helper()
	reg := types.NewRegistry(diag.NopSink{})
	return NewArena(reg, diag.NopSink{}), reg
}

func TestArena_NewVar_NullTypeIsFatal(t *testing.T) {
	a, _ := newTestArena(t)
	require.Panics(t, func() {
		a.NewVar("x", types.Invalid, QualNone, nil, false)
	})
}

func TestArena_DuplicateNameIsFatal(t *testing.T) {
	a, reg := newTestArena(t)
	f := reg.Scalar(types.ScalarFloat)
	a.NewVar("x", f, QualNone, nil, true)
	require.Panics(t, func() {
		a.NewFunction("x", nil, reg.Void(), nil)
	})
}

func TestArena_DeclsAccumulateInOrder(t *testing.T) {
	a, reg := newTestArena(t)
	f := reg.Scalar(types.ScalarFloat)
	v1 := a.NewVar("a", f, QualConst, nil, true)
	v2 := a.NewVar("b", f, QualConst, nil, true)

	decls := a.Decls()
	require.Len(t, decls, 2)
	require.Same(t, v1, decls[0])
	require.Same(t, v2, decls[1])
}

func TestDatabase_SharesDeclsAcrossArenas(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	db := NewDatabase(reg, diag.NopSink{})
	a1 := db.NewArena()
	a2 := db.NewArena()

	f := reg.Scalar(types.ScalarFloat)
	a1.NewVar("a", f, QualConst, nil, true)
	a2.NewVar("b", f, QualConst, nil, true)

	require.Len(t, db.Decls(), 2)
	require.Len(t, db.Arenas(), 2)
}

func TestExpr_IsAlsoStmt(t *testing.T) {
	a, reg := newTestArena(t)
	f := reg.Scalar(types.ScalarFloat)
	c := a.NewConstant(f, 0)

	var s Stmt = c
	require.NotNil(t, s)

	block := a.NewBlock(c)
	require.Len(t, block.Stmts, 1)
}

func TestArena_NewVar_InoutQualifierIsFatal(t *testing.T) {
	a, reg := newTestArena(t)
	f := reg.Scalar(types.ScalarFloat)
	require.Panics(t, func() {
		a.NewVar("x", f, QualInOut, nil, false)
	})
}

func TestArena_NewParam_InoutOnResourceIsFatal(t *testing.T) {
	a, reg := newTestArena(t)
	sb := reg.StructuredBuffer(reg.Scalar(types.ScalarFloat), types.BufferReadWrite)
	require.Panics(t, func() {
		a.NewParam("buf", sb, QualInOut)
	})
}

func TestArena_NewParam_InoutOnPlainValueIsAllowed(t *testing.T) {
	a, reg := newTestArena(t)
	f := reg.Scalar(types.ScalarFloat)
	p := a.NewParam("x", f, QualInOut)
	require.Equal(t, QualInOut, p.Qualifier)
}

func TestArena_SwizzleRejectsOutOfRangeComponentCount(t *testing.T) {
	a, reg := newTestArena(t)
	f4, _ := reg.GetType("float4")
	base := a.NewConstant(f4, 0)

	require.Panics(t, func() {
		a.NewSwizzle(base, []uint8{0, 1, 2, 3, 0}, f4)
	})
}
