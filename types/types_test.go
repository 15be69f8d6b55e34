// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/cppsl/diag"
)

func TestNewRegistry_BootstrapsScalarsVectorsMatrices(t *testing.T) {
	r := NewRegistry(diag.NopSink{})

	f := r.Scalar(ScalarFloat)
	require.NotEqual(t, Invalid, f)
	require.Equal(t, "float", r.Lookup(f).Name)

	f4, ok := r.GetType("float4")
	require.True(t, ok)
	require.Equal(t, KindVector, r.Lookup(f4).Kind)
	require.Equal(t, uint32(4), r.Lookup(f4).Count)

	m4x4, ok := r.GetType("float4x4")
	require.True(t, ok)
	require.Equal(t, KindMatrix, r.Lookup(m4x4).Kind)
	require.Equal(t, uint32(4), r.Lookup(m4x4).Count)
}

func TestRegistry_VectorInterning(t *testing.T) {
	r := NewRegistry(diag.NopSink{})
	f := r.Scalar(ScalarFloat)

	a := r.Vector(f, 3)
	b := r.Vector(f, 3)
	require.Equal(t, a, b, "same (element,count) must intern to the same handle")

	c := r.Vector(f, 4)
	require.NotEqual(t, a, c)
}

func TestRegistry_MatrixIsSquareOnly(t *testing.T) {
	r := NewRegistry(diag.NopSink{})
	f := r.Scalar(ScalarFloat)

	m := r.Matrix(f, 3)
	require.Equal(t, "float3x3", r.Lookup(m).Name)
	require.Equal(t, uint32(3), r.Lookup(m).Count)
}

func TestRegistry_ReservedWordCollisionIsFatal(t *testing.T) {
	r := NewRegistry(diag.NopSink{})
	require.Panics(t, func() {
		_, _ = r.DeclareStructure("float", nil)
	})
}

func TestRegistry_DuplicateStructDeclarationIsFatal(t *testing.T) {
	r := NewRegistry(diag.NopSink{})
	_, err := r.DeclareStructure("Vertex", []Field{{Name: "pos", Type: r.Scalar(ScalarFloat)}})
	require.NoError(t, err)

	require.Panics(t, func() {
		_, _ = r.DeclareStructure("Vertex", nil)
	})
}

func TestRegistry_ArrayUnbounded(t *testing.T) {
	r := NewRegistry(diag.NopSink{})
	f := r.Scalar(ScalarFloat)
	bindless := r.Array(f, 0, ArrayUnbounded)
	require.Equal(t, "float[]", r.Lookup(bindless).Name)
}

func TestRegistry_BuiltinScalarsCarrySizeAndAlign(t *testing.T) {
	r := NewRegistry(diag.NopSink{})
	require.Equal(t, uint32(4), r.Lookup(r.Scalar(ScalarFloat)).Size)
	require.Equal(t, uint32(4), r.Lookup(r.Scalar(ScalarBool)).Size)
	require.Equal(t, uint32(8), r.Lookup(r.Scalar(ScalarInt64)).Size)
	require.Equal(t, uint32(2), r.Lookup(r.Scalar(ScalarHalf)).Align)
}

func TestRegistry_DeclareScalarInternsCustomSizeAndAlign(t *testing.T) {
	r := NewRegistry(diag.NopSink{})
	h, err := r.DeclareScalar("float16_t3_packed", 6, 2)
	require.NoError(t, err)

	e := r.Lookup(h)
	require.Equal(t, "float16_t3_packed", e.Name)
	require.Equal(t, uint32(6), e.Size)
	require.Equal(t, uint32(2), e.Align)
	require.Equal(t, ScalarCustom, e.Scalar)
}

func TestRegistry_DeclareScalarRejectsReservedWord(t *testing.T) {
	r := NewRegistry(diag.NopSink{})
	require.Panics(t, func() {
		_, _ = r.DeclareScalar("float", 4, 4)
	})
}

func TestRegistry_DeclareScalarRejectsDuplicate(t *testing.T) {
	r := NewRegistry(diag.NopSink{})
	_, err := r.DeclareScalar("custom_t", 4, 4)
	require.NoError(t, err)

	require.Panics(t, func() {
		_, _ = r.DeclareScalar("custom_t", 4, 4)
	})
}

func TestType_IsResource(t *testing.T) {
	r := NewRegistry(diag.NopSink{})
	sb := r.StructuredBuffer(r.Scalar(ScalarFloat), BufferReadOnly)
	require.True(t, r.Lookup(sb).IsResource())

	f4 := r.Vector(r.Scalar(ScalarFloat), 4)
	require.False(t, r.Lookup(f4).IsResource())
}

func TestSemanticTypeFromString(t *testing.T) {
	s, ok := SemanticTypeFromString("Position")
	require.True(t, ok)
	require.Equal(t, SemanticPosition, s)

	_, ok = SemanticTypeFromString("not_a_semantic")
	require.False(t, ok)
}
