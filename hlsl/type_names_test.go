// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/cppsl/diag"
	"github.com/gogpu/cppsl/types"
)

func TestTypeName_VectorAndMatrix(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	f3, _ := reg.GetType("float3")
	f4x4, _ := reg.GetType("float4x4")

	require.Equal(t, "float3", typeName(reg, f3))
	require.Equal(t, "float4x4", typeName(reg, f4x4))
}

func TestTypeName_TextureProjectsToFourChannels(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	tex := reg.Texture2D(reg.Scalar(types.ScalarFloat), types.TextureReadOnly)
	require.Equal(t, "Texture2D<float4>", typeName(reg, tex))

	rwTex := reg.Texture2D(reg.Scalar(types.ScalarUInt), types.TextureReadWrite)
	require.Equal(t, "RWTexture2D<uint4>", typeName(reg, rwTex))
}

func TestTypeName_ConstantBufferAndStructuredBuffer(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	structT, err := reg.DeclareStructure("Scene", []types.Field{{Name: "viewProj", Type: mustType(reg, "float4x4")}})
	require.NoError(t, err)

	cb := reg.ConstantBuffer(structT)
	require.Equal(t, "ConstantBuffer<Scene>", typeName(reg, cb))

	sb := reg.StructuredBuffer(reg.Scalar(types.ScalarFloat), types.BufferReadWrite)
	require.Equal(t, "RWStructuredBuffer<float>", typeName(reg, sb))
}

func TestDeclarator_ArraySuffixFollowsName(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	arr := reg.Array(reg.Scalar(types.ScalarFloat), 4, types.ArrayNone)
	require.Equal(t, "float weights[4]", declarator(reg, arr, "weights"))

	bindless := reg.Array(reg.Texture2D(reg.Scalar(types.ScalarFloat), types.TextureReadOnly), 0, types.ArrayUnbounded)
	require.True(t, isBindlessArray(reg, bindless))
	require.Equal(t, "Bindless<Texture2D<float4>> textures", declarator(reg, bindless, "textures"))
}

func TestRayFlagsSpelling(t *testing.T) {
	require.Equal(t, "RAY_FLAG_NONE", rayFlagsSpelling(types.RayFlagNone))
	require.Equal(t, "RAY_FLAG_FORCE_OPAQUE", rayFlagsSpelling(types.RayFlagForceOpaque))

	combo := types.RayFlagForceOpaque | types.RayFlagCullBackFacingTriangles
	require.Contains(t, rayFlagsSpelling(combo), "RAY_FLAG_FORCE_OPAQUE")
	require.Contains(t, rayFlagsSpelling(combo), "RAY_FLAG_CULL_BACK_FACING_TRIANGLES")
}

func mustType(reg *types.Registry, name string) types.Handle {
	h, _ := reg.GetType(name)
	return h
}
