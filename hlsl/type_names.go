// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"strconv"
	"strings"

	"github.com/gogpu/cppsl/types"
)

// channelVector widens a scalar element to the float4/int4/uint4/bool4
// HLSL texture declarations are conventionally written against, leaving
// an already-vector element untouched. HLSL technically accepts
// Texture2D<float>, but every texture declared through this catalog
// (see intrinsics/texture.go) is specialized against the full 4-channel
// result, so the declared resource type matches what reads from it
// actually produce.
func channelVector(reg *types.Registry, elem types.Handle) types.Handle {
	e := reg.Lookup(elem)
	if e.Kind == types.KindVector {
		return elem
	}
	return reg.Vector(elem, 4)
}

var rayFlagTokens = []struct {
	flag types.RayQueryFlags
	name string
}{
	{types.RayFlagForceOpaque, "RAY_FLAG_FORCE_OPAQUE"},
	{types.RayFlagForceNonOpaque, "RAY_FLAG_FORCE_NON_OPAQUE"},
	{types.RayFlagAcceptFirstHitAndEndSearch, "RAY_FLAG_ACCEPT_FIRST_HIT_AND_END_SEARCH"},
	{types.RayFlagSkipClosestHitShader, "RAY_FLAG_SKIP_CLOSEST_HIT_SHADER"},
	{types.RayFlagCullBackFacingTriangles, "RAY_FLAG_CULL_BACK_FACING_TRIANGLES"},
	{types.RayFlagCullFrontFacingTriangles, "RAY_FLAG_CULL_FRONT_FACING_TRIANGLES"},
	{types.RayFlagCullOpaque, "RAY_FLAG_CULL_OPAQUE"},
	{types.RayFlagCullNonOpaque, "RAY_FLAG_CULL_NON_OPAQUE"},
	{types.RayFlagSkipTriangles, "RAY_FLAG_SKIP_TRIANGLES"},
	{types.RayFlagSkipProceduralPrimitives, "RAY_FLAG_SKIP_PROCEDURAL_PRIMITIVES"},
}

func rayFlagsSpelling(flags types.RayQueryFlags) string {
	if flags == types.RayFlagNone {
		return "RAY_FLAG_NONE"
	}
	var parts []string
	for _, t := range rayFlagTokens {
		if flags&t.flag != 0 {
			parts = append(parts, t.name)
		}
	}
	if len(parts) == 0 {
		return "RAY_FLAG_NONE"
	}
	return strings.Join(parts, " | ")
}

// typeName spells out h as a standalone type token. For an array type
// this is only the element part; a declaration site must use declarator
// instead to place the `[N]` after the variable name the way HLSL
// requires.
func typeName(reg *types.Registry, h types.Handle) string {
	e := reg.Lookup(h)
	switch e.Kind {
	case types.KindVoid, types.KindScalar, types.KindVector, types.KindMatrix, types.KindStruct:
		return e.Name

	case types.KindArray:
		return typeName(reg, e.Element)

	case types.KindConstantBuffer:
		return "ConstantBuffer<" + typeName(reg, e.Element) + ">"

	case types.KindStructuredBuffer:
		return e.Name + "<" + typeName(reg, e.Element) + ">"

	case types.KindByteBuffer:
		return e.Name

	case types.KindTexture2D, types.KindTexture3D:
		return e.Name + "<" + typeName(reg, channelVector(reg, e.Element)) + ">"

	case types.KindSampler:
		return "SamplerState"

	case types.KindAccel:
		return "RaytracingAccelerationStructure"

	case types.KindRayQuery:
		return "RayQuery<" + rayFlagsSpelling(e.RayQueryFlags) + ">"

	default:
		return "/* unknown type */"
	}
}

// declarator renders "<type> <name>" for h, appending a `[N]` array
// suffix after name rather than after the element type, matching
// HLSL's C-style array declarator syntax (`float values[4];`, not
// `float[4] values;`). An unbounded array renders as `Bindless<T> name`.
func declarator(reg *types.Registry, h types.Handle, name string) string {
	e := reg.Lookup(h)
	if e.Kind == types.KindArray {
		if e.ArrayFlags&types.ArrayUnbounded != 0 {
			return "Bindless<" + typeName(reg, e.Element) + "> " + name
		}
		suffix := "[" + strconv.FormatUint(uint64(e.Count), 10) + "]"
		return typeName(reg, e.Element) + " " + name + suffix
	}
	return typeName(reg, h) + " " + name
}

// isBindlessArray reports whether h is a zero-length resource array, the
// marker the binding allocator and NonUniformResourceIndex wrapping both
// key off of.
func isBindlessArray(reg *types.Registry, h types.Handle) bool {
	e := reg.Lookup(h)
	return e.Kind == types.KindArray && e.ArrayFlags&types.ArrayUnbounded != 0
}
