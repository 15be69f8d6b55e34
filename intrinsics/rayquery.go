// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package intrinsics

import (
	"github.com/gogpu/cppsl/generics"
	"github.com/gogpu/cppsl/types"
)

func (c *Catalog) declareRayQuery() {
	rq := func() *generics.Concept {
		return generics.WithQualifier(generics.IsRayQuery("rayquery"), generics.NotConst)
	}
	accel := func() *generics.Concept { return generics.IsAccel("accel") }
	any := func() *generics.Concept { return generics.IsAny("value") }

	voidRet := generics.ReturnFixedType(c.reg.Void())
	boolRet := func(reg *types.Registry, _ []types.Handle) types.Handle { return reg.Scalar(types.ScalarBool) }
	uintRet := func(reg *types.Registry, _ []types.Handle) types.Handle { return reg.Scalar(types.ScalarUInt) }
	floatRet := func(reg *types.Registry, _ []types.Handle) types.Handle { return reg.Scalar(types.ScalarFloat) }
	// The registry's Matrix is always square (see DESIGN.md); the
	// object-to-world transform HLSL spells float3x4 is represented
	// here as an array of three float4 rows; the HLSL backend spells
	// that type as a float4 array, not as float3x4.
	float3x4Ret := func(reg *types.Registry, _ []types.Handle) types.Handle {
		f4, _ := reg.GetType("float4")
		return reg.Array(f4, 3, types.ArrayNone)
	}

	c.add("RAY_QUERY_TRACE_INLINE", []*generics.Concept{rq(), accel(), any(), any()}, voidRet)
	c.add("RAY_QUERY_PROCEED", []*generics.Concept{rq()}, boolRet)
	c.add("RAY_QUERY_ABORT", []*generics.Concept{rq()}, voidRet)
	c.add("RAY_QUERY_COMMITTED_STATUS", []*generics.Concept{rq()}, uintRet)
	c.add("RAY_QUERY_CANDIDATE_TYPE", []*generics.Concept{rq()}, uintRet)
	c.add("RAY_QUERY_COMMIT_NON_OPAQUE_TRIANGLE_HIT", []*generics.Concept{rq()}, voidRet)
	c.add("RAY_QUERY_COMMIT_PROCEDURAL_PRIMITIVE_HIT", []*generics.Concept{rq(), any()}, voidRet)
	c.add("RAY_QUERY_CANDIDATE_TRIANGLE_RAY_T", []*generics.Concept{rq()}, floatRet)
	c.add("RAY_QUERY_COMMITTED_RAY_T", []*generics.Concept{rq()}, floatRet)
	c.add("RAY_QUERY_CANDIDATE_INSTANCE_INDEX", []*generics.Concept{rq()}, uintRet)
	c.add("RAY_QUERY_COMMITTED_INSTANCE_INDEX", []*generics.Concept{rq()}, uintRet)
	c.add("RAY_QUERY_CANDIDATE_PRIMITIVE_INDEX", []*generics.Concept{rq()}, uintRet)
	c.add("RAY_QUERY_COMMITTED_PRIMITIVE_INDEX", []*generics.Concept{rq()}, uintRet)
	c.add("RAY_QUERY_CANDIDATE_OBJECT_TO_WORLD_3X4", []*generics.Concept{rq()}, float3x4Ret)
	c.add("RAY_QUERY_COMMITTED_OBJECT_TO_WORLD_3X4", []*generics.Concept{rq()}, float3x4Ret)
}
