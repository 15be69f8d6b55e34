// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package intrinsics

import (
	"github.com/gogpu/cppsl/generics"
	"github.com/gogpu/cppsl/types"
)

func (c *Catalog) declareWaveAndQuad() {
	val := func() *generics.Concept { return generics.IsAny("value") }
	boolV := func() *generics.Concept { return generics.IsAny("condition") }
	intV := func() *generics.Concept { return generics.IsIntegerFamily("lane-index") }

	uintRet := func(reg *types.Registry, _ []types.Handle) types.Handle { return reg.Scalar(types.ScalarUInt) }
	boolRet := func(reg *types.Registry, _ []types.Handle) types.Handle { return reg.Scalar(types.ScalarBool) }

	c.add("WaveGetLaneIndex", nil, uintRet)
	c.add("WaveGetLaneCount", nil, uintRet)
	c.add("WaveIsFirstLane", nil, boolRet)

	c.add("WaveActiveAllEqual", []*generics.Concept{val()}, boolRet)
	c.add("WaveActiveAllTrue", []*generics.Concept{boolV()}, boolRet)
	c.add("WaveActiveAnyTrue", []*generics.Concept{boolV()}, boolRet)
	c.add("WaveActiveBallot", []*generics.Concept{boolV()}, func(reg *types.Registry, _ []types.Handle) types.Handle {
		return reg.Vector(reg.Scalar(types.ScalarUInt), 4)
	})
	c.add("WaveActiveCountBits", []*generics.Concept{boolV()}, uintRet)

	for _, name := range []string{"WaveActiveSum", "WaveActiveProduct", "WaveActiveMin", "WaveActiveMax",
		"WaveActiveBitAnd", "WaveActiveBitOr", "WaveActiveBitXor",
		"WavePrefixSum", "WavePrefixProduct", "WaveReadLaneFirst"} {
		c.add(name, []*generics.Concept{val()}, generics.ReturnFirstArgType)
	}
	c.add("WavePrefixCountBits", []*generics.Concept{boolV()}, uintRet)
	c.add("WaveReadLaneAt", []*generics.Concept{val(), intV()}, generics.ReturnFirstArgType)

	c.add("QuadReadAcrossX", []*generics.Concept{val()}, generics.ReturnFirstArgType)
	c.add("QuadReadAcrossY", []*generics.Concept{val()}, generics.ReturnFirstArgType)
	c.add("QuadReadAcrossDiagonal", []*generics.Concept{val()}, generics.ReturnFirstArgType)
	c.add("QuadReadLaneAt", []*generics.Concept{val(), intV()}, generics.ReturnFirstArgType)
}
