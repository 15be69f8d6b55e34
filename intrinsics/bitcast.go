// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package intrinsics

import (
	"github.com/gogpu/cppsl/generics"
	"github.com/gogpu/cppsl/types"
)

// declareBitCast registers the bit_cast<T> family referenced by
// ast.CastExpr{Kind: ast.CastBitwise}. Supplemented from the original
// implementation's bit-cast preamble, which is only emitted by the HLSL
// backend when one of these is actually called (see hlsl's
// moduleScan.usesBitcast).
func (c *Catalog) declareBitCast() {
	bits32 := func() *generics.Concept { return generics.IsScalarOrVector("32-bit-operand") }

	c.add("BITCAST_TO_FLOAT", []*generics.Concept{bits32()}, func(reg *types.Registry, argTypes []types.Handle) types.Handle {
		return sameShapeWithScalar(reg, argTypes[0], types.ScalarFloat)
	})
	c.add("BITCAST_TO_INT", []*generics.Concept{bits32()}, func(reg *types.Registry, argTypes []types.Handle) types.Handle {
		return sameShapeWithScalar(reg, argTypes[0], types.ScalarInt)
	})
	c.add("BITCAST_TO_UINT", []*generics.Concept{bits32()}, func(reg *types.Registry, argTypes []types.Handle) types.Handle {
		return sameShapeWithScalar(reg, argTypes[0], types.ScalarUInt)
	})
}

// sameShapeWithScalar rebuilds t's scalar-or-vector shape using fam as
// the element family instead of t's own.
func sameShapeWithScalar(reg *types.Registry, t types.Handle, fam types.ScalarFamily) types.Handle {
	e := reg.Lookup(t)
	target := reg.Scalar(fam)
	if e.Kind == types.KindVector {
		return reg.Vector(target, e.Count)
	}
	return target
}
