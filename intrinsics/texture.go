// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package intrinsics

import (
	"github.com/gogpu/cppsl/generics"
	"github.com/gogpu/cppsl/types"
)

func (c *Catalog) declareTexture() {
	tex := func() *generics.Concept { return generics.IsTextureLike("texture") }
	mutTex := func() *generics.Concept {
		return generics.WithQualifier(generics.IsTextureLike("texture"), generics.NotConst)
	}
	coord := func() *generics.Concept { return generics.IsIntegerFamily("coordinate") }
	samplerC := func() *generics.Concept { return generics.IsSampler("sampler") }
	fcoord := func() *generics.Concept { return generics.IsFloatFamily("uv") }
	any := func() *generics.Concept { return generics.IsAny("value") }

	c.add("TEXTURE_READ", []*generics.Concept{tex(), coord()}, generics.ReturnTextureElement)
	c.add("TEXTURE_WRITE", []*generics.Concept{mutTex(), coord(), any()}, generics.ReturnFixedType(c.reg.Void()))
	c.add("TEXTURE_SIZE", []*generics.Concept{tex()}, func(reg *types.Registry, argTypes []types.Handle) types.Handle {
		uintT := reg.Scalar(types.ScalarUInt)
		if reg.Lookup(argTypes[0]).Kind == types.KindTexture3D {
			return reg.Vector(uintT, 3)
		}
		return reg.Vector(uintT, 2)
	})

	// Dispatches to Float4/Half4/Int4/UInt4/Bool4 by the texture's own
	// element scalar family - every family widens to 4 components, the
	// canonical HLSL sample-result shape.
	c.add("SAMPLE2D", []*generics.Concept{tex(), samplerC(), fcoord()},
		func(reg *types.Registry, argTypes []types.Handle) types.Handle {
			elem := reg.Lookup(argTypes[0]).Element
			if reg.Lookup(elem).Kind == types.KindVector {
				return elem
			}
			return reg.Vector(elem, 4)
		})
}
