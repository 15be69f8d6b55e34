// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package intrinsics

import (
	"github.com/gogpu/cppsl/generics"
	"github.com/gogpu/cppsl/types"
)

func (c *Catalog) declareGeometry() {
	vec := func() *generics.Concept { return generics.IsVector("vector") }
	flt := func() *generics.Concept { return generics.IsFloatFamily("float-family") }
	mat := func() *generics.Concept { return generics.IsMatrix("matrix") }

	c.add("DOT", []*generics.Concept{vec(), vec()}, func(reg *types.Registry, argTypes []types.Handle) types.Handle {
		return reg.Lookup(argTypes[0]).Element
	})
	c.add("CROSS", []*generics.Concept{vec(), vec()}, generics.ReturnFirstArgType)
	c.add("FACEFORWARD", []*generics.Concept{vec(), vec(), vec()}, generics.ReturnFirstArgType)
	c.add("REFLECT", []*generics.Concept{vec(), vec()}, generics.ReturnFirstArgType)
	c.add("REFRACT", []*generics.Concept{vec(), vec(), flt()}, generics.ReturnFirstArgType)

	c.add("TRANSPOSE", []*generics.Concept{mat()}, generics.ReturnFirstArgType)
	c.add("DETERMINANT", []*generics.Concept{mat()}, func(reg *types.Registry, argTypes []types.Handle) types.Handle {
		return reg.Lookup(argTypes[0]).Element
	})
	c.add("INVERSE", []*generics.Concept{mat()}, generics.ReturnFirstArgType)
}
