// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package intrinsics

import (
	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/generics"
	"github.com/gogpu/cppsl/types"
)

func (c *Catalog) declareMath() {
	arith := func() *generics.Concept { return generics.IsScalarOrVector("arithmetic") }
	flt := func() *generics.Concept { return generics.IsFloatFamily("float-family") }

	// Unary, result matches argument: ABS through the trig/exp/log
	// family and SATURATE/NORMALIZE/fract-style helpers.
	for _, name := range []string{
		"ABS", "SATURATE", "SIN", "COS", "TAN", "ASIN", "ACOS", "ATAN",
		"EXP", "EXP2", "LOG", "LOG2", "SQRT", "RSQRT", "FLOOR", "CEIL",
		"ROUND", "TRUNC", "FRAC", "SIGN", "NORMALIZE", "DDX", "DDY",
	} {
		c.add(name, []*generics.Concept{flt()}, generics.ReturnFirstArgType)
	}

	// Binary, result matches first argument.
	for _, name := range []string{"MIN", "MAX", "POW", "COPYSIGN", "ATAN2", "STEP"} {
		c.add(name, []*generics.Concept{arith(), arith()}, generics.ReturnFirstArgType)
	}

	c.add("CLAMP", []*generics.Concept{arith(), arith(), arith()}, generics.ReturnFirstArgType)
	c.add("LERP", []*generics.Concept{flt(), flt(), flt()}, generics.ReturnFirstArgType)
	c.add("FMA", []*generics.Concept{flt(), flt(), flt()}, generics.ReturnFirstArgType)
	c.add("SMOOTHSTEP", []*generics.Concept{flt(), flt(), flt()}, generics.ReturnFirstArgType)

	boolReduce := func(reg *types.Registry, argTypes []types.Handle) types.Handle {
		return reg.Scalar(types.ScalarBool)
	}
	// boolMask accepts a bool or integer scalar/vector.
	boolMask := func(name string) *generics.Concept {
		intC := generics.IsIntegerFamily(name)
		return &generics.Concept{Name: name, Validate: func(reg *types.Registry, q ast.Qualifier, t types.Handle) bool {
			e := reg.Lookup(t)
			if e.Kind == types.KindVector {
				e = reg.Lookup(e.Element)
			}
			return (e.Kind == types.KindScalar && e.Scalar == types.ScalarBool) || intC.Validate(reg, q, t)
		}}
	}
	c.add("ALL", []*generics.Concept{boolMask("boolean-vector")}, boolReduce)
	c.add("ANY", []*generics.Concept{boolMask("boolean-vector")}, boolReduce)
	c.add("ISINF", []*generics.Concept{flt()}, func(reg *types.Registry, argTypes []types.Handle) types.Handle {
		return generics.ResolveBoolVariant(reg, argTypes[0])
	})
	c.add("ISNAN", []*generics.Concept{flt()}, func(reg *types.Registry, argTypes []types.Handle) types.Handle {
		return generics.ResolveBoolVariant(reg, argTypes[0])
	})

	c.add("LENGTH", []*generics.Concept{flt()}, func(reg *types.Registry, argTypes []types.Handle) types.Handle {
		e := reg.Lookup(argTypes[0])
		if e.Kind == types.KindVector {
			return e.Element
		}
		return argTypes[0]
	})
	c.add("LENGTH_SQUARED", []*generics.Concept{flt()}, func(reg *types.Registry, argTypes []types.Handle) types.Handle {
		e := reg.Lookup(argTypes[0])
		if e.Kind == types.KindVector {
			return e.Element
		}
		return argTypes[0]
	})

	c.add("SELECT", []*generics.Concept{arith(), arith(), boolMask("boolean-mask")},
		generics.ReturnFirstArgType)
}
