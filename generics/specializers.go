// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package generics

import (
	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/types"
)

// AnyQualifier accepts any qualifier; most value-parameter concepts
// wrap a type predicate with this.
func AnyQualifier(ast.Qualifier) bool { return true }

// NotConst rejects QualConst, the concept every InOut/Out parameter
// slot composes with.
func NotConst(q ast.Qualifier) bool { return q != ast.QualConst }

// WithQualifier composes base's type check with an additional qualifier
// predicate, producing a new Concept. Used for InOut-only intrinsic
// parameters (atomics, texture/buffer writes) where the argument must
// both be the right type and name a mutable binding.
func WithQualifier(base *Concept, allowed func(ast.Qualifier) bool) *Concept {
	return &Concept{Name: base.Name, Validate: func(reg *types.Registry, q ast.Qualifier, t types.Handle) bool {
		return allowed(q) && base.Validate(reg, q, t)
	}}
}

// IsScalar builds a Concept accepting any scalar type.
func IsScalar(name string) *Concept {
	return &Concept{Name: name, Validate: func(reg *types.Registry, _ ast.Qualifier, t types.Handle) bool {
		return reg.Lookup(t).Kind == types.KindScalar
	}}
}

// IsScalarOrVector builds a Concept accepting a scalar or a vector of
// any width, the shape almost every arithmetic intrinsic wants (ABS,
// MIN, MAX, CLAMP, floor/ceil/trig...).
func IsScalarOrVector(name string) *Concept {
	return &Concept{Name: name, Validate: func(reg *types.Registry, _ ast.Qualifier, t types.Handle) bool {
		k := reg.Lookup(t).Kind
		return k == types.KindScalar || k == types.KindVector
	}}
}

// IsVector builds a Concept accepting a vector of any width.
func IsVector(name string) *Concept {
	return &Concept{Name: name, Validate: func(reg *types.Registry, _ ast.Qualifier, t types.Handle) bool {
		return reg.Lookup(t).Kind == types.KindVector
	}}
}

// IsFloatFamily builds a Concept accepting a float/half scalar or a
// vector thereof.
func IsFloatFamily(name string) *Concept {
	return &Concept{Name: name, Validate: func(reg *types.Registry, _ ast.Qualifier, t types.Handle) bool {
		e := reg.Lookup(t)
		switch e.Kind {
		case types.KindScalar:
			return e.Scalar == types.ScalarFloat || e.Scalar == types.ScalarHalf
		case types.KindVector:
			es := reg.Lookup(e.Element)
			return es.Scalar == types.ScalarFloat || es.Scalar == types.ScalarHalf
		default:
			return false
		}
	}}
}

// IsIntegerFamily builds a Concept accepting an integer scalar (any
// signedness/width) or a vector thereof — used by bitwise/atomic
// intrinsics.
func IsIntegerFamily(name string) *Concept {
	return &Concept{Name: name, Validate: func(reg *types.Registry, _ ast.Qualifier, t types.Handle) bool {
		isInt := func(f types.ScalarFamily) bool {
			switch f {
			case types.ScalarInt, types.ScalarUInt, types.ScalarInt64, types.ScalarUInt64:
				return true
			default:
				return false
			}
		}
		e := reg.Lookup(t)
		switch e.Kind {
		case types.KindScalar:
			return isInt(e.Scalar)
		case types.KindVector:
			return isInt(reg.Lookup(e.Element).Scalar)
		default:
			return false
		}
	}}
}

// IsMatrix builds a Concept accepting a square matrix of any dimension.
func IsMatrix(name string) *Concept {
	return &Concept{Name: name, Validate: func(reg *types.Registry, _ ast.Qualifier, t types.Handle) bool {
		return reg.Lookup(t).Kind == types.KindMatrix
	}}
}

// IsByteBuffer builds a Concept accepting specifically a
// (RW)ByteAddressBuffer, not the wider buffer-like family.
func IsByteBuffer(name string) *Concept {
	return &Concept{Name: name, Validate: func(reg *types.Registry, _ ast.Qualifier, t types.Handle) bool {
		return reg.Lookup(t).Kind == types.KindByteBuffer
	}}
}

// IsAny builds a Concept that accepts any non-null type and any
// qualifier — used for atomic/select-style intrinsics whose constraint
// lives entirely in the relation between argument slots, checked by the
// return specializer rather than the per-slot concept.
func IsAny(name string) *Concept {
	return &Concept{Name: name, Validate: func(_ *types.Registry, _ ast.Qualifier, t types.Handle) bool {
		return t != types.Invalid
	}}
}

// IsBufferLike builds a Concept accepting any of the buffer-family
// resource kinds (constant, structured, byte).
func IsBufferLike(name string) *Concept {
	return &Concept{Name: name, Validate: func(reg *types.Registry, _ ast.Qualifier, t types.Handle) bool {
		switch reg.Lookup(t).Kind {
		case types.KindConstantBuffer, types.KindStructuredBuffer, types.KindByteBuffer:
			return true
		default:
			return false
		}
	}}
}

// IsTextureLike builds a Concept accepting a 2D or 3D texture.
func IsTextureLike(name string) *Concept {
	return &Concept{Name: name, Validate: func(reg *types.Registry, _ ast.Qualifier, t types.Handle) bool {
		switch reg.Lookup(t).Kind {
		case types.KindTexture2D, types.KindTexture3D:
			return true
		default:
			return false
		}
	}}
}

// IsSampler builds a Concept accepting SamplerState.
func IsSampler(name string) *Concept {
	return &Concept{Name: name, Validate: func(reg *types.Registry, _ ast.Qualifier, t types.Handle) bool {
		return reg.Lookup(t).Kind == types.KindSampler
	}}
}

// IsAccel builds a Concept accepting the acceleration-structure type.
func IsAccel(name string) *Concept {
	return &Concept{Name: name, Validate: func(reg *types.Registry, _ ast.Qualifier, t types.Handle) bool {
		return reg.Lookup(t).Kind == types.KindAccel
	}}
}

// IsRayQuery builds a Concept accepting any RayQuery<flags> type.
func IsRayQuery(name string) *Concept {
	return &Concept{Name: name, Validate: func(reg *types.Registry, _ ast.Qualifier, t types.Handle) bool {
		return reg.Lookup(t).Kind == types.KindRayQuery
	}}
}

// ReturnFirstArgType is the specializer for every intrinsic whose
// result type equals its first argument's type (ABS, MIN, MAX, CLAMP,
// LERP, SATURATE, floor/ceil/trig, NORMALIZE, REFLECT, ...).
func ReturnFirstArgType(_ *types.Registry, argTypes []types.Handle) types.Handle {
	if len(argTypes) == 0 {
		return types.Invalid
	}
	return argTypes[0]
}

// ReturnFixedType builds a specializer that always returns t, ignoring
// the call's argument types (the void-returning memory barriers and
// resource writes, for example).
func ReturnFixedType(t types.Handle) ReturnTypeSpecializer {
	return func(_ *types.Registry, _ []types.Handle) types.Handle { return t }
}

// ReturnBoolVecMatchingDim is the specializer for bool-valued
// intrinsics that keep their first argument's shape: scalar input
// yields scalar bool, vector input yields a bool vector of the same
// width.
func ReturnBoolVecMatchingDim(reg *types.Registry, argTypes []types.Handle) types.Handle {
	if len(argTypes) == 0 {
		return types.Invalid
	}
	return ResolveBoolVariant(reg, argTypes[0])
}

// ResolveBoolVariant rewrites t (a scalar or vector Handle already
// interned in reg) into the equivalent bool scalar/vector, creating the
// bool vector on demand if it was not part of the bootstrap set.
// Exported separately from ReturnBoolVecMatchingDim so a specializer
// that already holds the Handle to convert (ISINF/ISNAN in the
// intrinsic catalog) can call it directly.
func ResolveBoolVariant(reg *types.Registry, t types.Handle) types.Handle {
	e := reg.Lookup(t)
	boolScalar := reg.Scalar(types.ScalarBool)
	if e.Kind == types.KindScalar {
		return boolScalar
	}
	if e.Kind == types.KindVector {
		return reg.Vector(boolScalar, e.Count)
	}
	return boolScalar
}

// ReturnBufferElement is the specializer for BUFFER_READ-style
// intrinsics: returns the element type of a StructuredBuffer/
// ConstantBuffer first argument.
func ReturnBufferElement(reg *types.Registry, argTypes []types.Handle) types.Handle {
	if len(argTypes) == 0 {
		return types.Invalid
	}
	return reg.Lookup(argTypes[0]).Element
}

// ReturnTextureElement is the specializer for TEXTURE_READ-style
// intrinsics: returns the 4-component vector of a texture's element
// scalar (HLSL textures are always read/written as 4-channel).
func ReturnTextureElement(reg *types.Registry, argTypes []types.Handle) types.Handle {
	if len(argTypes) == 0 {
		return types.Invalid
	}
	elem := reg.Lookup(argTypes[0]).Element
	if reg.Lookup(elem).Kind == types.KindVector {
		return elem
	}
	return reg.Vector(elem, 4)
}
