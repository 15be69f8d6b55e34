// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package types implements the type registry (C1): interning and
// deduplication of scalar, vector, matrix, array, buffer, texture,
// sampler, acceleration-structure and ray-query types, plus the
// reserved-word check every declared name is run through.
package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/cppsl/diag"
)

// Handle is an index into a Registry's interned type table. The zero
// Handle is never valid; NewRegistry reserves index 0 as a sentinel.
type Handle uint32

// Invalid is returned by lookups that fail to find a match.
const Invalid Handle = 0

// Kind identifies which variant of Type a given entry holds.
type Kind uint8

const (
	KindVoid Kind = iota
	KindScalar
	KindVector
	KindMatrix
	KindArray
	KindStruct
	KindConstantBuffer
	KindStructuredBuffer
	KindByteBuffer
	KindTexture2D
	KindTexture3D
	KindSampler
	KindAccel
	KindRayQuery
)

// ScalarFamily distinguishes the scalar element kinds the language
// supports. Double is accepted as a source-level alias for Float (see
// Registry.GetType).
type ScalarFamily uint8

const (
	ScalarBool ScalarFamily = iota
	ScalarHalf
	ScalarFloat
	ScalarInt
	ScalarUInt
	ScalarInt64
	ScalarUInt64
	// ScalarCustom marks a scalar interned through DeclareScalar rather
	// than bootstrapped by NewRegistry; its spelling lives in Type.Name,
	// not in this enum.
	ScalarCustom
)

func (s ScalarFamily) String() string {
	switch s {
	case ScalarBool:
		return "bool"
	case ScalarHalf:
		return "half"
	case ScalarFloat:
		return "float"
	case ScalarInt:
		return "int"
	case ScalarUInt:
		return "uint"
	case ScalarInt64:
		return "int64_t"
	case ScalarUInt64:
		return "uint64_t"
	default:
		return "scalar?"
	}
}

// builtinScalarSize gives the byte size of the bootstrapped scalar
// families, mirroring HLSL's scalar layout (bool is 4 bytes wide,
// matching int/uint, not 1); each one's alignment equals its size.
var builtinScalarSize = map[ScalarFamily]uint32{
	ScalarBool: 4, ScalarHalf: 2, ScalarFloat: 4, ScalarInt: 4,
	ScalarUInt: 4, ScalarInt64: 8, ScalarUInt64: 8,
}

// ArrayFlags and BufferFlags and TextureFlags and RayQueryFlags carry the
// small bitset qualifiers each resource-like type family needs.
type ArrayFlags uint8

const (
	ArrayNone ArrayFlags = 0
	// ArrayUnbounded marks a zero-length array, the bindless-array marker
	// in the HLSL backend (C7).
	ArrayUnbounded ArrayFlags = 1 << iota
)

type BufferFlags uint8

const (
	BufferReadOnly BufferFlags = 0
	BufferReadWrite BufferFlags = 1 << iota
)

type TextureFlags uint8

const (
	TextureReadOnly TextureFlags = 0
	TextureReadWrite TextureFlags = 1 << iota
)

// RayQueryFlags mirrors the RAY_FLAG_* bitset HLSL's RayQuery<flags>
// template parameter takes.
type RayQueryFlags uint32

const (
	RayFlagNone RayQueryFlags = 0
	RayFlagForceOpaque RayQueryFlags = 1 << iota
	RayFlagForceNonOpaque
	RayFlagAcceptFirstHitAndEndSearch
	RayFlagSkipClosestHitShader
	RayFlagCullBackFacingTriangles
	RayFlagCullFrontFacingTriangles
	RayFlagCullOpaque
	RayFlagCullNonOpaque
	RayFlagSkipTriangles
	RayFlagSkipProceduralPrimitives
)

// Field is one member of a struct type.
type Field struct {
	Name string
	Type Handle
}

// Type is one interned entry. Only the fields relevant to Kind are
// populated; callers should switch on Kind rather than inspect a zero
// value of an unrelated field.
type Type struct {
	Kind Kind
	Name string

	Scalar ScalarFamily
	// Size and Align are the byte size and alignment of a KindScalar
	// entry, set at bootstrap for the built-in families and by
	// DeclareScalar for custom ones. Zero for every other Kind.
	Size  uint32
	Align uint32

	// Vector: Element is the scalar Handle, Count in {2,3,4}.
	// Matrix: Element is the scalar Handle, Count is the square
	//         dimension (matrices are always square, see DESIGN.md).
	// Array: Element is the element Handle, Count is the length (0 when
	//        ArrayFlags has ArrayUnbounded).
	// ConstantBuffer/StructuredBuffer/ByteBuffer/Texture2D/Texture3D:
	//        Element is the contained/element Handle (ByteBuffer leaves
	//        it Invalid).
	Element Handle
	Count   uint32

	ArrayFlags    ArrayFlags
	BufferFlags   BufferFlags
	TextureFlags  TextureFlags
	RayQueryFlags RayQueryFlags

	Fields []Field
}

// IsResource reports whether t is a shader-bound resource type (buffer,
// texture, sampler, acceleration structure or ray query) rather than a
// plain value type. HLSL forbids the inout parameter qualifier on these.
func (t Type) IsResource() bool {
	switch t.Kind {
	case KindConstantBuffer, KindStructuredBuffer, KindByteBuffer,
		KindTexture2D, KindTexture3D, KindSampler, KindAccel, KindRayQuery:
		return true
	default:
		return false
	}
}

var reservedWords = map[string]struct{}{
	"float": {}, "int": {}, "uint": {}, "bool": {}, "void": {},
	"half": {}, "double": {}, "int64_t": {}, "uint64_t": {},
}

// Registry interns every type reachable from a translation unit.
// Interning lookups are O(1) via a string key built from the type's
// defining inputs, matching the style of a handle-indexed interning
// table: a slice of Type plus a map from normalized key to Handle.
// GetType's by-name lookup is a linear scan.
type Registry struct {
	entries []Type
	byKey   map[string]Handle
	sink    diag.Sink
	keyBuf  strings.Builder

	voidHandle Handle
	scalars    map[ScalarFamily]Handle
}

// NewRegistry creates a Registry pre-populated with void, every scalar
// family, their 2/3/4 vectors, and float's 2x2/3x3/4x4 matrices.
func NewRegistry(sink diag.Sink) *Registry {
	if sink == nil {
		sink = diag.NopSink{}
	}
	r := &Registry{
		byKey:   make(map[string]Handle, 64),
		sink:    sink,
		scalars: make(map[ScalarFamily]Handle, 8),
	}
	// Index 0 is reserved as the invalid sentinel; push a throwaway
	// entry so real handles start at 1.
	r.entries = append(r.entries, Type{Kind: KindVoid, Name: "void"})
	r.voidHandle = r.intern("void", Type{Kind: KindVoid, Name: "void"})

	for _, fam := range []ScalarFamily{ScalarBool, ScalarHalf, ScalarFloat, ScalarInt, ScalarUInt, ScalarInt64, ScalarUInt64} {
		h := r.internScalar(fam)
		r.scalars[fam] = h
		for _, n := range []uint32{2, 3, 4} {
			r.Vector(h, n)
		}
	}
	f := r.scalars[ScalarFloat]
	for _, n := range []uint32{2, 3, 4} {
		r.Matrix(f, n)
	}
	return r
}

func (r *Registry) checkReserved(name string) {
	if _, ok := reservedWords[name]; ok {
		r.sink.Fatal("name %q collides with a reserved word", name)
	}
}

func (r *Registry) intern(key string, t Type) Handle {
	if h, ok := r.byKey[key]; ok {
		return h
	}
	r.entries = append(r.entries, t)
	h := Handle(len(r.entries) - 1)
	r.byKey[key] = h
	return h
}

func (r *Registry) internScalar(fam ScalarFamily) Handle {
	key := "scalar:" + fam.String()
	size := builtinScalarSize[fam]
	return r.intern(key, Type{Kind: KindScalar, Name: fam.String(), Scalar: fam, Size: size, Align: size})
}

// Scalar returns the interned Handle for a built-in scalar family.
func (r *Registry) Scalar(fam ScalarFamily) Handle { return r.scalars[fam] }

// ScalarHandle names the Handle returned by DeclareScalar; it interns
// exactly like any other Handle.
type ScalarHandle = Handle

// DeclareScalar interns a new scalar type with an explicit byte size and
// alignment, for callers extending the built-in scalar vocabulary. Fails
// if name is reserved or already declared.
func (r *Registry) DeclareScalar(name string, size, align uint32) (ScalarHandle, error) {
	r.checkReserved(name)
	key := "scalar:" + name
	if existing, ok := r.byKey[key]; ok {
		r.sink.Fatal("duplicate scalar declaration %q", name)
		return existing, fmt.Errorf("duplicate scalar declaration %q", name)
	}
	h := r.intern(key, Type{Kind: KindScalar, Name: name, Scalar: ScalarCustom, Size: size, Align: align})
	return h, nil
}

// Void returns the interned void Handle.
func (r *Registry) Void() Handle { return r.voidHandle }

// Vector interns a vector of elem with n components (n in {2,3,4}).
func (r *Registry) Vector(elem Handle, n uint32) Handle {
	r.keyBuf.Reset()
	fmt.Fprintf(&r.keyBuf, "vec:%d:%d", elem, n)
	base := r.Lookup(elem).Name
	return r.intern(r.keyBuf.String(), Type{
		Kind: KindVector, Name: fmt.Sprintf("%s%d", base, n),
		Element: elem, Count: n,
	})
}

// Matrix interns a square n x n matrix of elem.
func (r *Registry) Matrix(elem Handle, n uint32) Handle {
	r.keyBuf.Reset()
	fmt.Fprintf(&r.keyBuf, "mat:%d:%d", elem, n)
	base := r.Lookup(elem).Name
	return r.intern(r.keyBuf.String(), Type{
		Kind: KindMatrix, Name: fmt.Sprintf("%s%dx%d", base, n, n),
		Element: elem, Count: n,
	})
}

// Array interns array<elem, n>. n == 0 combined with flags.ArrayUnbounded
// marks a zero-length (bindless-backing) array.
func (r *Registry) Array(elem Handle, n uint32, flags ArrayFlags) Handle {
	r.keyBuf.Reset()
	fmt.Fprintf(&r.keyBuf, "arr:%d:%d:%d", elem, n, flags)
	base := r.Lookup(elem).Name
	name := fmt.Sprintf("%s[%d]", base, n)
	if flags&ArrayUnbounded != 0 {
		name = base + "[]"
	}
	return r.intern(r.keyBuf.String(), Type{
		Kind: KindArray, Name: name, Element: elem, Count: n, ArrayFlags: flags,
	})
}

// DeclareStructure interns a named struct type. Struct identity is
// nominal (by name), not structural, matching a source-level struct
// declaration: re-declaring the same name with different fields is a
// DuplicateDeclaration, not a silent merge.
func (r *Registry) DeclareStructure(name string, fields []Field) (Handle, error) {
	r.checkReserved(name)
	key := "struct:" + name
	if existing, ok := r.byKey[key]; ok {
		r.sink.Fatal("duplicate struct declaration %q", name)
		return existing, fmt.Errorf("duplicate struct declaration %q", name)
	}
	h := r.intern(key, Type{Kind: KindStruct, Name: name, Fields: fields})
	return h, nil
}

// ConstantBuffer interns a cbuffer-backed constant buffer of elem.
func (r *Registry) ConstantBuffer(elem Handle) Handle {
	r.keyBuf.Reset()
	fmt.Fprintf(&r.keyBuf, "cbuf:%d", elem)
	return r.intern(r.keyBuf.String(), Type{Kind: KindConstantBuffer, Name: "ConstantBuffer", Element: elem})
}

// StructuredBuffer interns a (RW)StructuredBuffer<elem>.
func (r *Registry) StructuredBuffer(elem Handle, flags BufferFlags) Handle {
	r.keyBuf.Reset()
	fmt.Fprintf(&r.keyBuf, "sbuf:%d:%d", elem, flags)
	name := "StructuredBuffer"
	if flags&BufferReadWrite != 0 {
		name = "RWStructuredBuffer"
	}
	return r.intern(r.keyBuf.String(), Type{Kind: KindStructuredBuffer, Name: name, Element: elem, BufferFlags: flags})
}

// ByteBuffer interns a (RW)ByteAddressBuffer.
func (r *Registry) ByteBuffer(flags BufferFlags) Handle {
	key := "bbuf:" + strconv.Itoa(int(flags))
	name := "ByteAddressBuffer"
	if flags&BufferReadWrite != 0 {
		name = "RWByteAddressBuffer"
	}
	return r.intern(key, Type{Kind: KindByteBuffer, Name: name, BufferFlags: flags})
}

// Texture2D interns a (RW)Texture2D<elem>.
func (r *Registry) Texture2D(elem Handle, flags TextureFlags) Handle {
	r.keyBuf.Reset()
	fmt.Fprintf(&r.keyBuf, "tex2d:%d:%d", elem, flags)
	name := "Texture2D"
	if flags&TextureReadWrite != 0 {
		name = "RWTexture2D"
	}
	return r.intern(r.keyBuf.String(), Type{Kind: KindTexture2D, Name: name, Element: elem, TextureFlags: flags})
}

// Texture3D interns a (RW)Texture3D<elem>.
func (r *Registry) Texture3D(elem Handle, flags TextureFlags) Handle {
	r.keyBuf.Reset()
	fmt.Fprintf(&r.keyBuf, "tex3d:%d:%d", elem, flags)
	name := "Texture3D"
	if flags&TextureReadWrite != 0 {
		name = "RWTexture3D"
	}
	return r.intern(r.keyBuf.String(), Type{Kind: KindTexture3D, Name: name, Element: elem, TextureFlags: flags})
}

// Sampler interns the single SamplerState type (no variants).
func (r *Registry) Sampler() Handle {
	return r.intern("sampler", Type{Kind: KindSampler, Name: "SamplerState"})
}

// Accel interns the single acceleration-structure type.
func (r *Registry) Accel() Handle {
	return r.intern("accel", Type{Kind: KindAccel, Name: "RaytracingAccelerationStructure"})
}

// RayQuery interns RayQuery<flags>, one entry per distinct flag set.
func (r *Registry) RayQuery(flags RayQueryFlags) Handle {
	key := "rayquery:" + strconv.FormatUint(uint64(flags), 10)
	return r.intern(key, Type{Kind: KindRayQuery, Name: "RayQuery", RayQueryFlags: flags})
}

// Lookup returns the Type for h. Looking up Invalid or an out-of-range
// handle returns the zero Type; callers that must distinguish should
// check Count()/h bounds first.
func (r *Registry) Lookup(h Handle) Type {
	if h == Invalid || int(h) >= len(r.entries) {
		return Type{}
	}
	return r.entries[h]
}

// GetType looks up a previously declared/bootstrapped type by its
// display name (e.g. "float4", "MyStruct"). Used by reflection-driven
// callers that only have a string. "double" resolves to float.
func (r *Registry) GetType(name string) (Handle, bool) {
	if name == "double" {
		name = "float"
	}
	for i := 1; i < len(r.entries); i++ {
		if r.entries[i].Name == name {
			return Handle(i), true
		}
	}
	return Invalid, false
}

// Count returns the number of interned types, including the bootstrap
// set and the void sentinel.
func (r *Registry) Count() int { return len(r.entries) }

// SemanticTypeFromString and InterpolationModeFromString are declared in
// semantic.go; kept in this file's doc for discoverability.
