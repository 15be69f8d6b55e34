// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

import "github.com/gogpu/cppsl/types"

// Decl is the tagged-union declaration node.
type Decl interface {
	declNode()
}

// VarDecl is a local or global variable declaration. Globals are
// distinguished from resource globals (buffers/textures/samplers/accel)
// by GlobalResourceDecl; VarDecl with IsGlobal set is used for ordinary
// global constants (`static const` in HLSL).
type VarDecl struct {
	Name      string
	Type      types.Handle
	Qualifier Qualifier
	Init      Expr
	IsGlobal  bool
}

func (*VarDecl) declNode() {}

// ParamDecl is one function or method parameter.
type ParamDecl struct {
	Name      string
	Type      types.Handle
	Qualifier Qualifier
	Attrs     []Attr // SemanticAttr for entry-point parameters
}

func (*ParamDecl) declNode() {}

// FunctionDecl is a free function declaration. A StageAttr in Attrs
// marks it as a shader entry point; its return value's SemanticAttr (if
// any) also lives in Attrs.
type FunctionDecl struct {
	Name   string
	Params []*ParamDecl
	Return types.Handle
	Body   *Block
	Attrs  []Attr
}

func (*FunctionDecl) declNode() {}

// MethodDecl is a method on a named type (struct, intrinsic resource
// type, or a generated constructor wrapper).
type MethodDecl struct {
	Owner    types.Handle
	Name     string
	Params   []*ParamDecl
	Return   types.Handle
	Body     *Block
	IsStatic bool
}

func (*MethodDecl) declNode() {}

// SpecializedFunctionDecl is the result of specializing a
// generics.Template against a concrete argument-type list: a
// FunctionDecl plus the argument types the specialization was computed
// from (for diagnostics and for re-specialization caching).
type SpecializedFunctionDecl struct {
	*FunctionDecl
	ArgTypes []types.Handle
}

// SpecializedMethodDecl is the method-call counterpart of
// SpecializedFunctionDecl.
type SpecializedMethodDecl struct {
	*MethodDecl
	ArgTypes []types.Handle
}

// GlobalResourceDecl declares a shader-visible resource: a constant
// buffer, structured/byte buffer, texture, sampler, acceleration
// structure, or bindless array of any of those. Binding-related Attrs
// (BindingAttr/PushConstantAttr/BindlessAttr) drive the binding
// allocator (C8).
type GlobalResourceDecl struct {
	Name  string
	Type  types.Handle
	Attrs []Attr
}

func (*GlobalResourceDecl) declNode() {}

// StructFieldAttrs attaches attributes (semantic, interpolation) to one
// field of a struct type by index, since types.Field itself carries no
// attribute slot.
type StructFieldAttrs struct {
	FieldIndex int
	Attrs      []Attr
}

// StructDecl records the per-field attributes for a struct type already
// interned in a types.Registry. The struct's name/fields/layout live in
// types.Registry; this node exists purely to carry semantic/
// interpolation metadata the registry itself has no room for.
type StructDecl struct {
	Type       types.Handle
	FieldAttrs []StructFieldAttrs
}

func (*StructDecl) declNode() {}
