// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

import "github.com/gogpu/cppsl/types"

// Attr is the tagged-union attribute node. Attributes attach to
// declarations (semantic, interpolation, binding) and to statements
// (loop-control hints); the attrNode marker keeps the set closed the
// same way Decl/Stmt/Expr are.
type Attr interface {
	attrNode()
}

// SemanticAttr binds a parameter, return value, or struct field to a
// stage input/output semantic.
type SemanticAttr struct {
	Semantic types.SemanticType
	// Index is a numeric suffix carried alongside Semantic. The HLSL
	// backend does not read it: render targets 0..7 are distinct
	// SemanticType values, and every other semantic has a fixed spelling.
	Index uint32
}

func (*SemanticAttr) attrNode() {}

// InterpolationAttr marks a fragment-stage input's interpolation mode.
type InterpolationAttr struct {
	Mode types.InterpolationMode
}

func (*InterpolationAttr) attrNode() {}

// BindingAttr requests an explicit (space, register) for a resource
// global. A nil field in BindingAttr means "unconstrained on that
// axis" and is resolved by the binding allocator (C8).
type BindingAttr struct {
	Space    *uint32
	Register *uint32
}

func (*BindingAttr) attrNode() {}

// PushConstantAttr marks a resource global as a push constant: it
// always gets a freshly allocated, exclusively-owned space.
type PushConstantAttr struct{}

func (*PushConstantAttr) attrNode() {}

// BindlessAttr marks a zero-length resource array as bindless: like
// push constants, it always gets a freshly allocated, exclusively-owned
// space.
type BindlessAttr struct{}

func (*BindlessAttr) attrNode() {}

// LoopControlKind enumerates the HLSL statement-level loop-control
// hints ([loop], [unroll], [unroll(N)], [branch], [flatten]).
type LoopControlKind uint8

const (
	LoopControlNone LoopControlKind = iota
	LoopControlLoop
	LoopControlUnroll
	LoopControlBranch
	LoopControlFlatten
)

// LoopControlAttr is a statement attribute controlling codegen of the
// loop or branch it immediately precedes.
type LoopControlAttr struct {
	Kind LoopControlKind
	// Count is only meaningful when Kind is LoopControlUnroll and is
	// positive (an explicit unroll factor); zero means a bare
	// [unroll].
	Count uint32
}

func (*LoopControlAttr) attrNode() {}

// StageAttr marks a FunctionDecl as a shader entry point.
type StageAttr struct {
	Stage      Stage
	KernelSize [3]uint32 // only meaningful for StageCompute
}

func (*StageAttr) attrNode() {}
