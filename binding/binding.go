// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package binding

import (
	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/diag"
	"github.com/gogpu/cppsl/types"
)

// RegisterType is the HLSL register letter a resource's kind maps to.
type RegisterType uint8

const (
	RegisterB RegisterType = iota // constant buffer
	RegisterT                     // read-only buffer/texture/accel
	RegisterS                     // sampler
	RegisterU                     // read-write buffer/texture
)

func (r RegisterType) String() string {
	switch r {
	case RegisterB:
		return "b"
	case RegisterT:
		return "t"
	case RegisterS:
		return "s"
	case RegisterU:
		return "u"
	default:
		return "?"
	}
}

// RegisterTypeFor classifies a resource type's register letter.
func RegisterTypeFor(reg *types.Registry, t types.Handle) RegisterType {
	e := reg.Lookup(t)
	switch e.Kind {
	case types.KindConstantBuffer:
		return RegisterB
	case types.KindSampler:
		return RegisterS
	case types.KindStructuredBuffer:
		if e.BufferFlags&types.BufferReadWrite != 0 {
			return RegisterU
		}
		return RegisterT
	case types.KindByteBuffer:
		if e.BufferFlags&types.BufferReadWrite != 0 {
			return RegisterU
		}
		return RegisterT
	case types.KindTexture2D, types.KindTexture3D:
		if e.TextureFlags&types.TextureReadWrite != 0 {
			return RegisterU
		}
		return RegisterT
	case types.KindAccel:
		return RegisterT
	default:
		return RegisterT
	}
}

// Slot is one resource's resolved binding location.
type Slot struct {
	Space    uint32
	Register uint32
	Type     RegisterType
}

// Table is the two-level sparse allocator: one sparseSet over space
// numbers, and one sparseSet per space over register numbers within it.
// A space's register sequence is shared across every RegisterType in
// that space (b/t/s/u registers in the same space draw from the same
// 0..n-1 sequence), matching original_source's HLSLGenerator, which
// keys its register_allocators map on space alone.
type Table struct {
	reg  *types.Registry
	sink diag.Sink

	spaces       sparseSet
	regsBySpace  map[uint32]*sparseSet
	exclusiveUse map[uint32]*ast.GlobalResourceDecl
	regularSpace *uint32
}

// NewTable creates an empty allocator.
func NewTable(reg *types.Registry, sink diag.Sink) *Table {
	if sink == nil {
		sink = diag.NopSink{}
	}
	return &Table{
		reg:          reg,
		sink:         sink,
		regsBySpace:  make(map[uint32]*sparseSet),
		exclusiveUse: make(map[uint32]*ast.GlobalResourceDecl),
	}
}

// WithDefaultSpace seeds the space that regular (non-bindless,
// non-push-constant, non-explicitly-pinned) resources are allocated
// into, reserving it up front so bindless/push-constant allocation
// never picks the same space. Call before Allocate.
func (t *Table) WithDefaultSpace(space uint32) *Table {
	t.regularSpace = &space
	t.spaces.reserve(space)
	return t
}

func (t *Table) regSet(space uint32) *sparseSet {
	s, ok := t.regsBySpace[space]
	if !ok {
		s = &sparseSet{}
		t.regsBySpace[space] = s
	}
	return s
}

func classify(d *ast.GlobalResourceDecl) (binding *ast.BindingAttr, pushConstant, bindless bool) {
	for _, a := range d.Attrs {
		switch at := a.(type) {
		case *ast.BindingAttr:
			binding = at
		case *ast.PushConstantAttr:
			pushConstant = true
		case *ast.BindlessAttr:
			bindless = true
		}
	}
	return
}

// Allocate assigns a Slot to every resource in decls, returning a map
// from declaration to slot. Regular resources share one lazily
// allocated space; bindless and push-constant resources each get a
// freshly allocated, exclusively owned space. Fixed-space and
// fixed-register requests are honored directly; if part of a
// (space, register) constraint collides with the rest of the already
// allocated bindings, the resource is still allocated in the requested
// space/register and a diagnostic is emitted, rather than silently
// moving it to a different space - see DESIGN.md's Open Question
// resolution.
func (t *Table) Allocate(decls []*ast.GlobalResourceDecl) (map[*ast.GlobalResourceDecl]Slot, error) {
	result := make(map[*ast.GlobalResourceDecl]Slot, len(decls))

	// First pass: reserve every explicitly fixed space, and every
	// explicit (space, register) pair, so the decl-order main loop below
	// never hands a register that one resource pinned to another
	// resource whose own request left the register unconstrained.
	type fixedPin struct{ space, register uint32 }
	preReserved := make(map[*ast.GlobalResourceDecl]fixedPin, len(decls))
	for _, d := range decls {
		binding, _, _ := classify(d)
		if binding == nil || binding.Space == nil {
			continue
		}
		t.spaces.reserve(*binding.Space)
		if binding.Register == nil {
			continue
		}
		space, register := *binding.Space, *binding.Register
		regs := t.regSet(space)
		if regs.has(register) {
			t.sink.Warn("resource %q requested register %d in space %d but it is already taken; allocating there anyway",
				d.Name, register, space)
		} else {
			regs.reserve(register)
		}
		preReserved[d] = fixedPin{space: space, register: register}
	}

	for _, d := range decls {
		binding, pushConstant, bindless := classify(d)
		rt := RegisterTypeFor(t.reg, d.Type)

		var space uint32
		switch {
		case pushConstant || bindless:
			space = t.spaces.smallestFree()
			if existing, ok := t.exclusiveUse[space]; ok && existing != d {
				return nil, ast.NewErrorWithContext(ast.BindingConflict, d.Name,
					"space %d already exclusively owned by %q", space, existing.Name)
			}
			t.exclusiveUse[space] = d
		case binding != nil && binding.Space != nil:
			space = *binding.Space
			if owner, ok := t.exclusiveUse[space]; ok && owner != d {
				return nil, ast.NewErrorWithContext(ast.BindingConflict, d.Name,
					"space %d is exclusively owned by bindless/push-constant resource %q", space, owner.Name)
			}
		default:
			if t.regularSpace == nil {
				s := t.spaces.smallestFree()
				t.regularSpace = &s
			}
			space = *t.regularSpace
		}

		regs := t.regSet(space)
		var register uint32
		switch pin, pinned := preReserved[d]; {
		case pinned:
			register = pin.register
		case binding != nil && binding.Register != nil:
			register = *binding.Register
			if regs.has(register) {
				t.sink.Warn("resource %q requested register %d%s in space %d but it is already taken; allocating there anyway",
					d.Name, register, rt, space)
			} else {
				regs.reserve(register)
			}
		default:
			register = regs.smallestFree()
		}

		result[d] = Slot{Space: space, Register: register, Type: rt}
	}

	if err := t.validate(result); err != nil {
		return nil, err
	}
	return result, nil
}

// validate asserts that no exclusively-owned (bindless/push-constant)
// space ended up hosting more than one resource.
func (t *Table) validate(result map[*ast.GlobalResourceDecl]Slot) error {
	countBySpace := make(map[uint32]int, len(result))
	for _, slot := range result {
		countBySpace[slot.Space]++
	}
	for space, owner := range t.exclusiveUse {
		if countBySpace[space] > 1 {
			return ast.NewErrorWithContext(ast.BindingConflict, owner.Name,
				"exclusive space %d hosts %d resources, want 1", space, countBySpace[space])
		}
	}
	return nil
}
