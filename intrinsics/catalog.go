// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package intrinsics declares the ~120 built-in template functions every
// generated shader can call: math, bit manipulation, atomics, wave/quad
// ops, ray query, and texture/buffer access. Each entry is a
// generics.Template keyed by the opaque identifier in the catalog's
// string table (ABS, DOT, BUFFER_READ, ...).
package intrinsics

import (
	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/diag"
	"github.com/gogpu/cppsl/generics"
	"github.com/gogpu/cppsl/types"
)

// Catalog owns every intrinsic template, keyed by its catalog
// identifier.
type Catalog struct {
	reg       *types.Registry
	sink      diag.Sink
	templates map[string]*generics.Template
}

// New builds the full intrinsic catalog against reg, mirroring
// AST::DeclareIntrinsics: a fixed, one-time registration pass run once
// per type registry.
func New(reg *types.Registry, sink diag.Sink) *Catalog {
	if sink == nil {
		sink = diag.NopSink{}
	}
	c := &Catalog{reg: reg, sink: sink, templates: make(map[string]*generics.Template, 128)}
	c.declareMath()
	c.declareBitwise()
	c.declareGeometry()
	c.declareBufferAccess()
	c.declareAtomics()
	c.declareTexture()
	c.declareRayQuery()
	c.declareBarriers()
	c.declareWaveAndQuad()
	c.declareBitCast()
	return c
}

// Lookup returns the template registered under name, or nil.
func (c *Catalog) Lookup(name string) *generics.Template { return c.templates[name] }

// Count returns the number of distinct intrinsic identifiers
// registered.
func (c *Catalog) Count() int { return len(c.templates) }

func (c *Catalog) add(name string, params []*generics.Concept, ret generics.ReturnTypeSpecializer) {
	if _, exists := c.templates[name]; exists {
		c.sink.Fatal("intrinsic %q registered twice", name)
	}
	c.templates[name] = &generics.Template{Name: name, Params: params, Return: ret}
}

// Specialize resolves name against args, matching generics.Template's
// own contract, and fails with UnknownNamedType if name isn't in the
// catalog.
func (c *Catalog) Specialize(name string, args []ast.Expr) (ast.Decl, error) {
	t := c.Lookup(name)
	if t == nil {
		return nil, ast.NewErrorWithContext(ast.UnknownNamedType, name, "no such intrinsic")
	}
	return t.Specialize(c.reg, args, types.Invalid)
}
