// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gogpu/cppsl/codegen"
	"github.com/gogpu/cppsl/types"
)

// EmitPreamble writes the fixed header comment plus any constructor
// helpers a prior moduleScan found the module actually calling. Nothing
// here depends on shader-stage or resource-binding state, matching the
// section ordering codegen.EmitModule enforces (preamble first).
func (b *Backend) EmitPreamble(sb *codegen.SourceBuilder) {
	sb.WriteLine("// Generated HLSL, target %s", b.opts.ShaderModel)
	sb.WriteLine("#pragma pack_matrix(row_major)")
	sb.WriteLine("")

	if b.scan == nil {
		return
	}

	if b.scan.usesBitcast {
		sb.WriteLine("// bit_cast is realized directly through asfloat/asint/asuint below.")
		sb.WriteLine("")
	}

	if b.scan.usesBindless {
		sb.WriteLine("template <typename T> using Bindless = T[];")
		sb.WriteLine("")
	}

	ctorTypes := make([]types.Handle, 0, len(b.scan.ctorTypes))
	for h := range b.scan.ctorTypes {
		if b.reg.Lookup(h).Kind == types.KindArray {
			continue
		}
		ctorTypes = append(ctorTypes, h)
	}
	sort.Slice(ctorTypes, func(i, j int) bool { return ctorTypes[i] < ctorTypes[j] })

	for _, h := range ctorTypes {
		b.emitConstructorHelper(sb, h)
	}

	arrayNs := make([]uint32, 0, len(b.scan.arrayCtorNs))
	for n := range b.scan.arrayCtorNs {
		arrayNs = append(arrayNs, n)
	}
	sort.Slice(arrayNs, func(i, j int) bool { return arrayNs[i] < arrayNs[j] })
	for _, n := range arrayNs {
		emitArrayConstructorHelper(sb, n)
	}
}

// emitArrayConstructorHelper synthesizes the templated make_arrayN<T,N>
// helper an N-element array construction desugars to (see
// Backend.EmitExpr's ConstructExpr case). One definition covers every
// element type an array of length n is ever constructed with, since T is
// a template parameter rather than baked into the helper's name.
func emitArrayConstructorHelper(sb *codegen.SourceBuilder, n uint32) {
	params := make([]string, n)
	assigns := make([]string, n)
	for i := uint32(0); i < n; i++ {
		params[i] = fmt.Sprintf("T a%d = (T)0", i)
		assigns[i] = fmt.Sprintf("a.data[%d] = a%d;", i, i)
	}
	sb.WriteLine("template <typename T, uint N> array<T, N> make_array%d(%s)", n, strings.Join(params, ", "))
	sb.WriteLine("{")
	sb.PushIndent()
	sb.WriteLine("array<T, N> a;")
	for _, a := range assigns {
		sb.WriteLine("%s", a)
	}
	sb.WriteLine("return a;")
	sb.PopIndent()
	sb.WriteLine("}")
	sb.WriteLine("")
}

// emitConstructorHelper synthesizes a T::New static method wrapping
// HLSL's own native constructor syntax, the desugar target a vector
// ast.ConstructExpr compiles to (see Backend.EmitExpr; array
// construction goes through emitArrayConstructorHelper instead). Vector
// types get a full per-component overload; struct and matrix
// construction is passed through to HLSL's own brace/paren constructor
// unchanged, since those already accept the same argument shape a
// ConstructExpr carries.
func (b *Backend) emitConstructorHelper(sb *codegen.SourceBuilder, h types.Handle) {
	e := b.reg.Lookup(h)
	name := typeName(b.reg, h)

	if e.Kind != types.KindVector {
		sb.WriteLine("// %s::New(...) forwards directly to %s(...).", name, name)
		sb.WriteLine("")
		return
	}

	elemName := typeName(b.reg, e.Element)
	params := make([]string, e.Count)
	args := make([]string, e.Count)
	for i := uint32(0); i < e.Count; i++ {
		params[i] = fmt.Sprintf("%s c%d", elemName, i)
		args[i] = fmt.Sprintf("c%d", i)
	}

	sb.WriteLine("static %s %s::New(%s)", name, name, strings.Join(params, ", "))
	sb.WriteLine("{")
	sb.PushIndent()
	sb.WriteLine("return %s(%s);", name, strings.Join(args, ", "))
	sb.PopIndent()
	sb.WriteLine("}")
	sb.WriteLine("")
}
