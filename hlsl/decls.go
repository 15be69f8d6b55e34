// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/codegen"
)

// DeclInline renders a local variable's declarator text, used both for a
// plain declaration statement and a for-loop initializer clause.
func (b *Backend) DeclInline(d *ast.VarDecl) string {
	text := declarator(b.reg, d.Type, d.Name)
	if d.Qualifier == ast.QualConst {
		return "const " + text
	}
	return text
}

// EmitGlobal writes one global VarDecl (a `static const` module-scope
// constant) or GlobalResourceDecl (a bound shader resource, annotated
// with its resolved register/space from the binding allocator).
func (b *Backend) EmitGlobal(sb *codegen.SourceBuilder, d ast.Decl) {
	switch g := d.(type) {
	case *ast.VarDecl:
		prefix := "static"
		if g.Qualifier == ast.QualConst {
			prefix = "static const"
		}
		if g.Init != nil {
			sb.WriteLine("%s %s = %s;", prefix, declarator(b.reg, g.Type, g.Name), b.EmitExpr(g.Init))
		} else {
			sb.WriteLine("%s %s;", prefix, declarator(b.reg, g.Type, g.Name))
		}

	case *ast.GlobalResourceDecl:
		b.emitResourceGlobal(sb, g)
	}
}

func (b *Backend) emitResourceGlobal(sb *codegen.SourceBuilder, d *ast.GlobalResourceDecl) {
	slot, ok := b.slots[d]
	if !ok {
		sb.WriteLine("%s; // unresolved binding", declarator(b.reg, d.Type, d.Name))
		return
	}
	for _, a := range d.Attrs {
		if _, isPush := a.(*ast.PushConstantAttr); isPush {
			sb.WriteLine("// push_constant")
		}
	}
	sb.WriteLine("%s : register(%s%d, space%d);",
		declarator(b.reg, d.Type, d.Name), slot.Type.String(), slot.Register, slot.Space)
}

// EmitStructDecl writes a struct type's fields, attaching each field's
// semantic/interpolation attributes (if any) on its own declaration
// line.
func (b *Backend) EmitStructDecl(sb *codegen.SourceBuilder, d *ast.StructDecl) {
	e := b.reg.Lookup(d.Type)
	attrsByField := make(map[int][]ast.Attr, len(d.FieldAttrs))
	for _, fa := range d.FieldAttrs {
		attrsByField[fa.FieldIndex] = fa.Attrs
	}

	sb.WriteLine("struct %s", e.Name)
	sb.WriteLine("{")
	sb.PushIndent()
	for i, f := range e.Fields {
		line := declarator(b.reg, f.Type, f.Name)
		attrs := attrsByField[i]
		if interp, ok := findInterpolationAttr(attrs); ok {
			if mod := interpolationModifier(interp.Mode); mod != "" {
				line = mod + " " + line
			}
		}
		if sem, ok := findSemanticAttr(attrs); ok {
			line = fmt.Sprintf("%s : %s", line, semanticName(sem))
		}
		sb.WriteLine("%s;", line)
	}
	sb.PopIndent()
	sb.WriteLine("};")
	sb.WriteLine("")
}

// EmitFunction writes a free function. A StageAttr turns it into a
// shader entry point: compute stages gain a leading [numthreads(...)]
// attribute, and a scalar/vector return value's SemanticAttr (if any)
// is appended after the signature's closing paren.
func (b *Backend) EmitFunction(sb *codegen.SourceBuilder, d *ast.FunctionDecl) {
	stage, isEntry := findStageAttr(d.Attrs)
	if isEntry {
		sb.WriteLine("[shader(%q)]", shaderStageName(stage.Stage))
		if stage.Stage == ast.StageCompute {
			sb.WriteLine("[numthreads(%d, %d, %d)]", stage.KernelSize[0], stage.KernelSize[1], stage.KernelSize[2])
		}
	}

	sig := fmt.Sprintf("%s %s(%s)", typeName(b.reg, d.Return), d.Name, b.paramList(d.Params))
	if sem, ok := findSemanticAttr(d.Attrs); ok {
		sig += " : " + semanticName(sem)
	} else if isEntry && stage.Stage == ast.StageFragment {
		sig += " : SV_Target0"
	}
	sb.WriteLine("%s", sig)
	if d.Body != nil {
		codegen.EmitBlock(sb, b, d.Body)
	} else {
		sb.WriteLine(";")
	}
	sb.WriteLine("")
}

// EmitMethod writes one method, spelled as an out-of-line definition
// qualified with its owner type's name. HLSL 2021 methods are normally
// declared inline inside their struct body; synthesized constructor
// wrappers and catalog resource methods are emitted this way instead so
// the generator core's single pass over a flat declaration list can
// produce them without threading them back through their owner's
// EmitStructDecl.
func (b *Backend) EmitMethod(sb *codegen.SourceBuilder, d *ast.MethodDecl) {
	qualifier := ""
	if d.IsStatic {
		qualifier = "static "
	}
	sb.WriteLine("%s%s %s::%s(%s)", qualifier, typeName(b.reg, d.Return), typeName(b.reg, d.Owner), d.Name, b.paramList(d.Params))
	if d.Body != nil {
		codegen.EmitBlock(sb, b, d.Body)
	} else {
		sb.WriteLine(";")
	}
	sb.WriteLine("")
}

func (b *Backend) paramList(params []*ast.ParamDecl) string {
	parts := make([]string, len(params))
	for i, p := range params {
		prefix := ""
		switch p.Qualifier {
		case ast.QualOut:
			prefix = "out "
		case ast.QualInOut:
			// HLSL forbids inout on a resource parameter; ast.NewParam
			// already rejects this at construction time, but a ParamDecl
			// built without NewParam can still reach here, so the prefix
			// is dropped for resource types.
			if !b.reg.Lookup(p.Type).IsResource() {
				prefix = "inout "
			}
		}
		text := prefix + declarator(b.reg, p.Type, p.Name)
		if sem, ok := findSemanticAttr(p.Attrs); ok {
			text += " : " + semanticName(sem)
		}
		parts[i] = text
	}
	return strings.Join(parts, ", ")
}

// EmitStmtAttrs writes any [loop]/[unroll(N)]/[branch]/[flatten]
// statement-control attributes immediately preceding the statement they
// apply to.
func (b *Backend) EmitStmtAttrs(sb *codegen.SourceBuilder, attrs []ast.Attr) {
	for _, a := range attrs {
		lc, ok := a.(*ast.LoopControlAttr)
		if !ok {
			continue
		}
		switch lc.Kind {
		case ast.LoopControlLoop:
			sb.WriteLine("[loop]")
		case ast.LoopControlUnroll:
			if lc.Count > 0 {
				sb.WriteLine("[unroll(%d)]", lc.Count)
			} else {
				sb.WriteLine("[unroll]")
			}
		case ast.LoopControlBranch:
			sb.WriteLine("[branch]")
		case ast.LoopControlFlatten:
			sb.WriteLine("[flatten]")
		}
	}
}
