// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package generics implements the concept/template engine (C4): concepts
// are predicates over (qualifier, type), template callables are
// specialized on demand against a concrete argument-type list.
package generics

import (
	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/types"
)

// Concept is a named predicate a template parameter slot must satisfy.
// Validate receives the qualifier the call-site argument binds with
// (QualIn for an rvalue, the declared qualifier for an lvalue) and the
// argument's type.
type Concept struct {
	Name     string
	Validate func(reg *types.Registry, qual ast.Qualifier, t types.Handle) bool
}

// ReturnTypeSpecializer computes a template callable's return type from
// the concrete argument types a call site provides. Most catalog
// entries use one of the ready-made specializers in specializers.go;
// a handful (e.g. SAMPLE2D) need a bespoke closure.
type ReturnTypeSpecializer func(reg *types.Registry, argTypes []types.Handle) types.Handle

// Template is a named callable generic over its parameter concepts.
// Owner is non-nil for a method template (e.g. a resource type's
// `.Load`); nil for a free function (including every intrinsic).
type Template struct {
	Name   string
	Owner  *types.Handle
	Params []*Concept
	Return ReturnTypeSpecializer
}

// exprQualifier recovers the qualifier an expression binds an argument
// slot with: the declared qualifier of the variable/parameter it names,
// or QualIn for any other (rvalue) expression.
func exprQualifier(e ast.Expr) ast.Qualifier {
	ref, ok := e.(*ast.DeclRefExpr)
	if !ok {
		return ast.QualIn
	}
	switch d := ref.Decl.(type) {
	case *ast.VarDecl:
		return d.Qualifier
	case *ast.ParamDecl:
		return d.Qualifier
	default:
		return ast.QualIn
	}
}

// Specialize validates args against t's parameter concepts in order,
// then resolves the return type (override, if not types.Invalid, wins
// over the template's own specializer), and returns a
// SpecializedFunctionDecl or SpecializedMethodDecl ready to be used as a
// Call/MethodCall callee.
//
// Validation order matches the defining algorithm exactly: arity first,
// then each argument against its concept in parameter order, then
// return-type resolution.
func (t *Template) Specialize(reg *types.Registry, args []ast.Expr, override types.Handle) (ast.Decl, error) {
	if len(args) != len(t.Params) {
		return nil, ast.NewErrorWithContext(ast.ArityMismatch, t.Name,
			"expected %d arguments, got %d", len(t.Params), len(args))
	}

	argTypes := make([]types.Handle, len(args))
	for i, arg := range args {
		argTypes[i] = arg.ResultType()
		if argTypes[i] == types.Invalid {
			return nil, ast.NewErrorWithContext(ast.NullTypeBinding, t.Name,
				"argument %d has no resolvable type", i)
		}
		concept := t.Params[i]
		qual := exprQualifier(arg)
		if !concept.Validate(reg, qual, argTypes[i]) {
			return nil, ast.NewErrorWithContext(ast.ConceptMismatch, t.Name,
				"argument %d does not satisfy concept %q", i, concept.Name)
		}
	}

	retType := override
	if retType == types.Invalid {
		if t.Return == nil {
			return nil, ast.NewErrorWithContext(ast.NullTypeBinding, t.Name,
				"template has no return-type specializer and no override was given")
		}
		retType = t.Return(reg, argTypes)
	}
	if retType == types.Invalid {
		return nil, ast.NewErrorWithContext(ast.NullTypeBinding, t.Name,
			"return-type specializer produced a null type")
	}

	params := make([]*ast.ParamDecl, len(argTypes))
	for i, at := range argTypes {
		params[i] = &ast.ParamDecl{Type: at}
	}

	if t.Owner != nil {
		base := &ast.MethodDecl{Owner: *t.Owner, Name: t.Name, Params: params, Return: retType}
		return &ast.SpecializedMethodDecl{MethodDecl: base, ArgTypes: argTypes}, nil
	}
	base := &ast.FunctionDecl{Name: t.Name, Params: params, Return: retType}
	return &ast.SpecializedFunctionDecl{FunctionDecl: base, ArgTypes: argTypes}, nil
}
