// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import "github.com/gogpu/cppsl/ast"

// EmitBlock writes every statement of block, handling the shared
// C-like control-flow shapes uniformly and delegating declaration
// syntax, expression syntax and attribute syntax to backend.
func EmitBlock(b *SourceBuilder, backend Backend, block *ast.Block) {
	b.WriteLine("{")
	b.PushIndent()
	for _, s := range block.Stmts {
		EmitStmt(b, backend, s)
	}
	b.PopIndent()
	b.WriteLine("}")
}

// EmitStmt writes one statement, recursing into nested blocks as
// needed. Expression-statements and declaration-statements have their
// inline text produced via backend.EmitExpr.
func EmitStmt(b *SourceBuilder, backend Backend, s ast.Stmt) {
	switch st := s.(type) {
	case *ast.DeclStmt:
		emitLocalDecl(b, backend, st.Decl)

	case *ast.ReturnStmt:
		if st.Value == nil {
			b.WriteLine("return;")
		} else {
			b.WriteLine("return %s;", backend.EmitExpr(st.Value))
		}

	case *ast.IfStmt:
		backend.EmitStmtAttrs(b, st.Attrs)
		b.WriteLine("if (%s)", backend.EmitExpr(st.Cond))
		EmitBlock(b, backend, st.Then)
		if st.Else != nil {
			emitElse(b, backend, st.Else)
		}

	case *ast.ForStmt:
		backend.EmitStmtAttrs(b, st.Attrs)
		b.WriteLine("for (%s; %s; %s)", forInit(backend, st.Init), forCond(backend, st.Cond), forPost(backend, st.Post))
		EmitBlock(b, backend, st.Body)

	case *ast.WhileStmt:
		backend.EmitStmtAttrs(b, st.Attrs)
		b.WriteLine("while (%s)", backend.EmitExpr(st.Cond))
		EmitBlock(b, backend, st.Body)

	case *ast.BreakStmt:
		b.WriteLine("break;")

	case *ast.ContinueStmt:
		b.WriteLine("continue;")

	case *ast.DiscardStmt:
		b.WriteLine("discard;")

	case *ast.Block:
		EmitBlock(b, backend, st)

	case ast.Expr:
		b.WriteLine("%s;", backend.EmitExpr(st))

	default:
		b.WriteLine("/* unreachable statement kind */")
	}
}

func emitElse(b *SourceBuilder, backend Backend, els ast.Stmt) {
	switch e := els.(type) {
	case *ast.Block:
		b.WriteLine("else")
		EmitBlock(b, backend, e)
	case *ast.IfStmt:
		b.WriteLine("else if (%s)", backend.EmitExpr(e.Cond))
		EmitBlock(b, backend, e.Then)
		if e.Else != nil {
			emitElse(b, backend, e.Else)
		}
	default:
		b.WriteLine("else")
		EmitStmt(b, backend, els)
	}
}

func emitLocalDecl(b *SourceBuilder, backend Backend, d *ast.VarDecl) {
	if d.Init != nil {
		b.WriteLine("%s = %s;", backend.DeclInline(d), backend.EmitExpr(d.Init))
		return
	}
	b.WriteLine("%s;", backend.DeclInline(d))
}

func forInit(backend Backend, init ast.Stmt) string {
	switch s := init.(type) {
	case nil:
		return ""
	case *ast.DeclStmt:
		d := s.Decl
		if d.Init != nil {
			return backend.DeclInline(d) + " = " + backend.EmitExpr(d.Init)
		}
		return backend.DeclInline(d)
	case ast.Expr:
		return backend.EmitExpr(s)
	default:
		return ""
	}
}

func forCond(backend Backend, cond ast.Expr) string {
	if cond == nil {
		return ""
	}
	return backend.EmitExpr(cond)
}

func forPost(backend Backend, post ast.Expr) string {
	if post == nil {
		return ""
	}
	return backend.EmitExpr(post)
}
