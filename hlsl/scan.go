// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"strings"

	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/types"
)

// moduleScan collects the facts EmitPreamble needs before it writes a
// single line: the set of distinct constructed types that need a
// synthesized T::New helper, and whether any bitwise cast (a
// CastBitwise CastExpr or a BITCAST_TO_* call) appears anywhere in the
// module, gating the asfloat/asint/asuint preamble note.
// EmitModule calls EmitPreamble before it walks the rest of a module's
// declarations, so this scan must run as a separate pass beforehand.
type moduleScan struct {
	reg          *types.Registry
	ctorTypes    map[types.Handle]bool
	arrayCtorNs  map[uint32]bool
	usesBitcast  bool
	usesBindless bool
}

func scanArena(arena *ast.Arena) *moduleScan {
	s := &moduleScan{
		reg:         arena.Types(),
		ctorTypes:   make(map[types.Handle]bool),
		arrayCtorNs: make(map[uint32]bool),
	}
	for _, d := range arena.Decls() {
		s.scanDecl(d)
	}
	return s
}

func (s *moduleScan) scanDecl(d ast.Decl) {
	switch decl := d.(type) {
	case *ast.VarDecl:
		s.scanExpr(decl.Init)
	case *ast.FunctionDecl:
		s.scanBlock(decl.Body)
	case *ast.MethodDecl:
		s.scanBlock(decl.Body)
	case *ast.GlobalResourceDecl:
		if isBindlessArray(s.reg, decl.Type) {
			s.usesBindless = true
		}
	}
}

func (s *moduleScan) scanBlock(b *ast.Block) {
	if b == nil {
		return
	}
	for _, st := range b.Stmts {
		s.scanStmt(st)
	}
}

func (s *moduleScan) scanStmt(st ast.Stmt) {
	switch n := st.(type) {
	case nil:
		return
	case *ast.Block:
		s.scanBlock(n)
	case *ast.DeclStmt:
		s.scanExpr(n.Decl.Init)
	case *ast.ReturnStmt:
		s.scanExpr(n.Value)
	case *ast.IfStmt:
		s.scanExpr(n.Cond)
		s.scanBlock(n.Then)
		s.scanStmt(n.Else)
	case *ast.ForStmt:
		s.scanStmt(n.Init)
		s.scanExpr(n.Cond)
		s.scanExpr(n.Post)
		s.scanBlock(n.Body)
	case *ast.WhileStmt:
		s.scanExpr(n.Cond)
		s.scanBlock(n.Body)
	case ast.Expr:
		s.scanExpr(n)
	}
}

func (s *moduleScan) scanExpr(e ast.Expr) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.ConstantExpr, *ast.DeclRefExpr, *ast.ThisExpr:
		// leaves

	case *ast.UnaryExpr:
		s.scanExpr(n.Operand)
	case *ast.BinaryExpr:
		s.scanExpr(n.Left)
		s.scanExpr(n.Right)
	case *ast.ConditionalExpr:
		s.scanExpr(n.Cond)
		s.scanExpr(n.Then)
		s.scanExpr(n.Else)
	case *ast.CallExpr:
		if strings.HasPrefix(calleeName(n.Callee), "BITCAST_TO_") {
			s.usesBitcast = true
		}
		for _, a := range n.Args {
			s.scanExpr(a)
		}
	case *ast.MethodCallExpr:
		s.scanExpr(n.Receiver)
		for _, a := range n.Args {
			s.scanExpr(a)
		}
	case *ast.ConstructExpr:
		s.ctorTypes[n.Type] = true
		if e := s.reg.Lookup(n.Type); e.Kind == types.KindArray {
			s.arrayCtorNs[e.Count] = true
		}
		for _, a := range n.Args {
			s.scanExpr(a)
		}
	case *ast.InitListExpr:
		for _, a := range n.Elements {
			s.scanExpr(a)
		}
	case *ast.AccessExpr:
		s.scanExpr(n.Base)
		s.scanExpr(n.Index)
	case *ast.FieldExpr:
		s.scanExpr(n.Base)
	case *ast.SwizzleExpr:
		s.scanExpr(n.Base)
	case *ast.CastExpr:
		if n.Kind == ast.CastBitwise {
			s.usesBitcast = true
		}
		s.scanExpr(n.Operand)
	}
}
