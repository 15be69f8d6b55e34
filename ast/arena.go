// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

import (
	"github.com/gogpu/cppsl/diag"
	"github.com/gogpu/cppsl/types"
)

// Arena owns every node belonging to one translation unit: three
// parallel sequences of statements, declarations and attributes,
// matching the defining-input-sequence shape of the type registry's own
// entries list. Nodes are never freed individually; the whole arena is
// torn down together when its translation unit is done with.
//
// Arena is not safe for concurrent use. An Arena created by a Database
// also appends every node it emplaces to that Database's shared lists,
// so arenas of one Database are not safe to use from different
// goroutines either.
type Arena struct {
	id    uint32
	db    *Database
	types *types.Registry
	sink  diag.Sink

	stmts []Stmt
	decls []Decl
	attrs []Attr

	names map[string]struct{}
}

// NewArena creates a standalone Arena not attached to any Database.
func NewArena(reg *types.Registry, sink diag.Sink) *Arena {
	if sink == nil {
		sink = diag.NopSink{}
	}
	return &Arena{types: reg, sink: sink, names: make(map[string]struct{}, 64)}
}

// Types returns the type registry this arena declares nodes against.
func (a *Arena) Types() *types.Registry { return a.types }

func (a *Arena) checkName(kind, name string) {
	if _, ok := a.names[name]; ok {
		a.sink.Fatal("%s %q already declared in this translation unit", kind, name)
	}
	a.names[name] = struct{}{}
}

func (a *Arena) emplaceStmt(s Stmt) Stmt {
	a.stmts = append(a.stmts, s)
	if a.db != nil {
		a.db.stmts = append(a.db.stmts, s)
	}
	return s
}

func (a *Arena) emplaceDecl(d Decl) Decl {
	a.decls = append(a.decls, d)
	if a.db != nil {
		a.db.decls = append(a.db.decls, d)
	}
	return d
}

func (a *Arena) emplaceAttr(at Attr) Attr {
	a.attrs = append(a.attrs, at)
	if a.db != nil {
		a.db.attrs = append(a.db.attrs, at)
	}
	return at
}

// Decls returns every declaration emplaced into this arena, in
// declaration order. The code generator core walks this slice to emit
// globals, type declarations and functions.
func (a *Arena) Decls() []Decl { return a.decls }

// NewVar declares a local or (IsGlobal) global plain variable. Inout is
// a parameter-passing qualifier only; a variable declared with it is a
// QualifierViolation.
func (a *Arena) NewVar(name string, typ types.Handle, qual Qualifier, init Expr, isGlobal bool) *VarDecl {
	a.checkName("variable", name)
	if typ == types.Invalid {
		a.sink.Fatal("variable %q declared with a null type", name)
	}
	if qual == QualInOut {
		a.sink.Fatal("%s", NewErrorWithContext(QualifierViolation, name, "inout is not valid on a variable declaration"))
	}
	d := &VarDecl{Name: name, Type: typ, Qualifier: qual, Init: init, IsGlobal: isGlobal}
	a.emplaceDecl(d)
	return d
}

// NewParam declares a function or method parameter. Parameters are not
// name-checked against the translation unit's global namespace; a
// caller wanting intra-signature uniqueness checks that separately.
// Inout on a resource-typed parameter is a QualifierViolation: HLSL
// forbids inout on buffers, textures, samplers and the like.
func (a *Arena) NewParam(name string, typ types.Handle, qual Qualifier, attrs ...Attr) *ParamDecl {
	if typ == types.Invalid {
		a.sink.Fatal("parameter %q declared with a null type", name)
	}
	if qual == QualInOut && a.types.Lookup(typ).IsResource() {
		a.sink.Fatal("%s", NewErrorWithContext(QualifierViolation, name, "inout is not valid on a resource parameter"))
	}
	return &ParamDecl{Name: name, Type: typ, Qualifier: qual, Attrs: attrs}
}

// NewFunction declares a free function. Body may be nil for a
// forward-declared intrinsic; in that case the code generator core must
// never be asked to emit it (it's a catalog entry, not a client
// declaration).
func (a *Arena) NewFunction(name string, params []*ParamDecl, ret types.Handle, body *Block, attrs ...Attr) *FunctionDecl {
	a.checkName("function", name)
	d := &FunctionDecl{Name: name, Params: params, Return: ret, Body: body, Attrs: attrs}
	a.emplaceDecl(d)
	return d
}

// NewMethod declares a method on owner.
func (a *Arena) NewMethod(owner types.Handle, name string, params []*ParamDecl, ret types.Handle, body *Block, isStatic bool) *MethodDecl {
	if owner == types.Invalid {
		a.sink.Fatal("method %q declared on a null owner type", name)
	}
	d := &MethodDecl{Owner: owner, Name: name, Params: params, Return: ret, Body: body, IsStatic: isStatic}
	a.emplaceDecl(d)
	return d
}

// NewGlobalResource declares a shader-visible resource global.
func (a *Arena) NewGlobalResource(name string, typ types.Handle, attrs ...Attr) *GlobalResourceDecl {
	a.checkName("resource", name)
	if typ == types.Invalid {
		a.sink.Fatal("resource %q declared with a null type", name)
	}
	d := &GlobalResourceDecl{Name: name, Type: typ, Attrs: attrs}
	a.emplaceDecl(d)
	return d
}

// NewStructDecl attaches field attributes to an already-interned struct
// type.
func (a *Arena) NewStructDecl(typ types.Handle, fieldAttrs ...StructFieldAttrs) *StructDecl {
	d := &StructDecl{Type: typ, FieldAttrs: fieldAttrs}
	a.emplaceDecl(d)
	return d
}

// NewBlock wraps a statement slice into a Block, emplacing each
// statement (and the block itself is not separately emplaced — it is a
// container, not an owned unit; its Stmts are).
func (a *Arena) NewBlock(stmts ...Stmt) *Block {
	for _, s := range stmts {
		a.emplaceStmt(s)
	}
	return &Block{Stmts: stmts}
}

// NewDeclStmt wraps a local VarDecl as a statement.
func (a *Arena) NewDeclStmt(d *VarDecl) *DeclStmt {
	s := &DeclStmt{Decl: d}
	a.emplaceStmt(s)
	return s
}

func (a *Arena) NewReturn(value Expr) *ReturnStmt {
	s := &ReturnStmt{Value: value}
	a.emplaceStmt(s)
	return s
}

func (a *Arena) NewIf(cond Expr, then *Block, els Stmt, attrs ...Attr) *IfStmt {
	s := &IfStmt{Cond: cond, Then: then, Else: els, Attrs: attrs}
	a.emplaceStmt(s)
	return s
}

func (a *Arena) NewFor(init Stmt, cond Expr, post Expr, body *Block, attrs ...Attr) *ForStmt {
	s := &ForStmt{Init: init, Cond: cond, Post: post, Body: body, Attrs: attrs}
	a.emplaceStmt(s)
	return s
}

func (a *Arena) NewWhile(cond Expr, body *Block, attrs ...Attr) *WhileStmt {
	s := &WhileStmt{Cond: cond, Body: body, Attrs: attrs}
	a.emplaceStmt(s)
	return s
}

func (a *Arena) NewBreak() *BreakStmt       { s := &BreakStmt{}; a.emplaceStmt(s); return s }
func (a *Arena) NewContinue() *ContinueStmt { s := &ContinueStmt{}; a.emplaceStmt(s); return s }
func (a *Arena) NewDiscard() *DiscardStmt   { s := &DiscardStmt{}; a.emplaceStmt(s); return s }

// NewConstant creates a literal expression node.
func (a *Arena) NewConstant(typ types.Handle, bits uint64) *ConstantExpr {
	e := &ConstantExpr{Type: typ, Bits: bits}
	a.emplaceStmt(e)
	return e
}

func (a *Arena) NewDeclRef(d Decl, typ types.Handle) *DeclRefExpr {
	e := &DeclRefExpr{Decl: d, Type: typ}
	a.emplaceStmt(e)
	return e
}

func (a *Arena) NewThis(typ types.Handle) *ThisExpr {
	e := &ThisExpr{Type: typ}
	a.emplaceStmt(e)
	return e
}

func (a *Arena) NewUnary(op UnaryOp, operand Expr, resultType types.Handle) *UnaryExpr {
	e := &UnaryExpr{Op: op, Operand: operand, Type: resultType}
	a.emplaceStmt(e)
	return e
}

func (a *Arena) NewBinary(op BinaryOp, left, right Expr, resultType types.Handle) *BinaryExpr {
	e := &BinaryExpr{Op: op, Left: left, Right: right, Type: resultType}
	a.emplaceStmt(e)
	return e
}

func (a *Arena) NewConditional(cond, then, els Expr, resultType types.Handle) *ConditionalExpr {
	e := &ConditionalExpr{Cond: cond, Then: then, Else: els, Type: resultType}
	a.emplaceStmt(e)
	return e
}

func (a *Arena) NewCall(callee Decl, args []Expr, resultType types.Handle) *CallExpr {
	e := &CallExpr{Callee: callee, Args: args, Type: resultType}
	a.emplaceStmt(e)
	return e
}

func (a *Arena) NewMethodCall(receiver Expr, method Decl, args []Expr, resultType types.Handle) *MethodCallExpr {
	e := &MethodCallExpr{Receiver: receiver, Method: method, Args: args, Type: resultType}
	a.emplaceStmt(e)
	return e
}

func (a *Arena) NewConstruct(typ types.Handle, args []Expr) *ConstructExpr {
	if typ == types.Invalid {
		a.sink.Fatal("construct expression with a null type")
	}
	e := &ConstructExpr{Type: typ, Args: args}
	a.emplaceStmt(e)
	return e
}

func (a *Arena) NewInitList(typ types.Handle, elements []Expr) *InitListExpr {
	e := &InitListExpr{Type: typ, Elements: elements}
	a.emplaceStmt(e)
	return e
}

func (a *Arena) NewAccess(base, index Expr, resultType types.Handle, bindless bool) *AccessExpr {
	e := &AccessExpr{Base: base, Index: index, Type: resultType, Bindless: bindless}
	a.emplaceStmt(e)
	return e
}

func (a *Arena) NewField(base Expr, fieldIndex int, fieldName string, resultType types.Handle) *FieldExpr {
	e := &FieldExpr{Base: base, FieldIndex: fieldIndex, FieldName: fieldName, Type: resultType}
	a.emplaceStmt(e)
	return e
}

func (a *Arena) NewSwizzle(base Expr, components []uint8, resultType types.Handle) *SwizzleExpr {
	if len(components) == 0 || len(components) > 4 {
		a.sink.Fatal("swizzle must select 1 to 4 components, got %d", len(components))
	}
	e := &SwizzleExpr{Base: base, Components: components, Type: resultType}
	a.emplaceStmt(e)
	return e
}

func (a *Arena) NewCast(kind CastKind, operand Expr, resultType types.Handle) *CastExpr {
	e := &CastExpr{Kind: kind, Operand: operand, Type: resultType}
	a.emplaceStmt(e)
	return e
}

// NewSemanticAttr, NewInterpolationAttr, etc. are thin emplace wrappers
// so every node - including attributes - is created through the arena,
// matching the owning-arena invariant the rest of the factory API
// follows.
func (a *Arena) NewSemanticAttr(sem types.SemanticType, index uint32) *SemanticAttr {
	at := &SemanticAttr{Semantic: sem, Index: index}
	a.emplaceAttr(at)
	return at
}

func (a *Arena) NewInterpolationAttr(mode types.InterpolationMode) *InterpolationAttr {
	at := &InterpolationAttr{Mode: mode}
	a.emplaceAttr(at)
	return at
}

func (a *Arena) NewBindingAttr(space, register *uint32) *BindingAttr {
	at := &BindingAttr{Space: space, Register: register}
	a.emplaceAttr(at)
	return at
}

func (a *Arena) NewPushConstantAttr() *PushConstantAttr {
	at := &PushConstantAttr{}
	a.emplaceAttr(at)
	return at
}

func (a *Arena) NewBindlessAttr() *BindlessAttr {
	at := &BindlessAttr{}
	a.emplaceAttr(at)
	return at
}

func (a *Arena) NewLoopControlAttr(kind LoopControlKind, count uint32) *LoopControlAttr {
	at := &LoopControlAttr{Kind: kind, Count: count}
	a.emplaceAttr(at)
	return at
}

func (a *Arena) NewStageAttr(stage Stage, kernelSize [3]uint32) *StageAttr {
	at := &StageAttr{Stage: stage, KernelSize: kernelSize}
	a.emplaceAttr(at)
	return at
}

// Database aggregates multiple Arenas for multi-file compilation,
// sharing one type registry and one diagnostics sink across all of
// them. A node created by one Arena must never be referenced from
// another Arena belonging to a different Database; nodes do not carry
// an explicit owner stamp, so this invariant is a documented
// discipline rather than a runtime-checked one (see DESIGN.md).
type Database struct {
	reg    *types.Registry
	sink   diag.Sink
	arenas []*Arena

	stmts []Stmt
	decls []Decl
	attrs []Attr

	nextID uint32
}

// NewDatabase creates a Database whose arenas all share reg and sink.
func NewDatabase(reg *types.Registry, sink diag.Sink) *Database {
	if sink == nil {
		sink = diag.NopSink{}
	}
	return &Database{reg: reg, sink: sink}
}

// NewArena creates an Arena owned by this Database.
func (db *Database) NewArena() *Arena {
	a := &Arena{
		id:    db.nextID,
		db:    db,
		types: db.reg,
		sink:  db.sink,
		names: make(map[string]struct{}, 64),
	}
	db.nextID++
	db.arenas = append(db.arenas, a)
	return a
}

// Arenas returns every arena created by this Database, in creation
// order.
func (db *Database) Arenas() []*Arena { return db.arenas }

// Decls returns every declaration emplaced into any arena of this
// Database, across all translation units, in emplacement order.
func (db *Database) Decls() []Decl { return db.decls }
