// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

import "github.com/gogpu/cppsl/types"

// Expr is the tagged-union expression node. Every variant also
// implements Stmt (an expression is a valid statement on its own,
// mirroring a bare expression-statement in C-like languages) so a
// Stmt slice can mix control-flow nodes and plain expression
// statements without a wrapper node.
type Expr interface {
	Stmt
	exprNode()
	// ResultType returns the type of the value this expression
	// produces. Never Invalid for a well-formed expression; a builder
	// that cannot resolve a result type raises NullTypeBinding instead
	// of returning Invalid.
	ResultType() types.Handle
}

// UnaryOp enumerates the restricted shading language's unary operators.
type UnaryOp uint8

const (
	UnaryNegate UnaryOp = iota
	UnaryNot
	UnaryBitwiseNot
	UnaryPreIncrement
	UnaryPreDecrement
	UnaryPostIncrement
	UnaryPostDecrement
)

// BinaryOp enumerates the restricted shading language's binary and
// compound-assignment operators.
type BinaryOp uint8

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryAnd
	BinaryOr
	BinaryBitwiseAnd
	BinaryBitwiseOr
	BinaryBitwiseXor
	BinaryShl
	BinaryShr
	BinaryEq
	BinaryNeq
	BinaryLt
	BinaryLe
	BinaryGt
	BinaryGe
	BinaryAssign
	BinaryAddAssign
	BinarySubAssign
	BinaryMulAssign
	BinaryDivAssign
)

// IsCompoundAssign reports whether op mutates its left operand.
func (op BinaryOp) IsCompoundAssign() bool {
	switch op {
	case BinaryAssign, BinaryAddAssign, BinarySubAssign, BinaryMulAssign, BinaryDivAssign:
		return true
	default:
		return false
	}
}

// ConstantExpr is a literal value of a scalar or vector type.
type ConstantExpr struct {
	Type types.Handle
	// Bits holds the value's bit pattern, matching the scalar literal
	// encoding used throughout the pack (bool: 0/1, signed ints:
	// two's-complement reinterpretation, floats: IEEE-754 bit pattern).
	Bits uint64
}

func (*ConstantExpr) stmtNode()             {}
func (*ConstantExpr) exprNode()             {}
func (e *ConstantExpr) ResultType() types.Handle { return e.Type }

// DeclRefExpr refers to a previously declared variable or parameter.
type DeclRefExpr struct {
	Decl Decl
	Type types.Handle
}

func (*DeclRefExpr) stmtNode()             {}
func (*DeclRefExpr) exprNode()             {}
func (e *DeclRefExpr) ResultType() types.Handle { return e.Type }

// ThisExpr refers to the implicit receiver inside a MethodDecl body.
type ThisExpr struct {
	Type types.Handle
}

func (*ThisExpr) stmtNode()             {}
func (*ThisExpr) exprNode()             {}
func (e *ThisExpr) ResultType() types.Handle { return e.Type }

// UnaryExpr applies a UnaryOp to one operand.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
	Type    types.Handle
}

func (*UnaryExpr) stmtNode()             {}
func (*UnaryExpr) exprNode()             {}
func (e *UnaryExpr) ResultType() types.Handle { return e.Type }

// BinaryExpr applies a BinaryOp to two operands. Matrix x vector
// rewriting to mul() is purely an HLSL backend concern (C7); at the
// node-model level this is a plain BinaryExpr regardless of operand
// type.
type BinaryExpr struct {
	Op          BinaryOp
	Left, Right Expr
	Type        types.Handle
}

func (*BinaryExpr) stmtNode()             {}
func (*BinaryExpr) exprNode()             {}
func (e *BinaryExpr) ResultType() types.Handle { return e.Type }

// ConditionalExpr is the ternary `cond ? then : else` expression.
type ConditionalExpr struct {
	Cond, Then, Else Expr
	Type             types.Handle
}

func (*ConditionalExpr) stmtNode()             {}
func (*ConditionalExpr) exprNode()             {}
func (e *ConditionalExpr) ResultType() types.Handle { return e.Type }

// CallExpr invokes a specialized free function (the result of
// generics.Template.Specialize on a FunctionDecl, including intrinsic
// catalog entries).
type CallExpr struct {
	Callee Decl // *FunctionDecl, usually a SpecializedFunctionDecl
	Args   []Expr
	Type   types.Handle
}

func (*CallExpr) stmtNode()             {}
func (*CallExpr) exprNode()             {}
func (e *CallExpr) ResultType() types.Handle { return e.Type }

// MethodCallExpr invokes a method on Receiver.
type MethodCallExpr struct {
	Receiver Expr
	Method   Decl // *MethodDecl, usually a SpecializedMethodDecl
	Args     []Expr
	Type     types.Handle
}

func (*MethodCallExpr) stmtNode()             {}
func (*MethodCallExpr) exprNode()             {}
func (e *MethodCallExpr) ResultType() types.Handle { return e.Type }

// ConstructExpr builds a value of Type from Args: T(args...). The HLSL
// backend renders a vector construction as a call to a synthesized
// T::New static method and an array construction as a call to the
// preamble's make_arrayN<T, N> helper; struct and matrix construction
// forward straight to HLSL's own constructor syntax since those already
// accept the same argument shape a ConstructExpr carries.
type ConstructExpr struct {
	Type types.Handle
	Args []Expr
}

func (*ConstructExpr) stmtNode()             {}
func (*ConstructExpr) exprNode()             {}
func (e *ConstructExpr) ResultType() types.Handle { return e.Type }

// InitListExpr is a brace-init list `{a, b, c}` used to initialize an
// array or struct without going through a constructor call.
type InitListExpr struct {
	Type     types.Handle
	Elements []Expr
}

func (*InitListExpr) stmtNode()             {}
func (*InitListExpr) exprNode()             {}
func (e *InitListExpr) ResultType() types.Handle { return e.Type }

// AccessExpr indexes Base with Index: `base[index]`. Used for array
// indexing and for resource element access (buffer/texture reads before
// the HLSL backend rewrites them through the intrinsic catalog).
type AccessExpr struct {
	Base, Index Expr
	Type        types.Handle
	// Bindless marks that Base's type is a zero-length resource array;
	// the HLSL backend wraps Index in NonUniformResourceIndex(...).
	Bindless bool
}

func (*AccessExpr) stmtNode()             {}
func (*AccessExpr) exprNode()             {}
func (e *AccessExpr) ResultType() types.Handle { return e.Type }

// FieldExpr accesses a named struct field: `base.field`.
type FieldExpr struct {
	Base       Expr
	FieldIndex int
	FieldName  string
	Type       types.Handle
}

func (*FieldExpr) stmtNode()             {}
func (*FieldExpr) exprNode()             {}
func (e *FieldExpr) ResultType() types.Handle { return e.Type }

// SwizzleExpr selects and reorders vector components: `base.xyz`.
type SwizzleExpr struct {
	Base       Expr
	Components []uint8 // indices into Base's vector, 0..3
	Type       types.Handle
}

func (*SwizzleExpr) stmtNode()             {}
func (*SwizzleExpr) exprNode()             {}
func (e *SwizzleExpr) ResultType() types.Handle { return e.Type }

// CastKind distinguishes the three cast flavors the node model carries.
type CastKind uint8

const (
	CastStatic CastKind = iota
	CastBitwise
	CastImplicit
)

// CastExpr converts Operand to Type. StaticCast is an explicit numeric
// conversion, BitwiseCast reinterprets the bit pattern (bit_cast<T>()),
// ImplicitCast marks an automatic widening conversion (e.g. int ->
// float). Arena.NewCast builds all three kinds on request; no builder
// inserts an ImplicitCast on its own.
type CastExpr struct {
	Kind    CastKind
	Operand Expr
	Type    types.Handle
}

func (*CastExpr) stmtNode()             {}
func (*CastExpr) exprNode()             {}
func (e *CastExpr) ResultType() types.Handle { return e.Type }
