// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/binding"
	"github.com/gogpu/cppsl/types"
)

// swizzleLetters indexes into Base's vector, matching the x/y/z/w
// component order every bootstrap vector uses regardless of scalar
// family.
var swizzleLetters = [4]byte{'x', 'y', 'z', 'w'}

// Backend implements codegen.Backend for the HLSL target. It owns the
// binding-allocator results and the constructor-helper/bitcast facts a
// prior moduleScan collected, so EmitPreamble can synthesize exactly the
// helpers a module actually needs.
type Backend struct {
	reg   *types.Registry
	opts  *Options
	scan  *moduleScan
	slots map[*ast.GlobalResourceDecl]binding.Slot
}

// NewBackend builds a Backend ready to drive codegen.EmitModule over
// arena. Compile is the normal entry point; NewBackend is exported
// separately for callers that want to drive codegen.EmitModule
// themselves (e.g. to emit into an existing SourceBuilder).
func NewBackend(reg *types.Registry, opts *Options, scan *moduleScan, slots map[*ast.GlobalResourceDecl]binding.Slot) *Backend {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Backend{reg: reg, opts: opts, scan: scan, slots: slots}
}

// EmitExpr renders e as an inline HLSL expression fragment.
func (b *Backend) EmitExpr(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.ConstantExpr:
		return b.literalText(n)

	case *ast.DeclRefExpr:
		return declRefName(n.Decl)

	case *ast.ThisExpr:
		return "this"

	case *ast.UnaryExpr:
		return b.unaryText(n)

	case *ast.BinaryExpr:
		return b.binaryText(n)

	case *ast.ConditionalExpr:
		return fmt.Sprintf("(%s ? %s : %s)", b.EmitExpr(n.Cond), b.EmitExpr(n.Then), b.EmitExpr(n.Else))

	case *ast.CallExpr:
		return b.callText(n)

	case *ast.MethodCallExpr:
		return fmt.Sprintf("%s.%s(%s)", b.EmitExpr(n.Receiver), calleeName(n.Method), b.argList(n.Args))

	case *ast.ConstructExpr:
		return b.constructText(n)

	case *ast.InitListExpr:
		return "{ " + b.argList(n.Elements) + " }"

	case *ast.AccessExpr:
		idx := b.EmitExpr(n.Index)
		if n.Bindless {
			idx = "NonUniformResourceIndex(" + idx + ")"
		}
		return fmt.Sprintf("%s[%s]", b.EmitExpr(n.Base), idx)

	case *ast.FieldExpr:
		return fmt.Sprintf("%s.%s", b.EmitExpr(n.Base), n.FieldName)

	case *ast.SwizzleExpr:
		letters := make([]byte, len(n.Components))
		for i, c := range n.Components {
			letters[i] = swizzleLetters[c&3]
		}
		return fmt.Sprintf("%s.%s", b.EmitExpr(n.Base), string(letters))

	case *ast.CastExpr:
		return b.castText(n)

	default:
		return "/* unreachable expression */"
	}
}

func (b *Backend) argList(args []ast.Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = b.EmitExpr(a)
	}
	return strings.Join(parts, ", ")
}

func declRefName(d ast.Decl) string {
	switch v := d.(type) {
	case *ast.VarDecl:
		return v.Name
	case *ast.ParamDecl:
		return v.Name
	default:
		return "/* unknown decl ref */"
	}
}

func calleeName(d ast.Decl) string {
	switch f := d.(type) {
	case *ast.SpecializedFunctionDecl:
		return f.Name
	case *ast.SpecializedMethodDecl:
		return f.Name
	case *ast.FunctionDecl:
		return f.Name
	case *ast.MethodDecl:
		return f.Name
	default:
		return "/* unknown callee */"
	}
}

// literalText spells a ConstantExpr's bit pattern per its scalar family.
// Vector/matrix constants never reach ConstantExpr directly (a client
// builds them with ConstructExpr), so only scalar families are handled.
func (b *Backend) literalText(c *ast.ConstantExpr) string {
	e := b.reg.Lookup(c.Type)
	switch e.Scalar {
	case types.ScalarBool:
		if c.Bits != 0 {
			return "true"
		}
		return "false"
	case types.ScalarFloat, types.ScalarHalf:
		return fmt.Sprintf("%gf", float64FromBits(c.Bits))
	case types.ScalarInt, types.ScalarInt64:
		return fmt.Sprintf("%d", int64(c.Bits))
	case types.ScalarUInt, types.ScalarUInt64:
		return fmt.Sprintf("%du", c.Bits)
	default:
		return fmt.Sprintf("%d", c.Bits)
	}
}

// constructText renders a ConstructExpr. Array construction desugars to
// the preamble's templated make_arrayN<T,N> helper; vector construction
// desugars to a synthesized T::New, widened per HLSL's scalar-broadening
// rules (a lone scalar argument broadcasts to every component, no
// arguments zero-fills); struct and matrix construction forward straight
// to HLSL's own constructor syntax.
func (b *Backend) constructText(n *ast.ConstructExpr) string {
	name := typeName(b.reg, n.Type)
	entry := b.reg.Lookup(n.Type)
	switch entry.Kind {
	case types.KindArray:
		elemName := typeName(b.reg, entry.Element)
		return fmt.Sprintf("make_array%d<%s, %d>(%s)", entry.Count, elemName, entry.Count, b.argList(n.Args))
	case types.KindVector:
		return fmt.Sprintf("%s::New(%s)", name, b.vectorConstructArgs(entry, n.Args))
	default:
		return fmt.Sprintf("%s(%s)", name, b.argList(n.Args))
	}
}

// vectorConstructArgs implements HLSL's scalar-broadening construction
// rules for the synthesized T::New overload, which always takes exactly
// entry.Count positional components: a single scalar argument broadcasts
// to every component, and no arguments at all zero-fills every component.
func (b *Backend) vectorConstructArgs(entry types.Type, args []ast.Expr) string {
	switch len(args) {
	case 0:
		zero := zeroLiteral(b.reg.Lookup(entry.Element).Scalar)
		parts := make([]string, entry.Count)
		for i := range parts {
			parts[i] = zero
		}
		return strings.Join(parts, ", ")
	case 1:
		if b.reg.Lookup(args[0].ResultType()).Kind == types.KindScalar {
			one := b.EmitExpr(args[0])
			parts := make([]string, entry.Count)
			for i := range parts {
				parts[i] = one
			}
			return strings.Join(parts, ", ")
		}
		return b.argList(args)
	default:
		return b.argList(args)
	}
}

// zeroLiteral spells a scalar family's zero value. It follows
// literalText's suffix conventions except for floats, which it spells
// "0.0f" where literalText prints a zero constant as "0f".
func zeroLiteral(fam types.ScalarFamily) string {
	switch fam {
	case types.ScalarBool:
		return "false"
	case types.ScalarFloat, types.ScalarHalf:
		return "0.0f"
	case types.ScalarUInt, types.ScalarUInt64:
		return "0u"
	default:
		return "0"
	}
}

func float64FromBits(bits uint64) float64 {
	// Constants are carried as 32-bit IEEE-754 bit patterns reinterpreted
	// into the low 32 bits (see ast.ConstantExpr's doc comment).
	return float64(math.Float32frombits(uint32(bits)))
}

func (b *Backend) unaryText(n *ast.UnaryExpr) string {
	operand := b.EmitExpr(n.Operand)
	switch n.Op {
	case ast.UnaryNegate:
		return "-" + operand
	case ast.UnaryNot:
		return "!" + operand
	case ast.UnaryBitwiseNot:
		return "~" + operand
	case ast.UnaryPreIncrement:
		return "++" + operand
	case ast.UnaryPreDecrement:
		return "--" + operand
	case ast.UnaryPostIncrement:
		return operand + "++"
	case ast.UnaryPostDecrement:
		return operand + "--"
	default:
		return operand
	}
}

var binaryOperatorText = map[ast.BinaryOp]string{
	ast.BinaryAdd: "+", ast.BinarySub: "-", ast.BinaryMul: "*", ast.BinaryDiv: "/", ast.BinaryMod: "%",
	ast.BinaryAnd: "&&", ast.BinaryOr: "||",
	ast.BinaryBitwiseAnd: "&", ast.BinaryBitwiseOr: "|", ast.BinaryBitwiseXor: "^",
	ast.BinaryShl: "<<", ast.BinaryShr: ">>",
	ast.BinaryEq: "==", ast.BinaryNeq: "!=", ast.BinaryLt: "<", ast.BinaryLe: "<=", ast.BinaryGt: ">", ast.BinaryGe: ">=",
	ast.BinaryAssign: "=", ast.BinaryAddAssign: "+=", ast.BinarySubAssign: "-=",
	ast.BinaryMulAssign: "*=", ast.BinaryDivAssign: "/=",
}

// binaryText rewrites a matrix-by-vector or matrix-by-matrix
// multiplication to mul(), HLSL's required spelling for linear-algebra
// products; every other operator is a plain infix expression.
func (b *Backend) binaryText(n *ast.BinaryExpr) string {
	if n.Op == ast.BinaryMul && b.isMatrixOperand(n.Left, n.Right) {
		return fmt.Sprintf("mul(%s, %s)", b.EmitExpr(n.Left), b.EmitExpr(n.Right))
	}
	if n.Op == ast.BinaryMulAssign && b.isMatrixOperand(n.Left, n.Right) {
		left := b.EmitExpr(n.Left)
		return fmt.Sprintf("%s = mul(%s, %s)", left, left, b.EmitExpr(n.Right))
	}
	op := binaryOperatorText[n.Op]
	if op == "" {
		op = "?"
	}
	return fmt.Sprintf("(%s %s %s)", b.EmitExpr(n.Left), op, b.EmitExpr(n.Right))
}

func (b *Backend) isMatrixOperand(left, right ast.Expr) bool {
	return b.reg.Lookup(left.ResultType()).Kind == types.KindMatrix ||
		b.reg.Lookup(right.ResultType()).Kind == types.KindMatrix
}

// asCastFunction resolves the as{float,int,uint} family used for a
// bitwise reinterpretation cast to fam.
func asCastFunction(fam types.ScalarFamily) string {
	switch fam {
	case types.ScalarFloat, types.ScalarHalf:
		return "asfloat"
	case types.ScalarInt, types.ScalarInt64:
		return "asint"
	default:
		return "asuint"
	}
}

func (b *Backend) castText(n *ast.CastExpr) string {
	operand := b.EmitExpr(n.Operand)
	switch n.Kind {
	case ast.CastBitwise:
		e := b.reg.Lookup(n.Type)
		fam := e.Scalar
		if e.Kind == types.KindVector {
			fam = b.reg.Lookup(e.Element).Scalar
		}
		return fmt.Sprintf("%s(%s)", asCastFunction(fam), operand)
	default: // CastStatic, CastImplicit
		return fmt.Sprintf("(%s)%s", typeName(b.reg, n.Type), operand)
	}
}

// callText renders a CallExpr. Buffer, texture, ray-query and bitcast
// intrinsics don't have call-shaped HLSL spellings (indexing, method
// calls, asfloat/asint/asuint), so each family is intercepted here
// before falling through to a plain `name(args)` rendering.
func (b *Backend) callText(n *ast.CallExpr) string {
	name := calleeName(n.Callee)
	args := n.Args

	switch {
	case name == "BUFFER_READ":
		return fmt.Sprintf("%s[%s]", b.EmitExpr(args[0]), b.EmitExpr(args[1]))
	case name == "BUFFER_WRITE":
		return fmt.Sprintf("%s[%s] = %s", b.EmitExpr(args[0]), b.EmitExpr(args[1]), b.EmitExpr(args[2]))
	case name == "BYTE_BUFFER_READ":
		return fmt.Sprintf("%s.Load(%s)", b.EmitExpr(args[0]), b.EmitExpr(args[1]))
	case name == "BYTE_BUFFER_WRITE":
		return fmt.Sprintf("%s.Store(%s, %s)", b.EmitExpr(args[0]), b.EmitExpr(args[1]), b.EmitExpr(args[2]))
	case strings.HasPrefix(name, "BYTE_BUFFER_LOAD"):
		return fmt.Sprintf("%s.Load%s(%s)", b.EmitExpr(args[0]), strings.TrimPrefix(name, "BYTE_BUFFER_LOAD"), b.EmitExpr(args[1]))
	case strings.HasPrefix(name, "BYTE_BUFFER_STORE"):
		return fmt.Sprintf("%s.Store%s(%s, %s)", b.EmitExpr(args[0]), strings.TrimPrefix(name, "BYTE_BUFFER_STORE"), b.EmitExpr(args[1]), b.EmitExpr(args[2]))

	case name == "TEXTURE_READ":
		return fmt.Sprintf("%s[%s]", b.EmitExpr(args[0]), b.EmitExpr(args[1]))
	case name == "TEXTURE_WRITE":
		return fmt.Sprintf("%s[%s] = %s", b.EmitExpr(args[0]), b.EmitExpr(args[1]), b.EmitExpr(args[2]))
	case name == "TEXTURE_SIZE":
		return textureSizeText(b, args[0])
	case name == "SAMPLE2D":
		return fmt.Sprintf("%s.Sample(%s, %s)", b.EmitExpr(args[0]), b.EmitExpr(args[1]), b.EmitExpr(args[2]))

	case strings.HasPrefix(name, "RAY_QUERY_"):
		return b.rayQueryCallText(name, args)

	case strings.HasPrefix(name, "BITCAST_TO_"):
		fam := bitcastTargetFamily(name)
		return fmt.Sprintf("%s(%s)", asCastFunction(fam), b.EmitExpr(args[0]))

	case name == "SELECT":
		return fmt.Sprintf("(%s ? %s : %s)", b.EmitExpr(args[2]), b.EmitExpr(args[0]), b.EmitExpr(args[1]))
	case name == "LENGTH_SQUARED":
		v := b.EmitExpr(args[0])
		return fmt.Sprintf("dot(%s, %s)", v, v)

	default:
		return fmt.Sprintf("%s(%s)", builtinCallName(name), b.argList(args))
	}
}

func bitcastTargetFamily(name string) types.ScalarFamily {
	switch name {
	case "BITCAST_TO_FLOAT":
		return types.ScalarFloat
	case "BITCAST_TO_INT":
		return types.ScalarInt
	default:
		return types.ScalarUInt
	}
}

func textureSizeText(b *Backend, tex ast.Expr) string {
	// HLSL's GetDimensions is a void out-parameter call, not an
	// expression; this backend instead exposes TEXTURE_SIZE as if it
	// were a two-step temporary-free helper macro emitted inline. A
	// client wanting the real GetDimensions out-parameter form can still
	// call the method directly via MethodCallExpr.
	return fmt.Sprintf("__texture_size(%s)", b.EmitExpr(tex))
}

func (b *Backend) rayQueryCallText(name string, args []ast.Expr) string {
	rq := b.EmitExpr(args[0])
	switch name {
	case "RAY_QUERY_TRACE_INLINE":
		return fmt.Sprintf("%s.TraceRayInline(%s, %s, %s)", rq, b.EmitExpr(args[1]), b.EmitExpr(args[2]), b.EmitExpr(args[3]))
	case "RAY_QUERY_PROCEED":
		return rq + ".Proceed()"
	case "RAY_QUERY_ABORT":
		return rq + ".Abort()"
	case "RAY_QUERY_COMMITTED_STATUS":
		return rq + ".CommittedStatus()"
	case "RAY_QUERY_CANDIDATE_TYPE":
		return rq + ".CandidateType()"
	case "RAY_QUERY_COMMIT_NON_OPAQUE_TRIANGLE_HIT":
		return rq + ".CommitNonOpaqueTriangleHit()"
	case "RAY_QUERY_COMMIT_PROCEDURAL_PRIMITIVE_HIT":
		return fmt.Sprintf("%s.CommitProceduralPrimitiveHit(%s)", rq, b.EmitExpr(args[1]))
	case "RAY_QUERY_CANDIDATE_TRIANGLE_RAY_T":
		return rq + ".CandidateTriangleRayT()"
	case "RAY_QUERY_COMMITTED_RAY_T":
		return rq + ".CommittedRayT()"
	case "RAY_QUERY_CANDIDATE_INSTANCE_INDEX":
		return rq + ".CandidateInstanceIndex()"
	case "RAY_QUERY_COMMITTED_INSTANCE_INDEX":
		return rq + ".CommittedInstanceIndex()"
	case "RAY_QUERY_CANDIDATE_PRIMITIVE_INDEX":
		return rq + ".CandidatePrimitiveIndex()"
	case "RAY_QUERY_COMMITTED_PRIMITIVE_INDEX":
		return rq + ".CommittedPrimitiveIndex()"
	case "RAY_QUERY_CANDIDATE_OBJECT_TO_WORLD_3X4":
		return rq + ".CandidateObjectToWorld3x4()"
	case "RAY_QUERY_COMMITTED_OBJECT_TO_WORLD_3X4":
		return rq + ".CommittedObjectToWorld3x4()"
	default:
		return rq + "./* unknown ray query op */()"
	}
}
