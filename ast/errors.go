// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

import "fmt"

// ErrorKind enumerates the fixed diagnosis taxonomy every package under
// this module reuses: the AST builder, the generics engine, the binding
// allocator and every backend report through these ten kinds.
type ErrorKind uint8

const (
	LexicalCollision ErrorKind = iota
	DuplicateDeclaration
	NullTypeBinding
	ConceptMismatch
	ArityMismatch
	QualifierViolation
	InvalidSemantic
	BindingConflict
	UnknownNamedType
	CodegenUnreachable
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalCollision:
		return "LexicalCollision"
	case DuplicateDeclaration:
		return "DuplicateDeclaration"
	case NullTypeBinding:
		return "NullTypeBinding"
	case ConceptMismatch:
		return "ConceptMismatch"
	case ArityMismatch:
		return "ArityMismatch"
	case QualifierViolation:
		return "QualifierViolation"
	case InvalidSemantic:
		return "InvalidSemantic"
	case BindingConflict:
		return "BindingConflict"
	case UnknownNamedType:
		return "UnknownNamedType"
	case CodegenUnreachable:
		return "CodegenUnreachable"
	default:
		return "ErrorKind?"
	}
}

// Error is the concrete error type fallible operations in this module
// return. Invariant violations reported through diag.Sink.Fatal do not
// carry an Error: the diag sinks panic with a *diag.PanicError holding
// the formatted message.
type Error struct {
	Kind    ErrorKind
	Message string
	// Context names the declaration, argument index, or node the error
	// concerns, for a caller assembling a diagnostic with source
	// location info the AST itself does not carry.
	Context string
}

func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NewErrorWithContext(kind ErrorKind, context, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Context: context}
}

func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Context)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) IsLexicalCollision() bool     { return e.Kind == LexicalCollision }
func (e *Error) IsDuplicateDeclaration() bool { return e.Kind == DuplicateDeclaration }
func (e *Error) IsNullTypeBinding() bool      { return e.Kind == NullTypeBinding }
func (e *Error) IsConceptMismatch() bool      { return e.Kind == ConceptMismatch }
func (e *Error) IsArityMismatch() bool        { return e.Kind == ArityMismatch }
func (e *Error) IsQualifierViolation() bool   { return e.Kind == QualifierViolation }
func (e *Error) IsInvalidSemantic() bool      { return e.Kind == InvalidSemantic }
func (e *Error) IsBindingConflict() bool      { return e.Kind == BindingConflict }
func (e *Error) IsUnknownNamedType() bool     { return e.Kind == UnknownNamedType }
func (e *Error) IsCodegenUnreachable() bool   { return e.Kind == CodegenUnreachable }
