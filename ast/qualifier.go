// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

// Qualifier marks how a parameter or variable binds a value: by value,
// by const reference, by mutable reference, or as an in/out parameter.
// Concepts (generics.Concept) validate against the pair (Qualifier, type),
// not type alone, so the same template can require In-only on one slot
// and InOut on another.
type Qualifier uint8

const (
	QualNone Qualifier = iota
	QualIn
	QualOut
	QualInOut
	QualConst
)

func (q Qualifier) String() string {
	switch q {
	case QualIn:
		return "in"
	case QualOut:
		return "out"
	case QualInOut:
		return "inout"
	case QualConst:
		return "const"
	default:
		return ""
	}
}

// Stage identifies which shader stage a FunctionDecl is an entry point
// for. StageNone marks an ordinary (non-entry) function.
type Stage uint8

const (
	StageNone Stage = iota
	StageVertex
	StageFragment
	StageCompute
	StageGeometry
	StageHull
	StageDomain
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	case StageGeometry:
		return "geometry"
	case StageHull:
		return "hull"
	case StageDomain:
		return "domain"
	default:
		return "none"
	}
}
