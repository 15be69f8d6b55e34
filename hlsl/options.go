// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package hlsl implements the HLSL target backend (C7): matrix x vector
// rewriting to mul(), constructor desugaring, array-constructor helper
// synthesis, vector broadening, bindless NonUniformResourceIndex
// wrapping, the stage/semantic table, and the two-level binding
// allocator wiring (C8).
package hlsl

import "github.com/gogpu/cppsl/diag"

// ShaderModel names an HLSL shader model target. Gating individual
// intrinsics by shader model is not part of this backend's scope; the
// value is surfaced in the generated header comment and is available
// for a caller that wants to branch on it upstream.
type ShaderModel uint8

const (
	ShaderModel5_0 ShaderModel = iota
	ShaderModel5_1
	ShaderModel6_0
	ShaderModel6_1
	ShaderModel6_2
	ShaderModel6_3
	ShaderModel6_4
	ShaderModel6_5
	ShaderModel6_6
)

func (s ShaderModel) String() string {
	switch s {
	case ShaderModel5_0:
		return "SM 5.0"
	case ShaderModel5_1:
		return "SM 5.1"
	case ShaderModel6_0:
		return "SM 6.0"
	case ShaderModel6_1:
		return "SM 6.1"
	case ShaderModel6_2:
		return "SM 6.2"
	case ShaderModel6_3:
		return "SM 6.3"
	case ShaderModel6_4:
		return "SM 6.4"
	case ShaderModel6_5:
		return "SM 6.5"
	case ShaderModel6_6:
		return "SM 6.6"
	default:
		return "SM ?"
	}
}

// Options configures HLSL generation.
type Options struct {
	// ShaderModel is surfaced in the header comment only; this backend
	// does not gate intrinsic availability by shader model.
	ShaderModel ShaderModel

	// DefaultRegisterSpace is the space regular (non-bindless,
	// non-push-constant) resources are allocated into when nothing in
	// the module pins one explicitly.
	DefaultRegisterSpace uint32

	// Diagnostics receives binding-conflict warnings emitted while
	// resolving resource registers. A nil value selects diag.NopSink{}.
	Diagnostics diag.Sink
}

// DefaultOptions returns SM 6.5 targeting register space 0, discarding
// diagnostics.
func DefaultOptions() *Options {
	return &Options{ShaderModel: ShaderModel6_5, DefaultRegisterSpace: 0, Diagnostics: diag.NopSink{}}
}
