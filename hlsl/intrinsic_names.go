// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import "strings"

// builtinCallNames overrides the catalog identifier's lowercase spelling
// for the handful of intrinsics whose HLSL builtin name doesn't just
// drop case (bit-manipulation family), or that fold onto a differently
// named builtin.
var builtinCallNames = map[string]string{
	"CLZ":      "firstbithigh",
	"CTZ":      "firstbitlow",
	"POPCOUNT": "countbits",
	"COPYSIGN": "copysign",
}

// isPassthroughCall reports whether name is a catalog identifier that is
// already spelled exactly as its HLSL builtin (Interlocked*, Wave*,
// Quad*, the memory-barrier family).
func isPassthroughCall(name string) bool {
	switch {
	case strings.HasPrefix(name, "Interlocked"),
		strings.HasPrefix(name, "Wave"),
		strings.HasPrefix(name, "Quad"),
		strings.HasSuffix(name, "MemoryBarrier"),
		strings.HasSuffix(name, "MemoryBarrierWithGroupSync"):
		return true
	default:
		return false
	}
}

// builtinCallName resolves name (a catalog identifier) to the text used
// as the callee in a plain `name(args...)` rendering. Buffer, texture,
// ray-query and bitcast intrinsics never reach this path - callText
// intercepts them first with their own non-call-shaped syntax.
func builtinCallName(name string) string {
	if isPassthroughCall(name) {
		return name
	}
	if override, ok := builtinCallNames[name]; ok {
		return override
	}
	return strings.ToLower(name)
}
