// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package intrinsics

import "github.com/gogpu/cppsl/generics"

// declareAtomics registers the Interlocked* family. Every one of them
// operates on an InOut integer binding (a groupshared variable or a
// byte/structured buffer element reinterpreted as uint) and returns the
// prior value, matching HLSL's own Interlocked* signatures.
func (c *Catalog) declareAtomics() {
	dest := func() *generics.Concept {
		return generics.WithQualifier(generics.IsIntegerFamily("atomic-destination"), generics.NotConst)
	}
	val := func() *generics.Concept { return generics.IsIntegerFamily("atomic-operand") }

	for _, name := range []string{
		"InterlockedAdd", "InterlockedAnd", "InterlockedOr", "InterlockedXor",
		"InterlockedMin", "InterlockedMax", "InterlockedExchange",
	} {
		c.add(name, []*generics.Concept{dest(), val()}, generics.ReturnFirstArgType)
	}
	c.add("InterlockedCompareExchange", []*generics.Concept{dest(), val(), val()}, generics.ReturnFirstArgType)
}
