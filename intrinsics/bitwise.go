// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package intrinsics

import "github.com/gogpu/cppsl/generics"

func (c *Catalog) declareBitwise() {
	intF := func() *generics.Concept { return generics.IsIntegerFamily("integer") }
	for _, name := range []string{"CLZ", "CTZ", "POPCOUNT", "REVERSEBITS"} {
		c.add(name, []*generics.Concept{intF()}, generics.ReturnFirstArgType)
	}
}
