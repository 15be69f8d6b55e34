// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package intrinsics

import (
	"fmt"

	"github.com/gogpu/cppsl/generics"
	"github.com/gogpu/cppsl/types"
)

func (c *Catalog) declareBufferAccess() {
	buf := func() *generics.Concept { return generics.IsBufferLike("buffer") }
	mutBuf := func() *generics.Concept {
		return generics.WithQualifier(generics.IsBufferLike("buffer"), generics.NotConst)
	}
	idx := func() *generics.Concept { return generics.IsIntegerFamily("index") }
	any := func() *generics.Concept { return generics.IsAny("value") }

	c.add("BUFFER_READ", []*generics.Concept{buf(), idx()}, generics.ReturnBufferElement)
	c.add("BUFFER_WRITE", []*generics.Concept{mutBuf(), idx(), any()},
		generics.ReturnFixedType(c.reg.Void()))

	uintT := func(reg *types.Registry) types.Handle { return reg.Scalar(types.ScalarUInt) }

	isByteBuffer := func() *generics.Concept {
		return generics.IsByteBuffer("byte-buffer")
	}
	mutByteBuffer := func() *generics.Concept {
		return generics.WithQualifier(generics.IsByteBuffer("byte-buffer"), generics.NotConst)
	}

	c.add("BYTE_BUFFER_READ", []*generics.Concept{isByteBuffer(), idx()},
		func(reg *types.Registry, _ []types.Handle) types.Handle { return uintT(reg) })
	c.add("BYTE_BUFFER_WRITE", []*generics.Concept{mutByteBuffer(), idx(), idx()},
		generics.ReturnFixedType(c.reg.Void()))

	for _, n := range []int{2, 3, 4} {
		n := n
		c.add(fmt.Sprintf("BYTE_BUFFER_LOAD%d", n), []*generics.Concept{isByteBuffer(), idx()},
			func(reg *types.Registry, _ []types.Handle) types.Handle {
				return reg.Vector(uintT(reg), uint32(n))
			})
		c.add(fmt.Sprintf("BYTE_BUFFER_STORE%d", n), []*generics.Concept{mutByteBuffer(), idx(), any()},
			generics.ReturnFixedType(c.reg.Void()))
	}
}
