// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package intrinsics

import (
	"github.com/gogpu/cppsl/generics"
)

// declareBarriers registers the zero-argument memory-barrier family.
// All six return void; the HLSL backend emits their name as a bare
// call statement.
func (c *Catalog) declareBarriers() {
	for _, name := range []string{
		"GroupMemoryBarrier", "GroupMemoryBarrierWithGroupSync",
		"DeviceMemoryBarrier", "DeviceMemoryBarrierWithGroupSync",
		"AllMemoryBarrier", "AllMemoryBarrierWithGroupSync",
	} {
		c.add(name, nil, generics.ReturnFixedType(c.reg.Void()))
	}
}
