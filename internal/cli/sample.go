// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/diag"
	"github.com/gogpu/cppsl/internal/demo"
	"github.com/gogpu/cppsl/types"
)

// buildSample runs the named built-in sample's factory-API builder
// inside a recovered translation-unit boundary, turning a builder
// invariant panic (diag.Sink.Fatal's default behavior) into a normal
// error return.
func buildSample(name string) (arena *ast.Arena, err error) {
	sample, ok := demo.Lookup(name)
	if !ok {
		names := make([]string, len(demo.Samples))
		for i, s := range demo.Samples {
			names[i] = s.Name
		}
		return nil, fmt.Errorf("unknown sample %q, want one of %v", name, names)
	}

	sink := diag.NewStderrSink(nil)
	defer diag.Recover(&err)

	reg := types.NewRegistry(sink)
	a := ast.NewArena(reg, sink)
	if buildErr := sample.Build(reg, a, sink); buildErr != nil {
		return nil, buildErr
	}
	return a, nil
}
