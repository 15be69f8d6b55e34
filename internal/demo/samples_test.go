// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package demo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/diag"
	"github.com/gogpu/cppsl/hlsl"
	"github.com/gogpu/cppsl/types"
)

func TestLookup_FindsRegisteredSamples(t *testing.T) {
	for _, name := range []string{"unlit", "blur"} {
		s, ok := Lookup(name)
		require.True(t, ok)
		require.Equal(t, name, s.Name)
	}

	_, ok := Lookup("does-not-exist")
	require.False(t, ok)
}

func TestUnlitSample_CompilesToHLSL(t *testing.T) {
	sink := diag.NopSink{}
	reg := types.NewRegistry(sink)
	a := ast.NewArena(reg, sink)

	s, ok := Lookup("unlit")
	require.True(t, ok)
	require.NoError(t, s.Build(reg, a, sink))

	out, err := hlsl.Compile(a, nil)
	require.NoError(t, err)
	require.Contains(t, out, "ConstantBuffer<SceneConstants> g_scene")
	require.Contains(t, out, "VSMain")
	require.Contains(t, out, "g_albedo.Sample(g_sampler,")
	require.Contains(t, out, ": SV_Target0")
}

func TestBlurSample_CompilesToHLSL(t *testing.T) {
	sink := diag.NopSink{}
	reg := types.NewRegistry(sink)
	a := ast.NewArena(reg, sink)

	s, ok := Lookup("blur")
	require.True(t, ok)
	require.NoError(t, s.Build(reg, a, sink))

	out, err := hlsl.Compile(a, nil)
	require.NoError(t, err)
	require.Contains(t, out, "[numthreads(64, 1, 1)]")
	require.Contains(t, out, "RWStructuredBuffer<float> g_output")
	require.Contains(t, out, "uint idx = tid.x;")
}
