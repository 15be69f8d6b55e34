// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/diag"
	"github.com/gogpu/cppsl/types"
)

func TestCompile_VertexEntryPointWithBoundResource(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	f4, _ := reg.GetType("float4")

	sceneT, err := reg.DeclareStructure("SceneConstants", []types.Field{{Name: "viewProj", Type: mustType(reg, "float4x4")}})
	require.NoError(t, err)
	cbT := reg.ConstantBuffer(sceneT)
	a.NewGlobalResource("g_scene", cbT)

	pos := a.NewParam("pos", f4, ast.QualIn)
	body := a.NewBlock(a.NewReturn(a.NewDeclRef(pos, f4)))
	a.NewFunction("VSMain", []*ast.ParamDecl{pos}, f4, body,
		a.NewStageAttr(ast.StageVertex, [3]uint32{}),
		a.NewSemanticAttr(types.SemanticPosition, 0))

	out, err := Compile(a, nil)
	require.NoError(t, err)
	require.Contains(t, out, "ConstantBuffer<SceneConstants> g_scene : register(b0, space0);")
	require.Contains(t, out, "float4 VSMain(float4 pos) : SV_Position")
	require.Contains(t, out, "return pos;")
}

func TestCompile_ComputeEntryPointEmitsNumthreads(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	voidT := reg.Void()

	body := a.NewBlock()
	a.NewFunction("CSMain", nil, voidT, body,
		a.NewStageAttr(ast.StageCompute, [3]uint32{8, 8, 1}))

	out, err := Compile(a, nil)
	require.NoError(t, err)
	require.Contains(t, out, "[numthreads(8, 8, 1)]")
	require.Contains(t, out, "void CSMain()")
}

func TestCompile_StructDeclEmitsSemanticAnnotatedFields(t *testing.T) {
	reg := types.NewRegistry(diag.NopSink{})
	a := ast.NewArena(reg, diag.NopSink{})
	f4, _ := reg.GetType("float4")

	vsOut, err := reg.DeclareStructure("VSOutput", []types.Field{{Name: "position", Type: f4}})
	require.NoError(t, err)
	a.NewStructDecl(vsOut, ast.StructFieldAttrs{
		FieldIndex: 0,
		Attrs:      []ast.Attr{a.NewSemanticAttr(types.SemanticPosition, 0)},
	})

	out, err := Compile(a, nil)
	require.NoError(t, err)
	require.Contains(t, out, "struct VSOutput")
	require.Contains(t, out, "float4 position : SV_Position;")
}
