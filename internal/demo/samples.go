// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package demo builds small, complete shader programs through the
// ast/types factory API. This module has no parser (§1 non-goal), so
// these builders stand in for the front-end a caller would normally
// write, giving the CLI something concrete to compile end to end.
package demo

import (
	"fmt"

	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/diag"
	"github.com/gogpu/cppsl/intrinsics"
	"github.com/gogpu/cppsl/types"
)

// Sample is one built-in program a caller can compile.
type Sample struct {
	Name        string
	Description string
	Build       func(reg *types.Registry, a *ast.Arena, sink diag.Sink) error
}

// Samples lists every built-in program, in registration order.
var Samples = []Sample{
	{Name: "unlit", Description: "textured vertex/fragment pair sampling an albedo texture", Build: buildUnlit},
	{Name: "blur", Description: "compute shader box-blurring a structured buffer", Build: buildBlur},
}

// Lookup finds a sample by name.
func Lookup(name string) (Sample, bool) {
	for _, s := range Samples {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

func buildUnlit(reg *types.Registry, a *ast.Arena, sink diag.Sink) error {
	f4, _ := reg.GetType("float4")
	f4x4, _ := reg.GetType("float4x4")
	f2, _ := reg.GetType("float2")

	sceneT, err := reg.DeclareStructure("SceneConstants", []types.Field{{Name: "viewProj", Type: f4x4}})
	if err != nil {
		return fmt.Errorf("declare SceneConstants: %w", err)
	}
	scene := a.NewGlobalResource("g_scene", reg.ConstantBuffer(sceneT))

	albedoT := reg.Texture2D(f4, types.TextureReadOnly)
	albedo := a.NewGlobalResource("g_albedo", albedoT)

	samplerT := reg.Sampler()
	samp := a.NewGlobalResource("g_sampler", samplerT)

	vsOutT, err := reg.DeclareStructure("VSOutput", []types.Field{{Name: "position", Type: f4}})
	if err != nil {
		return fmt.Errorf("declare VSOutput: %w", err)
	}
	a.NewStructDecl(vsOutT, ast.StructFieldAttrs{
		FieldIndex: 0,
		Attrs:      []ast.Attr{a.NewSemanticAttr(types.SemanticPosition, 0)},
	})

	pos := a.NewParam("pos", f4, ast.QualIn)
	viewProj := a.NewField(a.NewDeclRef(scene, reg.ConstantBuffer(sceneT)), 0, "viewProj", f4x4)
	clipPos := a.NewBinary(ast.BinaryMul, viewProj, a.NewDeclRef(pos, f4), f4)
	vsBody := a.NewBlock(a.NewReturn(a.NewConstruct(vsOutT, []ast.Expr{clipPos})))
	a.NewFunction("VSMain", []*ast.ParamDecl{pos}, vsOutT, vsBody,
		a.NewStageAttr(ast.StageVertex, [3]uint32{}))

	cat := intrinsics.New(reg, sink)
	uv := a.NewConstruct(f2, []ast.Expr{
		a.NewConstant(reg.Scalar(types.ScalarFloat), 0),
		a.NewConstant(reg.Scalar(types.ScalarFloat), 0),
	})
	sampleArgs := []ast.Expr{
		a.NewDeclRef(albedo, albedoT),
		a.NewDeclRef(samp, samplerT),
		uv,
	}
	sampleDecl, err := cat.Specialize("SAMPLE2D", sampleArgs)
	if err != nil {
		return fmt.Errorf("specialize SAMPLE2D: %w", err)
	}
	sampleCall := a.NewCall(sampleDecl, sampleArgs, f4)

	fsBody := a.NewBlock(a.NewReturn(sampleCall))
	a.NewFunction("PSMain", nil, f4, fsBody,
		a.NewStageAttr(ast.StageFragment, [3]uint32{}),
		a.NewSemanticAttr(types.SemanticRenderTarget0, 0))

	return nil
}

func buildBlur(reg *types.Registry, a *ast.Arena, sink diag.Sink) error {
	floatT := reg.Scalar(types.ScalarFloat)
	uintT := reg.Scalar(types.ScalarUInt)
	uint3T := reg.Vector(uintT, 3)
	inBufT := reg.StructuredBuffer(floatT, types.BufferReadOnly)
	outBufT := reg.StructuredBuffer(floatT, types.BufferReadWrite)

	inBuf := a.NewGlobalResource("g_input", inBufT)
	outBuf := a.NewGlobalResource("g_output", outBufT)

	cat := intrinsics.New(reg, sink)

	tid := a.NewParam("tid", uint3T, ast.QualIn, a.NewSemanticAttr(types.SemanticThreadID, 0))
	idxInit := a.NewField(a.NewDeclRef(tid, uint3T), 0, "x", uintT)
	idx := a.NewVar("idx", uintT, ast.QualIn, idxInit, false)

	readArgs := []ast.Expr{a.NewDeclRef(inBuf, inBufT), a.NewDeclRef(idx, uintT)}
	readDecl, err := cat.Specialize("BUFFER_READ", readArgs)
	if err != nil {
		return fmt.Errorf("specialize BUFFER_READ: %w", err)
	}
	left := a.NewCall(readDecl, readArgs, floatT)

	one := a.NewConstant(uintT, 1)
	nextIdx := a.NewBinary(ast.BinaryAdd, a.NewDeclRef(idx, uintT), one, uintT)
	readArgs2 := []ast.Expr{a.NewDeclRef(inBuf, inBufT), nextIdx}
	readDecl2, err := cat.Specialize("BUFFER_READ", readArgs2)
	if err != nil {
		return fmt.Errorf("specialize BUFFER_READ: %w", err)
	}
	right := a.NewCall(readDecl2, readArgs2, floatT)

	sum := a.NewBinary(ast.BinaryAdd, left, right, floatT)
	half := a.NewConstant(floatT, uint64(0x3F000000)) // 0.5f bit pattern
	averaged := a.NewBinary(ast.BinaryMul, sum, half, floatT)

	writeArgs := []ast.Expr{a.NewDeclRef(outBuf, outBufT), a.NewDeclRef(idx, uintT), averaged}
	writeDecl, err := cat.Specialize("BUFFER_WRITE", writeArgs)
	if err != nil {
		return fmt.Errorf("specialize BUFFER_WRITE: %w", err)
	}
	writeCall := a.NewCall(writeDecl, writeArgs, reg.Void())

	body := a.NewBlock(a.NewDeclStmt(idx), writeCall)
	a.NewFunction("CSMain", []*ast.ParamDecl{tid}, reg.Void(), body,
		a.NewStageAttr(ast.StageCompute, [3]uint32{64, 1, 1}))

	return nil
}
