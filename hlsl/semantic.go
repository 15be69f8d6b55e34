// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"

	"github.com/gogpu/cppsl/ast"
	"github.com/gogpu/cppsl/types"
)

// semanticTable is the full SV_* spelling for every types.SemanticType,
// carried over from the original implementation's SystemValueMap in
// full (not just the handful spec.md calls out as examples). Every
// entry is a fixed string; render targets 0..7 are distinct
// SemanticType values, and SemanticAttr.Index is not consulted.
var semanticTable = map[types.SemanticType]string{
	types.SemanticPosition:           "SV_Position",
	types.SemanticThreadID:           "SV_DispatchThreadID",
	types.SemanticGroupID:            "SV_GroupID",
	types.SemanticGroupThreadID:      "SV_GroupThreadID",
	types.SemanticGroupIndex:         "SV_GroupIndex",
	types.SemanticVertexID:           "SV_VertexID",
	types.SemanticInstanceID:         "SV_InstanceID",
	types.SemanticGSInstanceID:       "SV_GSInstanceID",
	types.SemanticPrimitiveID:        "SV_PrimitiveID",
	types.SemanticIsFrontFace:        "SV_IsFrontFace",
	types.SemanticSampleIndex:        "SV_SampleIndex",
	types.SemanticCoverage:           "SV_Coverage",
	types.SemanticClipDistance:       "SV_ClipDistance",
	types.SemanticCullDistance:       "SV_CullDistance",
	types.SemanticDepth:              "SV_Depth",
	types.SemanticDepthGreaterEqual:  "SV_DepthGreaterEqual",
	types.SemanticDepthLessEqual:     "SV_DepthLessEqual",
	types.SemanticStencilRef:         "SV_StencilRef",
	types.SemanticTessFactor:         "SV_TessFactor",
	types.SemanticInsideTessFactor:   "SV_InsideTessFactor",
	types.SemanticDomainLocation:     "SV_DomainLocation",
	types.SemanticControlPointID:     "SV_ControlPointID",
	types.SemanticBarycentrics:       "SV_Barycentrics",
	types.SemanticViewID:             "SV_ViewID",
}

var renderTargetSemantics = map[types.SemanticType]int{
	types.SemanticRenderTarget0: 0, types.SemanticRenderTarget1: 1,
	types.SemanticRenderTarget2: 2, types.SemanticRenderTarget3: 3,
	types.SemanticRenderTarget4: 4, types.SemanticRenderTarget5: 5,
	types.SemanticRenderTarget6: 6, types.SemanticRenderTarget7: 7,
}

// semanticName spells out attr's HLSL semantic.
func semanticName(attr *ast.SemanticAttr) string {
	if n, ok := renderTargetSemantics[attr.Semantic]; ok {
		return fmt.Sprintf("SV_Target%d", n)
	}
	if s, ok := semanticTable[attr.Semantic]; ok {
		return s
	}
	return "SV_Target0"
}

// interpolationModifier spells out HLSL's interpolation keyword, empty
// for the default (perspective-correct, the implicit HLSL behavior).
func interpolationModifier(mode types.InterpolationMode) string {
	switch mode {
	case types.InterpolationLinear:
		return "linear"
	case types.InterpolationNoPerspective:
		return "noperspective"
	case types.InterpolationFlat:
		return "nointerpolation"
	case types.InterpolationCentroid:
		return "centroid"
	case types.InterpolationSample:
		return "sample"
	default:
		return ""
	}
}

func findSemanticAttr(attrs []ast.Attr) (*ast.SemanticAttr, bool) {
	for _, a := range attrs {
		if s, ok := a.(*ast.SemanticAttr); ok {
			return s, true
		}
	}
	return nil, false
}

func findInterpolationAttr(attrs []ast.Attr) (*ast.InterpolationAttr, bool) {
	for _, a := range attrs {
		if i, ok := a.(*ast.InterpolationAttr); ok {
			return i, true
		}
	}
	return nil, false
}

// shaderStageName spells out the `[shader("...")]` entry-point attribute
// argument for stage. HLSL calls the fragment stage "pixel", unlike
// ast.Stage's own "fragment" spelling.
func shaderStageName(stage ast.Stage) string {
	switch stage {
	case ast.StageVertex:
		return "vertex"
	case ast.StageFragment:
		return "pixel"
	case ast.StageCompute:
		return "compute"
	case ast.StageGeometry:
		return "geometry"
	case ast.StageHull:
		return "hull"
	case ast.StageDomain:
		return "domain"
	default:
		return ""
	}
}

func findStageAttr(attrs []ast.Attr) (*ast.StageAttr, bool) {
	for _, a := range attrs {
		if s, ok := a.(*ast.StageAttr); ok {
			return s, true
		}
	}
	return nil, false
}
