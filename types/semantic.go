// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

import "strings"

// SemanticType names a stage input/output binding point, independent of
// any particular backend's spelling for it (hlsl.semanticName does the
// SV_* translation). The full set here is carried over from the original
// implementation's SystemValueMap, not just the handful spec.md calls
// out as illustrative examples.
type SemanticType uint8

const (
	SemanticNone SemanticType = iota
	SemanticPosition
	SemanticRenderTarget0
	SemanticRenderTarget1
	SemanticRenderTarget2
	SemanticRenderTarget3
	SemanticRenderTarget4
	SemanticRenderTarget5
	SemanticRenderTarget6
	SemanticRenderTarget7
	SemanticThreadID
	SemanticGroupID
	SemanticGroupThreadID
	SemanticGroupIndex
	SemanticVertexID
	SemanticInstanceID
	SemanticGSInstanceID
	SemanticPrimitiveID
	SemanticIsFrontFace
	SemanticSampleIndex
	SemanticCoverage
	SemanticClipDistance
	SemanticCullDistance
	SemanticDepth
	SemanticDepthGreaterEqual
	SemanticDepthLessEqual
	SemanticStencilRef
	SemanticTessFactor
	SemanticInsideTessFactor
	SemanticDomainLocation
	SemanticControlPointID
	SemanticBarycentrics
	SemanticViewID
)

var semanticNames = map[string]SemanticType{
	"position":            SemanticPosition,
	"render_target_0":     SemanticRenderTarget0,
	"render_target_1":     SemanticRenderTarget1,
	"render_target_2":     SemanticRenderTarget2,
	"render_target_3":     SemanticRenderTarget3,
	"render_target_4":     SemanticRenderTarget4,
	"render_target_5":     SemanticRenderTarget5,
	"render_target_6":     SemanticRenderTarget6,
	"render_target_7":     SemanticRenderTarget7,
	"thread_id":           SemanticThreadID,
	"group_id":            SemanticGroupID,
	"group_thread_id":     SemanticGroupThreadID,
	"group_index":         SemanticGroupIndex,
	"vertex_id":           SemanticVertexID,
	"instance_id":         SemanticInstanceID,
	"gs_instance_id":      SemanticGSInstanceID,
	"primitive_id":        SemanticPrimitiveID,
	"is_front_face":       SemanticIsFrontFace,
	"sample_index":        SemanticSampleIndex,
	"coverage":            SemanticCoverage,
	"clip_distance":       SemanticClipDistance,
	"cull_distance":       SemanticCullDistance,
	"depth":               SemanticDepth,
	"depth_greater_equal": SemanticDepthGreaterEqual,
	"depth_less_equal":    SemanticDepthLessEqual,
	"stencil_ref":         SemanticStencilRef,
	"tess_factor":         SemanticTessFactor,
	"inside_tess_factor":  SemanticInsideTessFactor,
	"domain_location":     SemanticDomainLocation,
	"control_point_id":    SemanticControlPointID,
	"barycentrics":        SemanticBarycentrics,
	"view_id":             SemanticViewID,
}

// SemanticTypeFromString looks up a SemanticType by its source-level
// spelling, case-insensitively. Reports ok=false for an unrecognized
// name so the caller can raise InvalidSemantic.
func SemanticTypeFromString(name string) (SemanticType, bool) {
	s, ok := semanticNames[strings.ToLower(name)]
	return s, ok
}

// InterpolationMode controls how a fragment-stage input is interpolated
// across a triangle.
type InterpolationMode uint8

const (
	InterpolationPerspective InterpolationMode = iota
	InterpolationLinear
	InterpolationNoPerspective
	InterpolationFlat
	InterpolationCentroid
	InterpolationSample
)

var interpolationNames = map[string]InterpolationMode{
	"perspective":   InterpolationPerspective,
	"linear":        InterpolationLinear,
	"noperspective": InterpolationNoPerspective,
	"flat":          InterpolationFlat,
	"centroid":      InterpolationCentroid,
	"sample":        InterpolationSample,
}

// InterpolationModeFromString looks up an InterpolationMode by its
// source-level spelling, case-insensitively.
func InterpolationModeFromString(name string) (InterpolationMode, bool) {
	m, ok := interpolationNames[strings.ToLower(name)]
	return m, ok
}
