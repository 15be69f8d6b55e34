// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/gogpu/cppsl/diag"
	"github.com/gogpu/cppsl/hlsl"
)

var shaderModelFlags = map[string]hlsl.ShaderModel{
	"sm5.0": hlsl.ShaderModel5_0,
	"sm5.1": hlsl.ShaderModel5_1,
	"sm6.0": hlsl.ShaderModel6_0,
	"sm6.1": hlsl.ShaderModel6_1,
	"sm6.2": hlsl.ShaderModel6_2,
	"sm6.3": hlsl.ShaderModel6_3,
	"sm6.4": hlsl.ShaderModel6_4,
	"sm6.5": hlsl.ShaderModel6_5,
	"sm6.6": hlsl.ShaderModel6_6,
}

// resolveOptions builds hlsl.Options from viper's merged config/flag
// state (.cppsl.yaml, CPPSLC_* env vars, then CLI flags, in that
// precedence order).
func resolveOptions() (*hlsl.Options, error) {
	name := viper.GetString("shader_model")
	sm, ok := shaderModelFlags[name]
	if !ok {
		return nil, fmt.Errorf("unknown shader model %q (want one of sm5.0, sm5.1, sm6.0-sm6.6)", name)
	}
	return &hlsl.Options{
		ShaderModel:          sm,
		DefaultRegisterSpace: viper.GetUint32("register_space"),
		Diagnostics:          diag.NewStderrSink(nil),
	}, nil
}
