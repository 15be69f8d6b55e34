// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSample_UnknownNameReturnsError(t *testing.T) {
	_, err := buildSample("not-a-real-sample")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown sample")
}

func TestBuildSample_UnlitBuildsWithoutError(t *testing.T) {
	arena, err := buildSample("unlit")
	require.NoError(t, err)
	require.NotEmpty(t, arena.Decls())
}
