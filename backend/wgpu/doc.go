// Copyright 2026 The embedview Authors
// SPDX-License-Identifier: MIT

// Package wgpu provides a GPU surface backend for the embedding
// viewer using pure-Go WebGPU (gogpu/wgpu HAL). The point shader is
// written in WGSL and compiled to SPIR-V with gogpu/naga at surface
// creation time.
//
// Importing this package registers the backend with the surface
// registry at GPU priority:
//
//	import _ "github.com/virelay/embedview/backend/wgpu"
//
// If no GPU adapter is available the backend reports itself
// unavailable and the registry falls through to the software surface.
// Build with -tags nogpu to exclude the backend entirely.
package wgpu
