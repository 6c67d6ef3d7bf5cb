// Copyright 2026 The embedview Authors
// SPDX-License-Identifier: MIT

// Package surface provides the render-target abstraction for the
// embedding viewer.
//
// A Surface is a 2D pixel target that can draw a batch of
// constant-size points and a rubber-band rectangle overlay. Backends
// self-register with a priority (GPU backends high, the built-in
// software backend low), so hosts can pick the best available backend
// automatically or request one by name:
//
//	s, err := surface.NewSurface(800, 600) // best available
//	s, err := surface.NewSurfaceByName("image", surface.DefaultOptions(800, 600))
//
// If no backend can be acquired, surface creation fails with
// [ErrNoBackendAvailable]; the viewer surfaces that error to its
// consumer instead of presenting a silent blank view.
package surface
