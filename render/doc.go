// Copyright 2026 The embedview Authors
// SPDX-License-Identifier: MIT

// Package render owns the render surface, the point-cloud primitive
// and the per-frame draw loop of the embedding viewer.
//
// The renderer redraws every frame regardless of whether state
// changed; at the point counts the viewer targets (thousands to low
// tens of thousands) that is cheaper than dirty tracking and keeps
// selection-drag recoloring trivially correct. The loop is driven by
// a FrameScheduler (the host's vsync callback) and is cancelable so
// that no frames leak after the component is disposed.
package render
