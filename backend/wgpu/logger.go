// Copyright 2026 The embedview Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package wgpu

import (
	"log/slog"

	"github.com/virelay/embedview/surface"
)

// slogger returns the logger shared with the surface package, so a
// single embedview.SetLogger call covers GPU backend diagnostics too.
func slogger() *slog.Logger { return surface.Logger() }
