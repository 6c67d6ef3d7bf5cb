// Copyright 2026 The embedview Authors
// SPDX-License-Identifier: MIT

package render

import (
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host (e.g. a gogpu.App window) implements DeviceHandle and
// injects it via SetDeviceHandle, letting GPU surface backends share
// the host's device and queue instead of creating their own. The
// renderer RECEIVES the device from the host, it does not create one.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// viewer-specific name for the interface while staying compatible
// with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

var (
	deviceMu     sync.RWMutex
	deviceHandle DeviceHandle
)

// SetDeviceHandle installs the host's GPU device handle. GPU surface
// backends consult it before falling back to standalone device
// creation. Pass nil to clear.
func SetDeviceHandle(h DeviceHandle) {
	deviceMu.Lock()
	deviceHandle = h
	deviceMu.Unlock()
}

// ActiveDeviceHandle returns the installed host device handle, or nil
// if none was provided.
func ActiveDeviceHandle() DeviceHandle {
	deviceMu.RLock()
	defer deviceMu.RUnlock()
	return deviceHandle
}

// NullDeviceHandle is a DeviceHandle that provides nil
// implementations. Used for CPU-only rendering where no GPU is
// available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns zero adapter metadata for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
