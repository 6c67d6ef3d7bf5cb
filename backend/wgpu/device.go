// Copyright 2026 The embedview Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package wgpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// gpuHandle bundles the HAL objects a surface needs.
type gpuHandle struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	adapter  string
}

// acquireDevice creates a standalone Vulkan device for the point
// pipeline. This is the fallback path when the host has not injected
// a shared device via render.SetDeviceHandle.
func acquireDevice() (*gpuHandle, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return nil, fmt.Errorf("no GPU adapters found")
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, fmt.Errorf("open device: %w", err)
	}

	return &gpuHandle{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		adapter:  selected.Info.Name,
	}, nil
}

var (
	availOnce sync.Once
	avail     bool
)

// gpuAvailable reports whether a usable GPU adapter exists. The probe
// runs once; the registry consults it on every surface creation.
func gpuAvailable() bool {
	availOnce.Do(func() {
		backend, ok := hal.GetBackend(gputypes.BackendVulkan)
		if !ok {
			return
		}
		instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
		if err != nil {
			return
		}
		avail = len(instance.EnumerateAdapters(nil)) > 0
	})
	return avail
}
