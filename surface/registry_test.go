// Copyright 2026 The embedview Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"
)

func stubFactory(opts Options) (Surface, error) {
	return NewImageSurface(opts.Width, opts.Height), nil
}

func TestRegistryPriorityOrder(t *testing.T) {
	r := &Registry{}
	r.Register("software", 10, stubFactory, nil)
	r.Register("gpu", 100, stubFactory, nil)
	r.Register("offline", 50, stubFactory, func() bool { return false })

	got := r.Available()
	want := []string{"gpu", "software"}
	if len(got) != len(want) {
		t.Fatalf("Available = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Available = %v, want %v", got, want)
		}
	}
}

func TestRegistryFallsBackOnFactoryError(t *testing.T) {
	r := &Registry{}
	r.Register("broken", 100, func(Options) (Surface, error) {
		return nil, errors.New("no device")
	}, nil)
	r.Register("software", 10, stubFactory, nil)

	s, err := r.NewSurface(Options{Width: 8, Height: 8})
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*ImageSurface); !ok {
		t.Errorf("selected %T, want fallback *ImageSurface", s)
	}
}

func TestRegistryEmpty(t *testing.T) {
	r := &Registry{}
	if _, err := r.NewSurface(Options{Width: 8, Height: 8}); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("error = %v, want ErrNoBackendAvailable", err)
	}
}

func TestRegistryByName(t *testing.T) {
	r := &Registry{}
	r.Register("software", 10, stubFactory, nil)
	r.Register("offline", 50, stubFactory, func() bool { return false })

	if _, err := r.NewSurfaceByName("software", Options{Width: 8, Height: 8}); err != nil {
		t.Errorf("NewSurfaceByName(software): %v", err)
	}

	var nf *BackendNotFoundError
	if _, err := r.NewSurfaceByName("missing", Options{}); !errors.As(err, &nf) {
		t.Errorf("error = %v, want BackendNotFoundError", err)
	}

	var ua *BackendUnavailableError
	if _, err := r.NewSurfaceByName("offline", Options{}); !errors.As(err, &ua) {
		t.Errorf("error = %v, want BackendUnavailableError", err)
	}
}

func TestRegistryReplaceEntry(t *testing.T) {
	r := &Registry{}
	r.Register("image", 10, stubFactory, nil)
	r.Register("image", 10, stubFactory, func() bool { return false })

	if got := r.Available(); len(got) != 0 {
		t.Errorf("Available = %v, want re-registered entry to win", got)
	}
}

func TestBuiltinImageBackendRegistered(t *testing.T) {
	for _, name := range Available() {
		if name == "image" {
			return
		}
	}
	t.Error("built-in image backend not registered")
}
