package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/virelay/embedview"
)

// pointFile is the YAML export format of a projected embedding: one
// entry per sample with its projected value vector, cluster id and
// source attribution index.
type pointFile struct {
	Points []struct {
		Value   []float64 `yaml:"value"`
		Cluster int       `yaml:"cluster"`
		Source  int       `yaml:"source"`
	} `yaml:"points"`
}

// loadPoints parses a YAML point export into a PointSet.
func loadPoints(path string) (*embedview.PointSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading points %s: %w", path, err)
	}

	var pf pointFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing points %s: %w", path, err)
	}

	samples := make([]embedview.Sample, len(pf.Points))
	dims := -1
	for i, p := range pf.Points {
		if dims == -1 {
			dims = len(p.Value)
		} else if len(p.Value) != dims {
			return nil, fmt.Errorf("points %s: entry %d has %d dimensions, want %d",
				path, i, len(p.Value), dims)
		}
		samples[i] = embedview.Sample{
			Value:       p.Value,
			Cluster:     p.Cluster,
			SourceIndex: p.Source,
		}
	}
	return embedview.NewPointSet(samples), nil
}
