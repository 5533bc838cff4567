// SPDX-License-Identifier: MIT
// File: dataset.go
// Role: Dataset files: vertices and edges to create in a graph.

package schema

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/specgraph/core"
)

// Dataset is a decoded data file. Edge endpoints name vertex IDs.
type Dataset struct {
	Vertices []VertexRecord `yaml:"vertices" validate:"dive"`
	Edges    []EdgeRecord   `yaml:"edges" validate:"dive"`
}

// VertexRecord is one vertex to create. A nil ID lets the graph allocate one.
type VertexRecord struct {
	ID         any            `yaml:"id"`
	Label      string         `yaml:"label"`
	Properties map[string]any `yaml:"properties"`
}

// EdgeRecord is one edge to create between existing vertices.
type EdgeRecord struct {
	ID         any            `yaml:"id"`
	Label      string         `yaml:"label" validate:"required"`
	Out        any            `yaml:"out" validate:"required"`
	In         any            `yaml:"in" validate:"required"`
	Properties map[string]any `yaml:"properties"`
}

// LoadResult counts what Dataset.Load created.
type LoadResult struct {
	Vertices int
	Edges    int
}

// LoadDataset decodes and validates a dataset.
func LoadDataset(r io.Reader) (*Dataset, error) {
	var d Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := configValidate.Struct(&d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &d, nil
}

// LoadDatasetFile reads and validates a dataset file.
func LoadDatasetFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	d, err := LoadDataset(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Load creates every vertex, then every edge, stopping at the first failure.
// Elements created before the failure stay in g.
func (d *Dataset) Load(g *core.Graph) (LoadResult, error) {
	var res LoadResult
	for i, rec := range d.Vertices {
		if _, err := g.AddVertex(rec.Label, core.FromMap(rec.ID, rec.Properties)...); err != nil {
			return res, fmt.Errorf("vertex #%d: %w", i, err)
		}
		res.Vertices++
	}
	for i, rec := range d.Edges {
		out, err := g.Vertex(rec.Out)
		if err != nil {
			return res, fmt.Errorf("edge #%d out: %w", i, err)
		}
		in, err := g.Vertex(rec.In)
		if err != nil {
			return res, fmt.Errorf("edge #%d in: %w", i, err)
		}
		if _, err = out.AddEdge(rec.Label, in, core.FromMap(rec.ID, rec.Properties)...); err != nil {
			return res, fmt.Errorf("edge #%d: %w", i, err)
		}
		res.Edges++
	}
	g.Logger().Info("dataset loaded", slog.Int("vertices", res.Vertices), slog.Int("edges", res.Edges))

	return res, nil
}
