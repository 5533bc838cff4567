// SPDX-License-Identifier: MIT
// File: apply.go
// Role: Binding a Config to a core.Registry and to GraphOptions.

package schema

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/specgraph/core"
	"github.com/katalvlaran/specgraph/ids"
)

// Apply registers every declared label on reg.
func (c *Config) Apply(reg *core.Registry) error {
	for _, vs := range c.Vertices {
		label, keys := vs.Label, append([]KeySpec(nil), vs.Keys...)
		err := reg.RegisterVertex(core.VertexType{
			Label:         label,
			Keys:          keyNames(keys),
			OutEdgeLabels: vs.OutEdges,
			InEdgeLabels:  vs.InEdges,
			Factory: func(_ ids.ID, values map[string]any) (core.Fields, error) {
				r, err := buildRecord(label, keys, values)
				if err != nil {
					return nil, err
				}
				return r, nil
			},
		})
		if err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	for _, es := range c.Edges {
		label, keys := es.Label, append([]KeySpec(nil), es.Keys...)
		err := reg.RegisterEdge(core.EdgeType{
			Label: label,
			Keys:  keyNames(keys),
			Factory: func(_ ids.ID, _, _ core.Vertex, values map[string]any) (core.Fields, error) {
				r, err := buildRecord(label, keys, values)
				if err != nil {
					return nil, err
				}
				return r, nil
			},
		})
		if err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	return nil
}

// DuplicatePolicy maps on_duplicate_label to a core policy.
func (c *Config) DuplicatePolicy() core.DuplicatePolicy {
	if c.Graph.OnDuplicateLabel == "replace" {
		return core.DuplicateReplace
	}
	return core.DuplicateFail
}

// GraphOptions builds identifier managers, cardinality and indexes from the
// graph section.
func (c *Config) GraphOptions() ([]core.GraphOption, error) {
	vm, err := ids.New(ids.Kind(c.Graph.VertexIDs), c.Graph.VertexIDPrefix)
	if err != nil {
		return nil, fmt.Errorf("vertex_ids: %w", err)
	}
	em, err := ids.New(ids.Kind(c.Graph.EdgeIDs), c.Graph.EdgeIDPrefix)
	if err != nil {
		return nil, fmt.Errorf("edge_ids: %w", err)
	}
	pm, err := ids.New(ids.Kind(c.Graph.PropertyIDs), "")
	if err != nil {
		return nil, fmt.Errorf("property_ids: %w", err)
	}

	opts := []core.GraphOption{
		core.WithVertexIDManager(vm),
		core.WithEdgeIDManager(em),
		core.WithPropertyIDManager(pm),
		core.WithCardinality(cardinality(c.Graph.Cardinality)),
	}
	if len(c.Graph.Indexes) > 0 {
		opts = append(opts, core.WithIndex(c.Graph.Indexes...))
	}

	return opts, nil
}

func cardinality(s string) core.Cardinality {
	switch s {
	case "list":
		return core.List
	case "set":
		return core.Set
	default:
		return core.Single
	}
}

// NewGraph builds a registry from the schema and a graph that uses it.
func (c *Config) NewGraph(logger *slog.Logger) (*core.Graph, error) {
	if logger == nil {
		logger = slog.Default()
	}
	reg := core.NewRegistry(core.WithDuplicatePolicy(c.DuplicatePolicy()), core.WithRegistryLogger(logger))
	if err := c.Apply(reg); err != nil {
		return nil, err
	}
	opts, err := c.GraphOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, core.WithRegistry(reg), core.WithLogger(logger))
	g := core.NewGraph(opts...)
	logger.Info("graph built from schema",
		slog.Int("vertex_types", len(c.Vertices)),
		slog.Int("edge_types", len(c.Edges)),
		slog.Any("indexes", c.Graph.Indexes))

	return g, nil
}
