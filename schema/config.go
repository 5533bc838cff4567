// SPDX-License-Identifier: MIT
// File: config.go
// Role: Schema file model, decoding and validation.

package schema

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a schema or dataset file that failed validation.
var ErrInvalidConfig = errors.New("schema: invalid configuration")

// configValidate is shared by every Validate call.
var configValidate = validator.New()

// Environment overrides applied by LoadFile.
const (
	EnvVertexIDs   = "SPECGRAPH_VERTEX_IDS"
	EnvEdgeIDs     = "SPECGRAPH_EDGE_IDS"
	EnvPropertyIDs = "SPECGRAPH_PROPERTY_IDS"
)

// Config is a decoded schema file.
type Config struct {
	Graph    GraphSection `yaml:"graph"`
	Vertices []VertexSpec `yaml:"vertices" validate:"unique=Label,dive"`
	Edges    []EdgeSpec   `yaml:"edges" validate:"unique=Label,dive"`
}

// GraphSection configures the graph built from the schema.
type GraphSection struct {
	VertexIDs        string   `yaml:"vertex_ids" validate:"omitempty,oneof=int64 string uuid any"`
	VertexIDPrefix   string   `yaml:"vertex_id_prefix"`
	EdgeIDs          string   `yaml:"edge_ids" validate:"omitempty,oneof=int64 string uuid any"`
	EdgeIDPrefix     string   `yaml:"edge_id_prefix"`
	PropertyIDs      string   `yaml:"property_ids" validate:"omitempty,oneof=int64 string uuid any"`
	OnDuplicateLabel string   `yaml:"on_duplicate_label" validate:"omitempty,oneof=fail replace"`
	Cardinality      string   `yaml:"cardinality" validate:"omitempty,oneof=single list set"`
	Indexes          []string `yaml:"indexes" validate:"unique,dive,required"`
}

// KeySpec declares one key of a label.
type KeySpec struct {
	Name     string `yaml:"name" validate:"required"`
	Type     string `yaml:"type" validate:"omitempty,oneof=string int float bool any"`
	Required bool   `yaml:"required"`
}

// VertexSpec declares a specialized vertex label.
type VertexSpec struct {
	Label    string    `yaml:"label" validate:"required"`
	Keys     []KeySpec `yaml:"keys" validate:"unique=Name,dive"`
	OutEdges []string  `yaml:"out_edges" validate:"unique,dive,required"`
	InEdges  []string  `yaml:"in_edges" validate:"unique,dive,required"`
}

// EdgeSpec declares a specialized edge label.
type EdgeSpec struct {
	Label string    `yaml:"label" validate:"required"`
	Keys  []KeySpec `yaml:"keys" validate:"unique=Name,dive"`
}

// Load decodes and validates a schema. Unknown fields are rejected.
func Load(r io.Reader) (*Config, error) {
	cfg, err := decode(r)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads a schema file, applies environment overrides and validates.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()

	cfg, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.applyEnv()
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func decode(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode schema: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvVertexIDs)); v != "" {
		c.Graph.VertexIDs = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvEdgeIDs)); v != "" {
		c.Graph.EdgeIDs = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPropertyIDs)); v != "" {
		c.Graph.PropertyIDs = v
	}
}

// Validate checks struct tags, then that every adjacency label a vertex
// declares is itself a declared edge label.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	edges := make(map[string]struct{}, len(c.Edges))
	for _, e := range c.Edges {
		edges[e.Label] = struct{}{}
	}
	for _, v := range c.Vertices {
		for _, l := range append(append([]string(nil), v.OutEdges...), v.InEdges...) {
			if _, ok := edges[l]; !ok {
				return fmt.Errorf("%w: vertex %q references undeclared edge label %q", ErrInvalidConfig, v.Label, l)
			}
		}
	}

	return nil
}

// VertexLabels returns the declared vertex labels in file order.
func (c *Config) VertexLabels() []string {
	out := make([]string, 0, len(c.Vertices))
	for _, v := range c.Vertices {
		out = append(out, v.Label)
	}
	return out
}

// EdgeLabels returns the declared edge labels in file order.
func (c *Config) EdgeLabels() []string {
	out := make([]string, 0, len(c.Edges))
	for _, e := range c.Edges {
		out = append(out, e.Label)
	}
	return out
}

func keyNames(keys []KeySpec) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.Name
	}
	return out
}
