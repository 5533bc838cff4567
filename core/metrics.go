// SPDX-License-Identifier: MIT
// File: metrics.go
// Role: Prometheus counters for element lifecycle. Registered on the default
//       registry at package init.

package core

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	kindVertex = "vertex"
	kindEdge   = "edge"
)

var (
	elementsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "specgraph",
		Subsystem: "core",
		Name:      "elements_created_total",
		Help:      "Vertices and edges created, by kind and storage variant.",
	}, []string{"kind", "variant"})

	elementsRemoved = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "specgraph",
		Subsystem: "core",
		Name:      "elements_removed_total",
		Help:      "Vertices and edges removed, by kind and storage variant.",
	}, []string{"kind", "variant"})

	creationsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "specgraph",
		Subsystem: "core",
		Name:      "creations_rejected_total",
		Help:      "AddVertex/AddEdge calls that failed, by kind and reason.",
	}, []string{"kind", "reason"})
)

func variant(specialized bool) string {
	if specialized {
		return "specialized"
	}
	return "generic"
}

func recordCreated(kind string, specialized bool) {
	elementsCreated.WithLabelValues(kind, variant(specialized)).Inc()
}

func recordRemoved(kind string, specialized bool) {
	elementsRemoved.WithLabelValues(kind, variant(specialized)).Inc()
}

func recordRejected(kind string, err error) {
	creationsRejected.WithLabelValues(kind, rejectReason(err)).Inc()
}

// rejectReason maps an error to a bounded label value.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateID):
		return "duplicate_id"
	case errors.Is(err, ErrInvalidIdentifier):
		return "invalid_id"
	case errors.Is(err, ErrUnsupportedEdgeType):
		return "unsupported_edge_type"
	case errors.Is(err, ErrNullTarget):
		return "null_target"
	case errors.Is(err, ErrSourceRemoved), errors.Is(err, ErrElementRemoved):
		return "removed"
	case errors.Is(err, ErrInvalidKeyValues), errors.Is(err, ErrInvalidPropertyValue):
		return "invalid_input"
	case errors.Is(err, ErrGraphClosed):
		return "closed"
	default:
		return "other"
	}
}
