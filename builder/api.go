// SPDX-License-Identifier: MIT
// Package: rwseg/builder
//
// api.go — EdgeList, Constructor and the Build entry point.

package builder

import (
	"fmt"
	"math"
)

// EdgeList is an undirected weighted graph over nodes 0..N-1.
// Its field set matches randomwalker.Graph, so the two convert directly.
type EdgeList struct {
	N       int       `json:"n"`
	Edges   [][2]int  `json:"edges"`
	Weights []float64 `json:"weights"`
}

// Constructor appends one topology to el using cfg.
type Constructor func(el *EdgeList, cfg builderConfig) error

// Build runs the constructors in order on an empty EdgeList. Each constructor
// allocates fresh node ids, so the resulting components are disjoint.
//
// Errors: ErrConstructFailed for a nil constructor; otherwise the first
// constructor error, prefixed with "Build".
//
// Complexity: sum of the constructors.
func Build(bopts []BuilderOption, cons ...Constructor) (*EdgeList, error) {
	cfg := newBuilderConfig(bopts...)
	el := &EdgeList{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuild, i, ErrConstructFailed)
		}
		if err := fn(el, cfg); err != nil {
			return nil, builderErrorf(MethodBuild, err)
		}
	}

	return el, nil
}

// addNodes reserves k fresh node ids and returns the first one.
func (el *EdgeList) addNodes(k int) int {
	first := el.N
	el.N += k

	return first
}

// addEdge appends u–v with a weight drawn from cfg.
func (el *EdgeList) addEdge(method string, u, v int, cfg builderConfig) error {
	w := cfg.weightFn(cfg.rng)
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%s: edge (%d,%d) weight %g: %w", method, u, v, w, ErrInvalidWeight)
	}
	el.Edges = append(el.Edges, [2]int{u, v})
	el.Weights = append(el.Weights, w)

	return nil
}

// Degrees returns the weighted degree of every node.
// Complexity: O(N + E).
func (el *EdgeList) Degrees() []float64 {
	d := make([]float64, el.N)
	for k, e := range el.Edges {
		if e[0] == e[1] {
			continue
		}
		d[e[0]] += el.Weights[k]
		d[e[1]] += el.Weights[k]
	}

	return d
}
