package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/rwseg/builder"
	"github.com/katalvlaran/rwseg/gridgraph"
	"github.com/katalvlaran/rwseg/randomwalker"
)

var errBadDocument = errors.New("rwseg: malformed document")

// graphDocument is the solve input. Two shapes are accepted:
//
//	edge list: {"n": 4, "edges": [[0,1],...], "weights": [...], "seeds": [1,0,0,2]}
//	raster:    {"image": [[...],...], "seeds": [[...],...], "beta": 130, "conn": 4}
type graphDocument struct {
	builder.EdgeList
	Seeds json.RawMessage `json:"seeds"`

	Image [][]float64 `json:"image,omitempty"`
	Beta  *float64    `json:"beta,omitempty"`
	Conn  int         `json:"conn,omitempty"`
}

// problem is a decoded graph document ready for the solver.
type problem struct {
	graph  randomwalker.Graph
	labels []int
	grid   *gridgraph.GridGraph // nil for edge-list input
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w: %w", path, errBadDocument, err)
	}

	return nil
}

func loadProblem(path string) (*problem, error) {
	var doc graphDocument
	if err := readJSON(path, &doc); err != nil {
		return nil, err
	}
	if len(doc.Seeds) == 0 {
		return nil, fmt.Errorf("%s: missing seeds: %w", path, errBadDocument)
	}
	if doc.Image == nil {
		var labels []int
		if err := json.Unmarshal(doc.Seeds, &labels); err != nil {
			return nil, fmt.Errorf("%s: seeds must be a flat array: %w", path, errBadDocument)
		}
		return &problem{graph: randomwalker.Graph(doc.EdgeList), labels: labels}, nil
	}

	opts := gridgraph.DefaultGridOptions()
	if doc.Beta != nil {
		opts.Beta = *doc.Beta
	}
	switch doc.Conn {
	case 0, 4:
		opts.Conn = gridgraph.Conn4
	case 8:
		opts.Conn = gridgraph.Conn8
	default:
		return nil, fmt.Errorf("%s: conn %d (want 4 or 8): %w", path, doc.Conn, errBadDocument)
	}
	gg, err := gridgraph.NewGridGraph(doc.Image, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var raster [][]int
	if err = json.Unmarshal(doc.Seeds, &raster); err != nil {
		return nil, fmt.Errorf("%s: seeds must match the image shape: %w", path, errBadDocument)
	}
	labels, err := gg.FlattenSeeds(raster)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &problem{graph: randomwalker.Graph(*gg.ToEdgeList()), labels: labels, grid: gg}, nil
}

type columnDocument struct {
	Class      int     `json:"class"`
	Iterations int     `json:"iterations"`
	Residual   float64 `json:"residual"`
	Converged  bool    `json:"converged"`
}

// resultDocument is the solve output and the evaluate input.
type resultDocument struct {
	Mode         string           `json:"mode"`
	Classes      int              `json:"classes"`
	Potentials   [][]float64      `json:"potentials,omitempty"`
	Segmentation []int            `json:"segmentation"`
	Grid         [][]int          `json:"grid,omitempty"` // segmentation as rows, raster input only
	Warnings     []string         `json:"warnings,omitempty"`
	Columns      []columnDocument `json:"columns"`
	ElapsedMS    float64          `json:"elapsed_ms"`
}

func newResultDocument(res *randomwalker.Result, gg *gridgraph.GridGraph) (*resultDocument, error) {
	doc := &resultDocument{
		Mode:         res.Mode.String(),
		Classes:      res.Classes,
		Potentials:   res.Probabilities,
		Segmentation: res.Labels,
		Columns:      make([]columnDocument, len(res.Columns)),
		ElapsedMS:    float64(res.Elapsed.Microseconds()) / 1e3,
	}
	for i, c := range res.Columns {
		doc.Columns[i] = columnDocument(c)
	}
	for _, w := range res.Warnings {
		doc.Warnings = append(doc.Warnings, w.Error())
	}
	if gg != nil {
		grid, err := gg.Reshape(res.Labels)
		if err != nil {
			return nil, err
		}
		doc.Grid = grid
	}

	return doc, nil
}

// loadLabels reads a label vector from a result document or a bare JSON array.
func loadLabels(path string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var flat []int
	if json.Unmarshal(data, &flat) == nil {
		return flat, nil
	}
	var doc resultDocument
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, errBadDocument, err)
	}
	if doc.Segmentation == nil {
		return nil, fmt.Errorf("%s: no segmentation: %w", path, errBadDocument)
	}

	return doc.Segmentation, nil
}
