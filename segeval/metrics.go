// SPDX-License-Identifier: MIT

package segeval

import "fmt"

// Report bundles every score for one segmentation.
type Report struct {
	N                      int     `json:"n"` // scored positions
	Accuracy               float64 `json:"accuracy"`
	AdjustedRandIndex      float64 `json:"ari"`
	MutualInformation      float64 `json:"mi"`
	VariationOfInformation float64 `json:"vi"`
}

func check(pred, truth []int) error {
	if len(pred) != len(truth) {
		return fmt.Errorf("%d predicted vs %d truth labels: %w", len(pred), len(truth), ErrLengthMismatch)
	}
	if len(pred) == 0 {
		return ErrEmpty
	}

	return nil
}

// Accuracy returns the fraction of positions where pred[i] == truth[i].
func Accuracy(pred, truth []int) (float64, error) {
	if err := check(pred, truth); err != nil {
		return 0, err
	}
	hit := 0
	for i := range pred {
		if pred[i] == truth[i] {
			hit++
		}
	}

	return float64(hit) / float64(len(pred)), nil
}

// AdjustedRandIndex returns the Hubert–Arabie adjusted Rand index.
// When the chance-corrected denominator vanishes (both labelings trivial:
// one cluster, or all singletons) the partitions match perfectly and 1 is returned.
func AdjustedRandIndex(pred, truth []int) (float64, error) {
	if err := check(pred, truth); err != nil {
		return 0, err
	}
	c := newContingency(pred, truth)

	var sumCells, sumRows, sumCols float64
	for _, row := range c.cells {
		for _, nij := range row {
			sumCells += comb2(nij)
		}
	}
	for _, a := range c.rowSum {
		sumRows += comb2(a)
	}
	for _, b := range c.colSum {
		sumCols += comb2(b)
	}
	total := comb2(c.n)
	if total == 0 {
		return 1, nil
	}
	expected := sumRows * sumCols / total
	maxIndex := (sumRows + sumCols) / 2
	if maxIndex == expected {
		return 1, nil
	}

	return (sumCells - expected) / (maxIndex - expected), nil
}

// MutualInformation returns I(pred; truth) in nats.
func MutualInformation(pred, truth []int) (float64, error) {
	if err := check(pred, truth); err != nil {
		return 0, err
	}

	return newContingency(pred, truth).mutualInformation(), nil
}

// VariationOfInformation returns H(pred) + H(truth) − 2·I(pred; truth) in nats.
func VariationOfInformation(pred, truth []int) (float64, error) {
	if err := check(pred, truth); err != nil {
		return 0, err
	}
	c := newContingency(pred, truth)

	return variation(c), nil
}

func variation(c contingency) float64 {
	return max(c.entropy(c.rowSum)+c.entropy(c.colSum)-2*c.mutualInformation(), 0)
}

// Mask keeps the positions where seeds[i] == 0.
func Mask(pred, truth, seeds []int) ([]int, []int, error) {
	if err := check(pred, truth); err != nil {
		return nil, nil, err
	}
	if len(seeds) != len(pred) {
		return nil, nil, fmt.Errorf("%d seeds for %d labels: %w", len(seeds), len(pred), ErrLengthMismatch)
	}
	var p, t []int
	for i, s := range seeds {
		if s == 0 {
			p = append(p, pred[i])
			t = append(t, truth[i])
		}
	}
	if len(p) == 0 {
		return nil, nil, fmt.Errorf("every position is seeded: %w", ErrEmpty)
	}

	return p, t, nil
}

// Evaluate computes every score. A non-nil seeds slice restricts scoring to
// unlabeled positions (seeds[i] == 0).
func Evaluate(pred, truth, seeds []int) (Report, error) {
	var err error
	if seeds != nil {
		if pred, truth, err = Mask(pred, truth, seeds); err != nil {
			return Report{}, err
		}
	}
	acc, err := Accuracy(pred, truth)
	if err != nil {
		return Report{}, err
	}
	ari, _ := AdjustedRandIndex(pred, truth)
	c := newContingency(pred, truth)

	return Report{
		N:                      len(pred),
		Accuracy:               acc,
		AdjustedRandIndex:      ari,
		MutualInformation:      c.mutualInformation(),
		VariationOfInformation: variation(c),
	}, nil
}
