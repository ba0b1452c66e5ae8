// SPDX-License-Identifier: MIT

// Package simulate: cluster-size resolution and the structural expansion
// of per-cluster draws onto level-1 rows.
package simulate

import (
	"fmt"

	"github.com/statforge/mixedsim/dataset"
)

// runLengthSizes recovers per-cluster level-1 counts from an existing
// cluster-id column by counting consecutive runs of equal ids.
// Precondition (documented package contract): rows are grouped by cluster,
// the order the synthesized id columns produce.
//
// Complexity: O(len(col)).
func runLengthSizes(col []float64) []int {
	var sizes []int
	for i := range col {
		if i == 0 || col[i] != col[i-1] {
			sizes = append(sizes, 0)
		}
		sizes[len(sizes)-1]++
	}

	return sizes
}

// idColumn synthesizes a cluster-id column: id j+1 repeated sizes[j] times.
//
// Complexity: O(sum of sizes).
func idColumn(sizes []int) []float64 {
	var out []float64
	for j, c := range sizes {
		for i := 0; i < c; i++ {
			out = append(out, float64(j+1))
		}
	}

	return out
}

// expandBySizes broadcasts per-cluster values onto level-1 rows: value j
// repeated sizes[j] times, aligning with idColumn(sizes).
//
// Complexity: O(sum of sizes).
func expandBySizes(values []float64, sizes []int) []float64 {
	var out []float64
	for j, c := range sizes {
		for i := 0; i < c; i++ {
			out = append(out, values[j])
		}
	}

	return out
}

// resolveSizes determines the per-cluster counts for cluster variable g:
// recovered from data's existing id column when present, otherwise taken
// from the sample-size spec. When data is non-nil the counts must sum to
// its row count; a disagreement is a positional-alignment hazard and
// fails fast.
func resolveSizes(data *dataset.Frame, g string, ss SampleSize) ([]int, error) {
	if data != nil && data.Has(g) {
		col, err := data.Column(g)
		if err != nil {
			return nil, err
		}

		return runLengthSizes(col), nil
	}

	sizes, err := ss.sizes(g)
	if err != nil {
		return nil, err
	}
	if data != nil {
		var total int
		for _, c := range sizes {
			total += c
		}
		if total != data.NumRows() {
			return nil, fmt.Errorf("%w: sizes for %q sum to %d, dataset has %d rows",
				dataset.ErrRowCountMismatch, g, total, data.NumRows())
		}
	}

	return sizes, nil
}

// totalRows sums per-cluster counts.
func totalRows(sizes []int) int {
	var n int
	for _, c := range sizes {
		n += c
	}

	return n
}
