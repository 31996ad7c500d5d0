// SPDX-License-Identifier: MIT

// Package linop: block assembly. BMat combines a 2-D grid of operators into
// one operator with block-matrix routing; HorzCat and VertCat are its
// single-row and single-column specializations. Validation is a two-pass
// structural check (row heights, then column widths) that runs once at
// assembly time and reports the first offending block index — applies never
// re-validate the grid.
package linop

import "fmt"

// gridLayout is the validated structure of a block grid: per-block-row
// heights and per-block-column widths, plus their running offsets.
type gridLayout struct {
	rowHeights []int // Rows() shared by every block in grid row i
	colWidths  []int // Cols() shared by every block in grid column j
	rowOffsets []int // prefix sums of rowHeights (len = rows+1)
	colOffsets []int // prefix sums of colWidths (len = cols+1)
}

// validateGrid runs the two-pass structural check on grid.
//
// Pass 1 (rows): every grid row must be non-empty, of equal length, and all
// its non-nil blocks must agree on Rows(); a row with no operator at all
// cannot supply a height (ErrAmbiguousBlock).
// Pass 2 (columns): all non-nil blocks in a column must agree on Cols();
// a column with no operator cannot supply a width (ErrAmbiguousBlock).
//
// Every error names the first offending row/column (and block) index.
// Complexity: O(rows·cols), no allocations beyond the layout.
func validateGrid(grid [][]*Operator) (*gridLayout, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	nRows, nCols := len(grid), len(grid[0])

	layout := &gridLayout{
		rowHeights: make([]int, nRows),
		colWidths:  make([]int, nCols),
		rowOffsets: make([]int, nRows+1),
		colOffsets: make([]int, nCols+1),
	}

	// Pass 1: rectangularity and per-row heights.
	for i, row := range grid {
		if len(row) != nCols {
			return nil, fmt.Errorf("row %d has %d blocks, row 0 has %d: %w",
				i, len(row), nCols, ErrRaggedGrid)
		}
		height := 0
		for j, blk := range row {
			if blk == nil {
				continue
			}
			if height == 0 {
				height = blk.shape.Rows
			} else if blk.shape.Rows != height {
				return nil, fmt.Errorf("block (%d,%d) has %d rows, row %d has %d: %w",
					i, j, blk.shape.Rows, i, height, ErrShapeMismatch)
			}
		}
		if height == 0 {
			return nil, fmt.Errorf("row %d: %w", i, ErrAmbiguousBlock)
		}
		layout.rowHeights[i] = height
		layout.rowOffsets[i+1] = layout.rowOffsets[i] + height
	}

	// Pass 2: per-column widths.
	for j := 0; j < nCols; j++ {
		width := 0
		for i := 0; i < nRows; i++ {
			blk := grid[i][j]
			if blk == nil {
				continue
			}
			if width == 0 {
				width = blk.shape.Cols
			} else if blk.shape.Cols != width {
				return nil, fmt.Errorf("block (%d,%d) has %d cols, column %d has %d: %w",
					i, j, blk.shape.Cols, j, width, ErrShapeMismatch)
			}
		}
		if width == 0 {
			return nil, fmt.Errorf("column %d: %w", j, ErrAmbiguousBlock)
		}
		layout.colWidths[j] = width
		layout.colOffsets[j+1] = layout.colOffsets[j] + width
	}

	return layout, nil
}

// BMat assembles a 2-D grid of operators into one operator representing the
// block matrix. A nil entry stands for an all-zero block whose extents are
// inferred from its row and column; nil blocks are skipped during routing
// rather than materialized.
//
// Validation (assembly time, never at apply): the grid must be non-empty
// and rectangular, blocks within a row must share Rows(), blocks within a
// column must share Cols(), and every row and column must contain at least
// one non-nil block — an all-nil row or column has no operator to supply a
// dimension and is rejected as ErrAmbiguousBlock rather than guessed at.
//
// The result's shape is (Σ row heights, Σ column widths). Forward routing
// splits the input by column widths, applies each block to its slice, sums
// the contributions within each block row and concatenates the block-row
// outputs; the adjoint is the transposed routing (split by row heights,
// apply adjoints, sum down columns).
//
// Returns:
//   - *Operator: the assembled block operator.
//   - error: ErrEmptyGrid, ErrRaggedGrid, ErrAmbiguousBlock or
//     ErrShapeMismatch, each naming the offending row/column index.
//
// Complexity:
//   - Assembly O(rows·cols); each apply costs one apply per non-nil block
//     plus O(shape) splitting/summing.
func BMat(grid [][]*Operator) (*Operator, error) {
	layout, err := validateGrid(grid)
	if err != nil {
		return nil, linopErrorf(opBMat, err)
	}
	nRows, nCols := len(layout.rowHeights), len(layout.colWidths)
	totalRows := layout.rowOffsets[nRows]
	totalCols := layout.colOffsets[nCols]

	// Snapshot the grid so later caller mutations of the slice cannot
	// desynchronize routing from the validated layout.
	blocks := make([][]*Operator, nRows)
	for i, row := range grid {
		blocks[i] = make([]*Operator, nCols)
		copy(blocks[i], row)
	}

	forward := func(x *Batch) (*Batch, error) {
		// Split the input once by block-column widths.
		segs := make([]*Batch, nCols)
		for j := 0; j < nCols; j++ {
			segs[j] = x.rowSlice(layout.colOffsets[j], layout.colOffsets[j+1])
		}
		// Each block row accumulates its blocks' contributions.
		parts := make([]*Batch, nRows)
		for i := 0; i < nRows; i++ {
			var acc *Batch
			for j := 0; j < nCols; j++ {
				if blocks[i][j] == nil {
					continue
				}
				y, err := blocks[i][j].Apply(segs[j])
				if err != nil {
					return nil, fmt.Errorf("block (%d,%d): %w", i, j, err)
				}
				if acc == nil {
					acc = y.Clone()
				} else {
					acc.addScaled(1, y)
				}
			}
			// Validation guarantees at least one block per row.
			parts[i] = acc
		}
		return vcatBatches(parts), nil
	}

	adjointFn := func(y *Batch) (*Batch, error) {
		segs := make([]*Batch, nRows)
		for i := 0; i < nRows; i++ {
			segs[i] = y.rowSlice(layout.rowOffsets[i], layout.rowOffsets[i+1])
		}
		parts := make([]*Batch, nCols)
		for j := 0; j < nCols; j++ {
			var acc *Batch
			for i := 0; i < nRows; i++ {
				if blocks[i][j] == nil {
					continue
				}
				z, err := blocks[i][j].ApplyAdjoint(segs[i])
				if err != nil {
					return nil, fmt.Errorf("block (%d,%d): %w", i, j, err)
				}
				if acc == nil {
					acc = z.Clone()
				} else {
					acc.addScaled(1, z)
				}
			}
			parts[j] = acc
		}
		return vcatBatches(parts), nil
	}

	return &Operator{
		shape:   Shape{Rows: totalRows, Cols: totalCols},
		forward: forward,
		adjoint: adjointFn,
	}, nil
}

// HorzCat assembles operators side by side: [A | B | ...]. All operands
// must share Rows(); the result has their summed Cols(). Identical
// validation and routing to a single-row BMat.
//
// Returns ErrEmptyGrid for no operands, otherwise BMat's errors.
func HorzCat(ops ...*Operator) (*Operator, error) {
	if len(ops) == 0 {
		return nil, linopErrorf(opHorzCat, ErrEmptyGrid)
	}
	row := make([]*Operator, len(ops))
	copy(row, ops)
	op, err := BMat([][]*Operator{row})
	if err != nil {
		return nil, linopErrorf(opHorzCat, err)
	}
	return op, nil
}

// VertCat stacks operators vertically: [A; B; ...]. All operands must share
// Cols(); the result has their summed Rows(). Identical validation and
// routing to a single-column BMat.
//
// Returns ErrEmptyGrid for no operands, otherwise BMat's errors.
func VertCat(ops ...*Operator) (*Operator, error) {
	if len(ops) == 0 {
		return nil, linopErrorf(opVertCat, ErrEmptyGrid)
	}
	grid := make([][]*Operator, len(ops))
	for i, op := range ops {
		grid[i] = []*Operator{op}
	}
	op, err := BMat(grid)
	if err != nil {
		return nil, linopErrorf(opVertCat, err)
	}
	return op, nil
}
