// Package rowsplits converts between row-id arrays and CSR style
// row-splits offset arrays.
//
// For row ids [0, 0, 1, 3] the row splits are [0, 2, 3, 3, 4]:
// rowSplits[r] is the index of the first element of row r, and
// rowSplits[len(rowSplits)-1] is the total number of elements.
package rowsplits

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty     = errors.New("row ids must not be empty")
	ErrNotSorted = errors.New("row ids must be non-decreasing")
)

// FromRowIDs converts a non-decreasing array of row ids to row splits.
// The result has length max(rowIDs)+2, starts at 0, is monotonically
// non-decreasing and ends at len(rowIDs).
func FromRowIDs(rowIDs []uint32) ([]uint32, error) {
	if len(rowIDs) == 0 {
		return nil, ErrEmpty
	}
	for i := 1; i < len(rowIDs); i++ {
		if rowIDs[i] < rowIDs[i-1] {
			return nil, fmt.Errorf("%w: row id %d at position %d after %d", ErrNotSorted, rowIDs[i], i, rowIDs[i-1])
		}
	}
	// the input is non-decreasing, so the last element is the max
	numRows := rowIDs[len(rowIDs)-1] + 1
	rowSplits := make([]uint32, numRows+1)

	prev := uint32(0)
	for i, id := range rowIDs {
		for row := prev + 1; row <= id; row++ {
			rowSplits[row] = uint32(i)
		}
		prev = id
	}
	rowSplits[numRows] = uint32(len(rowIDs))
	return rowSplits, nil
}

// ToRowIDs expands row splits back into the row id of every element.
func ToRowIDs(rowSplits []uint32) ([]uint32, error) {
	if err := Validate(rowSplits); err != nil {
		return nil, err
	}
	numRows := len(rowSplits) - 1
	rowIDs := make([]uint32, 0, rowSplits[numRows])
	for row := 0; row < numRows; row++ {
		for i := rowSplits[row]; i < rowSplits[row+1]; i++ {
			rowIDs = append(rowIDs, uint32(row))
		}
	}
	return rowIDs, nil
}

// Validate checks the row-splits contract on an array built elsewhere.
func Validate(rowSplits []uint32) error {
	if len(rowSplits) < 2 {
		return fmt.Errorf("row splits must have at least 2 elements, got: %d", len(rowSplits))
	}
	if rowSplits[0] != 0 {
		return fmt.Errorf("row splits must start at 0, got: %d", rowSplits[0])
	}
	for i := 1; i < len(rowSplits); i++ {
		if rowSplits[i] < rowSplits[i-1] {
			return fmt.Errorf("row splits must be non-decreasing, got %d after %d at position %d",
				rowSplits[i], rowSplits[i-1], i)
		}
	}
	return nil
}
