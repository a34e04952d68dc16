package compounds

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cytodata/repurposing-compounds/pkg/tsv"
)

// Columns added by Elongate.
const (
	// IndexColumn holds the 0-based row ordinal of the consolidated table a
	// long row was exploded from.
	IndexColumn = "repurposing_info_index"

	MOAUnique    = "moa_unique"
	TargetUnique = "target_unique"
)

// Delimiter separates multiple mechanism-of-action classes or targets within
// a single annotation cell. Each delimited value has equal support.
const Delimiter = "|"

var ErrElongate = errors.New("elongating compound table")

// SplitValues splits a pipe-delimited annotation cell. An empty cell is a
// missing value and yields a single empty string, so every row survives the
// explosion.
func SplitValues(cell string) []string {
	return strings.Split(cell, Delimiter)
}

// Elongate explodes the moa and target columns of the consolidated table
// into one row per (moa value, target value) pair. Each long row repeats
// every cell of its source row, followed by the source row ordinal in
// IndexColumn and the exploded values in MOAUnique and TargetUnique. Per
// source row the output is the cross product of its moa and target values,
// moa-major, preserving the order within each cell.
func Elongate(wide *tsv.Table) (*tsv.Table, error) {
	moaCol, ok := wide.Column(MOA)
	if !ok {
		return nil, fmt.Errorf("%w: no %q column", ErrElongate, MOA)
	}
	targetCol, ok := wide.Column(Target)
	if !ok {
		return nil, fmt.Errorf("%w: no %q column", ErrElongate, Target)
	}

	long := &tsv.Table{
		Columns: append(append([]string{}, wide.Columns...), IndexColumn, MOAUnique, TargetUnique),
	}

	for i, row := range wide.Rows {
		moas := SplitValues(row[moaCol])
		targets := SplitValues(row[targetCol])
		index := strconv.Itoa(i)

		for _, moa := range moas {
			for _, target := range targets {
				longRow := make([]string, 0, len(long.Columns))
				longRow = append(longRow, row...)
				longRow = append(longRow, index, moa, target)
				long.Rows = append(long.Rows, longRow)
			}
		}
	}

	return long, nil
}
