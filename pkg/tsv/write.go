package tsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrWriteTable = errors.New("writing table")

// Write writes the table as tab-separated UTF-8 with a header line.
func Write(w io.Writer, table *Table) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'

	err := writer.Write(table.Columns)
	if err != nil {
		return fmt.Errorf("%w: writing header: %w", ErrWriteTable, err)
	}

	for i, row := range table.Rows {
		if len(row) != len(table.Columns) {
			return fmt.Errorf("%w: row %d has %d cells but table has %d columns",
				ErrWriteTable, i, len(row), len(table.Columns))
		}

		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("%w: writing row %d: %w", ErrWriteTable, i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func WriteFile(path string, table *Table) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %q: %w", ErrWriteTable, path, err)
	}
	defer func() {
		err2 := file.Close()
		if err2 != nil && err == nil {
			err = fmt.Errorf("%w: closing %q: %w", ErrWriteTable, path, err2)
		}
	}()

	return Write(file, table)
}
