package tsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
)

var ErrReadTable = errors.New("reading table")

// Read parses a tab-separated table as distributed by CLUE: the bytes are
// ISO-8859-1, lines beginning with '!' are comments, and the first
// non-comment line is the header. Rows with a cell count different from the
// header are an error.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	reader.Comma = '\t'
	reader.Comment = '!'
	reader.LazyQuotes = true

	columns, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header", ErrReadTable)
		}
		return nil, fmt.Errorf("%w: reading header: %w", ErrReadTable, err)
	}

	table := &Table{Columns: columns}
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %w", ErrReadTable, err)
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func ReadFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", ErrReadTable, path, err)
	}
	defer func() {
		err2 := file.Close()
		if err2 != nil {
			fmt.Println(err2)
		}
	}()

	table, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrReadTable, path, err)
	}

	return table, nil
}
