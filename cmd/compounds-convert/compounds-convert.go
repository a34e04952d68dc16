package main

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/parquet"
	"github.com/apache/arrow/go/v18/parquet/compress"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/spf13/cobra"

	"github.com/cytodata/repurposing-compounds/pkg/tables"
	"github.com/cytodata/repurposing-compounds/pkg/tsv"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var cmd = cobra.Command{
	Use:     "compounds-convert [compounds|compounds_long] IN OUT",
	Short:   "converts a consolidated compound table to Parquet or gzipped JSONL",
	Args:    cobra.ExactArgs(3),
	Version: "0.1.0",
	RunE:    runE,
}

const JsonlExt = ".jsonl.gz"

var ErrConvert = errors.New("converting compound table")

func runE(_ *cobra.Command, args []string) error {
	var schema *arrow.Schema
	switch args[0] {
	case tables.Compounds:
		schema = tables.CompoundsSchema
	case tables.CompoundsLong:
		schema = tables.CompoundsLongSchema
	default:
		return fmt.Errorf("%w: unknown table %q", ErrConvert, args[0])
	}

	inPath := args[1]
	outPath := args[2]

	table, err := tsv.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConvert, err)
	}

	switch {
	case strings.HasSuffix(outPath, tables.ParquetExt):
		return writeParquet(schema, table, outPath)
	case strings.HasSuffix(outPath, JsonlExt):
		return writeJsonl(table, outPath)
	default:
		return fmt.Errorf("%w: output %q is neither %q nor %q",
			ErrConvert, outPath, tables.ParquetExt, JsonlExt)
	}
}

func writeParquet(schema *arrow.Schema, table *tsv.Table, outPath string) error {
	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: creating %q: %w", ErrConvert, outPath, err)
	}
	// Don't close outFile; parquet handles closing it.

	allocator := memory.NewGoAllocator()
	record, err := tables.BuildRecord(allocator, schema, table)
	if err != nil {
		return err
	}
	defer record.Release()

	writer, err := pqarrow.NewFileWriter(
		schema,
		outFile,
		parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Gzip)),
		pqarrow.DefaultWriterProps(),
	)
	if err != nil {
		return err
	}
	defer func() {
		err = writer.Close()
		if err != nil {
			fmt.Println(err)
		}
	}()

	err = writer.Write(record)
	if err != nil {
		return fmt.Errorf("%w: writing %q: %w", ErrConvert, outPath, err)
	}

	return nil
}

func writeJsonl(table *tsv.Table, outPath string) error {
	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: creating %q: %w", ErrConvert, outPath, err)
	}
	defer func() {
		err2 := outFile.Close()
		if err2 != nil {
			fmt.Println(err2)
		}
	}()

	gzipWriter := gzip.NewWriter(outFile)
	defer func() {
		err2 := gzipWriter.Close()
		if err2 != nil {
			fmt.Println(err2)
		}
	}()

	// The Encoder automatically writes a newline after each JSON object.
	encoder := json.NewEncoder(gzipWriter)
	for i, row := range table.Rows {
		entry := make(map[string]string, len(table.Columns))
		for j, column := range table.Columns {
			entry[column] = row[j]
		}

		err = encoder.Encode(entry)
		if err != nil {
			return fmt.Errorf("%w: writing row %d to %q: %w", ErrConvert, i, outPath, err)
		}
	}

	return nil
}
