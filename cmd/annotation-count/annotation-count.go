package main

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb"
	"github.com/vbauerster/mpb/decor"
	bondsmith_io "github.com/willbeason/bondsmith-io"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/cytodata/repurposing-compounds/pkg/tsv"
)

func main() {
	cmd.Flags().String("out", "", "output file path (default: stdout)")

	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var cmd = cobra.Command{
	Use:     "annotation-count COLUMN FILE",
	Short:   "Count value frequencies of an annotation column in a compound table",
	Args:    cobra.ExactArgs(2),
	Version: "0.1.0",
	RunE:    runE,
}

var ErrCountAnnotations = errors.New("counting annotations")

func runE(cmd *cobra.Command, args []string) error {
	column := args[0]
	inPath := args[1]

	counts := make(map[string]int)

	var err error
	if strings.HasSuffix(inPath, ".jsonl") || strings.HasSuffix(inPath, ".jsonl.gz") {
		err = countJsonl(inPath, column, counts)
	} else {
		err = countTsv(inPath, column, counts)
	}
	if err != nil {
		return err
	}

	values := make([]string, len(counts))
	i := 0
	for value := range counts {
		values[i] = value
		i++
	}

	sort.Slice(values, func(i, j int) bool {
		return counts[values[i]] > counts[values[j]]
	})

	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	outFile := os.Stdout
	if outPath != "" {
		outFile, err = os.Create(outPath)
		if err != nil {
			return fmt.Errorf("%w: creating %q: %w", ErrCountAnnotations, outPath, err)
		}
		defer func() {
			err2 := outFile.Close()
			if err2 != nil {
				fmt.Println(err2)
			}
		}()
	}

	for _, value := range values {
		_, err = fmt.Fprintf(outFile, "%s;%d\n", value, counts[value])
		if err != nil {
			return err
		}
	}

	return nil
}

func countTsv(inPath, column string, counts map[string]int) error {
	table, err := tsv.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCountAnnotations, err)
	}

	col, ok := table.Column(column)
	if !ok {
		return fmt.Errorf("%w: %q has no column %q", ErrCountAnnotations, inPath, column)
	}

	width, _, err := terminal.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("%w: getting terminal size: %w", ErrCountAnnotations, err)
	}
	p := mpb.New(mpb.WithWidth(width))
	bar := p.AddBar(int64(len(table.Rows)),
		mpb.AppendDecorators(decor.AverageETA(decor.ET_STYLE_GO)),
		mpb.PrependDecorators(decor.CountersNoUnit("%d/%d", decor.WCSyncSpace)),
		mpb.BarRemoveOnComplete())

	start := time.Now()
	for _, row := range table.Rows {
		// Empty cells are missing values, not an annotation.
		if row[col] != "" {
			counts[row[col]]++
		}

		bar.IncrBy(1, time.Since(start))
	}

	return nil
}

func countJsonl(inPath, column string, counts map[string]int) error {
	file, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("%w: opening %q: %w", ErrCountAnnotations, inPath, err)
	}
	defer func() {
		err2 := file.Close()
		if err2 != nil {
			fmt.Println(err2)
		}
	}()

	var reader io.Reader = file
	if strings.HasSuffix(inPath, ".gz") {
		reader, err = gzip.NewReader(reader)
		if err != nil {
			return fmt.Errorf("%w: starting gzip reader stream for %q: %w", ErrCountAnnotations, inPath, err)
		}
	}

	entries := bondsmith_io.NewJsonReader(reader, func() *map[string]string {
		v := make(map[string]string)
		return &v
	})

	for entry, err := range entries.Read() {
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("%w: reading %q: %w", ErrCountAnnotations, inPath, err)
		}

		value, exists := (*entry)[column]
		if !exists {
			return fmt.Errorf("%w: entry in %q missing field %q", ErrCountAnnotations, inPath, column)
		}

		if value != "" {
			counts[value]++
		}
	}

	return nil
}
