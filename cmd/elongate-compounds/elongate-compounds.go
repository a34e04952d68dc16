package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cytodata/repurposing-compounds/pkg/compounds"
	"github.com/cytodata/repurposing-compounds/pkg/release"
	"github.com/cytodata/repurposing-compounds/pkg/tsv"
)

func main() {
	cmd.Flags().String("release", "", "YAML release manifest to resolve file paths from")

	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var cmd = cobra.Command{
	Use:     "elongate-compounds IN OUT",
	Short:   "Explode pipe-delimited moa and target annotations into long format",
	Args:    cobra.RangeArgs(0, 2),
	Version: "0.1.0",
	RunE:    runE,
}

var ErrElongateCompounds = errors.New("elongating compound file")

func runE(cmd *cobra.Command, args []string) error {
	manifestPath, err := cmd.Flags().GetString("release")
	if err != nil {
		return err
	}

	var inPath, outPath string
	switch {
	case manifestPath != "":
		if len(args) != 0 {
			return fmt.Errorf("%w: --release replaces the positional arguments", ErrElongateCompounds)
		}
		rel, err := release.Load(manifestPath)
		if err != nil {
			return err
		}
		inPath = rel.InfoPath()
		outPath = rel.LongPath()
	case len(args) == 2:
		inPath = args[0]
		outPath = args[1]
	default:
		return fmt.Errorf("%w: want IN OUT arguments or --release", ErrElongateCompounds)
	}

	wide, err := tsv.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrElongateCompounds, err)
	}

	long, err := compounds.Elongate(wide)
	if err != nil {
		return err
	}

	err = tsv.WriteFile(outPath, long)
	if err != nil {
		return err
	}

	return nil
}
