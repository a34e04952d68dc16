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
	Use:     "merge-compounds DRUGS SAMPLES OUT",
	Short:   "Consolidate the CLUE drug and sample metadata files into one table",
	Args:    cobra.RangeArgs(0, 3),
	Version: "0.1.0",
	RunE:    runE,
}

var ErrMergeCompounds = errors.New("merging compound files")

func runE(cmd *cobra.Command, args []string) error {
	manifestPath, err := cmd.Flags().GetString("release")
	if err != nil {
		return err
	}

	var drugsPath, samplesPath, outPath string
	switch {
	case manifestPath != "":
		if len(args) != 0 {
			return fmt.Errorf("%w: --release replaces the positional arguments", ErrMergeCompounds)
		}
		rel, err := release.Load(manifestPath)
		if err != nil {
			return err
		}
		drugsPath = rel.DrugsPath()
		samplesPath = rel.SamplesPath()
		outPath = rel.InfoPath()
	case len(args) == 3:
		drugsPath = args[0]
		samplesPath = args[1]
		outPath = args[2]
	default:
		return fmt.Errorf("%w: want DRUGS SAMPLES OUT arguments or --release", ErrMergeCompounds)
	}

	drugs, err := tsv.ReadFile(drugsPath)
	if err != nil {
		return fmt.Errorf("%w: drugs table: %w", ErrMergeCompounds, err)
	}

	samples, err := tsv.ReadFile(samplesPath)
	if err != nil {
		return fmt.Errorf("%w: samples table: %w", ErrMergeCompounds, err)
	}

	merged, err := compounds.Merge(drugs, samples, compounds.Passthrough)
	if err != nil {
		return err
	}

	err = tsv.WriteFile(outPath, merged)
	if err != nil {
		return err
	}

	return nil
}
