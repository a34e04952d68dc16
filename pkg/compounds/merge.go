package compounds

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cytodata/repurposing-compounds/pkg/tsv"
)

var ErrMerge = errors.New("merging compound tables")

// KeyConverter converts a full InChI string to an InChIKey. The conversion
// itself is chemistry-library territory; callers plug in whatever
// implementation they have available.
type KeyConverter func(inchi string) (string, error)

// Passthrough returns the value unchanged.
func Passthrough(inchi string) (string, error) {
	return inchi, nil
}

// Merge inner-joins the drugs and samples tables on pert_iname, after
// verifying that both tables cover the same compounds. Drug-row order is
// preserved; each drug row joins with every matching sample row in file
// order. The result starts with broad_id, followed by the remaining drug
// columns and then the sample columns, and ends with a derived InChIKey14
// column.
//
// A nil convert defaults to Passthrough.
func Merge(drugs, samples *tsv.Table, convert KeyConverter) (*tsv.Table, error) {
	if convert == nil {
		convert = Passthrough
	}

	err := CheckKeys(drugs, samples)
	if err != nil {
		return nil, err
	}

	merged, err := join(drugs, samples)
	if err != nil {
		return nil, err
	}

	err = merged.MoveToFront(BroadID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMerge, err)
	}

	keys, err := deriveKeys(merged, convert)
	if err != nil {
		return nil, err
	}

	err = merged.AppendColumn(InChIKey14, keys)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMerge, err)
	}

	return merged, nil
}

func join(drugs, samples *tsv.Table) (*tsv.Table, error) {
	drugKey, ok := drugs.Column(PertIName)
	if !ok {
		return nil, fmt.Errorf("%w: drugs table has no %q column", ErrMerge, PertIName)
	}
	sampleKey, ok := samples.Column(PertIName)
	if !ok {
		return nil, fmt.Errorf("%w: samples table has no %q column", ErrMerge, PertIName)
	}

	// Sample rows per compound, in file order.
	matches := make(map[string][]int, len(samples.Rows))
	for i, row := range samples.Rows {
		name := row[sampleKey]
		matches[name] = append(matches[name], i)
	}

	columns := append([]string{}, drugs.Columns...)
	for i, column := range samples.Columns {
		if i == sampleKey {
			continue
		}
		columns = append(columns, column)
	}

	merged := &tsv.Table{Columns: columns}
	for _, drugRow := range drugs.Rows {
		for _, i := range matches[drugRow[drugKey]] {
			row := make([]string, 0, len(columns))
			row = append(row, drugRow...)
			for j, cell := range samples.Rows[i] {
				if j == sampleKey {
					continue
				}
				row = append(row, cell)
			}
			merged.Rows = append(merged.Rows, row)
		}
	}

	return merged, nil
}

// deriveKeys computes the InChIKey14 column: InChI values are converted to
// InChIKeys first, everything else is taken as-is, and the result is cut to
// its first fourteen characters.
func deriveKeys(merged *tsv.Table, convert KeyConverter) ([]string, error) {
	inchiCol, ok := merged.Column(InChIKey)
	if !ok {
		return nil, fmt.Errorf("%w: merged table has no %q column", ErrMerge, InChIKey)
	}

	keys := make([]string, len(merged.Rows))
	for i, row := range merged.Rows {
		value := row[inchiCol]
		if strings.HasPrefix(value, "InChI") {
			converted, err := convert(value)
			if err != nil {
				return nil, fmt.Errorf("%w: converting %q: %w", ErrMerge, value, err)
			}
			value = converted
		}

		keys[i] = truncateKey(value)
	}

	return keys, nil
}

// truncateKey keeps the first fourteen characters, the connectivity block of
// a full InChIKey. Shorter values are kept whole.
func truncateKey(value string) string {
	runes := []rune(value)
	if len(runes) <= 14 {
		return value
	}

	return string(runes[:14])
}
