package compounds

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cytodata/repurposing-compounds/pkg/tsv"
)

var ErrKeyMismatch = errors.New("checking pert_iname consistency")

// KeyMismatchError reports compound names present in one table but not the
// other. Every pert_iname must appear in both distribution files; a mismatch
// means the two files are from different releases.
type KeyMismatchError struct {
	// MissingFromDrugs are names only the samples table has.
	MissingFromDrugs []string
	// MissingFromSamples are names only the drugs table has.
	MissingFromSamples []string
}

func (e *KeyMismatchError) Error() string {
	var parts []string
	if len(e.MissingFromDrugs) > 0 {
		parts = append(parts, fmt.Sprintf("%d compounds missing from drugs table: %s",
			len(e.MissingFromDrugs), strings.Join(e.MissingFromDrugs, ", ")))
	}
	if len(e.MissingFromSamples) > 0 {
		parts = append(parts, fmt.Sprintf("%d compounds missing from samples table: %s",
			len(e.MissingFromSamples), strings.Join(e.MissingFromSamples, ", ")))
	}

	return fmt.Sprintf("%v: %s", ErrKeyMismatch, strings.Join(parts, "; "))
}

func (e *KeyMismatchError) Unwrap() error {
	return ErrKeyMismatch
}

// CheckKeys verifies that the set of pert_inames in the drugs table equals
// the set in the samples table. On mismatch it returns a *KeyMismatchError
// naming the offending compounds.
func CheckKeys(drugs, samples *tsv.Table) error {
	drugNames, err := keySet(drugs, "drugs")
	if err != nil {
		return err
	}
	sampleNames, err := keySet(samples, "samples")
	if err != nil {
		return err
	}

	mismatch := &KeyMismatchError{
		MissingFromDrugs:   difference(sampleNames, drugNames),
		MissingFromSamples: difference(drugNames, sampleNames),
	}
	if len(mismatch.MissingFromDrugs) > 0 || len(mismatch.MissingFromSamples) > 0 {
		return mismatch
	}

	return nil
}

func keySet(table *tsv.Table, which string) (map[string]bool, error) {
	keyCol, ok := table.Column(PertIName)
	if !ok {
		return nil, fmt.Errorf("%w: %s table has no %q column", ErrKeyMismatch, which, PertIName)
	}

	set := make(map[string]bool, len(table.Rows))
	for _, row := range table.Rows {
		set[row[keyCol]] = true
	}

	return set, nil
}

// difference returns the elements of a not in b, sorted.
func difference(a, b map[string]bool) []string {
	var result []string
	for name := range a {
		if !b[name] {
			result = append(result, name)
		}
	}
	sort.Strings(result)

	return result
}
