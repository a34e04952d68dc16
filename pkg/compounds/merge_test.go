package compounds

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cytodata/repurposing-compounds/pkg/tsv"
)

func TestMerge(t *testing.T) {
	drugs := &tsv.Table{
		Columns: []string{PertIName, ClinicalPhase, MOA, Target},
		Rows: [][]string{
			{"warfarin", "Launched", "vitamin K antagonist", "VKORC1"},
			{"aspirin", "Launched", "cyclooxygenase inhibitor", "PTGS1|PTGS2"},
		},
	}
	samples := &tsv.Table{
		Columns: []string{BroadID, PertIName, Purity, InChIKey},
		Rows: [][]string{
			{"BRD-A1", "aspirin", "99.0", "BSYNRYMUTXBXSQ-UHFFFAOYSA-N"},
			{"BRD-W1", "warfarin", "98.5", "PJVWKTKQMONHTI-UHFFFAOYSA-N"},
			{"BRD-A2", "aspirin", "", "BSYNRYMUTXBXSQ-UHFFFAOYSA-N"},
		},
	}

	got, err := Merge(drugs, samples, nil)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}

	// Drug-row order outer, sample file order inner; broad_id first;
	// InChIKey14 appended last.
	want := &tsv.Table{
		Columns: []string{BroadID, PertIName, ClinicalPhase, MOA, Target, Purity, InChIKey, InChIKey14},
		Rows: [][]string{
			{"BRD-W1", "warfarin", "Launched", "vitamin K antagonist", "VKORC1", "98.5", "PJVWKTKQMONHTI-UHFFFAOYSA-N", "PJVWKTKQMONHTI"},
			{"BRD-A1", "aspirin", "Launched", "cyclooxygenase inhibitor", "PTGS1|PTGS2", "99.0", "BSYNRYMUTXBXSQ-UHFFFAOYSA-N", "BSYNRYMUTXBXSQ"},
			{"BRD-A2", "aspirin", "Launched", "cyclooxygenase inhibitor", "PTGS1|PTGS2", "", "BSYNRYMUTXBXSQ-UHFFFAOYSA-N", "BSYNRYMUTXBXSQ"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge() diff (-want +got):\n%s", diff)
	}
}

func TestMerge_KeyMismatch(t *testing.T) {
	drugs := &tsv.Table{
		Columns: []string{PertIName, MOA},
		Rows:    [][]string{{"aspirin", "cyclooxygenase inhibitor"}},
	}
	samples := &tsv.Table{
		Columns: []string{BroadID, PertIName, InChIKey},
		Rows:    [][]string{{"BRD-I1", "ibuprofen", "HEFNNWSXXWATRW-UHFFFAOYSA-N"}},
	}

	_, err := Merge(drugs, samples, nil)
	if !errors.Is(err, ErrKeyMismatch) {
		t.Fatalf("Merge() got error %v, want ErrKeyMismatch", err)
	}
}

func TestMerge_ConvertsInChI(t *testing.T) {
	drugs := &tsv.Table{
		Columns: []string{PertIName, MOA},
		Rows:    [][]string{{"aspirin", "cyclooxygenase inhibitor"}},
	}
	samples := &tsv.Table{
		Columns: []string{BroadID, PertIName, InChIKey},
		Rows:    [][]string{{"BRD-A1", "aspirin", "InChI=1S/C9H8O4/c1-6(10)13-8-5-3-2-4-7(8)9(11)12/h2-5H,1H3,(H,11,12)"}},
	}

	convert := func(inchi string) (string, error) {
		return "BSYNRYMUTXBXSQ-UHFFFAOYSA-N", nil
	}

	got, err := Merge(drugs, samples, convert)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}

	col, ok := got.Column(InChIKey14)
	if !ok {
		t.Fatalf("Merge() result missing %q column", InChIKey14)
	}
	if key := got.Rows[0][col]; key != "BSYNRYMUTXBXSQ" {
		t.Errorf("InChIKey14 = %q, want %q", key, "BSYNRYMUTXBXSQ")
	}
}

func TestMerge_ConverterError(t *testing.T) {
	drugs := &tsv.Table{
		Columns: []string{PertIName},
		Rows:    [][]string{{"aspirin"}},
	}
	samples := &tsv.Table{
		Columns: []string{BroadID, PertIName, InChIKey},
		Rows:    [][]string{{"BRD-A1", "aspirin", "InChI=1S/C9H8O4"}},
	}

	convert := func(inchi string) (string, error) {
		return "", fmt.Errorf("no chemistry library")
	}

	_, err := Merge(drugs, samples, convert)
	if !errors.Is(err, ErrMerge) {
		t.Fatalf("Merge() got error %v, want ErrMerge", err)
	}
}

func TestTruncateKey(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty", value: "", want: ""},
		{name: "shorter kept whole", value: "short", want: "short"},
		{name: "exactly fourteen", value: "BSYNRYMUTXBXSQ", want: "BSYNRYMUTXBXSQ"},
		{name: "full key truncated", value: "BSYNRYMUTXBXSQ-UHFFFAOYSA-N", want: "BSYNRYMUTXBXSQ"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncateKey(tc.value); got != tc.want {
				t.Errorf("truncateKey(%q) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestPassthrough(t *testing.T) {
	got, err := Passthrough("InChI=1S/C9H8O4")
	if err != nil {
		t.Fatalf("Passthrough() error: %v", err)
	}
	if got != "InChI=1S/C9H8O4" {
		t.Errorf("Passthrough() = %q, want input unchanged", got)
	}
}
