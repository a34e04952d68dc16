package release

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "release.yaml")
	err := os.WriteFile(path, []byte(contents), 0o644)
	if err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeManifest(t, "data_dir: clue\ndate: \"20200324\"\n")

	rel, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got, want := rel.DrugsPath(), filepath.Join("clue", "repurposing_drugs_20200324.txt"); got != want {
		t.Errorf("DrugsPath() = %q, want %q", got, want)
	}
	if got, want := rel.SamplesPath(), filepath.Join("clue", "repurposing_samples_20200324.txt"); got != want {
		t.Errorf("SamplesPath() = %q, want %q", got, want)
	}
	if got, want := rel.InfoPath(), "repurposing_info.tsv"; got != want {
		t.Errorf("InfoPath() = %q, want %q", got, want)
	}
	if got, want := rel.LongPath(), "repurposing_info_long.tsv"; got != want {
		t.Errorf("LongPath() = %q, want %q", got, want)
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := writeManifest(t, `data_dir: downloads
date: "20180907"
drugs_template: drugs_%s.tsv
samples_template: samples_%s.tsv
output_base: consolidated
`)

	rel, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got, want := rel.DrugsPath(), filepath.Join("downloads", "drugs_20180907.tsv"); got != want {
		t.Errorf("DrugsPath() = %q, want %q", got, want)
	}
	if got, want := rel.SamplesPath(), filepath.Join("downloads", "samples_20180907.tsv"); got != want {
		t.Errorf("SamplesPath() = %q, want %q", got, want)
	}
	if got, want := rel.InfoPath(), "consolidated.tsv"; got != want {
		t.Errorf("InfoPath() = %q, want %q", got, want)
	}
	if got, want := rel.LongPath(), "consolidated_long.tsv"; got != want {
		t.Errorf("LongPath() = %q, want %q", got, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{name: "missing date", contents: "data_dir: clue\n"},
		{name: "malformed yaml", contents: "data_dir: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeManifest(t, tc.contents))
			if !errors.Is(err, ErrLoadRelease) {
				t.Fatalf("Load() got error %v, want ErrLoadRelease", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrLoadRelease) {
		t.Fatalf("Load() got error %v, want ErrLoadRelease", err)
	}
}
