// Package release resolves the file layout of a CLUE Drug Repurposing Hub
// release from a small YAML manifest, so commands do not need the
// distribution paths spelled out every run.
package release

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults matching the CLUE distribution layout.
const (
	DefaultDrugsTemplate   = "repurposing_drugs_%s.txt"
	DefaultSamplesTemplate = "repurposing_samples_%s.txt"
	DefaultOutputBase      = "repurposing_info"
)

// Release names one dated distribution of the drugs and samples files.
type Release struct {
	// DataDir is the directory holding the distribution files.
	DataDir string `yaml:"data_dir"`
	// Date is the release date stamp, e.g. "20200324".
	Date string `yaml:"date"`

	// DrugsTemplate and SamplesTemplate override the distribution file
	// names; each must contain one %s for Date.
	DrugsTemplate   string `yaml:"drugs_template,omitempty"`
	SamplesTemplate string `yaml:"samples_template,omitempty"`

	// OutputBase overrides the base name of the consolidated outputs.
	OutputBase string `yaml:"output_base,omitempty"`
}

var ErrLoadRelease = errors.New("loading release manifest")

// Load reads and validates a release manifest, filling in defaults for
// omitted fields.
func Load(path string) (*Release, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", ErrLoadRelease, path, err)
	}

	release := &Release{}
	err = yaml.Unmarshal(contents, release)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %w", ErrLoadRelease, path, err)
	}

	if release.Date == "" {
		return nil, fmt.Errorf("%w: %q does not set date", ErrLoadRelease, path)
	}

	if release.DrugsTemplate == "" {
		release.DrugsTemplate = DefaultDrugsTemplate
	}
	if release.SamplesTemplate == "" {
		release.SamplesTemplate = DefaultSamplesTemplate
	}
	if release.OutputBase == "" {
		release.OutputBase = DefaultOutputBase
	}

	return release, nil
}

// DrugsPath is the path of the drug-level metadata file.
func (r *Release) DrugsPath() string {
	return filepath.Join(r.DataDir, fmt.Sprintf(r.DrugsTemplate, r.Date))
}

// SamplesPath is the path of the sample-level metadata file.
func (r *Release) SamplesPath() string {
	return filepath.Join(r.DataDir, fmt.Sprintf(r.SamplesTemplate, r.Date))
}

// InfoPath is the output path of the consolidated table.
func (r *Release) InfoPath() string {
	return r.OutputBase + ".tsv"
}

// LongPath is the output path of the long-format table.
func (r *Release) LongPath() string {
	return r.OutputBase + "_long.tsv"
}
