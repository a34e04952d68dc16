// Package compounds consolidates the drug-level and sample-level metadata
// tables distributed with a CLUE Drug Repurposing Hub release.
package compounds

// Column names of the CLUE distribution files. The drugs table carries the
// annotation columns; the samples table carries the physical sample columns.
// Both are keyed by PertIName.
const (
	PertIName = "pert_iname"
	BroadID   = "broad_id"

	// Drugs table.
	ClinicalPhase = "clinical_phase"
	MOA           = "moa"
	Target        = "target"
	DiseaseArea   = "disease_area"
	Indication    = "indication"

	// Samples table.
	QCIncompatible    = "qc_incompatible"
	Purity            = "purity"
	Vendor            = "vendor"
	CatalogNo         = "catalog_no"
	VendorName        = "vendor_name"
	ExpectedMass      = "expected_mass"
	SMILES            = "smiles"
	InChIKey          = "InChIKey"
	PubchemCID        = "pubchem_cid"
	DeprecatedBroadID = "deprecated_broad_id"

	// Derived by Merge.
	InChIKey14 = "InChIKey14"
)
