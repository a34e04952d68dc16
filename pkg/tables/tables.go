package tables

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"

	"github.com/cytodata/repurposing-compounds/pkg/compounds"
	"github.com/cytodata/repurposing-compounds/pkg/tsv"
)

const (
	Compounds     = "compounds"
	CompoundsLong = "compounds_long"

	ParquetExt = ".parquet"
)

var (
	CompoundsSchema = arrow.NewSchema(compoundFields(), nil)

	CompoundsLongSchema = arrow.NewSchema(append(compoundFields(),
		arrow.Field{Name: compounds.IndexColumn, Type: arrow.PrimitiveTypes.Int64},
		arrow.Field{Name: compounds.MOAUnique, Type: arrow.BinaryTypes.String},
		arrow.Field{Name: compounds.TargetUnique, Type: arrow.BinaryTypes.String},
	), nil)
)

func compoundFields() []arrow.Field {
	return []arrow.Field{
		{Name: compounds.BroadID, Type: arrow.BinaryTypes.String},
		{Name: compounds.PertIName, Type: arrow.BinaryTypes.String},
		{Name: compounds.ClinicalPhase, Type: &arrow.DictionaryType{
			IndexType: arrow.PrimitiveTypes.Uint8,
			ValueType: arrow.BinaryTypes.String,
			Ordered:   false,
		}},
		{Name: compounds.MOA, Type: arrow.BinaryTypes.String},
		{Name: compounds.Target, Type: arrow.BinaryTypes.String},
		{Name: compounds.DiseaseArea, Type: arrow.BinaryTypes.String},
		{Name: compounds.Indication, Type: arrow.BinaryTypes.String},
		{Name: compounds.QCIncompatible, Type: arrow.BinaryTypes.String},
		{Name: compounds.Purity, Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: compounds.Vendor, Type: arrow.BinaryTypes.String},
		{Name: compounds.CatalogNo, Type: arrow.BinaryTypes.String},
		{Name: compounds.VendorName, Type: arrow.BinaryTypes.String},
		{Name: compounds.ExpectedMass, Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: compounds.SMILES, Type: arrow.BinaryTypes.String},
		{Name: compounds.InChIKey, Type: arrow.BinaryTypes.String},
		{Name: compounds.PubchemCID, Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		{Name: compounds.DeprecatedBroadID, Type: arrow.BinaryTypes.String},
		{Name: compounds.InChIKey14, Type: arrow.BinaryTypes.String},
	}
}

var ErrBuildRecord = errors.New("building Arrow record")

// BuildRecord converts a table into an Arrow record matching schema. Columns
// are matched by name, so the table may hold its columns in any order. Empty
// cells in numeric columns become nulls; malformed numbers are an error.
//
// The caller owns the returned record and must Release it.
func BuildRecord(allocator memory.Allocator, schema *arrow.Schema, table *tsv.Table) (arrow.Record, error) {
	indices := make([]int, schema.NumFields())
	for i, field := range schema.Fields() {
		idx, ok := table.Column(field.Name)
		if !ok {
			return nil, fmt.Errorf("%w: table has no column %q", ErrBuildRecord, field.Name)
		}
		indices[i] = idx
	}

	builder := array.NewRecordBuilder(allocator, schema)
	defer builder.Release()

	for i, row := range table.Rows {
		for j := range indices {
			err := appendCell(builder.Field(j), schema.Field(j).Name, row[indices[j]])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %w", ErrBuildRecord, i, err)
			}
		}
	}

	return builder.NewRecord(), nil
}

func appendCell(b array.Builder, column, cell string) error {
	switch builder := b.(type) {
	case *array.StringBuilder:
		builder.Append(cell)
	case *array.BinaryDictionaryBuilder:
		err := builder.AppendString(cell)
		if err != nil {
			return fmt.Errorf("appending %q to column %q: %w", cell, column, err)
		}
	case *array.Float64Builder:
		if cell == "" {
			builder.AppendNull()
			break
		}
		value, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return fmt.Errorf("column %q: parsing %q: %w", column, cell, err)
		}
		builder.Append(value)
	case *array.Int64Builder:
		if cell == "" {
			builder.AppendNull()
			break
		}
		value, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return fmt.Errorf("column %q: parsing %q: %w", column, cell, err)
		}
		builder.Append(value)
	default:
		return fmt.Errorf("column %q: unsupported builder %T", column, b)
	}

	return nil
}
