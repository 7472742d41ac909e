// Package enumck checks enum declarations: every enum must declare at
// least one variant, and no two variants in the same enum may share a
// name. Grounded directly on original_source's
// dora/src/semck/enumck.rs, which this package follows statement for
// statement.
package enumck

import "github.com/riginding/dora/internal/diag"

// Variant is one declared name in an enum, at its own source position.
type Variant struct {
	Name string
	Pos  diag.Position
}

// Enum is the minimal shape of an enum declaration this checker needs:
// its own position (for the NoEnumValue diagnostic) and its variants in
// declaration order (for ShadowEnumValue and value assignment).
type Enum struct {
	Pos      diag.Position
	Variants []Variant
}

// Result is the outcome of checking one enum: each variant's assigned
// ordinal, in declaration order (the first occurrence of a duplicate name
// still gets one, matching the original's `name_to_value.insert` which
// keeps the earlier entry and only reports the later one as a shadow).
type Result struct {
	Values []uint32
}

// Check validates one enum declaration, reporting into bag, and returns
// the ordinal assigned to each variant in declaration order.
func Check(file string, e Enum, bag *diag.Bag) Result {
	seen := make(map[string]bool, len(e.Variants))
	values := make([]uint32, len(e.Variants))

	var next uint32
	for i, v := range e.Variants {
		if seen[v.Name] {
			bag.Report(file, v.Pos, diag.ShadowEnumValue{Name: v.Name})
		}
		seen[v.Name] = true

		values[i] = next
		next++
	}

	if len(e.Variants) == 0 {
		bag.Report(file, e.Pos, diag.NoEnumValue{})
	}

	return Result{Values: values}
}
