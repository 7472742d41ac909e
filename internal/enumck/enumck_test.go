package enumck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riginding/dora/internal/diag"
	"github.com/riginding/dora/internal/enumck"
)

func TestEmptyEnumReportsNoEnumValue(t *testing.T) {
	bag := &diag.Bag{}
	e := enumck.Enum{Pos: diag.Position{Line: 1, Column: 1}}

	enumck.Check("foo.dora", e, bag)

	msgs := bag.All()
	require.Len(t, msgs, 1)
	assert.Equal(t, diag.Position{Line: 1, Column: 1}, msgs[0].Pos)
	assert.Equal(t, diag.NoEnumValue{}, msgs[0].Kind)
}

func TestDistinctVariantsReportNothing(t *testing.T) {
	bag := &diag.Bag{}
	e := enumck.Enum{
		Pos: diag.Position{Line: 1, Column: 1},
		Variants: []enumck.Variant{
			{Name: "A", Pos: diag.Position{Line: 1, Column: 12}},
			{Name: "B", Pos: diag.Position{Line: 1, Column: 15}},
			{Name: "C", Pos: diag.Position{Line: 1, Column: 18}},
		},
	}

	result := enumck.Check("foo.dora", e, bag)

	assert.True(t, bag.Empty())
	assert.Equal(t, []uint32{0, 1, 2}, result.Values)
}

func TestDuplicateVariantReportsShadowAtSecondOccurrence(t *testing.T) {
	bag := &diag.Bag{}
	e := enumck.Enum{
		Pos: diag.Position{Line: 1, Column: 1},
		Variants: []enumck.Variant{
			{Name: "A", Pos: diag.Position{Line: 1, Column: 12}},
			{Name: "A", Pos: diag.Position{Line: 1, Column: 15}},
		},
	}

	result := enumck.Check("foo.dora", e, bag)

	msgs := bag.All()
	require.Len(t, msgs, 1)
	assert.Equal(t, diag.Position{Line: 1, Column: 15}, msgs[0].Pos)
	assert.Equal(t, diag.ShadowEnumValue{Name: "A"}, msgs[0].Kind)
	assert.Equal(t, []uint32{0, 1}, result.Values)
}
