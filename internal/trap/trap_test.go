package trap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riginding/dora/internal/trap"
)

func TestTrapRoundTrip(t *testing.T) {
	all := []trap.Trap{
		trap.COMPILER, trap.DIV0, trap.ASSERT, trap.INDEX_OUT_OF_BOUNDS,
		trap.NIL, trap.THROW, trap.CAST, trap.UNEXPECTED,
	}
	for _, want := range all {
		got, ok := trap.FromInt(want.Int())
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestTrapFromIntUnrecognized(t *testing.T) {
	_, ok := trap.FromInt(8)
	assert.False(t, ok)

	_, ok = trap.FromInt(9999)
	assert.False(t, ok)
}

func TestExitCodes(t *testing.T) {
	cases := map[trap.Trap]int{
		trap.DIV0:                101,
		trap.ASSERT:              101,
		trap.INDEX_OUT_OF_BOUNDS: 102,
		trap.NIL:                 103,
		trap.THROW:               104,
		trap.CAST:                105,
		trap.UNEXPECTED:          106,
	}
	for tr, want := range cases {
		assert.Equal(t, want, tr.ExitCode(), tr.String())
	}
}
