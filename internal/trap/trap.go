// Package trap implements the signal-driven runtime trap dispatcher
// (spec.md §4.3): installing platform fault handlers, decoding a fault
// into a Trap, and either delivering a fatal runtime error, unwinding a
// thrown object, or lazily compiling and patching the faulting call site.
//
// Grounded on original_source's src/os/signal.rs, with the platform
// predicate style taken from cmd/link/internal/ld/target.go's Target.
package trap

import "fmt"

// Trap is one of the eight recognized fault kinds (spec.md §4.3's "Trap
// taxonomy"). The integer values are part of the wire contract between
// the code generator (out of scope here) and the dispatcher: a compiled
// trap instruction encodes one of these as an immediate operand.
type Trap uint8

const (
	COMPILER Trap = iota
	DIV0
	ASSERT
	INDEX_OUT_OF_BOUNDS
	NIL
	THROW
	CAST
	UNEXPECTED
)

func (t Trap) String() string {
	switch t {
	case COMPILER:
		return "COMPILER"
	case DIV0:
		return "DIV0"
	case ASSERT:
		return "ASSERT"
	case INDEX_OUT_OF_BOUNDS:
		return "INDEX_OUT_OF_BOUNDS"
	case NIL:
		return "NIL"
	case THROW:
		return "THROW"
	case CAST:
		return "CAST"
	case UNEXPECTED:
		return "UNEXPECTED"
	default:
		return fmt.Sprintf("Trap(%d)", uint8(t))
	}
}

// Int returns the trap's wire value.
func (t Trap) Int() uint32 { return uint32(t) }

// FromInt recovers a Trap from its wire value. The round-trip
// FromInt(t.Int()) == (t, true) must hold for every declared variant;
// any other value reports ok == false (spec.md §4.3, §8 "Trap
// round-trip").
func FromInt(v uint32) (Trap, bool) {
	if v > uint32(UNEXPECTED) {
		return 0, false
	}
	return Trap(v), true
}

// ExitCode is the process exit code a fatal trap terminates with
// (spec.md §4.3, §7 "exit codes (101-106, 200, 1) are part of the
// contract"). THROW maps to 104: the dispatcher exits with it only when
// no handler frame was found, and a THROW that finds a handler resumes
// without exiting.
func (t Trap) ExitCode() int {
	switch t {
	case DIV0, ASSERT:
		return 101
	case INDEX_OUT_OF_BOUNDS:
		return 102
	case NIL:
		return 103
	case THROW:
		return 104
	case CAST:
		return 105
	case UNEXPECTED:
		return 106
	default:
		return 1
	}
}

// ExitUnrecognized is the exit code used when a fault could not be
// decoded into any Trap at all.
const ExitUnrecognized = 1

// ExitUnknownCompilerPC is the exit code used when a COMPILER trap's
// faulting PC is not found in the code map.
const ExitUnknownCompilerPC = 200
