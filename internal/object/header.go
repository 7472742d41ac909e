// Package object implements the managed object model: the two-word
// object header, polymorphic size discovery, precise reference-field
// walking, and the string/array allocation primitives (spec.md §4.2),
// grounded on original_source/src/object.rs's Header/Obj/Str/Array.
package object

import (
	"fmt"

	"github.com/riginding/dora/internal/types"
)

// HeaderSize is the fixed header size in bytes: a vtable pointer plus one
// pointer-width info word, mirroring object.rs's `#[repr(C)] struct
// Header { vtable: *mut VTable, info: usize }`.
func HeaderSize() int64 { return 2 * types.PointerWidth }

const (
	markBit  = uint64(1)
	ageMask  = uint64(0x1E)
	ageShift = 1
	maxAge   = 15
)

// Header is the two-word prefix of every heap object: a vtable pointer
// identifying its class, and an info word packing the GC mark bit (bit
// 0) and a 4-bit age (bits 1-4).
type Header struct {
	VTable uintptr
	Info   uint64
}

// Marked reports the GC mark bit.
func (h *Header) Marked() bool { return h.Info&markBit != 0 }

// SetMark sets or clears the GC mark bit.
func (h *Header) SetMark(v bool) {
	if v {
		h.Info |= markBit
	} else {
		h.Info &^= markBit
	}
}

// Age returns the object's generational age, 0-15.
func (h *Header) Age() uint32 { return uint32(h.Info&ageMask) >> ageShift }

// SetAge sets the object's generational age. It panics for age > 15,
// matching object.rs's `assert!(age <= 15)` — setting a larger age is a
// programmer error in the collector, not a recoverable runtime fault.
func (h *Header) SetAge(age uint32) {
	if age > maxAge {
		panic(fmt.Sprintf("object: age %d exceeds 4-bit field", age))
	}
	h.Info = (h.Info &^ ageMask) | (uint64(age) << ageShift)
}
