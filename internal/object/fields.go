package object

import (
	"github.com/riginding/dora/internal/types"
	"github.com/riginding/dora/internal/vmiface"
)

// Slot is the address of one pointer-sized reference field, relative to
// the start of some addressable heap region. It is an offset rather than
// a raw pointer because this package never touches real memory — the
// caller (the GC collaborator, out of scope per spec.md §1) owns the
// actual heap and translates slots into pointers.
type Slot int64

// VisitReferenceFields enumerates every reference-carrying slot of an
// object of the given class, rooted at base, invoking visit once per
// slot in a stable order. Mirrors object.rs's
// Obj::visit_reference_fields: object arrays walk their element slots,
// everything else walks the class's static reference-field offset list.
//
// length is the element count; it is only consulted for object arrays.
func VisitReferenceFields(info vmiface.ClassInfo, base int64, length int64, visit func(Slot)) {
	if info.IsObjectArray {
		dataStart := base + HeaderSize() + types.PointerWidth
		for i := int64(0); i < length; i++ {
			visit(Slot(dataStart + i*types.PointerWidth))
		}
		return
	}

	for _, offset := range info.RefFieldOffsets {
		visit(Slot(base + offset))
	}
}
