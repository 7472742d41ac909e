package object

import (
	"github.com/riginding/dora/internal/types"
	"github.com/riginding/dora/internal/vmiface"
)

// Allocator carves out a contiguous region of the managed heap. It is
// the GC collaborator's contract (spec.md §4.2 "Allocation... through
// the GC") — this package never touches real memory itself.
type Allocator interface {
	Alloc(size int64) (addr int64, err error)
}

// Memory writes into an allocated region. Kept separate from Allocator
// so tests can allocate against one fake and inspect writes against
// another, the way the teacher's linker separates symbol allocation from
// the output buffer it writes into (cmd/link/internal/loader).
type Memory interface {
	WriteWord(addr int64, v uint64)
	WriteBytes(addr int64, data []byte)
}

func writeHeader(mem Memory, addr int64, vtable uintptr) {
	mem.WriteWord(addr, uint64(vtable))
	mem.WriteWord(addr+types.PointerWidth, 0)
}

// AllocObject allocates a fixed-size object of the given class,
// initializing its header with vtable and a zeroed info word. Mirrors
// object.rs's top-level `alloc`.
func AllocObject(a Allocator, mem Memory, vtable uintptr, info vmiface.ClassInfo) (int64, error) {
	size, err := Size(info, 0)
	if err != nil {
		return 0, err
	}
	addr, err := a.Alloc(size)
	if err != nil {
		return 0, err
	}
	writeHeader(mem, addr, vtable)
	return addr, nil
}

// AllocArray allocates an array of length elements and writes the length
// word. It does not initialize element storage beyond zero-fill, which
// is the Allocator's responsibility; mirrors object.rs's `Array::alloc`
// minus the per-element fill loop, which belongs to the code generator's
// array-literal lowering (out of scope here).
func AllocArray(a Allocator, mem Memory, vtable uintptr, info vmiface.ClassInfo, length int64) (int64, error) {
	size, err := Size(info, length)
	if err != nil {
		return 0, err
	}
	addr, err := a.Alloc(size)
	if err != nil {
		return 0, err
	}
	writeHeader(mem, addr, vtable)
	mem.WriteWord(addr+HeaderSize(), uint64(length))
	return addr, nil
}

// AllocString allocates a string object holding a copy of buf, appending
// a trailing NUL for foreign-function interoperability. Mirrors
// object.rs's `str_alloc`/`Str::from_buffer`.
func AllocString(a Allocator, mem Memory, vtable uintptr, stringClass vmiface.ClassInfo, buf []byte) (int64, error) {
	length := int64(len(buf))
	size, err := Size(stringClass, length)
	if err != nil {
		return 0, err
	}
	addr, err := a.Alloc(size)
	if err != nil {
		return 0, err
	}
	writeHeader(mem, addr, vtable)
	mem.WriteWord(addr+HeaderSize(), uint64(length))
	dataAt := addr + HeaderSize() + types.PointerWidth
	mem.WriteBytes(dataAt, buf)
	mem.WriteBytes(dataAt+length, []byte{0})
	return addr, nil
}
