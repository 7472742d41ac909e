package trap

import "github.com/riginding/dora/internal/vmiface"

// ExecState is the CPU execution state a fault handler reads from (and,
// for THROW, writes back to) the OS-supplied signal context. Reading and
// writing real register state is an architecture-specific, unsafe
// operation (spec.md §6: "Execution-state read/write is encapsulated by
// per-architecture routines") — this package never touches raw memory
// itself, it only consumes this contract, the same way internal/object
// treats allocation as an external collaborator.
type ExecState interface {
	// PC is the faulting program counter.
	PC() uintptr
	// SetPC resumes execution at pc once the handler returns.
	SetPC(pc uintptr)
	// ReturnAddress is the return address sitting on top of the stack at
	// the point of the fault, used to find the caller's bailout table.
	ReturnAddress() uintptr
	// Receiver is the method-call receiver pointer, read from whatever
	// register/stack slot this ABI passes it in.
	Receiver() uintptr
}

// Decoder classifies a raw fault (signal number plus whatever
// platform-specific siginfo/context the caller captured) into a Trap.
// spec.md §4.3: "A platform-specific decoder returns an optional trap."
type Decoder interface {
	Detect(signo int, es ExecState) (Trap, bool)
}

// CodeKind is a sum type over what a code address maps to in the VM's
// code map: a lazy-compile stub (direct or virtual), or already-jitted
// code for a known function.
type CodeKind interface {
	codeKind()
}

type CompileStub struct{}

func (CompileStub) codeKind() {}

type VirtCompileStub struct{}

func (VirtCompileStub) codeKind() {}

type FctCode struct{ Fct vmiface.FctID }

func (FctCode) codeKind() {}

// CodeMap looks up which function (or stub) owns a code address.
type CodeMap interface {
	Lookup(pc uintptr) (CodeKind, bool)
	// Dump prints the full map for postmortem diagnosis of an
	// unrecognized fault (spec.md §4.3: "print the execution state and
	// code map, then abort").
	Dump() string
}

// BailoutInfo is a sum type over what action a trap at a given code
// offset implies, taken from a compiled function's bailout side table
// (spec.md §9 glossary "Bailout table").
type BailoutInfo interface {
	bailout()
}

// BailoutDirect marks a direct-call compile stub: Disp is the byte
// distance, counted backward from the return address, to the call
// instruction's patchable operand.
type BailoutDirect struct {
	Callee vmiface.FctID
	Disp   int64
}

func (BailoutDirect) bailout() {}

// BailoutVirtual marks a virtual-call compile stub: VTableIndex is the
// slot in the receiver's vtable the call dispatched through.
type BailoutVirtual struct {
	VTableIndex int
}

func (BailoutVirtual) bailout() {}

// JitFct is the already-compiled-code view of one function: its entry
// pointer and bailout table, looked up by byte offset from that entry.
type JitFct interface {
	EntryPtr() uintptr
	BailoutAt(offset int64) (BailoutInfo, bool)
}

// FctRuntime resolves a function id to its current compiled code.
type FctRuntime interface {
	JitFct(id vmiface.FctID) (JitFct, bool)
}

// VTable is one class's virtual method table: a flat array of code
// pointers, one per virtual method slot.
type VTable interface {
	ClassID() vmiface.ClassID
	MethodPtr(index int) uintptr
	SetMethodPtr(index int, ptr uintptr)
}

// ObjectHeap resolves a receiver pointer to its object header's vtable.
type ObjectHeap interface {
	VTableOf(receiver uintptr) (VTable, error)
}

// ClassMethods resolves which of a class's methods realizes a given
// vtable slot.
type ClassMethods interface {
	MethodAtVTableIndex(class vmiface.ClassID, index int) (vmiface.FctID, bool)
}

// Compiler lazily generates machine code for a function body (out of
// scope here per spec.md §1 — "register allocation/instruction
// emission"), returning its entry pointer.
type Compiler interface {
	Compile(fct vmiface.FctID) (entryPtr uintptr, err error)
}

// CodePatcher rewrites a call site or vtable slot in place with
// store-release semantics and, where code bytes change, an architectural
// instruction-cache sync (spec.md §5: "store-release semantics on the
// patched word and ... instruction-cache synchronization where
// required"). Like ExecState, this is an unsafe, architecture-specific
// concern this package only consumes.
type CodePatcher interface {
	PatchCallTarget(returnAddress uintptr, disp int64, target uintptr)
}

// Thrower delivers a thrown object against the mutable execution state,
// reporting whether a handler frame was found (spec.md §4.3 "THROW").
type Thrower interface {
	Throw(es ExecState) (handlerFound bool)
}
