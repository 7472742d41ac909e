// Package types implements the concrete type representation consumed by
// the frame layout planner and object model: a tagged union over
// primitives and reference kinds, plus the queries those components need
// (size, alignment, concreteness).
package types

import "fmt"

// Kind tags the variant of a Type.
type Kind uint8

const (
	KUnit Kind = iota
	KBool
	KByte
	KChar
	KInt
	KLong
	KFloat
	KDouble
	KNil
	KPtr
	KClass
	KTraitObject
	KTypeParam
)

func (k Kind) String() string {
	switch k {
	case KUnit:
		return "Unit"
	case KBool:
		return "Bool"
	case KByte:
		return "Byte"
	case KChar:
		return "Char"
	case KInt:
		return "Int"
	case KLong:
		return "Long"
	case KFloat:
		return "Float"
	case KDouble:
		return "Double"
	case KNil:
		return "Nil"
	case KPtr:
		return "Ptr"
	case KClass:
		return "Class"
	case KTraitObject:
		return "TraitObject"
	case KTypeParam:
		return "TypeParam"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// PointerWidth is the target's pointer size in bytes. It is set once, at
// startup, from the CPU/ABI descriptor (internal/abi) before any planning
// takes place — analogous to how the teacher's types.PtrSize is seeded
// once by architecture initialization.
var PointerWidth int64 = 8

// SetPointerWidth configures the pointer width used by Size/Alignment for
// pointer-shaped types. It must be called before any Type method that
// depends on pointer width, and is not safe to call concurrently with
// planning.
func SetPointerWidth(w int64) {
	if w <= 0 {
		panic(fmt.Sprintf("types: invalid pointer width %d", w))
	}
	PointerWidth = w
}

// ClassID identifies a class declaration in the VM's class table.
type ClassID int32

// TraitID identifies a trait declaration.
type TraitID int32

// ParamOwner distinguishes whether a TypeParam belongs to the enclosing
// class's generic parameter list or to the function's own.
type ParamOwner uint8

const (
	OwnerClass ParamOwner = iota
	OwnerFct
)

// Type is a concrete or (during specialization) partially-concrete type.
// Every Type reachable from a JitInfo must satisfy IsConcrete (§3
// invariant); TypeParam is the only variant that can fail it.
type Type interface {
	Kind() Kind
	IsFloat() bool
	IsNil() bool
	IsUnit() bool
	// Size returns the in-memory size in bytes.
	Size() int64
	// Alignment returns the required alignment in bytes (a power of two).
	Alignment() int64
	// ClassID returns the class this type names, if any.
	ClassID() (ClassID, bool)
	// TypeParams returns the ordered generic arguments of a class type,
	// or nil for everything else.
	TypeParams() []Type
	// IsConcrete reports whether the type (and, recursively, its generic
	// arguments) contains no unbound TypeParam.
	IsConcrete() bool
	String() string
}

// Primitive is a non-reference scalar type: unit, bool, byte, char, int,
// long, float, double, nil, or ptr.
type Primitive struct {
	kind Kind
}

var (
	Unit   Type = Primitive{KUnit}
	Bool   Type = Primitive{KBool}
	Byte   Type = Primitive{KByte}
	Char   Type = Primitive{KChar}
	Int    Type = Primitive{KInt}
	Long   Type = Primitive{KLong}
	Float  Type = Primitive{KFloat}
	Double Type = Primitive{KDouble}
	Nil    Type = Primitive{KNil}
	Ptr    Type = Primitive{KPtr}
)

func (p Primitive) Kind() Kind   { return p.kind }
func (p Primitive) IsFloat() bool { return p.kind == KFloat || p.kind == KDouble }
func (p Primitive) IsNil() bool   { return p.kind == KNil }
func (p Primitive) IsUnit() bool  { return p.kind == KUnit }

func (p Primitive) Size() int64 {
	switch p.kind {
	case KUnit:
		return 0
	case KBool, KByte:
		return 1
	case KChar, KInt, KFloat:
		return 4
	case KLong, KDouble:
		return 8
	case KNil, KPtr:
		return PointerWidth
	default:
		panic(fmt.Sprintf("types: Size called on non-primitive kind %s", p.kind))
	}
}

func (p Primitive) Alignment() int64 {
	// Primitives are naturally aligned to their own size; unit has no
	// storage and is aligned like a byte so it composes safely with the
	// frame bump allocator.
	if p.kind == KUnit {
		return 1
	}
	return p.Size()
}

func (p Primitive) ClassID() (ClassID, bool) { return 0, false }
func (p Primitive) TypeParams() []Type       { return nil }
func (p Primitive) IsConcrete() bool         { return true }
func (p Primitive) String() string           { return p.kind.String() }

// ClassType names a class with its (possibly empty) ordered generic
// arguments, e.g. List[Int] or Foo.
type ClassType struct {
	ID   ClassID
	Args []Type
}

func NewClassType(id ClassID, args ...Type) ClassType {
	return ClassType{ID: id, Args: args}
}

func (c ClassType) Kind() Kind    { return KClass }
func (c ClassType) IsFloat() bool { return false }
func (c ClassType) IsNil() bool   { return false }
func (c ClassType) IsUnit() bool  { return false }

// Size is always pointer width: classes are heap-allocated and referenced
// through a pointer.
func (c ClassType) Size() int64      { return PointerWidth }
func (c ClassType) Alignment() int64 { return PointerWidth }

func (c ClassType) ClassID() (ClassID, bool) { return c.ID, true }
func (c ClassType) TypeParams() []Type       { return c.Args }

func (c ClassType) IsConcrete() bool {
	for _, a := range c.Args {
		if !a.IsConcrete() {
			return false
		}
	}
	return true
}

func (c ClassType) String() string {
	if len(c.Args) == 0 {
		return fmt.Sprintf("Class(%d)", c.ID)
	}
	return fmt.Sprintf("Class(%d)%v", c.ID, c.Args)
}

// TraitObject is a dynamically-dispatched trait value, represented as a
// fat pointer: a data pointer plus a pointer to the trait's vtable.
type TraitObject struct {
	Trait TraitID
}

func (t TraitObject) Kind() Kind    { return KTraitObject }
func (t TraitObject) IsFloat() bool { return false }
func (t TraitObject) IsNil() bool   { return false }
func (t TraitObject) IsUnit() bool  { return false }

func (t TraitObject) Size() int64      { return 2 * PointerWidth }
func (t TraitObject) Alignment() int64 { return PointerWidth }

func (t TraitObject) ClassID() (ClassID, bool) { return 0, false }
func (t TraitObject) TypeParams() []Type       { return nil }
func (t TraitObject) IsConcrete() bool         { return true }
func (t TraitObject) String() string           { return fmt.Sprintf("TraitObject(%d)", t.Trait) }

// TypeParam is an unbound generic parameter reference. It is never
// concrete on its own; the frame layout planner's precondition (spec §4.1)
// requires every TypeParam to be eliminated by Substitute before it
// reaches a JitInfo.
type TypeParam struct {
	Owner ParamOwner
	Index int
}

func (t TypeParam) Kind() Kind    { return KTypeParam }
func (t TypeParam) IsFloat() bool { return false }
func (t TypeParam) IsNil() bool   { return false }
func (t TypeParam) IsUnit() bool  { return false }

func (t TypeParam) Size() int64 {
	panic("types: Size called on an unbound type parameter")
}
func (t TypeParam) Alignment() int64 {
	panic("types: Alignment called on an unbound type parameter")
}

func (t TypeParam) ClassID() (ClassID, bool) { return 0, false }
func (t TypeParam) TypeParams() []Type       { return nil }
func (t TypeParam) IsConcrete() bool         { return false }
func (t TypeParam) String() string           { return fmt.Sprintf("TypeParam(%v,%d)", t.Owner, t.Index) }
