package ir

import (
	"github.com/riginding/dora/internal/types"
	"github.com/riginding/dora/internal/vmiface"
)

// CallKind is a sum type over how a call expression resolves, mirroring
// spec.md §4.1's list of call-site kinds. The type checker fills one of
// these in for every Call/Delegation node before planning starts.
type CallKind interface {
	callKind()
}

// CtorKind is `Class(args)` where Class has no parent allocation step.
type CtorKind struct {
	Class     vmiface.ClassID
	Fct       vmiface.FctID
	ClassArgs []types.Type
}

func (CtorKind) callKind() {}

// CtorNewKind is `Class(args)` for a class requiring a fresh allocation
// distinct from CtorKind (spec.md's "ctor vs. ctor-new" distinction,
// carried over unchanged from the call-kind list it distills).
type CtorNewKind struct {
	Class     vmiface.ClassID
	Fct       vmiface.FctID
	ClassArgs []types.Type
}

func (CtorNewKind) callKind() {}

// MethodKind is `recv.method(args)` at a known static receiver type. Fct
// is either a concrete function or a definition-only trait method, which
// the planner resolves to the receiver class's impl.
type MethodKind struct {
	ReceiverType types.Type
	Fct          vmiface.FctID
	FctArgs      []types.Type
}

func (MethodKind) callKind() {}

// FreeFctKind is a call to a free (package-scope) function.
type FreeFctKind struct {
	Fct       vmiface.FctID
	ClassArgs []types.Type
	FctArgs   []types.Type
}

func (FreeFctKind) callKind() {}

// ExprKind is a call through a callable-valued expression (`f(args)`
// where `f` is itself a local of function type), resolved to the
// function the value's static type names.
type ExprKind struct {
	CalleeType types.Type
	Fct        vmiface.FctID
}

func (ExprKind) callKind() {}

// TraitStaticKind is a call to a trait's default/static method through a
// type parameter bound to that trait (spec.md §9(a) notes trait-object
// dispatch itself is out of scope; this kind covers only the
// type-parameter-bound static form).
type TraitStaticKind struct {
	Owner     types.ParamOwner
	Index     int
	Trait     vmiface.TraitID
	TraitFct  vmiface.FctID
}

func (TraitStaticKind) callKind() {}

// IntrinsicOp enumerates the small set of operations the code generator
// lowers inline instead of emitting a call (spec.md §4.1's "no CallSite
// is recorded for true intrinsics" carve-out). It is an alias for
// vmiface.IntrinsicOp: a vmiface.FctDesc resolved after trait-impl lookup
// can itself name one of these (spec.md §4.1 step 4), so the two packages
// must agree on the same type rather than each keeping their own.
type IntrinsicOp = vmiface.IntrinsicOp

const (
	IntrinsicArrayLen = vmiface.IntrinsicArrayLen
	IntrinsicArrayGet = vmiface.IntrinsicArrayGet
	IntrinsicArraySet = vmiface.IntrinsicArraySet
	IntrinsicStrLen   = vmiface.IntrinsicStrLen
	IntrinsicAssert   = vmiface.IntrinsicAssert
)

// IntrinsicKind marks a call lowered inline; the planner records the op
// in JitInfo.Intrinsics and reserves stack temporaries for the arguments,
// but records no CallSite for the call itself (only the assert
// intrinsic gets one, for its error-class constructor).
type IntrinsicKind struct {
	Op IntrinsicOp
}

func (IntrinsicKind) callKind() {}

// ConvertInfo records whether `as`/`is` at a given node is a valid,
// checkable conversion; the type checker computes this, the planner only
// reads it to decide whether a runtime cast trap can fire there.
type ConvertInfo struct {
	Valid bool
}

// ForIteratorInfo is the desugared method triple a `for` loop's iterable
// expression resolves to (spec.md §4.1's for-loop lowering into
// make_iterator/has_next/next calls), grounded on info.rs's ForTypeInfo.
type ForIteratorInfo struct {
	MakeIterator vmiface.FctID
	HasNext      vmiface.FctID
	Next         vmiface.FctID
	IteratorType types.Type
}

// IdentResolution is a sum type over what an Ident node binds to.
type IdentResolution interface {
	identResolution()
}

// VarIdent is a reference to a local, parameter, or receiver slot.
type VarIdent struct{ Var VarID }

func (VarIdent) identResolution() {}

// FieldIdent is a reference to an implicit `self.field`.
type FieldIdent struct{ Offset int64 }

func (FieldIdent) identResolution() {}
