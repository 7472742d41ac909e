package vmiface

import "github.com/riginding/dora/internal/types"

// FctParent is a sum type over where a function is declared: free
// (package scope), a method on a class, or an impl-block method for a
// trait. Spec.md §9 calls for tagged unions rather than class hierarchies
// for exactly this kind of value.
type FctParent interface {
	fctParent()
}

type FreeParent struct{}

func (FreeParent) fctParent() {}

type ClassParent struct{ Class ClassID }

func (ClassParent) fctParent() {}

type ImplParent struct{ Impl ImplID }

func (ImplParent) fctParent() {}

// FctKind distinguishes a function with a compilable body from a
// builtin-intrinsic (lowered inline by the code generator, never jitted)
// and a definition-only trait method (no body, resolved to an impl at
// each call site).
type FctKind uint8

const (
	FctSource FctKind = iota
	FctBuiltinIntrinsic
	FctDefinitionOnly
)

// FctDesc is a function's type-level signature, independent of its body.
type FctDesc struct {
	ID     FctID
	Parent FctParent

	// Receiver is the declared receiver type, or nil for a free function.
	Receiver types.Type
	// Params is the declared parameter list, not including the receiver.
	Params []types.Type
	Return types.Type

	TypeParamCount int
	Kind           FctKind

	// ImplFor is set when this function realizes a trait method: it names
	// the trait-definition function this is the implementation of.
	ImplFor    FctID
	HasImplFor bool

	// DefinitionTrait is the trait this function is declared in, set only
	// when Kind == FctDefinitionOnly (a trait method with no body, which
	// every call site must resolve to a concrete impl before planning).
	DefinitionTrait TraitID

	// Intrinsic names the operation this function lowers to, set only
	// when Kind == FctBuiltinIntrinsic. A definition-only trait method can
	// resolve to one of these at a call site (spec.md §4.1 step 4), so the
	// planner must re-check IsBuiltinIntrinsic after resolution, not just
	// before it.
	Intrinsic IntrinsicOp
}

// HasSelf reports whether this function has a receiver.
func (f *FctDesc) HasSelf() bool { return f.Receiver != nil }

// ParamsWithSelf returns the receiver (if any) followed by the declared
// parameters, matching the order call sites must supply arguments in
// (spec.md §3 "For every CallSite, args.len() == callee.params_with_self().len()").
func (f *FctDesc) ParamsWithSelf() []types.Type {
	if !f.HasSelf() {
		return f.Params
	}
	out := make([]types.Type, 0, len(f.Params)+1)
	out = append(out, f.Receiver)
	out = append(out, f.Params...)
	return out
}

func (f *FctDesc) IsDefinitionOnly() bool   { return f.Kind == FctDefinitionOnly }
func (f *FctDesc) IsBuiltinIntrinsic() bool { return f.Kind == FctBuiltinIntrinsic }

// ClassInfo is a class's planner-relevant shape: its own type, impls,
// methods, and (for array/string/fixed-size classes) the layout facts
// internal/object needs to size and walk an instance.
type ClassInfo struct {
	Type           types.Type
	TypeParamCount int
	Impls          []ImplID
	Methods        []FctID

	// StaticSize is the fixed object size in bytes for non-array,
	// non-string classes; 0 means "not fixed-size" (object.Size consults
	// IsArray/IsObjectArray/IsString next).
	StaticSize int64
	// ElementSize is the per-element byte size for array classes.
	ElementSize int64
	// RefFieldOffsets lists the byte offsets (from the object base) of
	// reference-typed fields, for fixed-size classes.
	RefFieldOffsets []int64

	IsArray       bool
	IsObjectArray bool
	IsString      bool

	ConstructorID FctID
}

// ImplInfo describes one `impl Trait for Class` block.
type ImplInfo struct {
	Trait   TraitID
	Methods []FctID
	Class   ClassID
}
