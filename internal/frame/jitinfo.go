// Package frame implements the frame layout planner (spec.md §4.1): it
// walks a type-checked function body and produces a JitInfo describing
// every local's stack offset, every call site's argument staging, and
// the handful of per-statement auxiliary slots (do/catch/finally,
// for-loop iterators, string templates) the code generator needs.
//
// Grounded on original_source's dora/src/baseline/ast/info.rs
// (InfoGenerator/JitInfo), with the stack-bump allocation strategy itself
// grounded on cmd/compile/internal/ssagen/pgen.go's AllocFrame.
package frame

import (
	"github.com/riginding/dora/internal/ir"
	"github.com/riginding/dora/internal/types"
	"github.com/riginding/dora/internal/vmiface"
)

// Store is a sum type over where an expression's value lives once
// evaluated: in whatever register the code generator already placed it,
// or spilled to a stack temporary.
type Store interface {
	store()
}

// RegStore means the value stays in its natural register; this is the
// default for any node with no entry in JitInfo.Stores.
type RegStore struct{}

func (RegStore) store() {}

// TempStore means the value is spilled to the given stack offset.
type TempStore struct {
	Offset int64
	Type   types.Type
}

func (TempStore) store() {}

// Arg is a sum type over how one call argument is supplied, mirroring
// info.rs's Arg enum.
type Arg interface {
	arg()
	ArgType() types.Type
	ArgOffset() int64
}

// ExprArg evaluates an expression and stores it at Offset.
type ExprArg struct {
	Expr   ir.Expr
	Type   types.Type
	Offset int64
}

func (ExprArg) arg()                  {}
func (a ExprArg) ArgType() types.Type { return a.Type }
func (a ExprArg) ArgOffset() int64    { return a.Offset }

// StackArg reads a value already sitting at a known stack slot (used for
// for-loop iterator values threaded between the three desugared calls).
type StackArg struct {
	Source int64
	Type   types.Type
	Offset int64
}

func (StackArg) arg()                  {}
func (a StackArg) ArgType() types.Type { return a.Type }
func (a StackArg) ArgOffset() int64    { return a.Offset }

// SelfieArg supplies an already-allocated receiver (plain constructor
// call: the allocation happened by value on the stack, a super call, or
// a delegation).
type SelfieArg struct {
	Type   types.Type
	Offset int64
}

func (SelfieArg) arg()                  {}
func (a SelfieArg) ArgType() types.Type { return a.Type }
func (a SelfieArg) ArgOffset() int64    { return a.Offset }

// SelfieNewArg supplies a receiver that must be freshly heap-allocated
// before the call (the CtorNew / assert-failure path).
type SelfieNewArg struct {
	Type   types.Type
	Offset int64
}

func (SelfieNewArg) arg()                  {}
func (a SelfieNewArg) ArgType() types.Type { return a.Type }
func (a SelfieNewArg) ArgOffset() int64    { return a.Offset }

// CallSite is one fully-resolved call: the callee, every argument's
// staging, the stack space the call itself needs for overflow arguments,
// and the specialized type-parameter lists the callee's body (out of
// scope here) will need.
type CallSite struct {
	Callee        vmiface.FctID
	Args          []Arg
	ArgSize       int64
	ClassTypeArgs []types.Type
	FctTypeArgs   []types.Type
	SuperCall     bool
	ReturnType    types.Type
}

// ForInfo is the three desugared method calls a for-loop lowers to.
type ForInfo struct {
	MakeIterator CallSite
	HasNext      CallSite
	Next         CallSite
}

// TemplatePartInfo is one interpolated segment of a string template.
type TemplatePartInfo struct {
	// ObjectOffset is set when the part's static type is not already
	// String and must be converted first.
	ObjectOffset *int64
	ToString     *CallSite
	Append       CallSite
}

// TemplateInfo is the full desugaring of one string template literal.
type TemplateInfo struct {
	StringBufferOffset int64
	StringPartOffset   int64
	StringBufferNew    CallSite
	Parts              []TemplatePartInfo
	StringBufferToStr  CallSite
}

// JitInfo is the frame layout planner's output for one function
// (spec.md §3's "per-function layout descriptor").
type JitInfo struct {
	StackSize      int64
	Leaf           bool
	EHReturnValue  *int64

	Stores      map[ir.NodeID]Store
	CallSites   map[ir.NodeID]CallSite
	NodeOffsets map[ir.NodeID]int64
	VarOffsets  map[ir.VarID]int64
	VarTypes    map[ir.VarID]types.Type
	Intrinsics  map[ir.NodeID]ir.IntrinsicOp
	Fors        map[ir.NodeID]ForInfo
	Templates   map[ir.NodeID]TemplateInfo
}

func newJitInfo() *JitInfo {
	return &JitInfo{
		Stores:      make(map[ir.NodeID]Store),
		CallSites:   make(map[ir.NodeID]CallSite),
		NodeOffsets: make(map[ir.NodeID]int64),
		VarOffsets:  make(map[ir.VarID]int64),
		VarTypes:    make(map[ir.VarID]types.Type),
		Intrinsics:  make(map[ir.NodeID]ir.IntrinsicOp),
		Fors:        make(map[ir.NodeID]ForInfo),
		Templates:   make(map[ir.NodeID]TemplateInfo),
	}
}

// StoreOf returns the recorded store for id, defaulting to RegStore as
// info.rs's get_store does.
func (j *JitInfo) StoreOf(id ir.NodeID) Store {
	if s, ok := j.Stores[id]; ok {
		return s
	}
	return RegStore{}
}

// Offset returns the stack offset assigned to a variable. It panics if
// the variable was never planned, matching JitInfo::offset's `.expect`.
func (j *JitInfo) Offset(id ir.VarID) int64 {
	off, ok := j.VarOffsets[id]
	if !ok {
		panic("frame: no offset found for var")
	}
	return off
}

// TypeOf returns the specialized type assigned to a variable.
func (j *JitInfo) TypeOf(id ir.VarID) types.Type {
	t, ok := j.VarTypes[id]
	if !ok {
		panic("frame: no type found for var")
	}
	return t
}
