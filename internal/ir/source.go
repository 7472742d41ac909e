package ir

import "github.com/riginding/dora/internal/types"

// VarInfo is one entry in a function's variable table: every local,
// parameter, and the receiver (if any) gets one, in declaration order.
type VarInfo struct {
	ID           VarID
	DeclaredType types.Type
	// Reassignable is true for `var`-declared locals and all parameters;
	// false for `let`-declared locals. The planner does not care, but
	// callers building a FunctionSource by hand may want the distinction
	// for readability of test fixtures.
	Reassignable bool
}

// FunctionSource is a single function's type-checked body plus the
// per-node lookup maps the planner reads instead of re-deriving type
// information (spec.md §3's "Consumed from the type checker").
type FunctionSource struct {
	Body Stmt

	// Params lists the variable table entries for the declared
	// parameters, in declaration order, not including the receiver.
	Params []VarID
	// Self is the receiver's variable id, or -1 if the function has none.
	Self VarID

	Vars []VarInfo

	NodeType    map[NodeID]types.Type
	NodeCall    map[NodeID]CallKind
	NodeConvert map[NodeID]ConvertInfo
	NodeFor     map[NodeID]ForIteratorInfo
	NodeIdent   map[NodeID]IdentResolution
}

// NoSelf is the sentinel Self value for a function with no receiver.
const NoSelf VarID = -1

// NewFunctionSource builds an empty FunctionSource with initialized maps,
// ready for a caller (typically a test fixture, since parsing is out of
// scope) to fill in.
func NewFunctionSource(body Stmt) *FunctionSource {
	return &FunctionSource{
		Body:        body,
		Self:        NoSelf,
		NodeType:    make(map[NodeID]types.Type),
		NodeCall:    make(map[NodeID]CallKind),
		NodeConvert: make(map[NodeID]ConvertInfo),
		NodeFor:     make(map[NodeID]ForIteratorInfo),
		NodeIdent:   make(map[NodeID]IdentResolution),
	}
}

// Var returns the variable table entry for id.
func (fs *FunctionSource) Var(id VarID) VarInfo {
	for _, v := range fs.Vars {
		if v.ID == id {
			return v
		}
	}
	panic("ir: unknown var id")
}

// AddVar appends a new entry to the variable table and returns its id.
func (fs *FunctionSource) AddVar(typ types.Type, reassignable bool) VarID {
	id := VarID(len(fs.Vars))
	fs.Vars = append(fs.Vars, VarInfo{ID: id, DeclaredType: typ, Reassignable: reassignable})
	return id
}

// HasSelf reports whether the function has a receiver.
func (fs *FunctionSource) HasSelf() bool { return fs.Self != NoSelf }

// TypeOf looks up the static type the checker assigned to a node. It
// panics if the node was never type-checked, matching the planner's
// documented precondition (spec.md §3) that every expression node has an
// entry before planning begins.
func (fs *FunctionSource) TypeOf(n Node) types.Type {
	t, ok := fs.NodeType[n.ID()]
	if !ok {
		panic("ir: node has no recorded type")
	}
	return t
}
