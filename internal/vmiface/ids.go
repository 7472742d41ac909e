// Package vmiface defines the contracts the frame layout planner (and the
// trap dispatcher) consume from the VM: the class table, function table,
// impl table, string interner, and well-known ids (spec.md §6). These are
// "external collaborators" per spec.md §1 — this package ships only the
// interfaces, named the way the teacher's link-time symbol/loader
// abstractions separate "what a symbol table looks like" from "how it is
// populated" (cmd/link/internal/loader/loader.go, cmd/link/internal/sym).
package vmiface

import "github.com/riginding/dora/internal/types"

// ClassID, FctID, TraitID mirror types.ClassID/TraitID for readability at
// call sites that aren't directly manipulating a types.Type.
type (
	ClassID = types.ClassID
	TraitID = types.TraitID
	FctID   int32
	ImplID  int32
	NameID  int32
	VarID   int32
)
