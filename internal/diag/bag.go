// Package diag implements the shared diagnostic bag semantic checkers
// report user-visible errors to (spec.md §7). It is deliberately tiny:
// the core's only producer is internal/enumck, but the bag is shared
// infrastructure other semantic-check collaborators (out of scope here)
// would also report into, so it lives in its own package rather than
// inside enumck.
package diag

import "sync"

// Position is a 1-based (line, column) source position.
type Position struct {
	Line   int
	Column int
}

// Kind tags a recognized diagnostic. Each semantic-check collaborator
// grows this set with the kinds it reports; the core ships only the enum
// checker's two kinds (spec.md §7).
type Kind interface {
	diagKind()
}

// NoEnumValue is reported at an enum declaration's own position when it
// declares zero variants.
type NoEnumValue struct{}

func (NoEnumValue) diagKind() {}

// ShadowEnumValue is reported at a variant's position when its name
// duplicates an earlier variant in the same enum.
type ShadowEnumValue struct {
	Name string
}

func (ShadowEnumValue) diagKind() {}

// Diagnostic is one reported error: the file it occurred in, its
// position, and its kind.
type Diagnostic struct {
	File string
	Pos  Position
	Kind Kind
}

// Bag collects diagnostics from possibly-concurrent checkers.
type Bag struct {
	mu   sync.Mutex
	msgs []Diagnostic
}

// Report records a diagnostic. Safe for concurrent use.
func (b *Bag) Report(file string, pos Position, kind Kind) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.msgs = append(b.msgs, Diagnostic{File: file, Pos: pos, Kind: kind})
}

// All returns a snapshot of every diagnostic reported so far, in report
// order.
func (b *Bag) All() []Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Diagnostic, len(b.msgs))
	copy(out, b.msgs)
	return out
}

// Empty reports whether no diagnostics have been recorded.
func (b *Bag) Empty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.msgs) == 0
}
