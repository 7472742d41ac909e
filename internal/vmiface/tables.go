package vmiface

// ClassTable looks up class descriptors by id. Implementations must
// serialize their own internal mutation; spec.md §5 requires only that
// callers hold the returned ClassInfo for the minimal span needed.
type ClassTable interface {
	Class(id ClassID) (ClassInfo, bool)
	// FindTraitMethod resolves a trait method by name on a class,
	// honoring default vs. required distinctions the caller (spec.md
	// §4.1's string-template lowering) does not need to know about.
	FindTraitMethod(class ClassID, trait TraitID, name NameID) (FctID, bool)
}

// FctTable looks up function descriptors by id.
type FctTable interface {
	Fct(id FctID) (FctDesc, bool)
}

// ImplTable looks up impl-block descriptors by id.
type ImplTable interface {
	Impl(id ImplID) (ImplInfo, bool)
}

// Interner assigns stable NameIDs to strings.
type Interner interface {
	Intern(s string) NameID
}

// WellKnown holds the small set of VM-global ids the frame planner's
// intrinsic and string-template lowering need without a name lookup at
// plan time (spec.md §6).
type WellKnown struct {
	ErrorClass  ClassID
	StringClass ClassID

	StringBufferClass      ClassID
	StringBufferEmpty      FctID
	StringBufferAppend     FctID
	StringBufferToString   FctID
	StringableTrait        TraitID
	StringableToStringName NameID
}

// Tables bundles the VM-provided collaborators the planner consumes
// (spec.md §6 "Consumed from the VM").
type Tables struct {
	Classes   ClassTable
	Fcts      FctTable
	Impls     ImplTable
	Interner  Interner
	WellKnown WellKnown
}
