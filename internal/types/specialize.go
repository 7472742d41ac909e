package types

// Substitute replaces every TypeParam reachable from typ with the
// corresponding entry of classArgs (for OwnerClass) or fctArgs (for
// OwnerFct), recursing into class type arguments. It is functional: typ
// is never mutated, and if no substitution applies the input is returned
// unchanged (mirroring the teacher's subst.go "common cases" fast path).
//
// The frame layout planner applies Substitute twice per call-site
// argument (spec.md §4.1 "Call-site construction"): once to specialize a
// callee's declared parameter type using the call's own generic
// arguments ("call-type specialization"), and once more to resolve
// whatever of the enclosing function's own type parameters remain
// ("planner specialization"). Both stages reuse this same function with
// different argument lists.
func Substitute(typ Type, classArgs, fctArgs []Type) Type {
	if typ == nil {
		panic("types: Substitute called with nil type")
	}
	switch t := typ.(type) {
	case Primitive:
		return t
	case TypeParam:
		switch t.Owner {
		case OwnerClass:
			if t.Index < len(classArgs) {
				return classArgs[t.Index]
			}
		case OwnerFct:
			if t.Index < len(fctArgs) {
				return fctArgs[t.Index]
			}
		}
		return t
	case ClassType:
		if len(t.Args) == 0 {
			return t
		}
		newArgs := make([]Type, len(t.Args))
		changed := false
		for i, a := range t.Args {
			s := Substitute(a, classArgs, fctArgs)
			newArgs[i] = s
			if _, isClass := a.(ClassType); isClass {
				// ClassType holds a slice and cannot be compared with ==;
				// a concrete nested class comes back unchanged.
				if !a.IsConcrete() {
					changed = true
				}
			} else if s != a {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return ClassType{ID: t.ID, Args: newArgs}
	case TraitObject:
		return t
	default:
		panic("types: Substitute encountered an unknown Type implementation")
	}
}
