package vmiface

// IntrinsicOp enumerates the small set of operations the code generator
// lowers inline instead of emitting a call (spec.md §4.1's "no CallSite
// is recorded for true intrinsics" carve-out). It lives here, rather than
// alongside the call-kind sum type that names it, so a FctDesc can record
// which op a FctBuiltinIntrinsic function implements without this
// package importing internal/ir, which already imports vmiface.
type IntrinsicOp uint8

const (
	IntrinsicArrayLen IntrinsicOp = iota
	IntrinsicArrayGet
	IntrinsicArraySet
	IntrinsicStrLen
	IntrinsicAssert
)
