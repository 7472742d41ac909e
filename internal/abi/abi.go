// Package abi describes the CPU/ABI parameter-passing convention the
// frame layout planner targets: the ordered lists of general-purpose and
// floating-point argument registers, pointer width, stack-slot alignment,
// and the initial overflow-parameter offset. This is the leaf-most
// component of the system (spec.md §2, ≈3%); everything above it treats
// a *Config as an opaque set of constants.
//
// Grounded on cmd/compile/internal/abi/abiutils.go's RegAmounts/ABIConfig
// split between "how many registers does the ABI provide" and "how many
// does this particular value need" — simplified here because the planner
// only ever needs whole-register slots for scalar/pointer-shaped
// arguments (spec.md never routes composite values through registers).
package abi

import "github.com/riginding/dora/internal/types"

// StackAlignment is the required alignment, in bytes, of a function's
// total local-variable stack size (spec.md §3 JitInfo.stacksize).
const StackAlignment = 16

// Config captures one target's calling convention.
type Config struct {
	// RegParams and FRegParams are the ordered general-purpose and
	// floating-point argument registers available for parameter passing,
	// by name. Only their length is consulted by the frame planner; the
	// names exist so a Config prints usefully and so a downstream code
	// generator (out of scope here) has something to index into.
	RegParams  []string
	FRegParams []string

	// PointerWidth is the size, in bytes, of a pointer on this target.
	PointerWidth int64

	// ParamOffset is the stack offset, relative to the callee's frame
	// pointer, of the first overflow (stack-passed) parameter.
	ParamOffset int64
}

// NewConfig builds a Config and seeds the process-wide pointer width used
// by internal/types' Size/Alignment queries. It must be called once,
// before any planning, for the target the planner will run against.
func NewConfig(regParams, fregParams []string, pointerWidth, paramOffset int64) *Config {
	if pointerWidth <= 0 {
		panic("abi: pointer width must be positive")
	}
	c := &Config{
		RegParams:    append([]string(nil), regParams...),
		FRegParams:   append([]string(nil), fregParams...),
		PointerWidth: pointerWidth,
		ParamOffset:  paramOffset,
	}
	types.SetPointerWidth(pointerWidth)
	return c
}

// SysVAMD64 is the x86-64 System V ABI: 6 integer argument registers
// (rdi, rsi, rdx, rcx, r8, r9), 8 floating registers (xmm0-xmm7), an
// 8-byte pointer, and overflow parameters starting 16 bytes above the
// frame pointer (past the saved return address and saved frame pointer).
func SysVAMD64() *Config {
	return NewConfig(
		[]string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"},
		[]string{"xmm0", "xmm1", "xmm2", "xmm3", "xmm4", "xmm5", "xmm6", "xmm7"},
		8, 16,
	)
}

// AArch64 is the ARM64 AAPCS64 ABI: 8 integer argument registers, 8
// floating registers, an 8-byte pointer, overflow parameters starting at
// the same 16-byte offset as SysVAMD64 (saved link register + frame
// pointer pair).
func AArch64() *Config {
	return NewConfig(
		[]string{"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7"},
		[]string{"v0", "v1", "v2", "v3", "v4", "v5", "v6", "v7"},
		8, 16,
	)
}

// AlignUp rounds a up to the next multiple of align, which must be zero
// or a power of two. align == 0 is a no-op (mirrors abiutils.go's
// alignTo, used for types with no alignment requirement).
func AlignUp(a, align int64) int64 {
	if align == 0 {
		return a
	}
	return (a + align - 1) &^ (align - 1)
}

// NextParamOffset returns the offset of the overflow parameter following
// one of type width w at offset. w is rounded up to a whole number of
// pointer-width slots, at least one, since the overflow area is always
// passed in pointer-sized slots on every target this planner supports.
func (c *Config) NextParamOffset(offset int64, w int64) int64 {
	if w < c.PointerWidth {
		w = c.PointerWidth
	}
	return offset + AlignUp(w, c.PointerWidth)
}
