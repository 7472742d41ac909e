package object

import (
	"github.com/pkg/errors"

	"github.com/riginding/dora/internal/abi"
	"github.com/riginding/dora/internal/types"
	"github.com/riginding/dora/internal/vmiface"
)

// ErrUnknownShape is returned by Size when a class descriptor is neither
// fixed-size, an array, nor the builtin string — object.rs's
// `panic!("size unknown")` turned into a recoverable error since this
// core never aborts the process itself (spec.md §4.2's "abort" is the
// caller's call, not this package's).
var ErrUnknownShape = errors.New("object: class has no known size shape")

// Size discovers the byte size of an object of the given class.
// length is the element count for array classes and the byte length
// for strings; it is ignored for fixed-size classes.
//
// Mirrors object.rs's Obj::size(): a positive static size wins outright,
// then the array formula, then the string formula, then failure.
func Size(info vmiface.ClassInfo, length int64) (int64, error) {
	if info.StaticSize > 0 {
		return info.StaticSize, nil
	}

	if info.IsArray || info.IsObjectArray {
		raw := HeaderSize() + types.PointerWidth + info.ElementSize*length
		return abi.AlignUp(raw, types.PointerWidth), nil
	}

	if info.IsString {
		raw := HeaderSize() + types.PointerWidth + length + 1
		return abi.AlignUp(raw, types.PointerWidth), nil
	}

	return 0, errors.Wrapf(ErrUnknownShape, "class %v", info.Type)
}
