//go:build windows

package trap

import "github.com/pkg/errors"

// ErrWindowsUnsupported is returned by Install on Windows. spec.md §9
// open question (c) notes the original's vectored-exception-handler body
// returns false without ever extracting the trap; rather than port that
// silent no-op, this core documents the platform as unsupported until a
// real AddVectoredExceptionHandler integration (CONTEXT/EXCEPTION_RECORD
// decoding, itself an architecture-specific concern like posix_unix.go's
// trampoline) is supplied.
var ErrWindowsUnsupported = errors.New("trap: Windows vectored-exception-handler path is not implemented")

func registerSignals() error {
	return ErrWindowsUnsupported
}
