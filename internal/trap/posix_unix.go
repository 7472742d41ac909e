//go:build unix

package trap

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// trampoline is the address of the three-argument (signo, siginfo,
// ucontext) C-ABI function the kernel invokes directly on SIGSEGV/SIGILL.
// Building it is an architecture-specific assembly concern this core
// does not ship (spec.md §1 excludes "register allocation/instruction
// emission"); a platform integration supplies it by setting this var
// from an init function in a //go:linkname'd, per-arch assembly stub
// before calling Install. Left at zero, sigaction still installs
// successfully (mirroring the original's unchecked sa.sa_sigaction
// assignment) but the kernel has nothing meaningful to call.
var trampoline uintptr

// registerSignals installs one SA_SIGINFO handler for SIGSEGV and SIGILL,
// the direct Go analogue of signal.rs's register_signals for
// target_family = "unix": libc::sigaction becomes unix.Sigaction.
func registerSignals() error {
	// The zero-value Mask is the empty signal set, matching the
	// original's explicit sigemptyset call.
	sa := &unix.Sigaction{
		Handler: trampoline,
		Flags:   unix.SA_SIGINFO,
	}

	if err := unix.Sigaction(unix.SIGSEGV, sa, nil); err != nil {
		return errors.Wrap(err, "sigaction for SIGSEGV failed")
	}
	if err := unix.Sigaction(unix.SIGILL, sa, nil); err != nil {
		return errors.Wrap(err, "sigaction for SIGILL failed")
	}
	return nil
}
