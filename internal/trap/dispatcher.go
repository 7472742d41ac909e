package trap

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/riginding/dora/internal/vmiface"
)

// StackTracer captures a human-readable stack trace from a faulted
// execution state, for the fatal-trap diagnostic path (spec.md §4.3:
// "capture and print a stack trace").
type StackTracer interface {
	Capture(es ExecState) string
}

// Dispatcher is the process-wide trap handler: it owns every VM
// collaborator the decode-and-dispatch algorithm needs and is installed
// exactly once (spec.md §5: "The global VM context pointer is set
// exactly once at startup and never mutated").
type Dispatcher struct {
	Decoder      Decoder
	CodeMap      CodeMap
	Fcts         FctRuntime
	Heap         ObjectHeap
	Classes      ClassMethods
	Compiler     Compiler
	Patcher      CodePatcher
	Thrower      Thrower
	StackTracer  StackTracer
	Logger       *zap.Logger

	// Exit defaults to os.Exit; tests substitute a recording stub so a
	// fatal trap doesn't kill the test binary.
	Exit func(code int)

	compileGroup singleflight.Group
}

// NewDispatcher builds a Dispatcher from its collaborators. All are
// mandatory except tracer, which may be nil (fatal traps then log an
// empty stack trace), and logger, which defaults to zap.NewNop().
func NewDispatcher(decoder Decoder, codeMap CodeMap, fcts FctRuntime, heap ObjectHeap, classes ClassMethods, compiler Compiler, patcher CodePatcher, thrower Thrower, tracer StackTracer, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		Decoder:     decoder,
		CodeMap:     codeMap,
		Fcts:        fcts,
		Heap:        heap,
		Classes:     classes,
		Compiler:    compiler,
		Patcher:     patcher,
		Thrower:     thrower,
		StackTracer: tracer,
		Logger:      logger,
		Exit:        os.Exit,
	}
}

var (
	globalOnce sync.Once
	global     atomic.Pointer[Dispatcher]
)

// ErrAlreadyInstalled is returned by Install if a Dispatcher has already
// been published process-wide.
var ErrAlreadyInstalled = errors.New("trap: dispatcher already installed")

// Install publishes d as the process-wide dispatcher and registers the
// platform fault handler (spec.md §4.3 "Installation"). It may be called
// at most once per process.
func Install(d *Dispatcher) error {
	var err error
	installed := false
	globalOnce.Do(func() {
		installed = true
		global.Store(d)
		if e := registerSignals(); e != nil {
			err = errors.Wrap(e, "trap: installing signal handlers")
		}
	})
	if installed {
		return err
	}
	return ErrAlreadyInstalled
}

// current returns the process-wide dispatcher published by Install.
func current() *Dispatcher {
	d := global.Load()
	if d == nil {
		panic("trap: dispatcher used before Install")
	}
	return d
}

// Deliver routes one fault to the process-wide dispatcher. This is the
// entry point the platform trampoline (posix_unix.go's handler function
// pointer, once backed by real assembly) calls into after building an
// ExecState from the raw siginfo/ucontext the kernel delivered.
func Deliver(signo int, es ExecState) {
	current().Handle(signo, es)
}

// Handle runs the full decode-and-dispatch algorithm for one fault
// (spec.md §4.3 "Dispatch"). It is exported, rather than only reachable
// through the installed OS signal handler, so platform adapters
// (posix_unix.go's handler, a future Windows vectored-exception handler) and
// tests can all drive it the same way.
func (d *Dispatcher) Handle(signo int, es ExecState) {
	trap, ok := d.Decoder.Detect(signo, es)
	if !ok {
		d.Logger.Error("trap not detected", zap.Int("signo", signo), zap.Uintptr("pc", es.PC()))
		d.Logger.Error("code map", zap.String("dump", d.CodeMap.Dump()))
		d.Exit(ExitUnrecognized)
		return
	}

	switch trap {
	case COMPILER:
		d.handleCompiler(es)
	case THROW:
		d.handleThrow(es)
	default:
		d.fatal(trap, es)
	}
}

func (d *Dispatcher) fatal(trap Trap, es ExecState) {
	stack := ""
	if d.StackTracer != nil {
		stack = d.StackTracer.Capture(es)
	}
	d.Logger.Error(fatalMessage(trap),
		zap.Stringer("trap", trap),
		zap.Uintptr("pc", es.PC()),
		zap.Int("exit_code", trap.ExitCode()),
		zap.String("stacktrace", stack),
	)
	d.Exit(trap.ExitCode())
}

func fatalMessage(t Trap) string {
	switch t {
	case DIV0:
		return "division by 0"
	case ASSERT:
		return "assert failed"
	case INDEX_OUT_OF_BOUNDS:
		return "array index out of bounds"
	case NIL:
		return "nil check failed"
	case CAST:
		return "cast failed"
	case UNEXPECTED:
		return "unexpected exception"
	default:
		return "fatal trap"
	}
}

func (d *Dispatcher) handleThrow(es ExecState) {
	if d.Thrower.Throw(es) {
		return
	}
	d.Logger.Error("uncaught exception", zap.Uintptr("pc", es.PC()))
	d.Exit(THROW.ExitCode())
}

// handleCompiler implements spec.md §4.3's COMPILER branch: resolve
// whether the fault landed in a direct-call or virtual-call compile
// stub, lazily compile the real callee, patch the call site (or vtable
// slot) in place, and resume at the freshly compiled entry point.
func (d *Dispatcher) handleCompiler(es ExecState) {
	kind, ok := d.CodeMap.Lookup(es.PC())
	if !ok {
		d.unknownCompilerPC(es)
		return
	}

	switch kind.(type) {
	case CompileStub:
		d.patchDirectCall(es)
	case VirtCompileStub:
		d.patchVirtualCall(es)
	default:
		d.unknownCompilerPC(es)
	}
}

func (d *Dispatcher) unknownCompilerPC(es ExecState) {
	d.Logger.Error("code not found for address", zap.Uintptr("pc", es.PC()))
	d.Exit(ExitUnknownCompilerPC)
}

func (d *Dispatcher) patchDirectCall(es ExecState) {
	ra := es.ReturnAddress()
	bailout, jitFct := d.bailoutAt(ra)
	direct, ok := bailout.(BailoutDirect)
	if !ok {
		panic("trap: expected direct-call bailout info")
	}

	entry := d.compile(direct.Callee)
	d.Patcher.PatchCallTarget(ra, direct.Disp, entry)
	_ = jitFct
	es.SetPC(entry)
}

func (d *Dispatcher) patchVirtualCall(es ExecState) {
	ra := es.ReturnAddress()
	bailout, _ := d.bailoutAt(ra)
	virt, ok := bailout.(BailoutVirtual)
	if !ok {
		panic("trap: expected virtual-call bailout info")
	}

	vtable, err := d.Heap.VTableOf(es.Receiver())
	if err != nil {
		panic(errors.Wrap(err, "trap: resolving receiver vtable"))
	}

	fctID, ok := d.Classes.MethodAtVTableIndex(vtable.ClassID(), virt.VTableIndex)
	if !ok {
		panic("trap: no method found for virtual call")
	}

	entry := d.compile(fctID)
	vtable.SetMethodPtr(virt.VTableIndex, entry)
	es.SetPC(entry)
}

// bailoutAt finds the code owning ra and, via it, the bailout record for
// the call instruction that returns there.
func (d *Dispatcher) bailoutAt(ra uintptr) (BailoutInfo, JitFct) {
	kind, ok := d.CodeMap.Lookup(ra)
	if !ok {
		panic("trap: return address not found in code map")
	}
	fc, ok := kind.(FctCode)
	if !ok {
		panic("trap: expected function code at return address")
	}
	jitFct, ok := d.Fcts.JitFct(fc.Fct)
	if !ok {
		panic("trap: jitted function not found")
	}
	offset := int64(ra - jitFct.EntryPtr())
	bailout, ok := jitFct.BailoutAt(offset)
	if !ok {
		panic("trap: bailout info not found")
	}
	return bailout, jitFct
}

// compile lazily generates fct's code, collapsing concurrent requests
// for the same callee into a single Compiler.Compile call (spec.md §5,
// §8 "singleflight-deduplicated compile request").
func (d *Dispatcher) compile(fct vmiface.FctID) uintptr {
	key := fmt.Sprintf("%d", fct)
	v, err, _ := d.compileGroup.Do(key, func() (interface{}, error) {
		return d.Compiler.Compile(fct)
	})
	if err != nil {
		panic(errors.Wrapf(err, "trap: compiling fct %d", fct))
	}
	return v.(uintptr)
}
