package trap_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riginding/dora/internal/trap"
	"github.com/riginding/dora/internal/vmiface"
)

type fakeExecState struct {
	pc uintptr
	ra uintptr
	rv uintptr
}

func (e *fakeExecState) PC() uintptr             { return e.pc }
func (e *fakeExecState) SetPC(pc uintptr)        { e.pc = pc }
func (e *fakeExecState) ReturnAddress() uintptr  { return e.ra }
func (e *fakeExecState) Receiver() uintptr       { return e.rv }

type fakeDecoder struct {
	trap trap.Trap
	ok   bool
}

func (d fakeDecoder) Detect(signo int, es trap.ExecState) (trap.Trap, bool) { return d.trap, d.ok }

type fakeCodeMap map[uintptr]trap.CodeKind

func (m fakeCodeMap) Lookup(pc uintptr) (trap.CodeKind, bool) { k, ok := m[pc]; return k, ok }
func (m fakeCodeMap) Dump() string                            { return "fake code map" }

type fakeJitFct struct {
	entry    uintptr
	bailouts map[int64]trap.BailoutInfo
}

func (f fakeJitFct) EntryPtr() uintptr { return f.entry }
func (f fakeJitFct) BailoutAt(offset int64) (trap.BailoutInfo, bool) {
	b, ok := f.bailouts[offset]
	return b, ok
}

type fakeFcts map[vmiface.FctID]fakeJitFct

func (f fakeFcts) JitFct(id vmiface.FctID) (trap.JitFct, bool) { j, ok := f[id]; return j, ok }

type fakeVTable struct {
	class   vmiface.ClassID
	methods map[int]uintptr
}

func (v *fakeVTable) ClassID() vmiface.ClassID        { return v.class }
func (v *fakeVTable) MethodPtr(index int) uintptr     { return v.methods[index] }
func (v *fakeVTable) SetMethodPtr(index int, p uintptr) { v.methods[index] = p }

type fakeHeap struct{ vtable *fakeVTable }

func (h fakeHeap) VTableOf(receiver uintptr) (trap.VTable, error) { return h.vtable, nil }

type fakeClasses map[int]vmiface.FctID

func (c fakeClasses) MethodAtVTableIndex(class vmiface.ClassID, index int) (vmiface.FctID, bool) {
	f, ok := c[index]
	return f, ok
}

type fakeCompiler struct {
	calls int32
	entry uintptr
}

func (c *fakeCompiler) Compile(fct vmiface.FctID) (uintptr, error) {
	atomic.AddInt32(&c.calls, 1)
	return c.entry, nil
}

type fakePatcher struct {
	patchedAt     uintptr
	patchedDisp   int64
	patchedTarget uintptr
}

func (p *fakePatcher) PatchCallTarget(ra uintptr, disp int64, target uintptr) {
	p.patchedAt, p.patchedDisp, p.patchedTarget = ra, disp, target
}

type fakeThrower struct{ found bool }

func (t fakeThrower) Throw(es trap.ExecState) bool { return t.found }

func newDispatcher(decoder trap.Decoder, codeMap trap.CodeMap, fcts trap.FctRuntime, heap trap.ObjectHeap, classes trap.ClassMethods, compiler trap.Compiler, patcher trap.CodePatcher, thrower trap.Thrower) (*trap.Dispatcher, *int) {
	d := trap.NewDispatcher(decoder, codeMap, fcts, heap, classes, compiler, patcher, thrower, nil, nil)
	exitCode := -1
	d.Exit = func(code int) { exitCode = code }
	return d, &exitCode
}

func TestHandleUnrecognizedExitsOne(t *testing.T) {
	d, exitCode := newDispatcher(fakeDecoder{ok: false}, fakeCodeMap{}, fakeFcts{}, fakeHeap{}, fakeClasses{}, &fakeCompiler{}, &fakePatcher{}, fakeThrower{})
	d.Handle(11, &fakeExecState{})
	assert.Equal(t, 1, *exitCode)
}

func TestHandleFatalTrapsExitWithMappedCode(t *testing.T) {
	cases := []struct {
		trap trap.Trap
		want int
	}{
		{trap.DIV0, 101},
		{trap.ASSERT, 101},
		{trap.INDEX_OUT_OF_BOUNDS, 102},
		{trap.NIL, 103},
		{trap.CAST, 105},
		{trap.UNEXPECTED, 106},
	}
	for _, c := range cases {
		d, exitCode := newDispatcher(fakeDecoder{trap: c.trap, ok: true}, fakeCodeMap{}, fakeFcts{}, fakeHeap{}, fakeClasses{}, &fakeCompiler{}, &fakePatcher{}, fakeThrower{})
		d.Handle(11, &fakeExecState{})
		assert.Equal(t, c.want, *exitCode, c.trap.String())
	}
}

func TestHandleThrowFoundResumesWithoutExit(t *testing.T) {
	d, exitCode := newDispatcher(fakeDecoder{trap: trap.THROW, ok: true}, fakeCodeMap{}, fakeFcts{}, fakeHeap{}, fakeClasses{}, &fakeCompiler{}, &fakePatcher{}, fakeThrower{found: true})
	d.Handle(11, &fakeExecState{})
	assert.Equal(t, -1, *exitCode)
}

func TestHandleThrowNotFoundExits104(t *testing.T) {
	d, exitCode := newDispatcher(fakeDecoder{trap: trap.THROW, ok: true}, fakeCodeMap{}, fakeFcts{}, fakeHeap{}, fakeClasses{}, &fakeCompiler{}, &fakePatcher{}, fakeThrower{found: false})
	d.Handle(11, &fakeExecState{})
	assert.Equal(t, 104, *exitCode)
}

func TestHandleCompilerUnknownPCExits200(t *testing.T) {
	d, exitCode := newDispatcher(fakeDecoder{trap: trap.COMPILER, ok: true}, fakeCodeMap{}, fakeFcts{}, fakeHeap{}, fakeClasses{}, &fakeCompiler{}, &fakePatcher{}, fakeThrower{})
	d.Handle(11, &fakeExecState{pc: 0x1000})
	assert.Equal(t, 200, *exitCode)
}

func TestHandleCompilerDirectCallPatchesAndResumes(t *testing.T) {
	const stubPC = uintptr(0x1000)
	const ra = uintptr(0x2040)
	const calleeEntry = uintptr(0x9000)
	calleeID := vmiface.FctID(7)

	codeMap := fakeCodeMap{
		stubPC: trap.CompileStub{},
		ra:     trap.FctCode{Fct: vmiface.FctID(1)},
	}
	fcts := fakeFcts{
		vmiface.FctID(1): {
			entry: 0x2000,
			bailouts: map[int64]trap.BailoutInfo{
				int64(ra - 0x2000): trap.BailoutDirect{Callee: calleeID, Disp: 5},
			},
		},
	}
	compiler := &fakeCompiler{entry: calleeEntry}
	patcher := &fakePatcher{}

	d, exitCode := newDispatcher(fakeDecoder{trap: trap.COMPILER, ok: true}, codeMap, fcts, fakeHeap{}, fakeClasses{}, compiler, patcher, fakeThrower{})
	es := &fakeExecState{pc: stubPC, ra: ra}
	d.Handle(11, es)

	require.Equal(t, -1, *exitCode)
	assert.EqualValues(t, 1, compiler.calls)
	assert.Equal(t, ra, patcher.patchedAt)
	assert.EqualValues(t, 5, patcher.patchedDisp)
	assert.Equal(t, calleeEntry, patcher.patchedTarget)
	assert.Equal(t, calleeEntry, es.PC())
}

func TestHandleCompilerVirtualCallPatchesVTableAndResumes(t *testing.T) {
	const stubPC = uintptr(0x1000)
	const ra = uintptr(0x2040)
	const methodEntry = uintptr(0x9500)
	classID := vmiface.ClassID(3)
	methodID := vmiface.FctID(42)

	codeMap := fakeCodeMap{
		stubPC: trap.VirtCompileStub{},
		ra:     trap.FctCode{Fct: vmiface.FctID(1)},
	}
	fcts := fakeFcts{
		vmiface.FctID(1): {
			entry: 0x2000,
			bailouts: map[int64]trap.BailoutInfo{
				int64(ra - 0x2000): trap.BailoutVirtual{VTableIndex: 2},
			},
		},
	}
	vtable := &fakeVTable{class: classID, methods: map[int]uintptr{}}
	heap := fakeHeap{vtable: vtable}
	classes := fakeClasses{2: methodID}
	compiler := &fakeCompiler{entry: methodEntry}

	d, exitCode := newDispatcher(fakeDecoder{trap: trap.COMPILER, ok: true}, codeMap, fcts, heap, classes, compiler, &fakePatcher{}, fakeThrower{})
	es := &fakeExecState{pc: stubPC, ra: ra, rv: 0xABCD}
	d.Handle(11, es)

	require.Equal(t, -1, *exitCode)
	assert.Equal(t, methodEntry, vtable.MethodPtr(2))
	assert.Equal(t, methodEntry, es.PC())
}

func TestCompileDeduplicatesConcurrentFaultsForSameCallee(t *testing.T) {
	const stubPC = uintptr(0x1000)
	const ra = uintptr(0x2040)
	calleeID := vmiface.FctID(7)

	codeMap := fakeCodeMap{
		stubPC: trap.CompileStub{},
		ra:     trap.FctCode{Fct: vmiface.FctID(1)},
	}
	fcts := fakeFcts{
		vmiface.FctID(1): {
			entry: 0x2000,
			bailouts: map[int64]trap.BailoutInfo{
				int64(ra - 0x2000): trap.BailoutDirect{Callee: calleeID, Disp: 5},
			},
		},
	}
	compiler := &blockingCompiler{release: make(chan struct{})}
	d, _ := newDispatcher(fakeDecoder{trap: trap.COMPILER, ok: true}, codeMap, fcts, fakeHeap{}, fakeClasses{}, compiler, &fakePatcher{}, fakeThrower{})

	const n = 8
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			d.Handle(11, &fakeExecState{pc: stubPC, ra: ra})
		}()
	}
	compiler.awaitCallers(n)
	close(compiler.release)
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&compiler.calls))
}

type blockingCompiler struct {
	calls   int32
	entered int32
	release chan struct{}
}

func (c *blockingCompiler) Compile(fct vmiface.FctID) (uintptr, error) {
	atomic.AddInt32(&c.calls, 1)
	atomic.AddInt32(&c.entered, 1)
	<-c.release
	return 0x9000, nil
}

func (c *blockingCompiler) awaitCallers(n int) {
	for atomic.LoadInt32(&c.entered) < 1 {
		time.Sleep(time.Millisecond)
	}
	// give the other goroutines a chance to queue up behind the
	// in-flight singleflight call before it's allowed to complete.
	time.Sleep(20 * time.Millisecond)
}
