package thread

import (
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"

	"go.uber.org/zap"

	"github.com/theSherwood/threadcore"
	"github.com/theSherwood/threadcore/control"
	"github.com/theSherwood/threadcore/errors"
	"github.com/theSherwood/threadcore/tls"
)

// Stack geometry for spawned threads: one fixed total per process, with a
// reserved guard region subtracted so overflow trips early on platforms that
// honor it. Not configurable per call. The Go runtime manages thread stacks
// itself and grows them lazily; these constants document the geometry the
// library guarantees headroom for.
const (
	stackTotal = 2 << 20
	stackGuard = 4096

	// StackSize is the usable stack available to each spawned thread.
	StackSize = stackTotal - stackGuard
)

// Thread is the spawning side's handle to one spawned thread.
//
// A Thread must not be copied: a copy would create two independent owners of
// one logical thread. Pass *Thread.
type Thread[A any] struct {
	noCopy noCopy

	// block is non-owning but ref-counted: the handle holds one of the two
	// shares and uses the pointer only to query running state. It is never
	// nulled; it goes logically stale once Close has fired.
	block *control.Block[A]
	rel   *release
	id    atomic.Uint64
	done  chan struct{}
}

// Void is the handle type for threads spawned without an argument.
type Void = Thread[struct{}]

// release fires a control-block release at most once, whether triggered by
// Close or by the handle becoming unreachable.
type release struct {
	once sync.Once
	fn   func()
}

func (r *release) do() { r.once.Do(r.fn) }

// osSpawn starts fn on a new thread. Swapped out by tests to inject creation
// failure.
var osSpawn = spawnOS

// liveThreads counts threads between spawn and trampoline exit, for the
// configured limit.
var liveThreads atomic.Int64

func spawnOS(fn func()) error {
	if !reserveSlot(threadcore.MaxThreads()) {
		return syscall.EAGAIN
	}
	go fn()
	return nil
}

// reserveSlot claims a live-thread slot, rolling the claim back when it would
// exceed max, so concurrent spawns cannot overshoot the limit. max <= 0 means
// unlimited.
func reserveSlot(max int) bool {
	n := liveThreads.Add(1)
	if max > 0 && n > int64(max) {
		liveThreads.Add(-1)
		return false
	}
	return true
}

// Create starts a new OS thread running fn(arg) and returns its handle.
//
// The control block is allocated with both shares outstanding before the
// thread starts. Ownership of arg passes to the spawned thread; the caller
// must not read or mutate it after Create returns. Create returns once the
// thread has published its native id, so NativeHandle is immediately valid.
//
// Fails with a resource_exhausted error when the OS (or the configured
// THREADCORE_MAX_THREADS limit) refuses the thread; the control block is fully
// released before the error propagates.
func Create[A any](fn func(A), arg A) (*Thread[A], error) {
	if !threadcore.Enabled() {
		return nil, errors.Disabled()
	}
	if fn == nil {
		return nil, errors.InvalidInput(errors.PhaseSpawn, "nil entry function")
	}

	var locals *tls.Block
	if threadcore.TLSEmulation() {
		locals = tls.NewBlock()
	}

	blk := control.New(fn, arg, locals)
	t := &Thread[A]{
		block: blk,
		rel:   &release{fn: blk.Release},
		done:  make(chan struct{}),
	}

	started := make(chan struct{})
	if err := osSpawn(func() { t.trampoline(started) }); err != nil {
		blk.Discard()
		return nil, errors.ResourceExhausted(err, "thread creation refused")
	}
	<-started

	// Safety net: a handle dropped without Close still releases its share.
	runtime.AddCleanup(t, func(r *release) { r.do() }, t.rel)

	return t, nil
}

// CreateVoid starts a new OS thread running fn. The no-argument variant of
// Create.
func CreateVoid(fn func()) (*Void, error) {
	if fn == nil {
		return nil, errors.InvalidInput(errors.PhaseSpawn, "nil entry function")
	}
	return Create(func(struct{}) { fn() }, struct{}{})
}

// trampoline bridges goroutine start to the thread lifecycle: it is the only
// code that runs on the new thread outside the user's entry function.
func (t *Thread[A]) trampoline(started chan<- struct{}) {
	// Never unlocked: the OS thread is destroyed when this goroutine returns.
	runtime.LockOSThread()

	blk := t.block
	// The TLS block must be live before anything else runs; both the entry
	// function and the fatal path may depend on thread-local state.
	if l := blk.Locals(); l != nil {
		tls.Install(l)
	}
	id := tls.ThreadID()
	t.id.Store(id)
	beginExitHooks(id)
	close(started)

	var failure any
	func() {
		defer func() { failure = recover() }()
		blk.Run()
	}()

	// Everything below runs whether or not the entry function failed.
	runExitHooks()
	blk.ClearArg()
	threadcore.Collect()
	installed := blk.Locals() != nil
	blk.Release() // last access to the block from this thread
	liveThreads.Add(-1)

	// The fatal handler may depend on thread-local state, so it runs before
	// the TLS binding is torn down.
	if failure != nil {
		fatal(failure)
	}
	if installed {
		tls.Uninstall()
	}
	close(t.done)
}

// fatal terminates the process after an unhandled failure on a spawned
// thread. The failure is deliberately not propagated to the spawning side.
// Swapped out by tests.
var fatal = func(r any) {
	Logger().Fatal("unhandled panic on spawned thread",
		zap.Any("panic", r),
		zap.Stack("stack"),
	)
}

// Running reports whether the spawned side still holds its control-block
// share. Racy by nature: the answer can be stale the instant it is returned.
// A heuristic, not a synchronization primitive.
func (t *Thread[A]) Running() bool {
	return t.block != nil && t.block.Shared()
}

// NativeHandle returns the OS-level thread identifier, for interop with
// OS-specific APIs.
func (t *Thread[A]) NativeHandle() uint64 {
	return t.id.Load()
}

// PinToCPU binds the thread's affinity mask to the single given CPU.
// Fails loudly with an out_of_range error when cpu exceeds the CPU count;
// best-effort no-op on platforms without affinity support.
func (t *Thread[A]) PinToCPU(cpu int) error {
	if n := runtime.NumCPU(); cpu < 0 || cpu >= n {
		return errors.OutOfRange(errors.PhasePin, "cpu", cpu, n-1)
	}
	return pinThread(t.id.Load(), cpu)
}

// Close releases the handle's control-block share. Safe to call more than
// once; only the first call releases. The thread itself keeps running.
func (t *Thread[A]) Close() error {
	t.rel.do()
	return nil
}

// noCopy triggers go vet's copylocks check when a Thread is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
