package thread

// maxWaitBatch is the largest group a single multi-wait is issued over,
// matching the smallest native ceiling (MAXIMUM_WAIT_OBJECTS on Windows).
// Larger inputs are waited on in sequential chunks.
const maxWaitBatch = 64

// Joiner is the type-erased face of a joinable thread handle, for waiting on
// threads with different argument types at once.
type Joiner interface {
	Join()
}

// Join blocks the calling thread until the target thread's execution has
// completed: its entry function and all of its exit hooks have run, and its
// control-block share is released. Joining the same thread twice is
// undefined, matching native join semantics.
func (t *Thread[A]) Join() {
	<-t.done
}

// JoinAll waits for every thread in the input to finish.
func JoinAll[A any](threads ...*Thread[A]) {
	hs := make([]Joiner, len(threads))
	for i, t := range threads {
		hs[i] = t
	}
	JoinHandles(hs...)
}

// JoinHandles waits for every handle in the input to finish. Inputs larger
// than the native multi-wait ceiling are chunked and waited on sequentially;
// the call still returns only once all have finished.
func JoinHandles(handles ...Joiner) {
	for start := 0; start < len(handles); start += maxWaitBatch {
		end := start + maxWaitBatch
		if end > len(handles) {
			end = len(handles)
		}
		for _, h := range handles[start:end] {
			h.Join()
		}
	}
}
