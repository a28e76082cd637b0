// Package errors provides structured error types for the threadcore library.
//
// Errors are categorized by Phase (which lifecycle operation failed) and Kind
// (error category). All errors implement the standard error interface and
// support errors.Is/As; two errors match under Is when their Phase and Kind
// are equal, so callers can test for a category without string comparison:
//
//	t, err := thread.Create(work, arg)
//	if errors.Is(err, &tcerrors.Error{Phase: tcerrors.PhaseSpawn, Kind: tcerrors.KindResourceExhausted}) {
//	    // back off and retry
//	}
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhasePin, errors.KindOutOfRange).
//		Detail("cpu %d exceeds cpu count %d", cpu, n).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ResourceExhausted(cause, "thread limit reached")
//	err := errors.OutOfRange(errors.PhasePin, "cpu", 12, 8)
//
// Only resource_exhausted is recoverable. A failure inside a spawned thread's
// entry function never surfaces as an error value at all; it is routed to the
// process-fatal handler (see the thread package).
package errors
