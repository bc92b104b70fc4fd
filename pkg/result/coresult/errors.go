package coresult

import "github.com/zeebo/errs"

// Internal invariant breaches. They are raised as panic values and indicate
// a bug in the calling code, not a runtime condition.
var (
	// ErrFinalized is raised when a completed computation is resumed or
	// returned from again.
	ErrFinalized = errs.Class("coresult: computation finalized")
	// ErrNotShortCircuited is raised by ShortCircuit when no await failed.
	ErrNotShortCircuited = errs.Class("coresult: not short-circuited")
	// ErrNilComputation is raised when an adapter is given a nil source.
	ErrNilComputation = errs.Class("coresult: nil computation")
	// ErrInvalidAwaiter is raised when Await is handed a zero Awaiter.
	ErrInvalidAwaiter = errs.Class("coresult: invalid awaiter")
)
