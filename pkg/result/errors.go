package result

import "github.com/zeebo/errs"

// Contract violations. They are raised as panic values, never returned as
// domain errors.
var (
	// ErrWrongVariant is raised when Ok or Err is read on the inactive variant.
	ErrWrongVariant = errs.Class("result: wrong variant")
	// ErrWrapperReused is raised when a Success/Failure wrapper is consumed twice.
	ErrWrapperReused = errs.Class("result: wrapper reused")
	// ErrAmbiguous is returned by From when a value fits both Ok and Err.
	ErrAmbiguous = errs.Class("result: ambiguous value")
	// ErrUnassignable is returned by From when a value fits neither Ok nor Err.
	ErrUnassignable = errs.Class("result: unassignable value")
)
