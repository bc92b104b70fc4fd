package coresult

import (
	"fmt"

	"github.com/google/uuid"
)

// Awaiter is a propagation adapter: either a pointer to the success value of
// a source computation or the error the awaiting computation should fail
// with. Adapters are built by Propagate, OrPrepend, OrWrap, OrReturnNewErr
// and OrReturn and are meant to be passed straight to Await.
type Awaiter[Ok, E any] struct {
	ok     *Ok
	err    E
	failed bool
	valid  bool

	sourceName string
	sourceID   uuid.UUID
	location   *location
}

// Ready reports whether awaiting aw resumes the awaiting computation.
func (aw Awaiter[Ok, E]) Ready() bool {
	return aw.valid && !aw.failed
}

// Err is the error an await on aw would propagate.
func (aw Awaiter[Ok, E]) Err() E {
	return aw.err
}

func mustSource[Ok, Err any](src *Of[Ok, Err], adapter string) {
	if src == nil {
		panic(ErrNilComputation.New("%s called with a nil computation", adapter))
	}
}

func resume[Ok, Err, E any](src *Of[Ok, Err]) Awaiter[Ok, E] {
	return Awaiter[Ok, E]{
		ok:         src.OkRef(),
		valid:      true,
		sourceName: src.name,
		sourceID:   src.id,
	}
}

func propagate[Ok, Err, E any](src *Of[Ok, Err], e E, loc *location) Awaiter[Ok, E] {
	return Awaiter[Ok, E]{
		err:        e,
		failed:     true,
		valid:      true,
		sourceName: src.name,
		sourceID:   src.id,
		location:   loc,
	}
}

// Propagate forwards the source error unchanged.
func Propagate[Ok, Err any](src *Of[Ok, Err]) Awaiter[Ok, Err] {
	mustSource(src, "Propagate")
	if src.IsOk() {
		return resume[Ok, Err, Err](src)
	}
	return propagate(src, src.Err(), nil)
}

// OrPrepend forwards the source error prefixed with a breadcrumb naming the
// calling function and line:
//
//	Failed to ReadSettings @ Line:20: <source error>
//
// The location is taken from the caller unless WithLocation is given.
func OrPrepend[Ok any, Err ~string](src *Of[Ok, Err], opts ...PrependOption) Awaiter[Ok, Err] {
	mustSource(src, "OrPrepend")
	if src.IsOk() {
		return resume[Ok, Err, Err](src)
	}

	loc := locate(opts)
	return propagate(src, ErrorMessageFrom(loc.prefix, loc.function, loc.line, src.Err()), loc)
}

// OrWrap is OrPrepend for computations failing with an error. The source
// error is wrapped, so errors.Is and errors.As still see it.
func OrWrap[Ok any](src *Of[Ok, error], opts ...PrependOption) Awaiter[Ok, error] {
	mustSource(src, "OrWrap")
	if src.IsOk() {
		return resume[Ok, error, error](src)
	}

	loc := locate(opts)
	return propagate(src, fmt.Errorf("%s: %w", header(loc.prefix, loc.function, loc.line), src.Err()), loc)
}

// OrReturnNewErr fails the awaiting computation with createNewErr applied to
// the source error.
func OrReturnNewErr[Ok, Err, NewErr any](src *Of[Ok, Err], createNewErr func(Err) NewErr) Awaiter[Ok, NewErr] {
	mustSource(src, "OrReturnNewErr")
	if src.IsOk() {
		return resume[Ok, Err, NewErr](src)
	}
	return propagate(src, createNewErr(src.Err()), nil)
}

// OrReturn fails the awaiting computation with replacement, discarding the
// source error. replacement is copied into the adapter.
func OrReturn[Ok, Err, E any](src *Of[Ok, Err], replacement E) Awaiter[Ok, E] {
	mustSource(src, "OrReturn")
	if src.IsOk() {
		return resume[Ok, Err, E](src)
	}
	return propagate(src, replacement, nil)
}
