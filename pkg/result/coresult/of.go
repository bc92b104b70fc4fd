package coresult

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/result/pkg/result"
)

// Of is the handle of a finished computation. Its outcome is the embedded
// Result, so IsOk, Ok, Err and String are available directly on the handle.
type Of[Ok, Err any] struct {
	result.Result[Ok, Err]

	id        uuid.UUID
	createdAt time.Time
	name      string
}

// Void is a computation without a success payload.
type Void[Err any] = Of[result.Unit, Err]

func newOf[Ok, Err any](name string) *Of[Ok, Err] {
	return &Of[Ok, Err]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		name:      name,
	}
}

// Ready wraps an already known outcome into a computation handle. The
// calling function is recorded as the computation name.
func Ready[Ok, Err any](r result.Result[Ok, Err]) *Of[Ok, Err] {
	function, _ := caller(1)
	c := newOf[Ok, Err](function)
	c.Result = r
	return c
}

// Succeeded is a completed successful computation. Only the error type needs
// to be given: Succeeded[string](42).
func Succeeded[Err, Ok any](v Ok) *Of[Ok, Err] {
	function, _ := caller(1)
	c := newOf[Ok, Err](function)
	c.Result = result.Ok[Ok, Err](v)
	return c
}

// Failed is a completed failed computation. Only the success type needs to
// be given: Failed[int]("boom").
func Failed[Ok, Err any](e Err) *Of[Ok, Err] {
	function, _ := caller(1)
	c := newOf[Ok, Err](function)
	c.Result = result.Err[Ok](e)
	return c
}

// FromError bridges a Go (value, error) pair into a computation.
func FromError[T any](v T, err error) *Of[T, error] {
	function, _ := caller(1)
	c := newOf[T, error](function)
	c.Result = result.FromPair(v, err)
	return c
}

// ID identifies this computation instance.
func (c *Of[Ok, Err]) ID() uuid.UUID {
	return c.id
}

// CreatedAt is the time the computation started (UTC).
func (c *Of[Ok, Err]) CreatedAt() time.Time {
	return c.createdAt
}

// Name is the short name of the function that ran the computation.
func (c *Of[Ok, Err]) Name() string {
	return c.name
}
