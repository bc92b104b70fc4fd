package result

import "sync/atomic"

// SuccessWrapper is a transient value tagged for the success variant. It is
// produced by Success, SuccessWith or Succeed and must be consumed right away
// by FromSuccess, IsSuccess or a promise's ReturnSuccess.
type SuccessWrapper[T any] struct {
	p *payload[T]
}

// FailureWrapper is the failure counterpart of SuccessWrapper.
type FailureWrapper[T any] struct {
	p *payload[T]
}

type payload[T any] struct {
	build func() T
	used  atomic.Bool
}

func (p *payload[T]) take() T {
	if p == nil {
		panic(ErrWrapperReused.New("wrapper was not produced by Success or Failure"))
	}
	if p.used.Swap(true) {
		panic(ErrWrapperReused.New("wrapper of %s consumed twice", typeName[T]()))
	}
	return p.build()
}

func valueOf[T any](v T) *payload[T] {
	return &payload[T]{build: func() T { return v }}
}

// Success tags v as a success payload.
func Success[T any](v T) SuccessWrapper[T] {
	return SuccessWrapper[T]{p: valueOf(v)}
}

// SuccessWith defers building the success payload until the wrapper is
// consumed, so the value is constructed in place.
func SuccessWith[T any](build func() T) SuccessWrapper[T] {
	return SuccessWrapper[T]{p: &payload[T]{build: build}}
}

// Succeed is the payload-less success used with Void results.
func Succeed() SuccessWrapper[Unit] {
	return Success(Unit{})
}

// Failure tags v as an error payload.
func Failure[T any](v T) FailureWrapper[T] {
	return FailureWrapper[T]{p: valueOf(v)}
}

// FailureWith defers building the error payload until the wrapper is consumed.
func FailureWith[T any](build func() T) FailureWrapper[T] {
	return FailureWrapper[T]{p: &payload[T]{build: build}}
}

// Take consumes the wrapper and returns its payload.
func (w SuccessWrapper[T]) Take() T {
	return w.p.take()
}

// Take consumes the wrapper and returns its payload.
func (w FailureWrapper[T]) Take() T {
	return w.p.take()
}

// FromSuccess converts a success wrapper into a Result. Only the error type
// has to be spelled out: FromSuccess[string](Success(42)).
func FromSuccess[Err, Ok any](w SuccessWrapper[Ok]) Result[Ok, Err] {
	return Result[Ok, Err]{ok: w.Take()}
}

// FromFailure converts a failure wrapper into a Result. Only the success type
// has to be spelled out: FromFailure[int](Failure("boom")).
func FromFailure[Ok, Err any](w FailureWrapper[Err]) Result[Ok, Err] {
	return Result[Ok, Err]{err: w.Take(), isErr: true}
}
