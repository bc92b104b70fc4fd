package coresult

import (
	"github.com/google/uuid"

	"github.com/ib-77/result/pkg/result"
)

// Promise is the awaiting side of a computation. A function body obtains one
// from Begin, awaits sub-computations through Await or AwaitRef and finishes
// with one of the Return methods, or with ShortCircuit once an await failed:
//
//	func OpenSocket() *coresult.Of[int, string] {
//		co := coresult.Begin[int, string]()
//		socket, ok := coresult.Await(co, coresult.OrPrepend(CreateSocket()))
//		if !ok {
//			return co.ShortCircuit()
//		}
//		return co.Return(socket * 2)
//	}
//
// A Promise is owned by the body that created it and must not be shared.
type Promise[Ok, Err any] struct {
	out   *Of[Ok, Err]
	done  bool
	short bool
}

// Begin starts a computation named after the calling function.
func Begin[Ok, Err any]() *Promise[Ok, Err] {
	function, _ := caller(1)
	return &Promise[Ok, Err]{out: newOf[Ok, Err](function)}
}

// ID identifies the computation being built.
func (p *Promise[Ok, Err]) ID() uuid.UUID {
	return p.out.id
}

// Name is the computation name recorded by Begin.
func (p *Promise[Ok, Err]) Name() string {
	return p.out.name
}

// Done reports whether the computation has completed.
func (p *Promise[Ok, Err]) Done() bool {
	return p.done
}

// Return completes the computation with a success value.
func (p *Promise[Ok, Err]) Return(v Ok) *Of[Ok, Err] {
	return p.finish("Return", result.Ok[Ok, Err](v))
}

// Fail completes the computation with an error value.
func (p *Promise[Ok, Err]) Fail(e Err) *Of[Ok, Err] {
	return p.finish("Fail", result.Err[Ok](e))
}

// ReturnResult completes the computation with r.
func (p *Promise[Ok, Err]) ReturnResult(r result.Result[Ok, Err]) *Of[Ok, Err] {
	return p.finish("ReturnResult", r)
}

// ReturnSuccess completes the computation from a success wrapper.
func (p *Promise[Ok, Err]) ReturnSuccess(w result.SuccessWrapper[Ok]) *Of[Ok, Err] {
	p.mustRun("ReturnSuccess")
	return p.finish("ReturnSuccess", result.FromSuccess[Err](w))
}

// ReturnFailure completes the computation from a failure wrapper.
func (p *Promise[Ok, Err]) ReturnFailure(w result.FailureWrapper[Err]) *Of[Ok, Err] {
	p.mustRun("ReturnFailure")
	return p.finish("ReturnFailure", result.FromFailure[Ok](w))
}

// ShortCircuit returns the failure stored by the await that stopped the
// computation. It may be called more than once and always yields the same
// handle.
func (p *Promise[Ok, Err]) ShortCircuit() *Of[Ok, Err] {
	if !p.short {
		panic(ErrNotShortCircuited.New("%s has no failed await", p.out.name))
	}
	return p.out
}

func (p *Promise[Ok, Err]) mustRun(op string) {
	if p.done {
		panic(ErrFinalized.New("%s on completed computation %s (%s)", op, p.out.name, p.out.id))
	}
}

func (p *Promise[Ok, Err]) finish(op string, r result.Result[Ok, Err]) *Of[Ok, Err] {
	p.mustRun(op)
	p.out.Result = r
	p.done = true
	return p.out
}

func (p *Promise[Ok, Err]) stop(e Err) {
	p.out.Result = result.Err[Ok](e)
	p.done = true
	p.short = true
}

// Await resumes co with a copy of the success value held by aw. When aw
// carries a failure, the failure becomes the outcome of co and Await returns
// false; the body must then return co.ShortCircuit() without running any
// further code.
func Await[Ok, OutOk, Err any](co *Promise[OutOk, Err], aw Awaiter[Ok, Err]) (Ok, bool) {
	ref, ok := await(co, aw)
	if !ok {
		var zero Ok
		return zero, false
	}
	return *ref, true
}

// AwaitRef is Await returning a pointer into the source computation, so
// mutations through it are visible via the source handle.
func AwaitRef[Ok, OutOk, Err any](co *Promise[OutOk, Err], aw Awaiter[Ok, Err]) (*Ok, bool) {
	return await(co, aw)
}

func await[Ok, OutOk, Err any](co *Promise[OutOk, Err], aw Awaiter[Ok, Err]) (*Ok, bool) {
	co.mustRun("Await")
	if !aw.valid {
		panic(ErrInvalidAwaiter.New("%s awaited a zero Awaiter", co.out.name))
	}

	if !aw.failed {
		return aw.ok, true
	}

	co.stop(aw.err)
	traceShortCircuit(co.out.name, co.out.id, aw)
	return nil, false
}
