// Package coresult lets a sequential function stop at the first failed
// sub-computation and hand the (optionally annotated) error to its caller.
//
// A computation is an ordinary function returning *Of[Ok, Err]. It starts
// eagerly and runs synchronously to completion. Inside its body, Begin
// returns the Promise being built, and every await is a guard clause:
//
//	settings, ok := coresult.Await(co, coresult.OrPrepend(ReadSettings()))
//	if !ok {
//		return co.ShortCircuit()
//	}
//
// Adapters decide how a failure travels upwards:
// - Propagate: the source error as is
// - OrPrepend/OrWrap: "Failed to <caller> @ Line:<n>: " breadcrumbs
// - OrReturnNewErr: a caller supplied transform of the source error
// - OrReturn: a replacement error, the source error is dropped
//
// On success Await yields a copy of the source value, AwaitRef a pointer
// into the source computation.
package coresult
