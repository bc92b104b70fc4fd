// Package result provides Result[Ok, Err], a value that is either a success
// payload or an error payload.
//
// Highlights:
// - Ok/Err: construct a Result directly
// - Success/Failure (and their ...With forms): single-use tagged wrappers,
//   converted with FromSuccess/FromFailure or compared with IsSuccess/IsFailure
// - From/MustFrom: classify a bare value, rejecting values that fit both types
// - Void: the payload-less specialization, an optional error
// - Switch/Map/MapErr/Try/Tee/DoubleTee/Finally: synchronous composition
//
// Accessing the inactive variant through Ok or Err is a programming error and
// panics; check IsOk or IsErr first.
package result
