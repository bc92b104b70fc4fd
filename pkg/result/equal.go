package result

// Equal reports whether a and b hold the same variant with equal payloads.
func Equal[Ok, Err comparable](a, b Result[Ok, Err]) bool {
	return a == b
}

// EqualFunc is Equal for payload types that are not comparable with ==.
func EqualFunc[Ok, Err any](a, b Result[Ok, Err], okEq func(Ok, Ok) bool, errEq func(Err, Err) bool) bool {
	if a.isErr != b.isErr {
		return false
	}
	if a.isErr {
		return errEq(a.err, b.err)
	}
	return okEq(a.ok, b.ok)
}

// IsSuccess compares r against a success wrapper without building a full
// Result. For a Void result IsSuccess(r, Succeed()) is simply r.IsOk().
// The wrapper is consumed whatever the outcome.
func IsSuccess[Ok comparable, Err any](r Result[Ok, Err], w SuccessWrapper[Ok]) bool {
	v := w.Take()
	return !r.isErr && r.ok == v
}

// IsFailure compares r against a failure wrapper. The wrapper is consumed
// whatever the outcome.
func IsFailure[Ok any, Err comparable](r Result[Ok, Err], w FailureWrapper[Err]) bool {
	v := w.Take()
	return r.isErr && r.err == v
}
