package result

// Switch feeds the success value of input into onSuccess. A failure is
// passed through untouched.
func Switch[In, Out, Err any](input Result[In, Err],
	onSuccess func(r In) Result[Out, Err]) Result[Out, Err] {

	if input.isErr {
		return Result[Out, Err]{err: input.err, isErr: true}
	}
	return onSuccess(input.ok)
}

func Map[In, Out, Err any](input Result[In, Err],
	onSuccess func(r In) Out) Result[Out, Err] {

	if input.isErr {
		return Result[Out, Err]{err: input.err, isErr: true}
	}
	return Result[Out, Err]{ok: onSuccess(input.ok)}
}

// MapErr converts the error value, leaving a success untouched.
func MapErr[Ok, In, Out any](input Result[Ok, In],
	onError func(err In) Out) Result[Ok, Out] {

	if input.isErr {
		return Result[Ok, Out]{err: onError(input.err), isErr: true}
	}
	return Result[Ok, Out]{ok: input.ok}
}

// Try runs a (value, error) returning function on the success value.
func Try[In, Out any](input Result[In, error],
	onTryExecute func(r In) (Out, error)) Result[Out, error] {

	if input.isErr {
		return Result[Out, error]{err: input.err, isErr: true}
	}

	out, err := onTryExecute(input.ok)
	if err != nil {
		return Result[Out, error]{err: err, isErr: true}
	}
	return Result[Out, error]{ok: out}
}

// FromPair converts a Go (value, error) pair into a Result.
func FromPair[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Result[T, error]{err: err, isErr: true}
	}
	return Result[T, error]{ok: v}
}

func Tee[Ok, Err any](input Result[Ok, Err], onSuccess func(r Ok)) Result[Ok, Err] {
	if !input.isErr {
		onSuccess(input.ok)
	}
	return input
}

func DoubleTee[Ok, Err any](input Result[Ok, Err],
	onSuccess func(r Ok),
	onError func(err Err)) Result[Ok, Err] {

	if input.isErr {
		onError(input.err)
	} else {
		onSuccess(input.ok)
	}
	return input
}

// Finally collapses input into a single value.
func Finally[Ok, Err, Out any](input Result[Ok, Err],
	onSuccess func(r Ok) Out,
	onError func(err Err) Out) Out {

	if input.isErr {
		return onError(input.err)
	}
	return onSuccess(input.ok)
}

// OrElse returns the success value, or fallback for a failure.
func (r Result[Ok, Err]) OrElse(fallback Ok) Ok {
	if r.isErr {
		return fallback
	}
	return r.ok
}
