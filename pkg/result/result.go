package result

// Unit is the success type of a Result that carries no payload.
type Unit = struct{}

// Result holds either a success value of type Ok or an error value of type
// Err, never both. The inactive payload is kept at its zero value, so two
// Results of comparable payload types may be compared with ==.
//
// The zero Result is a success holding the zero Ok.
type Result[Ok, Err any] struct {
	ok    Ok
	err   Err
	isErr bool
}

// Void is a Result without a success payload: it holds an error or nothing.
type Void[Err any] = Result[Unit, Err]

// Ok returns a successful Result holding v.
func Ok[Ok, Err any](v Ok) Result[Ok, Err] {
	return Result[Ok, Err]{ok: v}
}

// Err returns a failed Result holding e.
func Err[Ok, Err any](e Err) Result[Ok, Err] {
	return Result[Ok, Err]{err: e, isErr: true}
}

// From builds a Result from a bare value. The dynamic type of v must fit
// exactly one of Ok and Err; a value fitting both is rejected with
// ErrAmbiguous, use Success or Failure to say which variant is meant.
func From[Ok, Err any](v any) (Result[Ok, Err], error) {
	okV, toOk := v.(Ok)
	errV, toErr := v.(Err)

	switch {
	case toOk && toErr:
		return Result[Ok, Err]{}, ErrAmbiguous.New("%T fits both %s and %s, use Success or Failure",
			v, typeName[Ok](), typeName[Err]())
	case toOk:
		return Result[Ok, Err]{ok: okV}, nil
	case toErr:
		return Result[Ok, Err]{err: errV, isErr: true}, nil
	default:
		return Result[Ok, Err]{}, ErrUnassignable.New("%T fits neither %s nor %s", v, typeName[Ok](), typeName[Err]())
	}
}

// MustFrom is like From but panics when v cannot be classified.
func MustFrom[Ok, Err any](v any) Result[Ok, Err] {
	r, err := From[Ok, Err](v)
	if err != nil {
		panic(err)
	}
	return r
}

// IsOk reports whether r holds a success value.
func (r Result[Ok, Err]) IsOk() bool {
	return !r.isErr
}

// IsErr reports whether r holds an error value.
func (r Result[Ok, Err]) IsErr() bool {
	return r.isErr
}

// Ok returns the success value. It panics if r is a failure; check IsOk first.
func (r Result[Ok, Err]) Ok() Ok {
	if r.isErr {
		panic(ErrWrongVariant.New("Ok() called on %v", r))
	}
	return r.ok
}

// Err returns the error value. It panics if r is a success; check IsErr first.
func (r Result[Ok, Err]) Err() Err {
	if !r.isErr {
		panic(ErrWrongVariant.New("Err() called on %v", r))
	}
	return r.err
}

// OkRef returns a pointer to the success value stored in r.
func (r *Result[Ok, Err]) OkRef() *Ok {
	if r.isErr {
		panic(ErrWrongVariant.New("OkRef() called on %v", *r))
	}
	return &r.ok
}

// ErrRef returns a pointer to the error value stored in r.
func (r *Result[Ok, Err]) ErrRef() *Err {
	if !r.isErr {
		panic(ErrWrongVariant.New("ErrRef() called on %v", *r))
	}
	return &r.err
}

// Get unpacks r. The boolean is true for a success.
func (r Result[Ok, Err]) Get() (Ok, Err, bool) {
	return r.ok, r.err, !r.isErr
}
