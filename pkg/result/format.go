package result

import (
	"fmt"
	"reflect"
)

// String renders r as Ok(<value>) or Err(<error>). A Void result renders as
// Success or as the bare error.
func (r Result[Ok, Err]) String() string {
	if isUnit[Ok]() {
		if r.isErr {
			return fmt.Sprint(r.err)
		}
		return "Success"
	}

	if r.isErr {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.ok)
}

func isUnit[T any]() bool {
	return reflect.TypeFor[T]() == reflect.TypeFor[Unit]()
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
