package logging

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

func String[S ~string](s S, v string) Field {
	return zap.String(string(s), v)
}

func Stringer[S ~string](s S, v fmt.Stringer) Field {
	return zap.Stringer(string(s), v)
}

func Int[S ~string, T constraints.Signed](s S, v T) Field {
	return zap.Int64(string(s), int64(v))
}

func Any[S ~string](s S, v any) Field {
	return zap.Any(string(s), v)
}
