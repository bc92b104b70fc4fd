package coresult

import (
	"runtime"
	"strconv"
	"strings"
)

// ErrorMessageFrom builds one breadcrumb:
//
//	<prefix><function> @ Line:<line>: <err>
func ErrorMessageFrom[S ~string](prefix, function string, line int, err S) S {
	return S(header(prefix, function, line)+": ") + err
}

func header(prefix, function string, line int) string {
	return prefix + function + " @ Line:" + strconv.Itoa(line)
}

// FunctionName shortens a runtime function name to the bare function or
// method name: "github.com/x/y.(*T).ReadSettings.func1" becomes
// "ReadSettings".
func FunctionName(full string) string {
	if i := strings.IndexByte(full, '['); i >= 0 {
		if j := strings.LastIndexByte(full, ']'); j > i {
			full = full[:i] + full[j+1:]
		}
	}
	if i := strings.LastIndexByte(full, '/'); i >= 0 {
		full = full[i+1:]
	}

	parts := strings.Split(full, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for len(parts) > 1 && isGenerated(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}
	return parts[len(parts)-1]
}

func isGenerated(segment string) bool {
	for _, p := range []string{"func", "gowrap", "deferwrap"} {
		if rest, ok := strings.CutPrefix(segment, p); ok && isDigits(rest) {
			return true
		}
	}
	return isDigits(segment)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// caller returns the short name and line of the function skip frames above
// the one calling caller.
func caller(skip int) (string, int) {
	pcs := make([]uintptr, 1)
	if runtime.Callers(skip+2, pcs) == 0 {
		return "unknown", 0
	}
	frame, _ := runtime.CallersFrames(pcs).Next()
	return FunctionName(frame.Function), frame.Line
}
