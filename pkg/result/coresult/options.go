package coresult

// DefaultErrMsgPrefix starts every breadcrumb built by OrPrepend and OrWrap.
const DefaultErrMsgPrefix = "Failed to "

type prependOptions struct {
	prefix   string
	function string
	line     int
	explicit bool
	skip     int
}

// PrependOption configures OrPrepend and OrWrap.
type PrependOption func(o *prependOptions)

// WithPrefix replaces DefaultErrMsgPrefix.
func WithPrefix(prefix string) PrependOption {
	return func(o *prependOptions) {
		o.prefix = prefix
	}
}

// WithLocation sets the reported function and line instead of looking them
// up from the call stack.
func WithLocation(function string, line int) PrependOption {
	return func(o *prependOptions) {
		o.function = function
		o.line = line
		o.explicit = true
	}
}

// WithCallerSkip reports the location skip frames above the direct caller,
// for helpers wrapping OrPrepend or OrWrap.
func WithCallerSkip(skip int) PrependOption {
	return func(o *prependOptions) {
		o.skip += skip
	}
}

type location struct {
	prefix   string
	function string
	line     int
}

// locate must be called directly from an exported adapter, so that depth 2
// is the function that called the adapter.
func locate(opts []PrependOption) *location {
	o := prependOptions{prefix: DefaultErrMsgPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.explicit {
		o.function, o.line = caller(2 + o.skip)
	}
	return &location{prefix: o.prefix, function: o.function, line: o.line}
}
