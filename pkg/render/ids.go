package render

import (
	"strconv"
	"sync/atomic"
)

// idCounter distinguishes generated element identifiers across calls so
// that multiple SVG outputs can be inlined into one document without id
// collisions.
var idCounter atomic.Uint64

func nextIDSuffix() string {
	return strconv.FormatUint(idCounter.Add(1), 10)
}

type options struct {
	idSuffix string
}

// Option configures a single generation call.
type Option func(*options)

// WithIDSuffix pins the suffix used for generated element identifiers
// (gradient, filter, and pattern ids). Identical configs rendered with the
// same suffix produce byte-identical output.
func WithIDSuffix(s string) Option {
	return func(o *options) { o.idSuffix = s }
}

func newOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.idSuffix == "" {
		o.idSuffix = nextIDSuffix()
	}
	return o
}
