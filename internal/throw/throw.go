// Package throw carries the panic/recover error-handling idiom the public
// API boundary uses for the small set of failures that are genuine
// contract violations (a caller passing an empty polygon to Triangulate,
// say) rather than the ordinary degenerate-input cases the pipeline
// already handles by producing an empty or partial result plus a warning.
//
// Threading an error return through every recursive call of loop
// extraction, bridge stitching or ear clipping for these rare cases would
// add a lot of ceremony for no benefit; instead the boundary functions
// panic with a Fault and the public API recovers it into a plain error.
package throw

import "github.com/pkg/errors"

// Fault wraps an error panicked by this package, distinguishing it at
// recovery time from an unrelated runtime panic that should keep
// propagating.
type Fault struct{ err error }

func (f Fault) Error() string { return f.err.Error() }
func (f Fault) Unwrap() error { return f.err }

// Fatalf panics with a Fault built from a formatted, stack-carrying error.
func Fatalf(format string, args ...interface{}) {
	panic(Fault{errors.Errorf(format, args...)})
}

// Wrap panics with a Fault wrapping err, unless err is nil.
func Wrap(err error, message string) {
	if err == nil {
		return
	}
	panic(Fault{errors.Wrap(err, message)})
}

// Recover converts a panic value produced by Fatalf/Wrap into a plain
// error. Any other panic value is re-panicked so it is never silently
// swallowed.
func Recover(r interface{}) error {
	if r == nil {
		return nil
	}
	if f, ok := r.(Fault); ok {
		return f
	}
	panic(r)
}
