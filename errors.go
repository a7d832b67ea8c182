package padic

import "errors"

// Error kinds returned by this package's operations. Structural failures are
// propagated wrapping one of these sentinels; domain-test failures (Sqrt)
// instead return a boolean alongside the result, per the package's error
// handling policy: nothing is silently ignored, but a failed convergence or
// square-ness test is not "exceptional".
var (
	// ErrInvalidArg signals a malformed Context (min > max, negative bound,
	// unrecognized print mode) or other malformed caller argument.
	ErrInvalidArg = errors.New("padic: invalid argument")

	// ErrNotUnit signals that an operation requiring gcd(u, p) = 1 received
	// an element of negative valuation.
	ErrNotUnit = errors.New("padic: not a unit")

	// ErrNotConvergent signals that Exp or Log was called outside its
	// domain of convergence.
	ErrNotConvergent = errors.New("padic: series does not converge")

	// ErrPrecisionLost signals that Inv was called on an element whose
	// valuation is too negative to invert at the requested precision.
	ErrPrecisionLost = errors.New("padic: insufficient precision to invert")

	// ErrNotInteger signals that Int was called on a non-integral element.
	ErrNotInteger = errors.New("padic: element is not a p-adic integer")

	// ErrNotASquare signals that Sqrt's domain test failed. Sqrt itself
	// reports this via its boolean return, not through an error channel;
	// this sentinel exists so error-returning call sites (e.g. MustSqrt)
	// can report the same failure through errors.Is.
	ErrNotASquare = errors.New("padic: element is not a square")
)
