// SPDX-License-Identifier: MIT

package linearize

// Options configures a linearization pass.
//
// Epsilon is the central-difference step for edges without a closed form
// (and for every edge when ForceNumeric is set); it must be > 0. Workers
// is the number of concurrent evaluators: 1 means a fully serial pass,
// above 1 every worker owns a private workspace and the visit callback
// must tolerate concurrent calls. ForceNumeric evaluates every edge
// numerically even when it carries a closed form, which is useful for
// cross-validation sweeps; because the numeric path perturbs shared vertex
// estimates it holds an exclusive lock per evaluation, so a forced-numeric
// pass gains nothing from Workers > 1.
type Options struct {
	Epsilon      float64
	Workers      int
	ForceNumeric bool
}

// DefaultOptions returns the canonical pass configuration: serial,
// analytic-first, DefaultEpsilon fallback.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon, Workers: 1}
}

// validate enforces the option invariants.
func (o Options) validate() error {
	if o.Epsilon <= 0 {
		return ErrBadEpsilon
	}
	if o.Workers < 1 {
		return ErrBadWorkers
	}

	return nil
}
