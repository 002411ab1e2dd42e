// SPDX-License-Identifier: MIT

// Package geometry: functional configuration for Context.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid literal parameters
//     (programmer error); cross-field problems are reported by New as errors.
package geometry

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultKind is the curvature class used when WithKind is not given.
	DefaultKind = Euclid

	// DefaultDim is the ambient dimension used when WithDim is not given.
	DefaultDim = Dim2

	// DefaultElliptic disables the antipodal quotient.
	DefaultElliptic = false

	// DefaultEpsilon is the tolerance used by the opt-in validity predicates
	// (on-manifold and isometry checks).
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid     = "geometry: WithEpsilon: eps must be finite, non-negative"
	panicDiagnosticsInvalid = "geometry: WithDiagnostics: diagnostics must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	kind     Kind        // DefaultKind
	dim      int         // DefaultDim
	elliptic bool        // DefaultElliptic
	eps      float64     // DefaultEpsilon
	diag     Diagnostics // NewLogDiagnostics(nil)
}

// WithKind selects the curvature class. Unknown kinds are reported by New.
func WithKind(k Kind) Option {
	return func(o *Options) { o.kind = k }
}

// WithDim selects the ambient dimension (2 or 3). Other values are reported
// by New as ErrBadDim.
func WithDim(d int) Option {
	return func(o *Options) { o.dim = d }
}

// WithElliptic turns on the antipodal quotient: h and −h denote the same
// point. Only meaningful for Sphere; New rejects it for other kinds.
func WithElliptic() Option {
	return func(o *Options) { o.elliptic = true }
}

// WithEpsilon sets the tolerance used by validity predicates.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// AI-Hints:
//   - 1e-9 suits freshly built transforms; loosen it (1e-6) when checking
//     long products that have not been passed through FixMatrix.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithDiagnostics replaces the diagnostics collaborator that receives
// numeric warnings (singular matrices during inversion).
// Panics when d is nil; use NopDiagnostics{} to silence reports.
func WithDiagnostics(d Diagnostics) Option {
	if d == nil {
		panic(panicDiagnosticsInvalid)
	}

	return func(o *Options) { o.diag = d }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		kind:     DefaultKind,
		dim:      DefaultDim,
		elliptic: DefaultElliptic,
		eps:      DefaultEpsilon,
		diag:     NewLogDiagnostics(nil),
	}
}

// gatherOptions applies opts over the defaults, ignoring nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
