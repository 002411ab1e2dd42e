// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// Context is the immutable description of the active geometry.
//
// A Context must be obtained from New or MustNew; the zero value has no
// curvature model bound and is not usable. Values are small and safe to
// copy and to share between goroutines.
type Context struct {
	kind     Kind
	dim      int
	elliptic bool
	eps      float64
	diag     Diagnostics
	model    curvatureModel
}

// New builds a Context from the defaults plus opts.
// Implementation:
//   - Stage 1: gather options over the documented defaults.
//   - Stage 2: validate kind, dimension and the elliptic/sphere pairing.
//   - Stage 3: bind the curvature model for the kind.
//
// Errors:
//   - ErrUnknownKind, ErrBadDim, ErrEllipticNeedsSphere (wrapped with "New").
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func New(opts ...Option) (Context, error) {
	o := gatherOptions(opts...)

	m, ok := modelFor(o.kind)
	if !ok {
		return Context{}, contextErrorf("New", fmt.Errorf("%v: %w", o.kind, ErrUnknownKind))
	}
	if o.dim != Dim2 && o.dim != Dim3 {
		return Context{}, contextErrorf("New", fmt.Errorf("dim=%d: %w", o.dim, ErrBadDim))
	}
	if o.elliptic && o.kind != Sphere {
		return Context{}, contextErrorf("New", fmt.Errorf("%v: %w", o.kind, ErrEllipticNeedsSphere))
	}

	return Context{
		kind:     o.kind,
		dim:      o.dim,
		elliptic: o.elliptic,
		eps:      o.eps,
		diag:     o.diag,
		model:    m,
	}, nil
}

// MustNew is like New but panics on error. Intended for tests and for
// package-level configuration with literal options.
func MustNew(opts ...Option) Context {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// Kind returns the curvature class.
func (c Context) Kind() Kind { return c.kind }

// Dim returns the ambient dimension (2 or 3).
func (c Context) Dim() int { return c.dim }

// MDim returns the homogeneous dimension, Dim()+1.
func (c Context) MDim() int { return c.dim + 1 }

// Elliptic reports whether antipodal points are identified.
func (c Context) Elliptic() bool { return c.elliptic }

// Epsilon returns the tolerance used by validity predicates.
func (c Context) Epsilon() float64 { return c.eps }

// Euclid reports whether the geometry is flat.
func (c Context) Euclid() bool { return c.kind == Euclid }

// Hyperbolic reports whether the geometry is hyperbolic.
func (c Context) Hyperbolic() bool { return c.kind == Hyperbolic }

// Sphere reports whether the geometry is spherical (elliptic included).
func (c Context) Sphere() bool { return c.kind == Sphere }

// Sig returns the signature weight of axis i in the bilinear form
// G = diag(sig(0), …, sig(Dim)): −1 for the timelike axis of hyperbolic
// geometry, +1 otherwise.
func (c Context) Sig(i int) float64 {
	if c.kind == Hyperbolic && i >= c.dim {
		return -1
	}

	return 1
}

// String implements fmt.Stringer.
func (c Context) String() string {
	if c.elliptic {
		return fmt.Sprintf("%v/elliptic/%dD", c.kind, c.dim)
	}

	return fmt.Sprintf("%v/%dD", c.kind, c.dim)
}
