// SPDX-License-Identifier: MIT

// Opt-in validity predicates. No kernel operation calls them; they exist
// for callers and tests that want to assert the representation invariants.

package hyper

import "gonum.org/v1/gonum/floats/scalar"

// OnManifold reports whether h lies on the active manifold within the
// context epsilon.
func (k Kernel) OnManifold(h Point) bool { return k.OnManifoldTol(h, k.g.Epsilon()) }

// OnManifoldTol is OnManifold with an explicit tolerance.
//   - flat: h[Dim] == 1;
//   - hyperbolic: form(h) == −1 and h[Dim] > 0;
//   - spherical: form(h) == +1.
func (k Kernel) OnManifoldTol(h Point, tol float64) bool {
	switch {
	case k.g.Euclid():
		return scalar.EqualWithinAbs(h[k.dim], 1, tol)
	case k.g.Hyperbolic():
		return h[k.dim] > 0 && scalar.EqualWithinAbs(k.form(h), -1, tol)
	default:
		return scalar.EqualWithinAbs(k.form(h), 1, tol)
	}
}

// IsIsometry reports whether Tᵗ·G·T equals G within the context epsilon.
func (k Kernel) IsIsometry(T Matrix) bool { return k.IsIsometryTol(T, k.g.Epsilon()) }

// IsIsometryTol is IsIsometry with an explicit tolerance. In flat geometry
// the spatial block must be orthonormal and the affine row (0, …, 0, 1).
func (k Kernel) IsIsometryTol(T Matrix, tol float64) bool {
	n := k.mdim
	if k.g.Euclid() {
		n = k.dim
		for j := 0; j < k.dim; j++ {
			if !scalar.EqualWithinAbs(T[k.dim][j], 0, tol) {
				return false
			}
		}
		if !scalar.EqualWithinAbs(T[k.dim][k.dim], 1, tol) {
			return false
		}
	}
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			var dp float64
			for z := 0; z < n; z++ {
				dp += T[z][a] * T[z][b] * k.sig(z)
			}
			want := 0.0
			if a == b {
				want = k.sig(a)
			}
			if !scalar.EqualWithinAbs(dp, want, tol) {
				return false
			}
		}
	}

	return true
}

// ApproxEqual compares the active blocks of A and B entry by entry within
// the context epsilon.
func (k Kernel) ApproxEqual(A, B Matrix) bool { return k.ApproxEqualTol(A, B, k.g.Epsilon()) }

// ApproxEqualTol is ApproxEqual with an explicit tolerance.
func (k Kernel) ApproxEqualTol(A, B Matrix, tol float64) bool {
	for i := 0; i < k.mdim; i++ {
		for j := 0; j < k.mdim; j++ {
			if !scalar.EqualWithinAbs(A[i][j], B[i][j], tol) {
				return false
			}
		}
	}

	return true
}

// PointsApproxEqual compares the active coordinates of a and b within the
// context epsilon.
func (k Kernel) PointsApproxEqual(a, b Point) bool {
	return k.PointsApproxEqualTol(a, b, k.g.Epsilon())
}

// PointsApproxEqualTol is PointsApproxEqual with an explicit tolerance.
func (k Kernel) PointsApproxEqualTol(a, b Point, tol float64) bool {
	for i := 0; i < k.mdim; i++ {
		if !scalar.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}

	return true
}
