// SPDX-License-Identifier: MIT
// Package hyper_test contains test helpers
//
// Purpose:
//   • Provide kernels for every geometry and deterministic random isometries.
//   • randomIsometry keeps points well inside the numeric comfort zone
//     (distances ≤ 1.2) so tolerances stay tight; farIsometry reaches the
//     whole sphere and far out on the hyperboloid.

package hyper_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hypergeom/geometry"
	"github.com/katalvlaran/hypergeom/hyper"
	"github.com/stretchr/testify/require"
)

// eps is the default comparison tolerance of these tests.
const eps = 1e-9

// namedKernel pairs a kernel with a readable subtest name.
type namedKernel struct {
	name string
	k    hyper.Kernel
}

// kernel builds a kernel with a silent diagnostics collaborator.
func kernel(kind geometry.Kind, dim int, extra ...geometry.Option) hyper.Kernel {
	opts := append([]geometry.Option{
		geometry.WithKind(kind),
		geometry.WithDim(dim),
		geometry.WithDiagnostics(geometry.NopDiagnostics{}),
	}, extra...)

	return hyper.New(geometry.MustNew(opts...))
}

// allKernels RETURNS one kernel per (kind, dim) pair, plus elliptic spheres.
func allKernels() []namedKernel {
	var out []namedKernel
	for _, dim := range []int{2, 3} {
		for _, kind := range []geometry.Kind{geometry.Euclid, geometry.Hyperbolic, geometry.Sphere} {
			k := kernel(kind, dim)
			out = append(out, namedKernel{name: k.Geometry().String(), k: k})
		}
		k := kernel(geometry.Sphere, dim, geometry.WithElliptic())
		out = append(out, namedKernel{name: k.Geometry().String(), k: k})
	}

	return out
}

// curvedKernels RETURNS the hyperbolic and (non-elliptic) spherical kernels.
func curvedKernels() []namedKernel {
	var out []namedKernel
	for _, nk := range allKernels() {
		if !nk.k.Geometry().Euclid() && !nk.k.Geometry().Elliptic() {
			out = append(out, nk)
		}
	}

	return out
}

// randomIsometry COMPOSES a few rotations and pushes of bounded length.
// Determinism: the caller's *rand.Rand drives every choice.
func randomIsometry(k hyper.Kernel, r *rand.Rand) hyper.Matrix {
	return isometryWithin(k, r, 1.2)
}

// randomPoint RETURNS the image of the origin under randomIsometry.
func randomPoint(k hyper.Kernel, r *rand.Rand) hyper.Point {
	return randomIsometry(k, r).Apply(k.Origin())
}

// farReach is how far farIsometry may push: up to the antipode on a
// sphere, 6 on the hyperboloid (coordinates near cosh 6 ≈ 200), 10 when flat.
func farReach(k hyper.Kernel) float64 {
	switch {
	case k.Geometry().Sphere():
		return math.Pi
	case k.Geometry().Hyperbolic():
		return 6
	default:
		return 10
	}
}

// farIsometry is randomIsometry with pushes up to farReach(k).
func farIsometry(k hyper.Kernel, r *rand.Rand) hyper.Matrix {
	return isometryWithin(k, r, farReach(k))
}

// farPoint RETURNS the image of the origin under farIsometry.
func farPoint(k hyper.Kernel, r *rand.Rand) hyper.Point {
	return farIsometry(k, r).Apply(k.Origin())
}

// antipodes RETURNS points at and next to (0,…,0,−1) on a sphere kernel.
func antipodes(k hyper.Kernel) []hyper.Point {
	south := k.Origin().Neg()
	near := south
	near[0] = 1e-7
	out := []hyper.Point{south, k.Normalize(near), k.Xpush0(math.Pi - 1e-6), k.Xpush0(math.Pi)}
	if k.Dim() == 3 {
		near[1], near[2] = -2e-8, 5e-8
		out = append(out, k.Normalize(near), k.Cpush0(2, math.Pi))
	}

	return out
}

// isometryWithin composes rotations around a single push of length ≤ maxPush.
func isometryWithin(k hyper.Kernel, r *rand.Rand, maxPush float64) hyper.Matrix {
	T := k.Spin(r.Float64() * 6.28)
	if k.Dim() == 3 {
		T = T.Mul(k.CSpin(1, 2, r.Float64()*6.28))
	}
	T = T.Mul(k.Xpush(r.Float64() * maxPush))
	T = T.Mul(k.Spin(r.Float64() * 6.28))
	if k.Dim() == 3 {
		T = T.Mul(k.CSpin(0, 2, r.Float64()*6.28))
	}

	return T
}

// requirePointNear fails when a and b differ in an active coordinate by more than tol.
func requirePointNear(t *testing.T, k hyper.Kernel, want, got hyper.Point, tol float64) {
	t.Helper()
	require.Truef(t, k.PointsApproxEqualTol(want, got, tol), "want %v, got %v", want, got)
}

// requireMatrixNear fails when the active blocks differ by more than tol.
func requireMatrixNear(t *testing.T, k hyper.Kernel, want, got hyper.Matrix, tol float64) {
	t.Helper()
	require.Truef(t, k.ApproxEqualTol(want, got, tol), "want\n%vgot\n%v", want, got)
}
