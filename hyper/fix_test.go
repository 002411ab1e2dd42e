// SPDX-License-Identifier: MIT
package hyper_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hypergeom/geometry"
	"github.com/katalvlaran/hypergeom/hyper"
	"github.com/stretchr/testify/require"
)

// perturb adds uniform noise of the given amplitude to the active block.
func perturb(k hyper.Kernel, T hyper.Matrix, amp float64, r *rand.Rand) hyper.Matrix {
	for i := 0; i < k.MDim(); i++ {
		for j := 0; j < k.MDim(); j++ {
			T[i][j] += (r.Float64()*2 - 1) * amp
		}
	}

	return T
}

// TestFixMatrix_RestoresIsometry: a perturbed isometry is repaired and stays
// close to where it was.
func TestFixMatrix_RestoresIsometry(t *testing.T) {
	t.Parallel()

	for _, nk := range allKernels() {
		nk := nk
		t.Run(nk.name, func(t *testing.T) {
			t.Parallel()
			k := nk.k
			r := rand.New(rand.NewSource(30))
			for i := 0; i < 20; i++ {
				T := randomIsometry(k, r)
				bad := perturb(k, T, 1e-6, r)
				require.False(t, k.IsIsometryTol(bad, 1e-12))

				fixed := k.FixMatrix(bad)
				require.Truef(t, k.IsIsometryTol(fixed, 1e-10), "still drifted:\n%v", fixed)
				requireMatrixNear(t, k, T, fixed, 1e-4)
			}
		})
	}
}

// TestFixMatrix_Far repairs isometries that push up to the antipode of the
// sphere or 6 out on the hyperboloid. The tolerance scales with the squared
// largest entry, which bounds every G-inner product the check sums.
func TestFixMatrix_Far(t *testing.T) {
	t.Parallel()

	for _, nk := range allKernels() {
		nk := nk
		t.Run(nk.name, func(t *testing.T) {
			t.Parallel()
			k := nk.k
			r := rand.New(rand.NewSource(32))
			for i := 0; i < 50; i++ {
				T := farIsometry(k, r)
				var m float64
				for a := 0; a < k.MDim(); a++ {
					for b := 0; b < k.MDim(); b++ {
						m = math.Max(m, math.Abs(T[a][b]))
					}
				}
				tol := 1e-9 * m * m

				bad := perturb(k, T, 1e-6, r)
				require.False(t, k.IsIsometryTol(bad, 1e-12))
				fixed := k.FixMatrix(bad)
				require.Truef(t, k.IsIsometryTol(fixed, tol), "still drifted:\n%v", fixed)
			}
		})
	}
}

// TestFixMatrix_ExactIsometryUnchanged: fixing is a no-op up to round-off.
func TestFixMatrix_ExactIsometryUnchanged(t *testing.T) {
	t.Parallel()

	for _, nk := range allKernels() {
		k := nk.k
		r := rand.New(rand.NewSource(31))
		T := randomIsometry(k, r)
		requireMatrixNear(t, k, T, k.FixMatrix(T), 1e-12)
		require.Equal(t, hyper.Id, k.FixMatrix(hyper.Id), nk.name)
	}
}

// TestFixMatrix_LongProduct: a long chain of small sphere rotations is
// brought back onto the group.
func TestFixMatrix_LongProduct(t *testing.T) {
	t.Parallel()

	k := kernel(geometry.Sphere, 3)
	step := k.Xpush(0.01).Mul(k.Spin(0.013)).Mul(k.CSpin(1, 2, 0.007))
	T := hyper.Id
	for i := 0; i < 20000; i++ {
		T = T.Mul(step)
	}
	require.True(t, k.IsIsometryTol(k.FixMatrix(T), 1e-12))
}

// TestFixMatrix_FlatAffineRow: the flat branch keeps the translation column
// and resets the affine row.
func TestFixMatrix_FlatAffineRow(t *testing.T) {
	t.Parallel()

	k := kernel(geometry.Euclid, 2)
	T := k.Eupush(3, 4).Mul(k.Spin(0.5))
	T[2][0], T[2][1], T[2][2] = 1e-3, -2e-3, 1.01
	T[0][0] *= 1.001

	fixed := k.FixMatrix(T)
	require.True(t, k.IsIsometry(fixed))
	require.Equal(t, 0.0, fixed[2][0])
	require.Equal(t, 0.0, fixed[2][1])
	require.Equal(t, 1.0, fixed[2][2])
	require.Equal(t, 3.0, fixed[0][2])
	require.Equal(t, 4.0, fixed[1][2])
}
