// SPDX-License-Identifier: MIT

package hyper

import "math"

// FixMatrix restores the isometry condition Tᵗ·G·T = G on a matrix that
// drifted through repeated multiplication.
// Implementation:
//   - Stage 1: walk columns x left to right; for every earlier column y,
//     subtract the G-weighted projection of column x onto y.
//   - Stage 2: for y == x rescale column x so its G-norm is sig(x).
//   - Flat geometry: only the spatial block is orthonormalized and the
//     affine row Dim is reset to (0, …, 0, 1).
//
// Complexity:
//   - Time O(MDim³), no allocation.
//
// AI-Hints:
//   - Call it on any transform that is updated every frame; the cost is a
//     fraction of one Inverse.
func (k Kernel) FixMatrix(T Matrix) Matrix {
	if k.g.Euclid() {
		for x := 0; x < k.dim; x++ {
			for y := 0; y <= x; y++ {
				var dp float64
				for z := 0; z < k.dim; z++ {
					dp += T[z][x] * T[z][y]
				}
				if y == x {
					dp = 1 - math.Sqrt(1/dp)
				}
				for z := 0; z < k.dim; z++ {
					T[z][x] -= dp * T[z][y]
				}
			}
		}
		for x := 0; x < k.dim; x++ {
			T[k.dim][x] = 0
		}
		T[k.dim][k.dim] = 1

		return T
	}

	for x := 0; x < k.mdim; x++ {
		for y := 0; y <= x; y++ {
			var dp float64
			for z := 0; z < k.mdim; z++ {
				dp += T[z][x] * T[z][y] * k.sig(z)
			}
			if y == x {
				dp = 1 - math.Sqrt(k.sig(x)/dp)
			}
			for z := 0; z < k.mdim; z++ {
				T[z][x] -= dp * T[z][y]
			}
		}
	}

	return T
}
