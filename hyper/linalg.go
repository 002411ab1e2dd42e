// SPDX-License-Identifier: MIT

package hyper

// ZeroPivot is the sentinel for detecting a singular matrix. The check is
// exact: a pivot that is merely tiny is still divided by.
const ZeroPivot = 0.0

// Inversion is the outcome of InverseChecked. Degraded is true when the
// input was singular and Matrix is the identity substitute.
type Inversion struct {
	Matrix   Matrix
	Degraded bool
}

// Err returns ErrSingular for a degraded inversion and nil otherwise.
func (r Inversion) Err() error {
	if r.Degraded {
		return ErrSingular
	}

	return nil
}

// Det returns the determinant of the active MDim×MDim block.
// Implementation:
//   - MDim == 3: closed-form rule of Sarrus.
//   - MDim == 4: Gaussian elimination, swapping in the first row with a
//     non-zero entry in the pivot column (each swap negates a row, which
//     keeps the determinant's sign).
//
// Complexity:
//   - O(1) for 3×3, O(4³) for 4×4.
func (k Kernel) Det(T Matrix) float64 {
	if k.mdim == 3 {
		var det float64
		for i := 0; i < 3; i++ {
			det += T[0][i] * T[1][(i+1)%3] * T[2][(i+2)%3]
		}
		for i := 0; i < 3; i++ {
			det -= T[0][i] * T[1][(i+2)%3] * T[2][(i+1)%3]
		}

		return det
	}

	det := 1.0
	M := T
	for a := 0; a < k.mdim; a++ {
		for b := a; b < k.mdim; b++ {
			if M[b][a] != ZeroPivot {
				if b != a {
					for c := a; c < k.mdim; c++ {
						M[b][c], M[a][c] = -M[a][c], M[b][c]
					}
				}
				break
			}
		}
		if M[a][a] == ZeroPivot {
			return 0
		}
		for b := a + 1; b < k.mdim; b++ {
			co := -M[b][a] / M[a][a]
			for c := a; c < k.mdim; c++ {
				M[b][c] += M[a][c] * co
			}
		}
		det *= M[a][a]
	}

	return det
}

// Inverse returns T⁻¹. A singular T is reported to the geometry's
// Diagnostics collaborator and Id is returned; use InverseChecked to tell
// the two cases apart.
func (k Kernel) Inverse(T Matrix) Matrix { return k.InverseChecked(T).Matrix }

// InverseChecked inverts the active block of T.
// Implementation:
//   - MDim == 3: adjugate (cofactor) formula divided by Det.
//   - MDim == 4: Gauss–Jordan elimination with row swaps towards the first
//     non-zero pivot, forward then backward.
//
// Behavior highlights:
//   - Never fails: a zero determinant or zero pivot yields
//     Inversion{Matrix: Id, Degraded: true} after Diagnostics is notified.
//
// Complexity:
//   - O(1) for 3×3, O(4³) for 4×4.
func (k Kernel) InverseChecked(T Matrix) Inversion {
	if k.mdim == 3 {
		d := k.Det(T)
		if d == ZeroPivot {
			return k.singular(T)
		}
		T2 := Id
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				T2[j][i] = (T[(i+1)%3][(j+1)%3]*T[(i+2)%3][(j+2)%3] -
					T[(i+1)%3][(j+2)%3]*T[(i+2)%3][(j+1)%3]) / d
			}
		}

		return Inversion{Matrix: T2}
	}

	T1 := T
	T2 := Id
	n := k.mdim
	for a := 0; a < n; a++ {
		for b := a; b < n; b++ {
			if T1[b][a] != ZeroPivot {
				if b != a {
					T1[a], T1[b] = T1[b], T1[a]
					T2[a], T2[b] = T2[b], T2[a]
				}
				break
			}
		}
		if T1[a][a] == ZeroPivot {
			return k.singular(T)
		}
		for b := a + 1; b < n; b++ {
			co := -T1[b][a] / T1[a][a]
			for c := 0; c < n; c++ {
				T1[b][c] += T1[a][c] * co
				T2[b][c] += T2[a][c] * co
			}
		}
	}

	for a := n - 1; a >= 0; a-- {
		for b := 0; b < a; b++ {
			co := -T1[b][a] / T1[a][a]
			for c := 0; c < n; c++ {
				T1[b][c] += T1[a][c] * co
				T2[b][c] += T2[a][c] * co
			}
		}
		co := 1 / T1[a][a]
		for c := 0; c < n; c++ {
			T1[a][c] *= co
			T2[a][c] *= co
		}
	}

	return Inversion{Matrix: T2}
}

// singular notifies Diagnostics and returns the degraded result.
func (k Kernel) singular(T Matrix) Inversion {
	k.g.ReportSingular(block{m: T, n: k.mdim})

	return Inversion{Matrix: Id, Degraded: true}
}
