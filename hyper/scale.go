// SPDX-License-Identifier: MIT

package hyper

// MScale returns h with every active coordinate multiplied by fac.
func (k Kernel) MScale(h Point, fac float64) Point {
	for i := 0; i < k.mdim; i++ {
		h[i] *= fac
	}

	return h
}

// MScaleMatrix returns T with every active entry multiplied by fac.
func (k Kernel) MScaleMatrix(T Matrix, fac float64) Matrix {
	for i := 0; i < k.mdim; i++ {
		for j := 0; j < k.mdim; j++ {
			T[i][j] *= fac
		}
	}

	return T
}

// XYScale multiplies the spatial columns (0 … Dim−1) of T by fac and keeps
// the homogeneous column.
func (k Kernel) XYScale(T Matrix, fac float64) Matrix {
	return k.XYZScale(T, fac, 1)
}

// XYZScale multiplies the spatial columns of T by fac and the homogeneous
// column by facz.
func (k Kernel) XYZScale(T Matrix, fac, facz float64) Matrix {
	for i := 0; i < k.mdim; i++ {
		for j := 0; j < k.dim; j++ {
			T[i][j] *= fac
		}
		T[i][k.dim] *= facz
	}

	return T
}

// MZScale is a rendering effect: it separates T into a translation and a
// spin at the origin, pushes the spin by −(fac−1) along axis 1 and scales
// the result by 1 + (fac−1)/5. The output is not an isometry.
func (k Kernel) MZScale(T Matrix, fac float64) Matrix {
	centered := k.Gpushxto0(k.TC0(T)).Mul(T)
	fac--
	res := T.Mul(k.Inverse(centered)).Mul(k.Ypush(-fac)).Mul(centered)
	fac = fac*.2 + 1

	return k.MScaleMatrix(res, fac)
}
