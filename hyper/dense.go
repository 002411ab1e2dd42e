// SPDX-License-Identifier: MIT

package hyper

import (
	"fmt"

	"github.com/katalvlaran/hypergeom/matrix"
)

// ToDense exports the active MDim×MDim block of T. Entries equal to the
// identity are left as NewIdentity wrote them.
func (k Kernel) ToDense(T Matrix) (*matrix.Dense, error) {
	d, err := matrix.NewIdentity(k.mdim)
	if err != nil {
		return nil, hyperErrorf(opToDense, err)
	}
	for i := 0; i < k.mdim; i++ {
		for j := 0; j < k.mdim; j++ {
			if T[i][j] == Id[i][j] {
				continue
			}
			if err = d.Set(i, j, T[i][j]); err != nil {
				return nil, hyperErrorf(opToDense, err)
			}
		}
	}

	return d, nil
}

// FromDense imports an MDim×MDim matrix. The padding of a 2D result is the
// identity block, as for every kernel-built Matrix.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (not square or
// wrong size), matrix.ErrNaNInf.
func (k Kernel) FromDense(m matrix.Matrix) (Matrix, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return Id, hyperErrorf(opFromDense, err)
	}
	if m.Rows() != k.mdim {
		return Id, hyperErrorf(opFromDense,
			fmt.Errorf("%dx%d for MDim %d: %w", m.Rows(), m.Cols(), k.mdim, matrix.ErrDimensionMismatch))
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return Id, hyperErrorf(opFromDense, err)
	}

	T := Id
	for i := 0; i < k.mdim; i++ {
		for j := 0; j < k.mdim; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return Id, hyperErrorf(opFromDense, err)
			}
			T[i][j] = v
		}
	}

	return T, nil
}

// PointToDense exports h as an MDim×1 column.
func (k Kernel) PointToDense(h Point) (*matrix.Dense, error) {
	d, err := matrix.NewDense(k.mdim, 1)
	if err != nil {
		return nil, hyperErrorf(opPointToDense, err)
	}
	for i := 0; i < k.mdim; i++ {
		if err = d.Set(i, 0, h[i]); err != nil {
			return nil, hyperErrorf(opPointToDense, err)
		}
	}

	return d, nil
}

// PointFromDense imports an MDim×1 column, or a 1×MDim row.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
func (k Kernel) PointFromDense(m matrix.Matrix) (Point, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Point{}, hyperErrorf(opPointFromDense, err)
	}
	if m.Rows() == 1 && m.Cols() == k.mdim {
		col, err := matrix.Transpose(m)
		if err != nil {
			return Point{}, hyperErrorf(opPointFromDense, err)
		}
		m = col
	}
	if m.Rows() != k.mdim || m.Cols() != 1 {
		return Point{}, hyperErrorf(opPointFromDense,
			fmt.Errorf("%dx%d for MDim %d: %w", m.Rows(), m.Cols(), k.mdim, matrix.ErrDimensionMismatch))
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return Point{}, hyperErrorf(opPointFromDense, err)
	}

	var h Point
	for i := 0; i < k.mdim; i++ {
		v, err := m.At(i, 0)
		if err != nil {
			return Point{}, hyperErrorf(opPointFromDense, err)
		}
		h[i] = v
	}

	return h, nil
}

// ApplyDense applies T to every column of pts, an MDim×n batch of points
// in exchange form, and returns the MDim×n images.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (pts.Rows != MDim),
// matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(MDim²·n), one Dense allocation for T and one for the result.
func (k Kernel) ApplyDense(T Matrix, pts matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(pts); err != nil {
		return nil, hyperErrorf(opApplyDense, err)
	}
	if pts.Rows() != k.mdim {
		return nil, hyperErrorf(opApplyDense,
			fmt.Errorf("%dx%d for MDim %d: %w", pts.Rows(), pts.Cols(), k.mdim, matrix.ErrDimensionMismatch))
	}
	if err := matrix.ValidateFinite(pts); err != nil {
		return nil, hyperErrorf(opApplyDense, err)
	}
	d, err := k.ToDense(T)
	if err != nil {
		return nil, hyperErrorf(opApplyDense, err)
	}
	res, err := matrix.Mul(d, pts)
	if err != nil {
		return nil, hyperErrorf(opApplyDense, err)
	}

	return res, nil
}
