// SPDX-License-Identifier: MIT
package hyper_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hypergeom/geometry"
	"github.com/katalvlaran/hypergeom/hyper"
	"github.com/katalvlaran/hypergeom/matrix"
	"github.com/stretchr/testify/require"
)

func TestDense_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, nk := range allKernels() {
		k := nk.k
		T := k.Xpush(0.3).Mul(k.Spin(1.1))

		d, err := k.ToDense(T)
		require.NoError(t, err)
		require.Equal(t, k.MDim(), d.Rows())
		require.Equal(t, k.MDim(), d.Cols())

		back, err := k.FromDense(d)
		require.NoError(t, err)
		require.Equal(t, T, back, nk.name)

		h := k.Xpush0(0.6)
		pd, err := k.PointToDense(h)
		require.NoError(t, err)
		require.Equal(t, 1, pd.Cols())
		hb, err := k.PointFromDense(pd)
		require.NoError(t, err)
		require.Equal(t, h, hb)

		id, err := matrix.NewIdentity(k.MDim())
		require.NoError(t, err)
		imported, err := k.FromDense(id)
		require.NoError(t, err)
		require.Equal(t, hyper.Id, imported, "2D import keeps the identity pad")
	}
}

// TestApplyDense: a batch of columns maps like Matrix.Apply on each point,
// and exchange-side composition agrees with Matrix.Mul.
func TestApplyDense(t *testing.T) {
	t.Parallel()

	for _, nk := range allKernels() {
		k := nk.k
		r := rand.New(rand.NewSource(60))
		T := randomIsometry(k, r)
		pts := []hyper.Point{k.Origin(), randomPoint(k, r), farPoint(k, r)}

		batch, err := matrix.NewDense(k.MDim(), len(pts))
		require.NoError(t, err)
		for j, p := range pts {
			for i := 0; i < k.MDim(); i++ {
				require.NoError(t, batch.Set(i, j, p[i]))
			}
		}

		out, err := k.ApplyDense(T, batch)
		require.NoError(t, err)
		require.Equal(t, k.MDim(), out.Rows())
		require.Equal(t, len(pts), out.Cols())
		for j, p := range pts {
			want := T.Apply(p)
			for i := 0; i < k.MDim(); i++ {
				v, err := out.At(i, j)
				require.NoError(t, err)
				require.InDelta(t, want[i], v, 1e-9, "%s column %d", nk.name, j)
			}
		}
	}

	k := kernel(geometry.Hyperbolic, 3)
	A, B := k.Xpush(0.7), k.CSpin(0, 2, 0.4)
	db, err := k.ToDense(B)
	require.NoError(t, err)
	dp, err := k.ApplyDense(A, db)
	require.NoError(t, err)
	got, err := k.FromDense(dp)
	require.NoError(t, err)
	requireMatrixNear(t, k, A.Mul(B), got, 1e-12)

	_, err = k.ApplyDense(A, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	short, _ := matrix.NewDense(3, 2)
	_, err = k.ApplyDense(A, short)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	nan, _ := matrix.NewDense(4, 1)
	require.NoError(t, nan.Set(0, 0, math.NaN()))
	_, err = k.ApplyDense(A, nan)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestPointFromDense_Row accepts a 1×MDim row as well as a column.
func TestPointFromDense_Row(t *testing.T) {
	t.Parallel()

	for _, nk := range allKernels() {
		k := nk.k
		h := k.Hpxy(0.2, -0.5)
		row, err := matrix.NewDense(1, k.MDim())
		require.NoError(t, err)
		for i := 0; i < k.MDim(); i++ {
			require.NoError(t, row.Set(0, i, h[i]))
		}
		got, err := k.PointFromDense(row)
		require.NoError(t, err)
		require.Equal(t, h, got, nk.name)
	}

	k := kernel(geometry.Euclid, 2)
	wide, _ := matrix.NewDense(1, 4)
	_, err := k.PointFromDense(wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_Errors(t *testing.T) {
	t.Parallel()

	k := kernel(geometry.Euclid, 2)

	_, err := k.FromDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, _ := matrix.NewDense(3, 2)
	_, err = k.FromDense(rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	big, _ := matrix.NewIdentity(4)
	_, err = k.FromDense(big)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	nan, _ := matrix.NewIdentity(3)
	require.NoError(t, nan.Set(1, 1, math.NaN()))
	_, err = k.FromDense(nan)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = k.PointFromDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = k.PointFromDense(rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	col, _ := matrix.NewDense(3, 1)
	require.NoError(t, col.Set(2, 0, math.Inf(-1)))
	_, err = k.PointFromDense(col)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
