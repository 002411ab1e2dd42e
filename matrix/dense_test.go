// Package matrix_test contains unit tests for the Dense exchange matrix.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hypergeom/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

// TestSetGetAndClone validates Set/At and that Clone shares no storage.
func TestSetGetAndClone(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.89))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)

	c := m.Clone()
	require.NoError(t, c.Set(1, 2, 3))
	v, _ = m.At(1, 2)
	require.Equal(t, 7.89, v, "clone must not share storage")
}

// TestStringOutput checks the row-per-line format.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 2.5))
	require.Equal(t, "[1, 2.5]\n[0, 1]\n", m.String())
}

// TestMulTranspose checks composition on the exchange side.
func TestMulTranspose(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(3, 2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			_ = a.Set(i, j, float64(i*3+j+1)) // 1..6
			_ = b.Set(j, i, float64(i*3+j+1))
		}
	}
	p, err := matrix.Mul(a, b) // a·aᵗ
	require.NoError(t, err)
	require.Equal(t, "[14, 32]\n[32, 77]\n", p.String())

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, b.String(), at.String())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestValidators covers nil, shape and finiteness checks.
func TestValidators(t *testing.T) {
	t.Parallel()

	sq, _ := matrix.NewDense(2, 2)
	rect, _ := matrix.NewDense(2, 3)
	var typedNil *matrix.Dense

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"not nil ok", matrix.ValidateNotNil(sq), nil},
		{"nil", matrix.ValidateNotNil(nil), matrix.ErrNilMatrix},
		{"typed nil", matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix},
		{"square ok", matrix.ValidateSquare(sq), nil},
		{"not square", matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch},
		{"finite ok", matrix.ValidateFinite(sq), nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if tc.wantErr == nil {
				require.NoError(t, tc.err)
				return
			}
			require.ErrorIs(t, tc.err, tc.wantErr)
		})
	}

	bad := sq.Clone()
	require.NoError(t, bad.Set(1, 0, math.Inf(1)))
	require.ErrorIs(t, matrix.ValidateFinite(bad), matrix.ErrNaNInf)
}
