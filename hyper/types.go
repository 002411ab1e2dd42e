// SPDX-License-Identifier: MIT

package hyper

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hypergeom/geometry"
)

// Point is a homogeneous point vector. Only the first MDim entries carry
// data; in 2D, entry 3 stays zero.
type Point [geometry.MaxMDim]float64

// Matrix is a homogeneous transform, row-major: T[row][col].
// In 2D the top-left 3×3 block is the transform and the remaining entries
// form an identity pad.
type Matrix [geometry.MaxMDim][geometry.MaxMDim]float64

// Id is the neutral transform.
var Id = Matrix{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	for i := range p {
		p[i] += q[i]
	}

	return p
}

// Sub returns p − q.
func (p Point) Sub(q Point) Point {
	for i := range p {
		p[i] -= q[i]
	}

	return p
}

// Scale returns p·f.
func (p Point) Scale(f float64) Point {
	for i := range p {
		p[i] *= f
	}

	return p
}

// Neg returns −p.
func (p Point) Neg() Point { return p.Scale(-1) }

// Equal reports exact coordinate equality.
func (p Point) Equal(q Point) bool { return p == q }

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", p[0], p[1], p[2], p[3])
}

// Mul returns the product T·U.
// Complexity: O(4³), no allocation.
func (T Matrix) Mul(U Matrix) Matrix {
	var R Matrix
	for i := 0; i < geometry.MaxMDim; i++ {
		for j := 0; j < geometry.MaxMDim; j++ {
			var sum float64
			for k := 0; k < geometry.MaxMDim; k++ {
				sum += T[i][k] * U[k][j]
			}
			R[i][j] = sum
		}
	}

	return R
}

// Apply returns T·h.
func (T Matrix) Apply(h Point) Point {
	var r Point
	for i := 0; i < geometry.MaxMDim; i++ {
		var sum float64
		for k := 0; k < geometry.MaxMDim; k++ {
			sum += T[i][k] * h[k]
		}
		r[i] = sum
	}

	return r
}

// Transpose returns Tᵗ.
func (T Matrix) Transpose() Matrix {
	var R Matrix
	for i := 0; i < geometry.MaxMDim; i++ {
		for j := 0; j < geometry.MaxMDim; j++ {
			R[i][j] = T[j][i]
		}
	}

	return R
}

// Column returns column i as a Point.
func (T Matrix) Column(i int) Point {
	var h Point
	for j := 0; j < geometry.MaxMDim; j++ {
		h[j] = T[j][i]
	}

	return h
}

// SetColumn returns T with column i replaced by h.
func (T Matrix) SetColumn(i int, h Point) Matrix {
	for j := 0; j < geometry.MaxMDim; j++ {
		T[j][i] = h[j]
	}

	return T
}

// String implements fmt.Stringer; one bracketed row per line.
func (T Matrix) String() string {
	return formatBlock(T, geometry.MaxMDim)
}

// block formats only the active n×n part of a matrix.
type block struct {
	m Matrix
	n int
}

func (b block) String() string { return formatBlock(b.m, b.n) }

func formatBlock(T Matrix, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte('[')
		for j := 0; j < n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", T[i][j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
