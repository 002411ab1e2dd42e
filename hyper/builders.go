// SPDX-License-Identifier: MIT

package hyper

import "math"

// CSpin returns the rotation by alpha in the coordinate plane (a, b),
// turning axis a towards axis b.
func (k Kernel) CSpin(a, b int, alpha float64) Matrix {
	T := Id
	c, s := math.Cos(alpha), math.Sin(alpha)
	T[a][a], T[a][b] = c, -s
	T[b][a], T[b][b] = s, c

	return T
}

// Spin rotates by alpha around the origin in the plane of axes 0 and 1,
// counterclockwise: Spin(π/2)·(1, 0, 1) = (0, 1, 1).
func (k Kernel) Spin(alpha float64) Matrix { return k.CSpin(0, 1, alpha) }

// RotMatrix is the rotation by r in the plane (c0, c1) with the opposite
// orientation of CSpin: RotMatrix(r, c0, c1) == CSpin(c0, c1, −r).
func (k Kernel) RotMatrix(r float64, c0, c1 int) Matrix {
	return k.CSpin(c0, c1, -r)
}

// Eupush is the flat translation by (x, y).
func (k Kernel) Eupush(x, y float64) Matrix {
	T := Id
	T[0][k.dim] = x
	T[1][k.dim] = y

	return T
}

// Eupush3 is the flat translation by (x, y, z); z is ignored in 2D.
func (k Kernel) Eupush3(x, y, z float64) Matrix {
	T := k.Eupush(x, y)
	if k.dim == 3 {
		T[2][k.dim] = z
	}

	return T
}

// EupushPoint is the flat translation by the spatial part of h.
func (k Kernel) EupushPoint(h Point) Matrix {
	T := Id
	for i := 0; i < k.dim; i++ {
		T[i][k.dim] = h[i]
	}

	return T
}

// EuScaleZoom is the flat similarity that multiplies by the complex number
// h[0] + i·h[1] in the plane of axes 0 and 1.
func (k Kernel) EuScaleZoom(h Point) Matrix {
	T := Id
	T[0][0], T[0][1] = h[0], -h[1]
	T[1][0], T[1][1] = h[1], h[0]

	return T
}

// EuAffine is the flat shear by h[0] combined with a vertical stretch of
// exp(h[1]).
func (k Kernel) EuAffine(h Point) Matrix {
	T := Id
	T[0][1] = h[0]
	T[1][1] = math.Exp(h[1])

	return T
}

// Cpush moves alpha units along axis c:
//
//	T[c][c] = T[Dim][Dim] = cos_auto(alpha)
//	T[c][Dim]             = sin_auto(alpha)
//	T[Dim][c]             = −curvature·sin_auto(alpha)
//
// The curvature constant specializes this single formula into a flat
// translation, a hyperbolic boost and a spherical rotation.
func (k Kernel) Cpush(c int, alpha float64) Matrix {
	T := Id
	ca, sa := k.g.CosAuto(alpha), k.g.SinAuto(alpha)
	T[k.dim][k.dim] = ca
	T[c][c] = ca
	T[c][k.dim] = sa
	T[k.dim][c] = -k.curv * sa

	return T
}

// Xpush pushes alpha units along axis 0.
func (k Kernel) Xpush(alpha float64) Matrix { return k.Cpush(0, alpha) }

// Ypush pushes alpha units along axis 1.
func (k Kernel) Ypush(alpha float64) Matrix { return k.Cpush(1, alpha) }

// PushOne is the unit step: Xpush(0.5) on spheres, Xpush(1) otherwise.
func (k Kernel) PushOne() Matrix {
	if k.g.Sphere() {
		return k.Xpush(.5)
	}

	return k.Xpush(1)
}

// Matrix3 builds a transform from its 2D entries. In 3D the z axis is left
// untouched:
//
//	[a b 0 c]
//	[d e 0 f]
//	[0 0 1 0]
//	[g h 0 i]
func (k Kernel) Matrix3(a, b, c, d, e, f, g, h, i float64) Matrix {
	if k.dim == 2 {
		return Matrix{{a, b, c, 0}, {d, e, f, 0}, {g, h, i, 0}, {0, 0, 0, 1}}
	}

	return Matrix{{a, b, 0, c}, {d, e, 0, f}, {0, 0, 1, 0}, {g, h, 0, i}}
}

// Matrix4 builds a transform from its 3D entries. In 2D the z row and
// column (c, g, i, j, k, l, o) are dropped.
func (k Kernel) Matrix4(a, b, c, d, e, f, g, h, i, j, kk, l, m, n, o, p float64) Matrix {
	if k.dim == 2 {
		return Matrix{{a, b, d, 0}, {e, f, h, 0}, {m, n, p, 0}, {0, 0, 0, 1}}
	}

	return Matrix{{a, b, c, d}, {e, f, g, h}, {i, j, kk, l}, {m, n, o, p}}
}

// Parabolic1 is the parabolic isometry with parameter u fixing an ideal
// point. In flat geometry it falls back to Ypush(u).
func (k Kernel) Parabolic1(u float64) Matrix {
	if k.g.Euclid() {
		return k.Ypush(u)
	}
	diag := u * u / 2

	return k.Matrix3(
		-diag+1, u, diag,
		-u, 1, u,
		-diag, u, diag+1,
	)
}

// Parabolic13 is the two-parameter parabolic isometry of 3D space.
// A 2D plane has no second parabolic direction, so v is ignored there and
// the result is Parabolic1(u). Flat fallback: Ypush(u).
func (k Kernel) Parabolic13(u, v float64) Matrix {
	if k.g.Euclid() {
		return k.Ypush(u)
	}
	if k.dim == 2 {
		return k.Parabolic1(u)
	}
	diag := (u*u + v*v) / 2

	return k.Matrix4(
		-diag+1, u, v, diag,
		-u, 1, 0, u,
		-v, 0, 1, v,
		-diag, u, v, diag+1,
	)
}

// BuildMatrix returns Id with columns 0, 1 and 2 replaced by h1, h2, h3.
func (k Kernel) BuildMatrix(h1, h2, h3 Point) Matrix {
	T := Id
	for i := 0; i < k.mdim; i++ {
		T[i][0] = h1[i]
		T[i][1] = h2[i]
		T[i][2] = h3[i]
	}

	return T
}
