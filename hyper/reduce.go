// SPDX-License-Identifier: MIT

package hyper

import "math"

// Spintoc returns the rotation in the plane (t, f) that zeroes coordinate f
// of h and makes coordinate t equal to hypot(h[t], h[f]) ≥ 0.
// When that norm is below 1e-12 the identity is returned.
func (k Kernel) Spintoc(h Point, t, f int) Matrix {
	T := Id
	r := math.Hypot(h[f], h[t])
	if r >= degenerateNorm {
		T[t][t], T[t][f] = h[t]/r, h[f]/r
		T[f][t], T[f][f] = -h[f]/r, h[t]/r
	}

	return T
}

// Rspintoc is the inverse of Spintoc(h, t, f).
func (k Kernel) Rspintoc(h Point, t, f int) Matrix {
	T := Id
	r := math.Hypot(h[f], h[t])
	if r >= degenerateNorm {
		T[t][t], T[t][f] = h[t]/r, -h[f]/r
		T[f][t], T[f][f] = h[f]/r, h[t]/r
	}

	return T
}

// Spintox rotates around the origin so that h lands on the non-negative
// half of axis 0 (h[1] == 0, and in 3D h[2] == 0 as well).
func (k Kernel) Spintox(h Point) Matrix {
	t1 := k.Spintoc(h, 0, 1)
	if k.dim == 2 {
		return t1
	}

	return k.Spintoc(t1.Apply(h), 0, 2).Mul(t1)
}

// Rspintox is the inverse of Spintox(h).
func (k Kernel) Rspintox(h Point) Matrix {
	if k.dim == 2 {
		return k.Rspintoc(h, 0, 1)
	}
	t1 := k.Spintoc(h, 0, 1)

	return k.Rspintoc(h, 0, 1).Mul(k.Rspintoc(t1.Apply(h), 0, 2))
}

// Pushxto0 pushes h to the origin along axis 0. Valid only for h whose
// coordinates other than 0 and Dim are zero (e.g. after Spintox).
func (k Kernel) Pushxto0(h Point) Matrix {
	T := Id
	T[0][0], T[0][k.dim] = h[k.dim], -h[0]
	T[k.dim][0], T[k.dim][k.dim] = k.curv*h[0], h[k.dim]

	return T
}

// Rpushxto0 is the inverse of Pushxto0(h): it moves the origin to h.
func (k Kernel) Rpushxto0(h Point) Matrix {
	T := Id
	T[0][0], T[0][k.dim] = h[k.dim], h[0]
	T[k.dim][0], T[k.dim][k.dim] = -k.curv*h[0], h[k.dim]

	return T
}

// Ggpushxto0 is the closed-form translation along the line through the
// origin and h. With co = −1 it sends h to the origin; with co = +1 it
// sends the origin to h. It equals Rspintox(h)·Xpush(∓d)·Spintox(h)
// (d the distance of h) without composing three matrices.
//
// Flat geometry: translation by co·h. Curved geometry: identity plus
// u·uᵗ·(h[Dim]−1) on the spatial block, u the unit direction of h.
// Near the origin (‖h‖² < 1e-12) the result is the identity. On a sphere
// the southern hemisphere has no such cutoff: points next to the antipode
// keep their direction, and the antipode itself gets the half-turn
// Cpush(0, π), which serves both values of co.
func (k Kernel) Ggpushxto0(h Point, co float64) Matrix {
	if k.g.Euclid() {
		return k.EupushPoint(h.Scale(co))
	}
	res := Id
	south := k.g.Sphere() && h[k.dim] < 0
	if !south && SqHypotD(h, k.dim) < degenerateNorm {
		return res
	}
	u, ok := k.direction(h)
	if !ok {
		return k.Cpush(0, math.Pi)
	}
	for i := 0; i < k.dim; i++ {
		for j := 0; j < k.dim; j++ {
			res[i][j] += u[i] * u[j] * (h[k.dim] - 1)
		}
	}
	for d := 0; d < k.dim; d++ {
		res[d][k.dim] = co * h[d]
		res[k.dim][d] = -k.curv * co * h[d]
	}
	res[k.dim][k.dim] = h[k.dim]

	return res
}

// direction returns the unit vector along the spatial part of h, scaled
// first by its largest entry so that tiny coordinates do not underflow.
// ok is false when the spatial part is exactly zero.
func (k Kernel) direction(h Point) (u Point, ok bool) {
	var m float64
	for i := 0; i < k.dim; i++ {
		m = math.Max(m, math.Abs(h[i]))
	}
	if m == 0 {
		return u, false
	}
	for i := 0; i < k.dim; i++ {
		u[i] = h[i] / m
	}
	n := HypotD(u, k.dim)
	for i := 0; i < k.dim; i++ {
		u[i] /= n
	}

	return u, true
}

// Gpushxto0 sends h to the origin: Ggpushxto0(h, −1).
func (k Kernel) Gpushxto0(h Point) Matrix { return k.Ggpushxto0(h, -1) }

// Rgpushxto0 sends the origin to h: Ggpushxto0(h, +1).
func (k Kernel) Rgpushxto0(h Point) Matrix { return k.Ggpushxto0(h, 1) }
