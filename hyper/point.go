// SPDX-License-Identifier: MIT

package hyper

import "math"

// Hpxyz returns the raw homogeneous point with plane coordinates (x, y) and
// homogeneous coordinate z. In 3D the point is (x, y, 0, z).
func (k Kernel) Hpxyz(x, y, z float64) Point {
	var h Point
	h[0], h[1] = x, y
	h[k.dim] = z

	return h
}

// Hpxyz3 returns (x, y, z, w) in 3D and (x, y, w) in 2D.
func (k Kernel) Hpxyz3(x, y, z, w float64) Point {
	var h Point
	h[0], h[1] = x, y
	if k.dim == 3 {
		h[2] = z
	}
	h[k.dim] = w

	return h
}

// Hpxy returns the point of the active manifold above the plane
// coordinates (x, y): w = 1, √(1−x²−y²) or √(1+x²+y²).
func (k Kernel) Hpxy(x, y float64) Point {
	return k.Hpxyz(x, y, k.solveW(x*x+y*y))
}

// Hpxy3 is Hpxy with a third spatial coordinate. In 2D, z is dropped.
func (k Kernel) Hpxy3(x, y, z float64) Point {
	if k.dim == 2 {
		return k.Hpxy(x, y)
	}

	return k.Hpxyz3(x, y, z, k.solveW(x*x+y*y+z*z))
}

// solveW returns the homogeneous coordinate that puts a point whose spatial
// part has squared norm sq on the manifold.
func (k Kernel) solveW(sq float64) float64 {
	switch {
	case k.g.Euclid():
		return 1
	case k.g.Sphere():
		return math.Sqrt(1 - sq)
	default:
		return math.Sqrt(1 + sq)
	}
}

// ZeroD reports whether the first d coordinates of h are all exactly zero.
func ZeroD(h Point, d int) bool {
	for i := 0; i < d; i++ {
		if h[i] != 0 {
			return false
		}
	}

	return true
}

// SqHypotD returns the squared Euclidean norm of the first d coordinates.
func SqHypotD(h Point, d int) float64 {
	var sum float64
	for i := 0; i < d; i++ {
		sum += h[i] * h[i]
	}

	return sum
}

// HypotD returns the Euclidean norm of the first d coordinates.
func HypotD(h Point, d int) float64 { return math.Sqrt(SqHypotD(h, d)) }

// form evaluates the signature-weighted quadratic form Σ sig(i)·h[i]².
func (k Kernel) form(h Point) float64 {
	var res float64
	for i := 0; i < k.mdim; i++ {
		res += h[i] * h[i] * k.sig(i)
	}

	return res
}

// Intval returns the signature-weighted squared difference
// Σ sig(i)·(h1[i]−h2[i])². In elliptic mode the smaller of the values
// against h2 and −h2 is returned, so antipodes are at interval zero.
//
// With h2 = Center() this is the quadratic form at h1: −1 on the
// hyperboloid, +1 on the sphere.
func (k Kernel) Intval(h1, h2 Point) float64 {
	var res float64
	for i := 0; i < k.mdim; i++ {
		d := h1[i] - h2[i]
		res += d * d * k.sig(i)
	}
	if k.g.Elliptic() {
		var res2 float64
		for i := 0; i < k.mdim; i++ {
			d := h1[i] + h2[i]
			res2 += d * d * k.sig(i)
		}

		return math.Min(res, res2)
	}

	return res
}

// ZLevel returns the factor by which h is away from the manifold: the
// homogeneous coordinate in flat geometry, √form on spheres, and
// sign(h[Dim])·√(−form) on the hyperboloid.
func (k Kernel) ZLevel(h Point) float64 {
	switch {
	case k.g.Euclid():
		return h[k.dim]
	case k.g.Sphere():
		return math.Sqrt(k.form(h))
	default:
		s := 1.0
		if h[k.dim] < 0 {
			s = -1
		}

		return s * math.Sqrt(-k.form(h))
	}
}

// Normalize moves h back onto the manifold by dividing by ZLevel(h).
// h must not be the zero vector.
func (k Kernel) Normalize(h Point) Point {
	z := k.ZLevel(h)
	for c := 0; c < k.mdim; c++ {
		h[c] /= z
	}

	return h
}

// Hdist0 returns the distance between h and the origin.
//
// NOTE: in flat geometry the result is the SQUARED distance. Callers that
// mix geometries must not compare it with the curved results; Dist0
// returns the true distance everywhere.
func (k Kernel) Hdist0(h Point) float64 {
	w := h[k.dim]
	switch {
	case k.g.Hyperbolic():
		if w < 1 {
			return 0
		}

		return math.Acosh(w)
	case k.g.Euclid():
		return SqHypotD(h, k.dim)
	default:
		var res float64
		switch {
		case w >= 1:
			res = 0
		case w <= -1:
			res = math.Pi
		default:
			res = math.Acos(w)
		}
		if k.g.Elliptic() && res > math.Pi/2 {
			res = math.Pi - res
		}

		return res
	}
}

// Dist0 is Hdist0 with the flat branch returning the unsquared distance.
func (k Kernel) Dist0(h Point) float64 {
	if k.g.Euclid() {
		return HypotD(h, k.dim)
	}

	return k.Hdist0(h)
}

// Hdist returns the distance between h1 and h2 by moving h1 to the origin.
// Units follow Hdist0 (squared in flat geometry).
func (k Kernel) Hdist(h1, h2 Point) float64 {
	return k.Hdist0(k.Gpushxto0(h1).Apply(h2))
}

// HdistDirect computes the distance between h1 and h2 from their interval:
// √iv, 2·asinh(√iv/2) or 2·asin(√iv/2). It returns the true distance in
// every geometry and is kept as a cross-check for Hdist.
func (k Kernel) HdistDirect(h1, h2 Point) float64 {
	iv := k.Intval(h1, h2)
	switch {
	case k.g.Euclid():
		return math.Sqrt(iv)
	case k.g.Hyperbolic():
		return 2 * math.Asinh(math.Sqrt(iv)/2)
	default:
		return 2 * k.g.AsinAutoClamp(math.Sqrt(iv)/2)
	}
}

// Cpush0 returns the point at distance x from the origin along axis c.
func (k Kernel) Cpush0(c int, x float64) Point {
	var h Point
	h[k.dim] = k.g.CosAuto(x)
	h[c] = k.g.SinAuto(x)

	return h
}

// Xpush0 is Cpush0(0, x).
func (k Kernel) Xpush0(x float64) Point { return k.Cpush0(0, x) }

// Ypush0 is Cpush0(1, x).
func (k Kernel) Ypush0(x float64) Point { return k.Cpush0(1, x) }

// XSpinPush0 returns Spin(alpha)·Xpush0(x): the point at distance x in
// direction alpha.
func (k Kernel) XSpinPush0(alpha, x float64) Point {
	var h Point
	s := k.g.SinAuto(x)
	h[k.dim] = k.g.CosAuto(x)
	h[0] = s * math.Cos(alpha)
	h[1] = s * math.Sin(alpha)

	return h
}

// CircleLength is the circumference of a circle of radius r.
func (k Kernel) CircleLength(r float64) float64 { return k.g.CircleLength(r) }

// HypotAuto is the hypotenuse of a right triangle with legs x and y.
func (k Kernel) HypotAuto(x, y float64) float64 { return k.g.HypotAuto(x, y) }
