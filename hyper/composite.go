// SPDX-License-Identifier: MIT

package hyper

// Mid returns the midpoint of the segment h1–h2: the chord midpoint
// projected back onto the manifold.
func (k Kernel) Mid(h1, h2 Point) Point {
	return k.Normalize(h1.Add(h2))
}

// Midz is Mid for points that may sit at different z-levels (e.g. drawn at
// different heights): the sum is divided by the mean z-level instead of
// being projected onto the manifold. In flat geometry it is (h1+h2)/2.
func (k Kernel) Midz(h1, h2 Point) Point {
	h3 := h1.Add(h2)
	z := 2.0
	if !k.g.Euclid() {
		z = k.ZLevel(h3) * 2 / (k.ZLevel(h1) + k.ZLevel(h2))
	}
	for c := 0; c < k.mdim; c++ {
		h3[c] /= z
	}

	return h3
}

// Mid3 returns the centroid of three points projected onto the manifold.
func (k Kernel) Mid3(h1, h2, h3 Point) Point {
	s := h1.Add(h2).Add(h3)

	return k.Mid(s, s)
}

// MidAt returns the normalized affine combination h1·(1−v) + h2·v.
// It lies on the geodesic h1–h2 but is not at fraction v of its length.
func (k Kernel) MidAt(h1, h2 Point, v float64) Point {
	h := h1.Scale(1 - v).Add(h2.Scale(v))

	return k.Mid(h, h)
}

// MidAtActual returns the point at fraction v of the way from the origin
// to h, measured along the geodesic.
//
// NOTE: the length is taken with Dist0, so in flat geometry v scales the
// true distance, not the squared one Hdist0 reports: (2,0,1) at v = 0.5
// gives (1,0,1).
func (k Kernel) MidAtActual(h Point, v float64) Point {
	return k.Rspintox(h).Apply(k.Xpush0(k.Dist0(h) * v))
}
