// SPDX-License-Identifier: MIT

// Package hyper is the point/isometry arithmetic kernel for flat,
// hyperbolic and spherical geometry.
//
// 🚀 Representation
//
//	Points are homogeneous vectors (Point) and transforms are homogeneous
//	matrices (Matrix). Hyperbolic points live on the upper sheet of the
//	hyperboloid x²+y²[+z²]−w² = −1 (the Minkowski model), spherical points
//	on the unit sphere, flat points on the affine plane w = 1. Every
//	isometry T preserves the form G = diag(sig(0), …, sig(Dim)):
//
//	    Tᵗ·G·T = G
//
//	Storage is always 4 wide; a 2D geometry uses the top-left 3×3 block
//	and keeps an identity pad, so Mul and Apply need no dimension.
//
// ✨ Key features:
//   - point algebra: Normalize, ZLevel, Intval, Hdist0, Hdist
//   - elementary isometries: Spin, Cpush (one formula for all curvatures),
//     Eupush, Parabolic1, …
//   - point-to-origin maps: Spintox, Pushxto0, Gpushxto0 (closed form)
//   - FixMatrix to remove the drift of long products
//   - Det / Inverse with a 3×3 closed form and 4×4 pivoted elimination;
//     singular matrices degrade to the identity (see InverseChecked)
//   - composites: Mid, Midz, Mid3, MidAt, MidAtActual
//   - Dense interop: ToDense/FromDense, and ApplyDense for point batches
//
// ⚙️ Usage:
//
//	k := hyper.New(geometry.MustNew(geometry.WithKind(geometry.Hyperbolic)))
//	T := k.Xpush(1).Mul(k.Spin(math.Pi / 3))
//	p := T.Apply(k.Origin())
//	fmt.Println(k.Hdist0(p)) // 1
//
// The kernel keeps no state besides its geometry.Context; every method is
// a pure function of its arguments.
package hyper
