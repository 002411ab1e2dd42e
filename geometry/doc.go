// SPDX-License-Identifier: MIT

// Package geometry describes the active curved space: which curvature class
// is in effect, whether antipodal points are identified, and how many
// ambient dimensions the space has.
//
// 🚀 What is a Context?
//
//	A Context is an immutable configuration value. It is created once with
//	New and then handed to every computation that needs it (see package
//	hyper). Nothing in this module reads geometry from global state, so
//	several geometries can be used side by side, e.g. in parallel tests.
//
// ✨ Key features:
//   - three curvature classes: Euclid (flat), Hyperbolic, Sphere
//   - elliptic (quotient) mode for spheres: h and −h are the same point
//   - 2D or 3D ambient space (3×3 or 4×4 homogeneous matrices)
//   - curvature-parametrized trigonometry: SinAuto, CosAuto, TanAuto,
//     AtanAuto, Atan2Auto, AsinAuto, AsinAutoClamp, HypotAuto, CircleLength
//   - pluggable Diagnostics collaborator for numeric warnings
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hypergeom/geometry"
//
//	g, err := geometry.New(
//	    geometry.WithKind(geometry.Hyperbolic),
//	    geometry.WithDim(3),
//	)
//	if err != nil {
//	    // handle ErrUnknownKind / ErrBadDim / ErrEllipticNeedsSphere
//	}
//	fmt.Println(g.SinAuto(1)) // sinh(1)
//
// The per-kind formulas are bound once inside New (a small strategy
// object), so the trigonometric methods never switch on the kind.
package geometry
