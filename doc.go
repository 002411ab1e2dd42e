// Package hypergeom is a small kernel for points and isometries of the
// flat, hyperbolic and spherical plane and space, in one set of formulas.
//
// 🚀 What is hypergeom?
//
//	One homogeneous-coordinate representation for all three geometries:
//		• Points: Minkowski hyperboloid, unit sphere (optionally elliptic),
//		  or the flat affine embedding
//		• Isometries: rotations, pushes, parabolic maps, closed-form
//		  "move this point to the origin" transforms
//		• Distances, midpoints and drift repair (FixMatrix)
//		• Exact 3×3 and 4×4 determinant and inverse with a degraded,
//		  reported fallback for singular input
//
// Everything is organized under three subpackages:
//
//	geometry/  Context: kind, dimension, elliptic flag, tolerance,
//	           diagnostics, and curvature-aware trigonometry
//	hyper/     Point, Matrix and the Kernel operations
//	matrix/    Dense exchange matrix and validators for interop
//
// The curvature constant (0, −1, +1) turns a single push formula into a
// translation, a Lorentz boost or a rotation:
//
//	          flat        hyperbolic          spherical
//	push(1)   (1, 0, 1)   (sinh1, 0, cosh1)   (sin1, 0, cos1)
//
// See examples/ for a drift-and-repair walk-through.
package hypergeom
