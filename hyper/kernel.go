// SPDX-License-Identifier: MIT

package hyper

import "github.com/katalvlaran/hypergeom/geometry"

// Degeneracy threshold shared by the rotation and origin-push helpers:
// below it a norm is treated as zero and the identity is returned.
const degenerateNorm = 1e-12

// Kernel binds a geometry.Context to the point and matrix operations.
// It is a small immutable value; copy it freely.
type Kernel struct {
	g    geometry.Context
	dim  int // ambient dimension, also the index of the homogeneous coordinate
	mdim int // dim + 1
	curv float64
}

// New returns the kernel for g.
func New(g geometry.Context) Kernel {
	return Kernel{
		g:    g,
		dim:  g.Dim(),
		mdim: g.MDim(),
		curv: float64(g.Curvature()),
	}
}

// Geometry returns the bound context.
func (k Kernel) Geometry() geometry.Context { return k.g }

// Dim returns the ambient dimension.
func (k Kernel) Dim() int { return k.dim }

// MDim returns the homogeneous dimension.
func (k Kernel) MDim() int { return k.mdim }

// Origin returns the canonical origin C0: zero everywhere except the
// homogeneous coordinate, which is 1.
func (k Kernel) Origin() Point {
	var h Point
	h[k.dim] = 1

	return h
}

// Center returns Hypc, the center of the sphere/hyperboloid (the zero
// vector). Intval(h, Center()) evaluates the quadratic form at h.
func (k Kernel) Center() Point { return Point{} }

// TC0 returns T·C0, the image of the origin (column Dim of T).
func (k Kernel) TC0(T Matrix) Point { return T.Column(k.dim) }

// sig is the signature weight of axis i as a float.
func (k Kernel) sig(i int) float64 { return k.g.Sig(i) }
