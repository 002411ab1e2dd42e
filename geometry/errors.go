// SPDX-License-Identifier: MIT
// Package geometry: sentinel error set.
// Every message is prefixed with "geometry: ..." for easy grepping. New
// wraps these with the failing value; callers match them via errors.Is.

package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind is returned when the curvature class is not one of
	// Euclid, Hyperbolic or Sphere.
	ErrUnknownKind = errors.New("geometry: unknown curvature class")

	// ErrBadDim is returned when the ambient dimension is not 2 or 3.
	ErrBadDim = errors.New("geometry: ambient dimension must be 2 or 3")

	// ErrEllipticNeedsSphere is returned when elliptic (antipodal quotient)
	// mode is requested for a non-spherical geometry.
	ErrEllipticNeedsSphere = errors.New("geometry: elliptic mode requires spherical geometry")
)

// contextErrorf wraps err with an operation tag, preserving it for errors.Is.
func contextErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
