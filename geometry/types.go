// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// Kind names the curvature class of the active geometry.
//
//   - Euclid:     zero curvature, affine embedding (x, y, [z,] 1).
//   - Hyperbolic: curvature −1, upper sheet of the hyperboloid.
//   - Sphere:     curvature +1, unit sphere.
type Kind int

const (
	// Euclid is the flat geometry.
	Euclid Kind = iota

	// Hyperbolic is the negatively curved geometry (Minkowski model).
	Hyperbolic

	// Sphere is the positively curved geometry.
	Sphere
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Euclid:
		return "euclid"
	case Hyperbolic:
		return "hyperbolic"
	case Sphere:
		return "sphere"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Supported ambient dimensions.
const (
	// Dim2 is the 2D ambient space (3×3 homogeneous matrices).
	Dim2 = 2

	// Dim3 is the 3D ambient space (4×4 homogeneous matrices).
	Dim3 = 3

	// MaxMDim is the largest homogeneous dimension (Dim3 + 1).
	MaxMDim = Dim3 + 1
)
