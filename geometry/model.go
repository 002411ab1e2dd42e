// SPDX-License-Identifier: MIT

package geometry

import "math"

// curvatureModel holds the per-kind formulas. One model is bound inside New,
// so the Context methods delegate without switching on Kind.
type curvatureModel interface {
	curvature() int
	sin(x float64) float64
	cos(x float64) float64
	tan(x float64) float64
	atan(x float64) float64
	atan2(y, x float64) float64
	asin(x float64) float64
	asinClamp(x float64) float64
	hypot(x, y float64) float64
	circleLength(r float64) float64
}

// modelFor returns the model of a known kind; ok is false otherwise.
func modelFor(k Kind) (m curvatureModel, ok bool) {
	switch k {
	case Euclid:
		return euclidModel{}, true
	case Hyperbolic:
		return hyperbolicModel{}, true
	case Sphere:
		return sphereModel{}, true
	default:
		return nil, false
	}
}

// euclidModel: the zero-curvature limit, where every "angle" is a length.
type euclidModel struct{}

func (euclidModel) curvature() int                 { return 0 }
func (euclidModel) sin(x float64) float64          { return x }
func (euclidModel) cos(float64) float64            { return 1 }
func (euclidModel) tan(x float64) float64          { return x }
func (euclidModel) atan(x float64) float64         { return x }
func (euclidModel) atan2(y, x float64) float64     { return y / x }
func (euclidModel) asin(x float64) float64         { return x }
func (euclidModel) asinClamp(x float64) float64    { return x }
func (euclidModel) hypot(x, y float64) float64     { return math.Hypot(x, y) }
func (euclidModel) circleLength(r float64) float64 { return 2 * math.Pi * r }

// hyperbolicModel uses the hyperbolic analogs.
type hyperbolicModel struct{}

func (hyperbolicModel) curvature() int              { return -1 }
func (hyperbolicModel) sin(x float64) float64       { return math.Sinh(x) }
func (hyperbolicModel) cos(x float64) float64       { return math.Cosh(x) }
func (hyperbolicModel) tan(x float64) float64       { return math.Tanh(x) }
func (hyperbolicModel) atan(x float64) float64      { return math.Atanh(x) }
func (hyperbolicModel) atan2(y, x float64) float64  { return math.Atanh(y / x) }
func (hyperbolicModel) asin(x float64) float64      { return math.Asinh(x) }
func (hyperbolicModel) asinClamp(x float64) float64 { return math.Asinh(x) }
func (hyperbolicModel) hypot(x, y float64) float64 {
	return math.Acosh(math.Cosh(x) * math.Cosh(y))
}
func (hyperbolicModel) circleLength(r float64) float64 { return 2 * math.Pi * math.Sinh(r) }

// sphereModel uses the circular functions.
type sphereModel struct{}

func (sphereModel) curvature() int             { return 1 }
func (sphereModel) sin(x float64) float64      { return math.Sin(x) }
func (sphereModel) cos(x float64) float64      { return math.Cos(x) }
func (sphereModel) tan(x float64) float64      { return math.Tan(x) }
func (sphereModel) atan(x float64) float64     { return math.Atan(x) }
func (sphereModel) atan2(y, x float64) float64 { return math.Atan2(y, x) }
func (sphereModel) asin(x float64) float64     { return math.Asin(x) }

// asinClamp survives round-off just outside [−1, 1].
func (sphereModel) asinClamp(x float64) float64 {
	switch {
	case x > 1:
		return math.Pi / 2
	case x < -1:
		return -math.Pi / 2
	case math.IsNaN(x):
		return 0
	default:
		return math.Asin(x)
	}
}

func (sphereModel) hypot(x, y float64) float64 {
	return math.Acos(math.Cos(x) * math.Cos(y))
}
func (sphereModel) circleLength(r float64) float64 { return 2 * math.Pi * math.Sin(r) }
