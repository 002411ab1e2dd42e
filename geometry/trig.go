// SPDX-License-Identifier: MIT

package geometry

// Curvature returns −1, 0 or +1 for hyperbolic, flat and spherical geometry.
// It parametrizes the push family: one formula, specialized by this
// constant, covers all three geometries.
func (c Context) Curvature() int { return c.model.curvature() }

// SinAuto is x, sinh x or sin x.
func (c Context) SinAuto(x float64) float64 { return c.model.sin(x) }

// CosAuto is 1, cosh x or cos x.
func (c Context) CosAuto(x float64) float64 { return c.model.cos(x) }

// TanAuto is x, tanh x or tan x.
func (c Context) TanAuto(x float64) float64 { return c.model.tan(x) }

// AtanAuto is x, atanh x or atan x.
func (c Context) AtanAuto(x float64) float64 { return c.model.atan(x) }

// Atan2Auto is y/x, atanh(y/x) or atan2(y, x).
// The flat branch does not guard x == 0.
func (c Context) Atan2Auto(y, x float64) float64 { return c.model.atan2(y, x) }

// AsinAuto is x, asinh x or asin x. The spherical branch returns NaN
// outside [−1, 1]; use AsinAutoClamp when the argument comes from
// floating-point arithmetic that may overshoot.
func (c Context) AsinAuto(x float64) float64 { return c.model.asin(x) }

// AsinAutoClamp behaves like AsinAuto, except that on spheres it returns
// ±π/2 outside [−1, 1] and 0 for NaN.
func (c Context) AsinAutoClamp(x float64) float64 { return c.model.asinClamp(x) }

// HypotAuto returns the hypotenuse of a right triangle with legs x and y:
// hypot(x, y), acosh(cosh x·cosh y) or acos(cos x·cos y).
func (c Context) HypotAuto(x, y float64) float64 { return c.model.hypot(x, y) }

// CircleLength returns the circumference of a circle of radius r:
// 2πr, 2π·sinh r or 2π·sin r.
func (c Context) CircleLength(r float64) float64 { return c.model.circleLength(r) }
