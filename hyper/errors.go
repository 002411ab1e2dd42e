// SPDX-License-Identifier: MIT
// Package hyper: sentinel errors.
// Kernel arithmetic never fails; these values only describe degraded
// results (Inversion.Err) and interop failures (dense.go), and are matched
// with errors.Is.

package hyper

import (
	"errors"
	"fmt"
)

// ErrSingular marks an inversion that met a zero determinant or a zero pivot
// and was replaced by the identity.
var ErrSingular = errors.New("hyper: singular matrix")

// Operation tags for error wrapping.
const (
	opToDense        = "ToDense"
	opFromDense      = "FromDense"
	opPointToDense   = "PointToDense"
	opPointFromDense = "PointFromDense"
	opApplyDense     = "ApplyDense"
)

// hyperErrorf wraps err with an operation tag; err must be non-nil.
func hyperErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
