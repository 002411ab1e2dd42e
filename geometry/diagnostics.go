// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"log"
)

// Diagnostics receives numeric warnings raised by kernel computations.
// Implementations must not block; the kernel continues with a substitute
// value whatever the implementation does (including panicking).
type Diagnostics interface {
	// SingularMatrix is called when an inversion hits a singular matrix.
	// m formats the offending matrix.
	SingularMatrix(m fmt.Stringer)
}

// LogDiagnostics writes warnings to a stdlib logger.
type LogDiagnostics struct {
	logger *log.Logger
}

// NewLogDiagnostics returns a LogDiagnostics writing to l, or to
// log.Default() when l is nil.
func NewLogDiagnostics(l *log.Logger) LogDiagnostics {
	if l == nil {
		l = log.Default()
	}

	return LogDiagnostics{logger: l}
}

// SingularMatrix implements Diagnostics.
func (d LogDiagnostics) SingularMatrix(m fmt.Stringer) {
	d.logger.Printf("Warning: inverting a singular matrix: %s", m)
}

// NopDiagnostics discards every warning.
type NopDiagnostics struct{}

// SingularMatrix implements Diagnostics.
func (NopDiagnostics) SingularMatrix(fmt.Stringer) {}

// DiagnosticsFunc adapts a plain function to Diagnostics.
type DiagnosticsFunc func(m fmt.Stringer)

// SingularMatrix implements Diagnostics.
func (f DiagnosticsFunc) SingularMatrix(m fmt.Stringer) { f(m) }

// ReportSingular forwards m to the configured collaborator. A panic raised by
// the collaborator is recovered so the caller can keep computing.
func (c Context) ReportSingular(m fmt.Stringer) {
	if c.diag == nil {
		return
	}
	defer func() { _ = recover() }()
	c.diag.SingularMatrix(m)
}
