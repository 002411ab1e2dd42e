// Package matrix provides a small dynamically sized dense matrix used to
// hand transforms across package boundaries.
//
// The geometry kernel (package hyper) works on fixed-size array values for
// speed. Collaborators such as renderers, serializers or numeric tooling
// usually want a shape-carrying matrix instead; Dense is that exchange
// format, and hyper.Kernel.ToDense / FromDense convert in both directions.
//
// The package provides:
//
//   - Matrix, a minimal interface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation with bounds-checked accessors.
//   - Mul and Transpose for quick composition on the exchange side.
//   - Validators returning the sentinel errors of errors.go.
package matrix
