// Package tridiag solves tridiagonal linear systems with the Thomas
// algorithm.
//
// A Matrix stores an N×N tridiagonal matrix as three diagonals: A (sub),
// B (main) and C (super), each of length N. A[0] and C[N-1] lie outside the
// matrix and are ignored.
//
// The solver does not pivot. The matrix must not produce a zero pivot
// (B[i] - C'[i-1]*A[i] != 0 for all i); diagonally dominant matrices, such
// as the ones produced by natural cubic splines, always qualify. When the
// precondition is violated [Matrix.Solve] returns non-finite values and
// [Matrix.SolveChecked] returns [ErrSingular].
package tridiag
