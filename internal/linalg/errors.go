package linalg

import "errors"

var (
	// ErrIndexOutOfRange is returned when a row, column or component index is outside [0,2].
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrZeroVector is returned when normalizing a vector of zero magnitude.
	ErrZeroVector = errors.New("cannot normalize zero vector")
	// ErrSingularMatrix is returned when inverting a matrix whose determinant is below SingularTolerance.
	ErrSingularMatrix = errors.New("matrix is not invertible (determinant is zero)")
	// ErrEigenDecomposition is returned when the eigen solver does not converge.
	ErrEigenDecomposition = errors.New("eigen decomposition failed")
)
