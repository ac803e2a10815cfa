package linalg

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SingularTolerance is the smallest determinant magnitude Inverse accepts.
const SingularTolerance = 1e-10

// Matrix3 is an immutable 3x3 matrix stored in row-major order.
// The zero value is the zero matrix.
type Matrix3 struct {
	data [9]float64
}

// NewMatrix3 builds a matrix from its rows.
func NewMatrix3(rows [3][3]float64) Matrix3 {
	var m Matrix3

	for i, row := range rows {
		copy(m.data[i*3:i*3+3], row[:])
	}

	return m
}

// Identity returns the 3x3 identity matrix.
func Identity() Matrix3 {
	return matrixFromDense(mat.NewDiagDense(3, []float64{1, 1, 1}))
}

// Zero returns the 3x3 zero matrix.
func Zero() Matrix3 {
	return Matrix3{}
}

// Random returns a matrix with entries drawn uniformly from [-1, 1]
// using the global random source.
func Random() Matrix3 {
	return RandomFrom(nil)
}

// RandomFrom is Random with an explicit source. A nil src uses the global source.
func RandomFrom(src rand.Source) Matrix3 {
	dist := distuv.Uniform{Min: -1, Max: 1, Src: src}

	var m Matrix3
	for i := range m.data {
		m.data[i] = dist.Rand()
	}

	return m
}

// At returns the element at (row, col).
func (m Matrix3) At(row, col int) (float64, error) {
	if err := checkIndex(row, col); err != nil {
		return 0, err
	}

	return m.data[row*3+col], nil
}

// With returns a copy of m with (row, col) set to v.
func (m Matrix3) With(row, col int, v float64) (Matrix3, error) {
	if err := checkIndex(row, col); err != nil {
		return Matrix3{}, err
	}

	m.data[row*3+col] = v

	return m, nil
}

// Rows returns the elements as nested arrays.
func (m Matrix3) Rows() [3][3]float64 {
	var rows [3][3]float64
	for i := range rows {
		copy(rows[i][:], m.data[i*3:i*3+3])
	}

	return rows
}

// Add returns m + b.
func (m Matrix3) Add(b Matrix3) Matrix3 {
	var dst mat.Dense
	dst.Add(m.dense(), b.dense())

	return matrixFromDense(&dst)
}

// Sub returns m - b.
func (m Matrix3) Sub(b Matrix3) Matrix3 {
	var dst mat.Dense
	dst.Sub(m.dense(), b.dense())

	return matrixFromDense(&dst)
}

// Mul returns the matrix product m·b.
func (m Matrix3) Mul(b Matrix3) Matrix3 {
	var dst mat.Dense
	dst.Mul(m.dense(), b.dense())

	return matrixFromDense(&dst)
}

// MulVec returns the matrix-vector product m·v.
func (m Matrix3) MulVec(v Vector3) Vector3 {
	var dst mat.VecDense
	dst.MulVec(m.dense(), v.dense())

	return vectorFromDense(&dst)
}

// Scale returns m multiplied by f.
func (m Matrix3) Scale(f float64) Matrix3 {
	var dst mat.Dense
	dst.Scale(f, m.dense())

	return matrixFromDense(&dst)
}

// Transpose returns the transpose of m.
func (m Matrix3) Transpose() Matrix3 {
	return matrixFromDense(m.dense().T())
}

// Determinant returns det(m).
func (m Matrix3) Determinant() float64 {
	return mat.Det(m.dense())
}

// Inverse returns m⁻¹, or ErrSingularMatrix when |det(m)| < SingularTolerance.
func (m Matrix3) Inverse() (Matrix3, error) {
	a := m.dense()
	if math.Abs(mat.Det(a)) < SingularTolerance {
		return Matrix3{}, ErrSingularMatrix
	}

	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		// A condition warning still carries a usable inverse.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return Matrix3{}, fmt.Errorf("%w: %w", ErrSingularMatrix, err)
		}
	}

	return matrixFromDense(&inv), nil
}

// Trace returns the sum of the diagonal.
func (m Matrix3) Trace() float64 {
	return mat.Trace(m.dense())
}

// Norm returns the Frobenius norm.
func (m Matrix3) Norm() float64 {
	return mat.Norm(m.dense(), 2)
}

// ComplexEigenvalues returns the eigenvalues of m in the order the solver reports them.
func (m Matrix3) ComplexEigenvalues() ([3]complex128, error) {
	var (
		eig    mat.Eigen
		values [3]complex128
	)

	if ok := eig.Factorize(m.dense(), mat.EigenNone); !ok {
		return values, ErrEigenDecomposition
	}

	copy(values[:], eig.Values(nil))

	return values, nil
}

// Eigenvalues returns the real parts of the eigenvalues of m.
// Imaginary parts are dropped; use ComplexEigenvalues when they matter.
func (m Matrix3) Eigenvalues() ([3]float64, error) {
	var real3 [3]float64

	values, err := m.ComplexEigenvalues()
	if err != nil {
		return real3, err
	}

	for i, v := range values {
		real3[i] = real(v)
	}

	return real3, nil
}

// ApproxEqual reports whether every element of m and b differs by at most tol.
func (m Matrix3) ApproxEqual(b Matrix3, tol float64) bool {
	return mat.EqualApprox(m.dense(), b.dense(), tol)
}

// String renders the matrix one bracketed row per line.
func (m Matrix3) String() string {
	var sb strings.Builder

	sb.WriteString("Matrix3x3:\n")

	for i := range 3 {
		fmt.Fprintf(&sb, "  [%8.3f, %8.3f, %8.3f]\n", m.data[i*3], m.data[i*3+1], m.data[i*3+2])
	}

	return sb.String()
}

// dense returns a gonum matrix holding a copy of the elements.
func (m Matrix3) dense() *mat.Dense {
	data := m.data

	return mat.NewDense(3, 3, data[:])
}

func matrixFromDense(d mat.Matrix) Matrix3 {
	var m Matrix3
	for i := range 3 {
		for j := range 3 {
			m.data[i*3+j] = d.At(i, j)
		}
	}

	return m
}

func checkIndex(row, col int) error {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return fmt.Errorf("%w: (%d, %d)", ErrIndexOutOfRange, row, col)
	}

	return nil
}
