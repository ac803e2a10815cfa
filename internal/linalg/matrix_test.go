package linalg

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

var sequential = [3][3]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}

// TestMatrixConstruction checks the zero, identity and row constructors.
func TestMatrixConstruction(t *testing.T) {
	t.Parallel()

	var zero Matrix3
	require.Equal(t, Zero(), zero)

	identity := Identity()

	for i := range 3 {
		for j := range 3 {
			got, err := zero.At(i, j)
			require.NoError(t, err)
			require.Equal(t, 0.0, got)

			got, err = identity.At(i, j)
			require.NoError(t, err)

			if i == j {
				require.Equal(t, 1.0, got)
			} else {
				require.Equal(t, 0.0, got)
			}
		}
	}

	require.Equal(t, sequential, NewMatrix3(sequential).Rows())
}

// TestMatrixIndexOutOfRange ensures the indexer rejects anything outside [0,2]x[0,2].
func TestMatrixIndexOutOfRange(t *testing.T) {
	t.Parallel()

	m := NewMatrix3(sequential)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}, {-1, -1}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, ErrIndexOutOfRange, idx)

		_, err = m.With(idx[0], idx[1], 1)
		require.ErrorIs(t, err, ErrIndexOutOfRange, idx)
	}

	updated, err := m.With(1, 2, 42)
	require.NoError(t, err)

	got, err := updated.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 42.0, got)

	// The receiver keeps its original value.
	got, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, got)
}

// TestMatrixOperations covers element-wise arithmetic and products.
func TestMatrixOperations(t *testing.T) {
	t.Parallel()

	m1 := NewMatrix3(sequential)
	m2 := Identity().Scale(2)

	sum := m1.Add(m2)
	require.Equal(t, [3][3]float64{{3, 2, 3}, {4, 7, 6}, {7, 8, 11}}, sum.Rows())
	require.Equal(t, m1, sum.Sub(m2))

	scaled := m1.Scale(2)
	require.Equal(t, [3][3]float64{{2, 4, 6}, {8, 10, 12}, {14, 16, 18}}, scaled.Rows())

	require.Equal(t, scaled, m1.Mul(m2))
	require.Equal(t, [3][3]float64{{30, 36, 42}, {66, 81, 96}, {102, 126, 150}}, m1.Mul(m1).Rows())

	require.Equal(t, NewVector3(6, 15, 24), m1.MulVec(NewVector3(1, 1, 1)))
	require.Equal(t, NewVector3(14, 32, 50), m1.MulVec(NewVector3(1, 2, 3)))
}

// TestMatrixTranspose checks the transpose element by element.
func TestMatrixTranspose(t *testing.T) {
	t.Parallel()

	tr := NewMatrix3(sequential).Transpose()
	require.Equal(t, [3][3]float64{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, tr.Rows())
	require.Equal(t, NewMatrix3(sequential), tr.Transpose())
}

// TestMatrixDeterminantAndInverse verifies det, inverse round trip and the singular guard.
func TestMatrixDeterminantAndInverse(t *testing.T) {
	t.Parallel()

	m := Identity().Scale(2)
	require.InDelta(t, 8.0, m.Determinant(), tolerance)

	inv, err := m.Inverse()
	require.NoError(t, err)
	require.True(t, m.Mul(inv).ApproxEqual(Identity(), tolerance))

	general := NewMatrix3([3][3]float64{{4, 7, 2}, {3, 6, 1}, {2, 5, 3}})
	require.InDelta(t, 9.0, general.Determinant(), 1e-9)

	inv, err = general.Inverse()
	require.NoError(t, err)

	product := general.Mul(inv)
	for i := range 3 {
		for j := range 3 {
			want := 0.0
			if i == j {
				want = 1.0
			}

			got, err := product.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want, got, tolerance)
		}
	}

	singular := NewMatrix3(sequential)
	require.InDelta(t, 0.0, singular.Determinant(), 1e-9)

	_, err = singular.Inverse()
	require.ErrorIs(t, err, ErrSingularMatrix)

	_, err = Zero().Inverse()
	require.ErrorIs(t, err, ErrSingularMatrix)
}

// TestMatrixTraceAndNorm checks the scalar reductions.
func TestMatrixTraceAndNorm(t *testing.T) {
	t.Parallel()

	m := NewMatrix3(sequential)
	require.InDelta(t, 15.0, m.Trace(), tolerance)
	require.InDelta(t, 16.881943016134134, m.Norm(), 1e-12)
	require.InDelta(t, 3.0, Identity().Trace(), tolerance)
}

// TestMatrixEigenvalues checks real spectra and that complex ones keep their real parts.
func TestMatrixEigenvalues(t *testing.T) {
	t.Parallel()

	diag := NewMatrix3([3][3]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 5}})

	values, err := diag.Eigenvalues()
	require.NoError(t, err)

	sorted := values[:]
	slices.Sort(sorted)

	for i, want := range []float64{2, 3, 5} {
		require.InDelta(t, want, sorted[i], tolerance)
	}

	// Rotation by 90 degrees around z: eigenvalues 1, i, -i.
	rotation := NewMatrix3([3][3]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}})

	complexValues, err := rotation.ComplexEigenvalues()
	require.NoError(t, err)

	var imaginary int
	for _, v := range complexValues {
		if imag(v) != 0 {
			imaginary++
			require.InDelta(t, 1.0, abs(imag(v)), tolerance)
		}
	}

	require.Equal(t, 2, imaginary)

	values, err = rotation.Eigenvalues()
	require.NoError(t, err)

	var sum float64
	for _, v := range values {
		sum += v
	}

	// The trace equals the sum of eigenvalues; imaginary parts cancel.
	require.InDelta(t, rotation.Trace(), sum, 1e-9)
}

// TestMatrixRandom ensures entries stay within [-1, 1] and seeded sources are reproducible.
func TestMatrixRandom(t *testing.T) {
	t.Parallel()

	for _, row := range Random().Rows() {
		for _, v := range row {
			require.GreaterOrEqual(t, v, -1.0)
			require.LessOrEqual(t, v, 1.0)
		}
	}

	a := RandomFrom(rand.NewPCG(1, 2))
	b := RandomFrom(rand.NewPCG(1, 2))
	require.Equal(t, a, b)
	require.NotEqual(t, Zero(), a)
}

// TestMatrixString verifies the fixed-width rendering.
func TestMatrixString(t *testing.T) {
	t.Parallel()

	want := "Matrix3x3:\n" +
		"  [   1.000,    2.000,    3.000]\n" +
		"  [   4.000,    5.000,    6.000]\n" +
		"  [   7.000,    8.000,    9.000]\n"
	require.Equal(t, want, NewMatrix3(sequential).String())
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
