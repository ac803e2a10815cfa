package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3 is an immutable vector of three float64 components.
// The zero value is the zero vector.
type Vector3 struct {
	v r3.Vec
}

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{v: r3.Vec{X: x, Y: y, Z: z}}
}

// X returns the first component.
func (a Vector3) X() float64 { return a.v.X }

// Y returns the second component.
func (a Vector3) Y() float64 { return a.v.Y }

// Z returns the third component.
func (a Vector3) Z() float64 { return a.v.Z }

// At returns component i, where 0 is x, 1 is y and 2 is z.
func (a Vector3) At(i int) (float64, error) {
	switch i {
	case 0:
		return a.v.X, nil
	case 1:
		return a.v.Y, nil
	case 2:
		return a.v.Z, nil
	default:
		return 0, fmt.Errorf("%w: component %d", ErrIndexOutOfRange, i)
	}
}

// Components returns x, y and z as an array.
func (a Vector3) Components() [3]float64 {
	return [3]float64{a.v.X, a.v.Y, a.v.Z}
}

// Add returns a + b.
func (a Vector3) Add(b Vector3) Vector3 {
	return Vector3{v: r3.Add(a.v, b.v)}
}

// Sub returns a - b.
func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{v: r3.Sub(a.v, b.v)}
}

// Scale returns a multiplied by f.
func (a Vector3) Scale(f float64) Vector3 {
	return Vector3{v: r3.Scale(f, a.v)}
}

// Magnitude returns the Euclidean norm.
func (a Vector3) Magnitude() float64 {
	return r3.Norm(a.v)
}

// SquaredNorm returns the squared Euclidean norm.
func (a Vector3) SquaredNorm() float64 {
	return r3.Norm2(a.v)
}

// Normalized returns the unit vector pointing along a.
func (a Vector3) Normalized() (Vector3, error) {
	if r3.Norm(a.v) == 0 {
		return Vector3{}, ErrZeroVector
	}

	return Vector3{v: r3.Unit(a.v)}, nil
}

// Dot returns the dot product of a and b.
func (a Vector3) Dot(b Vector3) float64 {
	return r3.Dot(a.v, b.v)
}

// Cross returns the cross product a × b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{v: r3.Cross(a.v, b.v)}
}

// CwiseProduct returns the component-wise product of a and b.
func (a Vector3) CwiseProduct(b Vector3) Vector3 {
	var dst mat.VecDense
	dst.MulElemVec(a.dense(), b.dense())

	return vectorFromDense(&dst)
}

// String renders the vector as Vector3(x, y, z).
func (a Vector3) String() string {
	return fmt.Sprintf("Vector3(%.6g, %.6g, %.6g)", a.v.X, a.v.Y, a.v.Z)
}

// dense returns a gonum column vector holding a copy of the components.
func (a Vector3) dense() *mat.VecDense {
	return mat.NewVecDense(3, []float64{a.v.X, a.v.Y, a.v.Z})
}

func vectorFromDense(v mat.Vector) Vector3 {
	return NewVector3(v.AtVec(0), v.AtVec(1), v.AtVec(2))
}

// ApproxEqual reports whether every component of a and b differs by at most tol.
func (a Vector3) ApproxEqual(b Vector3, tol float64) bool {
	return mat.EqualApprox(a.dense(), b.dense(), tol)
}
