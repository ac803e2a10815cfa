// Package linalg provides fixed-size 3D vector and 3x3 matrix values whose
// arithmetic is delegated to gonum.
//
// Both types are immutable: every operation returns a new value. Operations
// with numeric preconditions (indexing, normalization, inversion and
// eigen-decomposition) return errors instead of panicking.
package linalg
