// Package calculator implements the calculator command, which prints a
// report of vector and matrix operations while logging its progress.
package calculator
