// Package core provides fundamental types and utilities shared by the
// visualizers. It has no terminal or Bubble Tea dependencies so the
// simulation code stays pure and testable.
package core

// Point is an integer cell position. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// In reports whether the point lies inside [0, w) x [0, h).
func (p Point) In(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Center returns the middle cell of a w x h area.
func Center(w, h int) Point {
	return Point{X: w / 2, Y: h / 2}
}

// Wrap maps v into [0, n) with toroidal semantics, so -1 becomes n-1.
// Returns 0 when n <= 0.
func Wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
