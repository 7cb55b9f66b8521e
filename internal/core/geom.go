// Package core provides fundamental types and utilities for the arena.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + u.
func (v Vec2) Add(u Vec2) Vec2 { return Vec2{v.X + u.X, v.Y + u.Y} }

// Sub returns v - u.
func (v Vec2) Sub(u Vec2) Vec2 { return Vec2{v.X - u.X, v.Y - u.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged instead of dividing by zero.
func (v Vec2) Normalize() Vec2 {
	m := v.Len()
	if m == 0 {
		return Vec2{}
	}
	return Vec2{v.X / m, v.Y / m}
}

// DistSq returns the squared distance between two points.
func DistSq(a, b Vec2) float64 {
	return b.Sub(a).LenSq()
}

// Dist returns the distance between two points.
func Dist(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// AngleTo returns the direction from a to b in radians.
// atan2 is defined in every quadrant; a == b yields 0.
func AngleTo(a, b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// FromAngle returns the unit vector pointing along angle.
func FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// CirclesOverlap reports whether two circles, widened by margin, overlap:
// |a-b|² < (ra+rb+margin)². The sum is squared, never the distance rooted.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb, margin float64) bool {
	r := ra + rb + margin
	return DistSq(a, b) < r*r
}

// Bounds is the playable world rectangle anchored at the origin.
type Bounds struct {
	W, H float64
}

// Contains reports whether p lies inside [0, W] x [0, H].
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= b.W && p.Y >= 0 && p.Y <= b.H
}

// ClampCircle keeps a circle of the given radius fully inside the bounds.
func (b Bounds) ClampCircle(p Vec2, radius float64) Vec2 {
	return Vec2{
		X: ClampF(p.X, radius, b.W-radius),
		Y: ClampF(p.Y, radius, b.H-radius),
	}
}

// Center returns the middle of the bounds.
func (b Bounds) Center() Vec2 {
	return Vec2{b.W / 2, b.H / 2}
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
