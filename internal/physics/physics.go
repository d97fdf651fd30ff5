// Package physics provides collision detection and distance utilities.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// RectsOverlap checks if two axis-aligned rectangles overlap.
// Rectangles are given by their center position and full size.
// Touching edges do not count as an overlap.
func RectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return math.Abs(x1-x2)*2 < w1+w2 && math.Abs(y1-y2)*2 < h1+h2
}

// EnclosingRadius returns the radius of the smallest circle centered on a
// w-by-h rectangle that contains all of it.
func EnclosingRadius(w, h float64) float64 {
	return math.Hypot(w, h) / 2
}

// CollideCircleRatio checks whether the enclosing circles of two rectangles,
// both scaled by ratio, overlap. A ratio below 1 shrinks the circles toward
// the sprite body so near-misses at the corners don't register.
func CollideCircleRatio(ratio, x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	r1 := EnclosingRadius(w1, h1) * ratio
	r2 := EnclosingRadius(w2, h2) * ratio
	return CirclesOverlap(x1, y1, r1, x2, y2, r2)
}
