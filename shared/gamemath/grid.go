package gamemath

// HopAllowed reports whether v may hop in the sign of step. Only the current
// position is checked against the bound in that direction, so the hop that
// lands past min is still allowed.
func HopAllowed(v, step, min, max float64) bool {
	if step < 0 {
		return v > min
	}
	return v < max
}

// SpansOverlap reports whether two equally wide horizontal spans starting at
// a and b overlap. Touching spans do not overlap.
func SpansOverlap(a, b, width float64) bool {
	return b+width > a && b < a+width
}

// Collides reports whether an obstacle at (ox, oy) hits a player at (px, py).
// Both must sit on exactly the same row.
func Collides(px, py, ox, oy, width float64) bool {
	return py == oy && SpansOverlap(px, ox, width)
}

// Advance moves x right by speed*dt while it is left of boundary. Once x has
// reached boundary it jumps back to resetX without moving that tick.
func Advance(x, speed, dt, boundary, resetX float64) float64 {
	if x < boundary {
		return x + speed*dt
	}
	return resetX
}
