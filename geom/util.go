package geom

// CircularIndex treats i as an index into an n-length circular buffer,
// wrapping negative values around, unlike the raw modulo operator.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Equal reports whether a and b are within tol of each other.
func Equal(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < tol
}
