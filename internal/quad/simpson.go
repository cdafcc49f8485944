package quad

// Simpson integrates tabulated samples y over the (possibly nonuniform)
// grid x using composite Simpson weights on consecutive point triples.
// An odd number of intervals is closed out with a trapezoid on the last
// interval. Panics if the slices differ in length; returns 0 for fewer
// than two points.
func Simpson(x, y []float64) float64 {
	if len(x) != len(y) {
		panic("quad: x and y must have equal length")
	}

	n := len(x)
	if n < 2 {
		return 0
	}

	var total float64

	i := 0
	for ; i+2 < n; i += 2 {
		h0 := x[i+1] - x[i]
		h1 := x[i+2] - x[i+1]
		total += (h0 + h1) / 6 * (y[i]*(2-h1/h0) +
			y[i+1]*(h0+h1)*(h0+h1)/(h0*h1) +
			y[i+2]*(2-h0/h1))
	}

	if i == n-2 {
		total += 0.5 * (x[n-1] - x[n-2]) * (y[n-1] + y[n-2])
	}

	return total
}
