package utils

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// Linspace returns N points evenly spaced over [a, b], endpoints included.
func Linspace(a, b float64, N int) (v []float64) {
	if N < 1 {
		return []float64{}
	}
	v = make([]float64, N)
	if N == 1 {
		v[0] = a
		return
	}
	dx := (b - a) / float64(N-1)
	for i := range v {
		v[i] = a + float64(i)*dx
	}
	v[N-1] = b
	return
}
