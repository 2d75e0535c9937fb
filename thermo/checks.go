//go:build !debugchecks

package thermo

func assertLen(string, []float64, int) {}
