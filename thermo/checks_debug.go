//go:build debugchecks

package thermo

import "fmt"

func assertLen(name string, buf []float64, want int) {
	if len(buf) < want {
		panic(fmt.Errorf("%s: length %d, need at least %d species", name, len(buf), want))
	}
}
