//go:build debugchecks

package btddod

import "fmt"

const debugChecks = true

func assertLen(name string, got, want int) {
	if got < want {
		panic(fmt.Errorf("%s: buffer length %d, need at least %d", name, got, want))
	}
}
