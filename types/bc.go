package types

import (
	"fmt"
	"strings"
)

// BCFLAG selects how a 1D domain end is closed.
type BCFLAG uint8

const (
	BC_None BCFLAG = iota
	BC_Dirichlet
	BC_Neuman
)

var BCNameMap = map[string]BCFLAG{
	"dirichlet": BC_Dirichlet,
	"fixed":     BC_Dirichlet,
	"neuman":    BC_Neuman,
	"neumann":   BC_Neuman,
	"zeroflux":  BC_Neuman,
}

func NewBCFlag(label string) (bc BCFLAG, err error) {
	var ok bool
	if bc, ok = BCNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown boundary condition \"%s\"", label)
	}
	return
}

func (bc BCFLAG) String() string {
	switch bc {
	case BC_None:
		return "BC_None"
	case BC_Dirichlet:
		return "BC_Dirichlet"
	case BC_Neuman:
		return "BC_Neuman"
	}
	return fmt.Sprintf("BCFLAG(%d)", bc)
}
