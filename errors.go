package bridgman

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrInvalidSymbol   = errors.New("bridgman: invalid symbol")
	ErrMissingProperty = errors.New("bridgman: missing property")
)

// InvalidSymbolError reports an operand outside the symbol enumeration.
// Operand is "z", "x" or "y" when the failing position is known.
type InvalidSymbolError struct {
	Operand string
	Name    string
}

func (e *InvalidSymbolError) Error() string {
	if e.Operand == "" {
		return fmt.Sprintf("bridgman: invalid symbol %q: must be one of P, T, v, rho, u, h, s, g, a", e.Name)
	}
	return fmt.Sprintf("bridgman: invalid symbol %s=%q: must be one of P, T, v, rho, u, h, s, g, a", e.Operand, e.Name)
}

func (e *InvalidSymbolError) Unwrap() error { return ErrInvalidSymbol }

// MissingPropertyError reports a coefficient consumed by a derivative while
// still unknown in the Properties record.
type MissingPropertyError struct {
	Field string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("bridgman: property %s is unknown", e.Field)
}

func (e *MissingPropertyError) Unwrap() error { return ErrMissingProperty }

type operand struct {
	name string
	s    Symbol
}

// checkOperands returns an *InvalidSymbolError for the first invalid operand.
func checkOperands(ops ...operand) error {
	for _, op := range ops {
		if !op.s.Valid() {
			return &InvalidSymbolError{Operand: op.name, Name: op.s.String()}
		}
	}
	return nil
}
