package hefty

import "errors"

var (
	// ErrDivisionByZero is returned by operations that divide by, or reduce
	// modulo, a zero value.
	ErrDivisionByZero = errors.New("hefty: division by zero")

	// ErrEmpty is returned when an Int is constructed from an empty byte
	// sequence. A valid representation is at least one byte long.
	ErrEmpty = errors.New("hefty: empty byte sequence")

	// ErrNotInvertible is returned by ModInverse when the value and modulus
	// are not coprime.
	ErrNotInvertible = errors.New("hefty: value has no modular inverse")
)
