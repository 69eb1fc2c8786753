package hefty

// QuoRem returns the quotient q and remainder r of i divided by by. If by is
// zero, ErrDivisionByZero is returned.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// so r takes the sign of i.
func (i Int) QuoRem(by Int) (q, r Int, err error) {
	if by.IsZero() {
		return q, r, ErrDivisionByZero
	}

	dividend, ineg := i.magnitude()
	divisor, byneg := by.magnitude()

	// Line the divisor up with the dividend's highest set bit.
	var shift uint
	for !dividend.Sub(divisor).IsNegative() {
		divisor = divisor.Lsh1()
		shift++
	}

	q = Int{buf: []byte{0}}
	for ; shift > 0; shift-- {
		q = q.Lsh1()
		divisor = divisor.Rsh1()
		if diff := dividend.Sub(divisor); !diff.IsNegative() {
			dividend = diff
			q.buf[len(q.buf)-1] |= 1
		}
	}

	r = dividend
	if ineg != byneg {
		q = q.Neg()
	}
	if ineg {
		r = r.Neg()
	}
	return q, r, nil
}

// Quo returns the quotient i/by, truncated towards zero. If by is zero,
// ErrDivisionByZero is returned.
func (i Int) Quo(by Int) (q Int, err error) {
	q, _, err = i.QuoRem(by)
	return q, err
}

// Rem returns the remainder of i%by, which takes the sign of i. If by is zero,
// ErrDivisionByZero is returned.
func (i Int) Rem(by Int) (r Int, err error) {
	_, r, err = i.QuoRem(by)
	return r, err
}
