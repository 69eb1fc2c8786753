package hefty

// XGCD runs the extended Euclidean algorithm on i and n. It returns the
// greatest common divisor g, which is never negative, along with x and y
// such that:
//
//	i*x + n*y == g
//
// If n is zero, the result is (|i|, ±1, 0). If i is zero, the result is
// (|n|, 0, ±1). If both are zero, the result is (0, 1, 0).
func (i Int) XGCD(n Int) (g, x, y Int) {
	a, aneg := i.magnitude()
	b, bneg := n.magnitude()

	oldR, r := a.Trim(), b.Trim()
	oldS, s := Int{buf: []byte{1}}, Int{buf: []byte{0}}
	oldT, t := Int{buf: []byte{0}}, Int{buf: []byte{1}}

	for !r.IsZero() {
		// r is never zero here, so QuoRem cannot fail.
		q, rem, _ := oldR.QuoRem(r)
		q = q.Trim()

		oldR, r = r, rem.Trim()
		oldS, s = s, oldS.Sub(q.Mul(s)).Trim()
		oldT, t = t, oldT.Sub(q.Mul(t)).Trim()
	}

	g, x, y = oldR, oldS, oldT
	if aneg {
		x = x.Neg()
	}
	if bneg {
		y = y.Neg()
	}
	return g, x, y
}

// ModInverse returns x in the range [0, |m|) such that a*x ≡ 1 (mod m). It
// returns ErrDivisionByZero if m is zero and ErrNotInvertible if a and m are
// not coprime.
func ModInverse(a, m Int) (Int, error) {
	if m.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	mod := m.Abs()

	g, x, _ := a.XGCD(mod)
	if !g.Equal(one) {
		return Int{}, ErrNotInvertible
	}

	x, err := x.Rem(mod)
	if err != nil {
		return Int{}, err
	}
	if x.IsNegative() {
		x = x.Add(mod)
	}
	return x.Trim(), nil
}
