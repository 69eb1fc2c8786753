package hefty

// Mul returns the product of i and n.
//
// The magnitudes are multiplied using schoolbook long multiplication into a
// buffer of len(i)+len(n) bytes, and the sign is applied afterwards.
func (i Int) Mul(n Int) Int {
	if i.IsZero() || n.IsZero() {
		return Int{buf: []byte{0}}
	}

	a, aneg := i.magnitude()
	b, bneg := n.magnitude()
	x, y := a.buf, b.buf

	// Both magnitudes have a clear top bit, so the product always fits with
	// its own top bit clear.
	res := make([]byte, len(x)+len(y))
	for j := len(y) - 1; j >= 0; j-- {
		by := uint(y[j])
		if by == 0 {
			continue
		}
		var carry uint
		for k := len(x) - 1; k >= 0; k-- {
			sum := uint(x[k])*by + uint(res[k+j+1]) + carry
			res[k+j+1] = byte(sum)
			carry = sum >> 8
		}
		res[j] = byte(carry)
	}

	out := Int{buf: res}
	if aneg != bneg {
		out = out.Neg()
	}
	return out
}
