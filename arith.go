package hefty

// Add returns i+n.
//
// The result is as long as the longer operand. If the sum does not fit in
// that many bytes, the result grows by exactly one byte.
func (i Int) Add(n Int) Int {
	a, b := i.bytes(), n.bytes()
	if len(a) < len(b) {
		a, b = b, a
	}
	b = signExtend(b, len(a))

	out := make([]byte, len(a))
	var carry uint
	for k := len(a) - 1; k >= 0; k-- {
		carry = uint(a[k]) + uint(b[k]) + carry
		out[k] = byte(carry)
		carry >>= 8
	}

	ineg, nneg, rneg := i.IsNegative(), n.IsNegative(), out[0]&signBit != 0
	if !ineg && !nneg && rneg {
		// Overflowed into the sign bit; the carry out is always zero here.
		return Int{buf: out}.Extend(0)
	} else if ineg && nneg && !rneg {
		return Int{buf: out}.Extend(0xFF)
	}
	return Int{buf: out}
}

// Neg returns -i.
//
// The result is the same length as i, except when i is the most negative
// value of its length (0x80 followed by zero bytes), whose negation needs one
// more byte.
func (i Int) Neg() Int {
	src := i.bytes()

	grow := src[0] == signBit
	for k := 1; grow && k < len(src); k++ {
		if src[k] != 0 {
			grow = false
		}
	}

	offset := 0
	if grow {
		offset = 1
	}
	out := make([]byte, len(src)+offset)
	for k, b := range src {
		out[k+offset] = ^b
	}
	return Int{buf: out}.Add(one)
}

// Sub returns i-n.
func (i Int) Sub(n Int) Int {
	return i.Add(n.Neg())
}

func (i Int) Abs() Int {
	mag, _ := i.magnitude()
	return mag
}

func (i Int) Inc() Int { return i.Add(one) }

func (i Int) Dec() Int { return i.Sub(one) }

// magnitude returns |i| and whether i was negative. The result never aliases
// i's buffer.
func (i Int) magnitude() (mag Int, neg bool) {
	if i.IsNegative() {
		return i.Neg(), true
	}
	return Int{buf: i.Bytes()}, false
}
