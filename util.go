package hefty

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a non-negative random Int of n bytes from an external
// source. The top bit is always clear. If n < 1, RandInt returns zero.
func RandInt(source RandSource, n int) Int {
	if n < 1 {
		return Int{buf: []byte{0}}
	}
	out := make([]byte, n)
	var v uint64
	for k := range out {
		if k%8 == 0 {
			v = source.Uint64()
		}
		out[k] = byte(v)
		v >>= 8
	}
	out[0] &^= signBit
	return Int{buf: out}
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Int) Int {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func Larger(a, b Int) Int {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func Smaller(a, b Int) Int {
	if b.LessThan(a) {
		return b
	}
	return a
}
