package hefty

// Lsh1 returns i<<1.
//
// If the top two bits of i differ, shifting would overwrite the sign bit, so
// the representation grows by one sign-extension byte first.
func (i Int) Lsh1() Int {
	src := i.bytes()
	if top := src[0] & 0xC0; top == 0x40 || top == 0x80 {
		src = i.Extend(i.signExt()).buf
	}

	out := make([]byte, len(src))
	var prev byte
	for k := len(src) - 1; k >= 0; k-- {
		out[k] = src[k]<<1 | prev
		prev = src[k] >> 7
	}
	return Int{buf: out}
}

// Rsh1 returns i>>1, rounding towards negative infinity like Go's >> on
// signed integers.
//
// A leading zero byte that only existed to keep the next byte's high bit
// clear is dropped, since the shift clears that bit.
func (i Int) Rsh1() Int {
	src := i.bytes()
	if len(src) > 1 && src[0] == 0 && src[1]&signBit != 0 {
		src = src[1:]
	}

	out := make([]byte, len(src))
	prev := i.signExt() & 1
	for k := 0; k < len(src); k++ {
		out[k] = src[k]>>1 | prev<<7
		prev = src[k] & 1
	}
	return Int{buf: out}
}

// Lsh returns i<<n.
func (i Int) Lsh(n uint) Int {
	out := Int{buf: i.Bytes()}
	for ; n > 0; n-- {
		out = out.Lsh1()
	}
	return out
}

// Rsh returns i>>n.
func (i Int) Rsh(n uint) Int {
	out := Int{buf: i.Bytes()}
	for ; n > 0; n-- {
		out = out.Rsh1()
	}
	return out
}
