package hefty

import (
	"fmt"
	"math/big"
	"strconv"
)

// Int is an arbitrary-precision signed integer stored as a big-endian
// two's-complement byte sequence. The most significant bit of the first byte
// is the sign bit.
//
// The zero value is 0. Values are immutable; every operation returns a new
// Int backed by its own buffer.
type Int struct {
	buf []byte
}

// FromBytes creates an Int from a big-endian two's-complement byte sequence.
// The input is copied. Leading sign-extension bytes are kept as-is.
func FromBytes(b []byte) (Int, error) {
	if len(b) == 0 {
		return Int{}, ErrEmpty
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	return Int{buf: buf}, nil
}

// MustFromBytes is like FromBytes but panics if b is empty.
func MustFromBytes(b []byte) Int {
	i, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return i
}

// FromInt64 creates the shortest Int that represents v.
func FromInt64(v int64) Int {
	var buf [8]byte
	u := uint64(v)
	for n := 7; n >= 0; n-- {
		buf[n] = byte(u)
		u >>= 8
	}
	return Int{buf: trimmed(buf[:])}
}

func FromInt(v int) Int { return FromInt64(int64(v)) }

// FromBigInt creates the shortest Int that represents v.
func FromBigInt(v *big.Int) Int {
	mag := v.Bytes()
	if len(mag) == 0 || mag[0]&signBit != 0 {
		mag = append([]byte{0}, mag...)
	}
	out := Int{buf: mag}
	if v.Sign() < 0 {
		out = out.Neg()
	}
	return out.Trim()
}

// bytes returns the backing buffer, treating the zero value as a single zero
// byte. The result must not be modified.
func (i Int) bytes() []byte {
	if len(i.buf) == 0 {
		return zeroBytes
	}
	return i.buf
}

// Bytes returns a copy of the big-endian two's-complement representation,
// including any redundant sign-extension bytes.
func (i Int) Bytes() []byte {
	src := i.bytes()
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

// Len returns the number of bytes in the representation.
func (i Int) Len() int { return len(i.bytes()) }

// Extend returns a copy of i one byte longer, with b prepended as the new
// most significant byte. Unless b is a sign-extension byte (0x00 for a
// non-negative value, 0xFF for a negative one) the value changes.
func (i Int) Extend(b byte) Int {
	src := i.bytes()
	out := make([]byte, len(src)+1)
	out[0] = b
	copy(out[1:], src)
	return Int{buf: out}
}

func (i Int) IsNegative() bool { return i.bytes()[0]&signBit != 0 }

// IsZero reports whether every byte is zero, regardless of length.
func (i Int) IsZero() bool {
	for _, b := range i.buf {
		if b != 0 {
			return false
		}
	}
	return true
}

func (i Int) Sign() int {
	if i.IsNegative() {
		return -1
	} else if i.IsZero() {
		return 0
	}
	return 1
}

// signExt returns the byte used to sign-extend i.
func (i Int) signExt() byte {
	if i.IsNegative() {
		return 0xFF
	}
	return 0
}

// Trim returns i in its shortest representation, stripping leading 0x00 or
// 0xFF bytes that only repeat the sign.
func (i Int) Trim() Int {
	src := trimmed(i.bytes())
	out := make([]byte, len(src))
	copy(out, src)
	return Int{buf: out}
}

// trimmed returns the shortest suffix of b with the same two's-complement
// value. It does not copy.
func trimmed(b []byte) []byte {
	for len(b) > 1 {
		if b[0] == 0 && b[1]&signBit == 0 {
			b = b[1:]
		} else if b[0] == 0xFF && b[1]&signBit != 0 {
			b = b[1:]
		} else {
			break
		}
	}
	return b
}

// signExtend returns b padded with sign-extension bytes to n bytes. b is
// returned unchanged if it is already at least n bytes long.
func signExtend(b []byte, n int) []byte {
	if len(b) >= n {
		return b
	}
	var pad byte
	if b[0]&signBit != 0 {
		pad = 0xFF
	}
	out := make([]byte, n)
	diff := n - len(b)
	for k := 0; k < diff; k++ {
		out[k] = pad
	}
	copy(out[diff:], b)
	return out
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
// Representation length does not affect the result.
func (i Int) Cmp(n Int) int {
	ineg, nneg := i.IsNegative(), n.IsNegative()
	if ineg && !nneg {
		return -1
	} else if !ineg && nneg {
		return 1
	}

	a, b := i.bytes(), n.bytes()
	if len(a) < len(b) {
		a = signExtend(a, len(b))
	} else if len(b) < len(a) {
		b = signExtend(b, len(a))
	}

	// With equal signs and equal lengths, two's-complement order matches
	// unsigned byte order.
	for k := range a {
		if a[k] < b[k] {
			return -1
		} else if a[k] > b[k] {
			return 1
		}
	}
	return 0
}

func (i Int) Equal(n Int) bool            { return i.Cmp(n) == 0 }
func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	mag, neg := i.magnitude()
	b.SetBytes(mag.buf)
	if neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsInt64 truncates the Int to fit in a int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i Int) AsInt64() int64 {
	src := signExtend(i.bytes(), 8)
	src = src[len(src)-8:]
	var u uint64
	for _, b := range src {
		u = u<<8 | uint64(b)
	}
	return int64(u)
}

// IsInt64 reports whether i can be represented as a int64.
func (i Int) IsInt64() bool {
	return len(trimmed(i.bytes())) <= 8
}

func (i Int) String() string {
	if i.IsInt64() {
		return strconv.FormatInt(i.AsInt64(), 10)
	}
	return i.AsBigInt().String()
}

func (i Int) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	i.AsBigInt().Format(s, c)
}

// MarshalBinary returns the raw two's-complement representation.
func (i Int) MarshalBinary() ([]byte, error) {
	return i.Bytes(), nil
}

func (i *Int) UnmarshalBinary(bts []byte) error {
	v, err := FromBytes(bts)
	if err != nil {
		return fmt.Errorf("hefty: unmarshal: %w", err)
	}
	*i = v
	return nil
}
