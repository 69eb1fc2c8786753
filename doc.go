/*
Package hefty provides Int, an arbitrary-precision signed integer built on a
variable-length, big-endian two's-complement byte sequence.

Int is a value type; all operations return new values and never share
buffers with their operands.

Simple example:

	a := hefty.FromInt64(240)
	b := hefty.FromInt64(46)
	g, x, y := a.XGCD(b)
	fmt.Println(g, x, y)
	// Output: 2 -9 47

Int can be created from:

	FromBytes(b []byte) (Int, error)
	MustFromBytes(b []byte) Int
	FromInt64(v int64) Int
	FromInt(v int) Int
	FromBigInt(v *big.Int) Int
	RandInt(source RandSource, n int) Int

The representation of a result is at least as long as its longest operand
and grows by one byte when the result would otherwise overflow. Redundant
sign-extension bytes are allowed anywhere and never change the value; use
Trim to get the shortest form and Bytes to read it back out.

Division by zero is reported with ErrDivisionByZero rather than a panic.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler

*/
package hefty
