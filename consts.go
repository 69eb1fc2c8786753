package hefty

const signBit = 0x80

var (
	zeroBytes = []byte{0}

	one = Int{buf: []byte{1}}
)
