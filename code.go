package hufftrie

import (
	"fmt"
	"strconv"
)

// Code represents a codeword: the sequence of bits on the path from the
// trie root to a symbol's leaf, where a 0 bit selects the zero child and a
// 1 bit selects the one child.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low-order bits is the first bit of the codeword.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// appendBit returns the Code extended by one trailing bit.
func (hc Code) appendBit(bit uint64) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | bit}
}
