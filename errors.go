package hufftrie

import (
	"fmt"
)

// UnknownSymbolError is returned by Compress when a message symbol was
// absent from the training corpus and therefore has no codeword.
type UnknownSymbolError struct {
	Symbol Symbol
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("hufftrie: symbol %q is not in the training alphabet", rune(e.Symbol))
}

// TruncatedStreamError is returned by Decompress when the bit stream runs
// out before the walk reaches the end-of-message leaf.  It means the input
// is corrupted, or was produced by a Codec trained on a different corpus.
type TruncatedStreamError struct {
	// BitsRead is the number of bits consumed before the stream ran out.
	BitsRead int
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("hufftrie: bit stream exhausted after %d bits without reaching the end-of-message symbol", e.BitsRead)
}
