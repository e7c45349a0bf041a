package hufftrie

// Symbol represents one atomic character unit from the coding alphabet.
// Symbols are ordered by code point; that order is also the tie-break
// order used during trie construction.
type Symbol rune

// ETB is the reserved end-of-message symbol (ASCII End Transmission
// Block).  Its codeword terminates every compressed stream, and it always
// receives a frequency of at least 1 so that every trie contains its leaf.
const ETB = Symbol(0x17)
