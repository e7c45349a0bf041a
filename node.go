package hufftrie

// trieNode is one node of a Huffman trie.  A leaf holds exactly one symbol
// and its frequency; an internal node holds two children and the sum of its
// subtree's leaf frequencies.  A node never holds both a symbol and
// children.  The zero child extends a codeword with a 0 bit, the one child
// with a 1 bit.
type trieNode struct {
	symbol Symbol
	freq   uint64
	zero   *trieNode
	one    *trieNode
}

func (n *trieNode) leaf() bool {
	return n.zero == nil && n.one == nil
}
