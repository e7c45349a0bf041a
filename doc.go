// Package hufftrie implements a reusable Huffman coder.  A Codec is fitted
// once to a training corpus, then compresses and decompresses arbitrarily
// many messages drawn from the same alphabet.
//
// Construction is fully deterministic: trie candidates are ordered by
// frequency, then by the smallest symbol in their subtree, then by
// insertion order, so two Codecs fitted to the same corpus always produce
// identical encoding maps and identical compressed bytes.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftrie
