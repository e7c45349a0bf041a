package hufftrie

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Codec is a reusable Huffman coder fitted to a single training corpus.
//
// The trie and the encoding map are built once, by New, and are read-only
// thereafter: concurrent Compress and Decompress calls on one Codec are
// safe without locking.
type Codec struct {
	root    *trieNode
	codes   map[Symbol]Code
	minSize byte
	maxSize byte
}

// New fits a Codec to the given training corpus.  The corpus may be empty;
// the reserved ETB symbol is always added to the alphabet, so construction
// never fails.
func New(corpus string) *Codec {
	freqs := countFrequencies(corpus)
	root := buildTrie(freqs)

	c := &Codec{
		root:  root,
		codes: make(map[Symbol]Code, len(freqs)),
	}
	walkTrie(root, func(symbol Symbol, path Code) {
		if len(c.codes) == 0 {
			c.minSize = path.Size
			c.maxSize = path.Size
		} else if c.minSize > path.Size {
			c.minSize = path.Size
		} else if c.maxSize < path.Size {
			c.maxSize = path.Size
		}
		c.codes[symbol] = path
	})

	assert.Assertf(len(c.codes) == len(freqs), "trie has %d leaves, frequency table has %d symbols", len(c.codes), len(freqs))
	_, found := c.codes[ETB]
	assert.Assertf(found, "trie has no leaf for the end-of-message symbol")
	return c
}

// EncodingMap returns a copy of the symbol-to-codeword mapping.  Mutating
// the returned map has no effect on the Codec.
func (c *Codec) EncodingMap() map[Symbol]Code {
	out := make(map[Symbol]Code, len(c.codes))
	maps.Copy(out, c.codes)
	return out
}

// Compress encodes the message as concatenated codewords, terminated by
// the ETB codeword and zero-padded to a byte boundary, packing bits into
// bytes most significant bit first.
//
// Every symbol in the message must exist in the encoding map; otherwise
// Compress returns a *UnknownSymbolError and no output.
func (c *Codec) Compress(message string) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	for _, r := range message {
		hc, found := c.codes[Symbol(r)]
		if !found {
			return nil, &UnknownSymbolError{Symbol: Symbol(r)}
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, err
		}
	}

	terminator := c.codes[ETB]
	if err := w.WriteBits(terminator.Bits, terminator.Size); err != nil {
		return nil, err
	}

	// Close pads the final partial byte with 0 bits.
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decodes a byte sequence produced by Compress on a Codec
// fitted to the same corpus.  It walks the trie one bit at a time, most
// significant bit of each byte first, emitting a symbol at each leaf and
// stopping at the end-of-message leaf; any bits after it are padding and
// are ignored.
//
// If the stream runs out before the end-of-message leaf is reached,
// Decompress returns a *TruncatedStreamError and no output.
func (c *Codec) Decompress(data []byte) (string, error) {
	// A single-leaf trie encodes only the empty message, with the empty
	// codeword.  No bits are consumed at all.
	if c.root.leaf() {
		return "", nil
	}

	r := bitio.NewReader(bytes.NewReader(data))
	var sb strings.Builder
	node := c.root
	bitsRead := 0

	for {
		bit, err := r.ReadBool()
		if err != nil {
			return "", &TruncatedStreamError{BitsRead: bitsRead}
		}
		bitsRead++

		if bit {
			node = node.one
		} else {
			node = node.zero
		}

		if node.leaf() {
			if node.symbol == ETB {
				return sb.String(), nil
			}
			sb.WriteRune(rune(node.symbol))
			node = c.root
		}
	}
}

// MinSize is the bit length of the shortest codeword.
func (c *Codec) MinSize() byte {
	return c.minSize
}

// MaxSize is the bit length of the longest codeword.
func (c *Codec) MaxSize() byte {
	return c.maxSize
}

// Dump writes a programmer-readable debugging dump of the Codec's current
// state to the given writer.
func (c *Codec) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codec{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", c.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", c.maxSize)
	symbols := maps.Keys(c.codes)
	slices.Sort(symbols)
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", rune(symbol), c.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the Dump output as a string.
func (c *Codec) DebugString() string {
	var sb strings.Builder
	_, _ = c.Dump(&sb)
	return sb.String()
}

// String returns a one-line description of this Codec.
func (c *Codec) String() string {
	return fmt.Sprintf("(Huffman codec with %d symbols, with code lengths of %d .. %d bits)", len(c.codes), c.minSize, c.maxSize)
}

var _ fmt.Stringer = (*Codec)(nil)
