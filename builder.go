package hufftrie

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// countFrequencies tallies per-symbol occurrence counts over the training
// corpus.  ETB always receives one extra count, so the table is never
// empty and the end-of-message leaf is present in every trie.
func countFrequencies(corpus string) map[Symbol]uint64 {
	freqs := make(map[Symbol]uint64)
	for _, r := range corpus {
		freqs[Symbol(r)]++
	}
	freqs[ETB]++
	return freqs
}

// buildTrie constructs the Huffman trie for the given frequency table by
// repeatedly merging the two lowest-priority candidates until one root
// remains.  The first candidate extracted becomes the zero child and the
// second the one child.
//
// Priority is (frequency, tiebreak, seq) ascending.  A leaf's tiebreak key
// is its own symbol; a merged node's tiebreak key is the minimum of its
// children's keys, which makes it the smallest symbol anywhere in the
// merged subtree.  seq is an insertion counter, so candidates that tie on
// both frequency and tiebreak key are extracted in insertion order.
func buildTrie(freqs map[Symbol]uint64) *trieNode {
	symbols := maps.Keys(freqs)
	slices.Sort(symbols)

	list := make([]candidate, 0, len(symbols))
	for index, symbol := range symbols {
		freq := freqs[symbol]
		list = append(list, candidate{
			freq:     freq,
			tiebreak: symbol,
			seq:      uint64(index),
			node:     &trieNode{symbol: symbol, freq: freq},
		})
	}

	h := candidateHeap{list}
	h.Init()
	seq := uint64(h.Len())

	for h.Len() > 1 {
		zero := heap.Pop(&h).(candidate)
		one := heap.Pop(&h).(candidate)

		tiebreak := zero.tiebreak
		if one.tiebreak < tiebreak {
			tiebreak = one.tiebreak
		}

		heap.Push(&h, candidate{
			freq:     zero.freq + one.freq,
			tiebreak: tiebreak,
			seq:      seq,
			node: &trieNode{
				freq: zero.freq + one.freq,
				zero: zero.node,
				one:  one.node,
			},
		})
		seq++
	}

	root := heap.Pop(&h).(candidate)
	assert.Assertf(h.Len() == 0, "trie construction left %d candidates behind", h.Len())
	return root.node
}

// walkTrie visits every leaf of the trie, depth first, zero child before
// one child, passing each leaf's symbol and the accumulated root-to-leaf
// path.  The walk uses an explicit stack so that pathologically skewed
// alphabets cannot exhaust the goroutine stack.  A root that is itself a
// leaf is visited with the empty path.
func walkTrie(root *trieNode, visit func(symbol Symbol, path Code)) {
	type stackItem struct {
		node *trieNode
		path Code
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{root, Code{}})

	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node.leaf() {
			visit(top.node.symbol, top.path)
			continue
		}

		// Pushed in reverse so the zero child is visited first.
		stack = append(stack, stackItem{top.node.one, top.path.appendBit(1)})
		stack = append(stack, stackItem{top.node.zero, top.path.appendBit(0)})
	}
}

// type candidate + type candidateHeap {{{

type candidate struct {
	freq     uint64
	tiebreak Symbol
	seq      uint64
	node     *trieNode
}

type candidateHeap struct {
	list []candidate
}

func (h *candidateHeap) Init() {
	heap.Init(h)
}

func (h *candidateHeap) Len() int {
	return len(h.list)
}

func (h *candidateHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *candidateHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	if a.tiebreak != b.tiebreak {
		return a.tiebreak < b.tiebreak
	}
	return a.seq < b.seq
}

func (h *candidateHeap) Push(x interface{}) {
	h.list = append(h.list, x.(candidate))
}

func (h *candidateHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*candidateHeap)(nil)

// }}}
