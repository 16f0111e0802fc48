package suggest

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// candidateIndex holds one ordered candidate list and a trie over its
// lower-cased entries. Trie items are the positions of every entry sharing
// that lower-cased form, so duplicates and case variants survive.
type candidateIndex struct {
	values []string
	trie   *patricia.Trie
}

func newCandidateIndex(values []string) *candidateIndex {
	idx := &candidateIndex{
		values: append([]string(nil), values...),
		trie:   patricia.NewTrie(),
	}
	for i, v := range idx.values {
		if v == "" {
			continue
		}
		key := patricia.Prefix(strings.ToLower(v))
		if item := idx.trie.Get(key); item != nil {
			idx.trie.Set(key, append(item.([]int), i))
			continue
		}
		idx.trie.Insert(key, []int{i})
	}
	return idx
}

// match returns every value starting with lowerPrefix, keeping source order.
func (idx *candidateIndex) match(lowerPrefix string) []string {
	if idx == nil || len(idx.values) == 0 {
		return []string{}
	}
	if lowerPrefix == "" {
		return append([]string{}, idx.values...)
	}

	var positions []int
	err := idx.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		positions = append(positions, item.([]int)...)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting candidate trie: %v", err)
		return []string{}
	}

	sort.Ints(positions)
	matches := make([]string, len(positions))
	for i, pos := range positions {
		matches[i] = idx.values[pos]
	}
	return matches
}

func (idx *candidateIndex) size() int {
	if idx == nil {
		return 0
	}
	return len(idx.values)
}
