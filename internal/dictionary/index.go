package dictionary

import (
	"github.com/cespare/xxhash/v2"
)

// deleteIndex is a symmetric-delete candidate index: every vocabulary word
// is registered under all strings obtained by deleting up to maxDistance
// runes from its prefix. A query within plain edit distance d of a word
// shares at least one such delete with it, so a lookup only has to check
// the deletes of the query. Keys are xxhash digests of the delete strings;
// collisions only add candidates, which the caller verifies anyway.
type deleteIndex struct {
	maxDistance  int
	prefixLength int
	buckets      map[uint64][]int32
}

func newDeleteIndex(maxDistance, prefixLength int) *deleteIndex {
	return &deleteIndex{
		maxDistance:  maxDistance,
		prefixLength: prefixLength,
		buckets:      make(map[uint64][]int32),
	}
}

// add registers word id under every delete of the word's prefix.
func (ix *deleteIndex) add(id int32, word []rune) {
	for key := range ix.deletes(word, ix.maxDistance) {
		h := xxhash.Sum64String(key)
		ix.buckets[h] = append(ix.buckets[h], id)
	}
}

// candidates returns the ids of every word sharing a delete with query
// within maxDistance. Ids are unique; order is unspecified.
func (ix *deleteIndex) candidates(query []rune, maxDistance int) []int32 {
	seen := make(map[int32]struct{})
	var out []int32
	for key := range ix.deletes(query, maxDistance) {
		for _, id := range ix.buckets[xxhash.Sum64String(key)] {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// deletes returns the prefix of word plus every string reachable from it
// by removing between 1 and maxDistance runes.
func (ix *deleteIndex) deletes(word []rune, maxDistance int) map[string]struct{} {
	if len(word) > ix.prefixLength {
		word = word[:ix.prefixLength]
	}
	out := map[string]struct{}{string(word): {}}
	collectDeletes(word, maxDistance, out)
	return out
}

func collectDeletes(word []rune, remaining int, out map[string]struct{}) {
	if remaining == 0 || len(word) == 0 {
		return
	}
	buf := make([]rune, len(word)-1)
	for i := range word {
		copy(buf, word[:i])
		copy(buf[i:], word[i+1:])
		key := string(buf)
		if _, ok := out[key]; ok {
			continue
		}
		out[key] = struct{}{}
		if remaining > 1 {
			collectDeletes([]rune(key), remaining-1, out)
		}
	}
}

// size returns the number of distinct delete keys
func (ix *deleteIndex) size() int {
	return len(ix.buckets)
}
