package listdiff

import "sort"

// Callback supplies the two predicates the differ works with.
// Key must return the same value for two items iff they are the same entity.
type Callback[T any, K comparable] interface {
	Key(item T) K
	SameContent(a, b T) bool
}

// Funcs adapts a pair of functions to Callback.
type Funcs[T any, K comparable] struct {
	KeyFunc     func(T) K
	ContentFunc func(a, b T) bool
}

func (f Funcs[T, K]) Key(item T) K           { return f.KeyFunc(item) }
func (f Funcs[T, K]) SameContent(a, b T) bool { return f.ContentFunc(a, b) }

// rowKey disambiguates repeated keys inside one sequence by occurrence number,
// pairing the nth occurrence in the old list with the nth in the new one.
type rowKey[K comparable] struct {
	key K
	nth int
}

func rowKeys[T any, K comparable](items []T, cb Callback[T, K]) []rowKey[K] {
	seen := make(map[K]int, len(items))
	keys := make([]rowKey[K], len(items))
	for i, item := range items {
		k := cb.Key(item)
		keys[i] = rowKey[K]{key: k, nth: seen[k]}
		seen[k]++
	}
	return keys
}

// Diff returns the operations that turn old into next.
//
// Operations come in four groups, each applied in order: removals by
// descending old index, moves, inserts by ascending new index, and content
// updates by ascending new index. Rows on the longest run that keeps its
// relative order are never moved; every other surviving row is moved exactly
// once. Rows with equal keys are never reported as insert plus remove.
func Diff[T any, K comparable](old, next []T, cb Callback[T, K]) []Op[T] {
	oldKeys := rowKeys(old, cb)
	newKeys := rowKeys(next, cb)

	oldPos := make(map[rowKey[K]]int, len(oldKeys))
	for i, k := range oldKeys {
		oldPos[k] = i
	}
	newPos := make(map[rowKey[K]]int, len(newKeys))
	for i, k := range newKeys {
		newPos[k] = i
	}

	var ops []Op[T]

	for i := len(oldKeys) - 1; i >= 0; i-- {
		if _, ok := newPos[oldKeys[i]]; !ok {
			ops = append(ops, Op[T]{Kind: Remove, Index: i, Item: old[i]})
		}
	}

	// Rows present on both sides, in old order, and where they end up.
	working := make([]rowKey[K], 0, len(oldKeys))
	targets := make([]int, 0, len(oldKeys))
	for _, k := range oldKeys {
		if p, ok := newPos[k]; ok {
			working = append(working, k)
			targets = append(targets, p)
		}
	}

	stable := make(map[rowKey[K]]bool, len(working))
	for i, keep := range longestIncreasing(targets) {
		if keep {
			stable[working[i]] = true
		}
	}

	// Same rows in next order. Each mover is placed right after its
	// predecessor here, in ascending order, so earlier placements hold.
	shared := make([]rowKey[K], 0, len(working))
	for _, k := range newKeys {
		if _, ok := oldPos[k]; ok {
			shared = append(shared, k)
		}
	}

	for t, k := range shared {
		if stable[k] {
			continue
		}
		from := indexOf(working, k)
		working = append(working[:from], working[from+1:]...)
		to := 0
		if t > 0 {
			to = indexOf(working, shared[t-1]) + 1
		}
		working = insertAt(working, to, k)
		if to != from {
			ops = append(ops, Op[T]{Kind: Move, From: from, Index: to, Item: old[oldPos[k]]})
		}
	}

	for i, k := range newKeys {
		if _, ok := oldPos[k]; !ok {
			ops = append(ops, Op[T]{Kind: Insert, Index: i, Item: next[i]})
		}
	}

	for i, k := range newKeys {
		if j, ok := oldPos[k]; ok && !cb.SameContent(old[j], next[i]) {
			ops = append(ops, Op[T]{Kind: Update, Index: i, Item: next[i]})
		}
	}

	return ops
}

func indexOf[K comparable](keys []rowKey[K], k rowKey[K]) int {
	for i, candidate := range keys {
		if candidate == k {
			return i
		}
	}
	return -1
}

// longestIncreasing marks the members of one longest strictly increasing
// subsequence of seq.
func longestIncreasing(seq []int) []bool {
	keep := make([]bool, len(seq))
	if len(seq) == 0 {
		return keep
	}

	tails := make([]int, 0, len(seq))
	prev := make([]int, len(seq))
	for i, v := range seq {
		j := sort.Search(len(tails), func(n int) bool { return seq[tails[n]] >= v })
		prev[i] = -1
		if j > 0 {
			prev[i] = tails[j-1]
		}
		if j == len(tails) {
			tails = append(tails, i)
		} else {
			tails[j] = i
		}
	}

	for i := tails[len(tails)-1]; i >= 0; i = prev[i] {
		keep[i] = true
	}
	return keep
}
