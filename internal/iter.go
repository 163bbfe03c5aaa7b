package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return
				}
			}
		}
	}
}

// IterSeq2Ordered iterates over a map in the order given by keys.
// Keys missing from the map are skipped.
func IterSeq2Ordered[K comparable, V any](keys []K, values map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range keys {
			value, ok := values[key]
			if !ok {
				continue
			}
			if !yield(key, value) {
				return
			}
		}
	}
}
