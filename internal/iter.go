// Package internal holds helpers shared by the pievm packages.
package internal

import (
	"iter"
)

// ConcatSeq2 chains define tables into one sequence. Earlier tables are
// visited first, so consumers that keep the last value for a key let the
// later tables override.
func ConcatSeq2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			if seq == nil {
				continue
			}
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}
