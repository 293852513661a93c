// Package internal holds helpers shared by the bytevm packages.
package internal

import (
	"iter"
	"maps"
	"slices"
)

// IterSeq2Concat joins several key/value sequences into one, in order.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// IterSeq2Collect gathers a key/value sequence into a map, later keys winning,
// and returns the map along with its keys in sorted order.
func IterSeq2Collect[V any](seq iter.Seq2[string, V]) (table map[string]V, keys []string) {
	table = maps.Collect(seq)
	keys = slices.Sorted(maps.Keys(table))
	return
}
