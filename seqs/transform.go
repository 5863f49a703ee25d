package seqs

import "iter"

// ZipAll advances every input sequence in lockstep and yields one tuple per index.
// It stops as soon as the shortest input is exhausted; nothing is padded.
// Each yielded tuple is a fresh slice the consumer may keep.
func ZipAll[T any](inputs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(inputs) == 0 {
			return
		}

		nexts := make([]func() (T, bool), len(inputs))
		for i, seq := range inputs {
			next, stop := iter.Pull(seq)
			defer stop()
			nexts[i] = next
		}

		for {
			tuple := make([]T, len(nexts))
			for i, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				tuple[i] = v
			}
			if !yield(tuple) {
				return
			}
		}
	}
}

// Enumerate pairs every element with its zero-based index.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}
