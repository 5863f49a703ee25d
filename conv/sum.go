package conv

import (
	"iter"
	"slices"

	"numkit/seqs"
)

// Sum adds the decimal value of every element, left to right, starting from 0.
// The first element that fails to convert stops the sum and its error is returned.
func Sum(values iter.Seq[Convertible]) (Number, error) {
	return seqs.TryReduce(values, Int(0), func(acc Number, v Convertible) (Number, error) {
		d, err := v.Decimal()
		if err != nil {
			return acc, err
		}
		return acc.Add(d), nil
	})
}

// SumOf is Sum over its arguments.
func SumOf(values ...Convertible) (Number, error) {
	return Sum(slices.Values(values))
}
