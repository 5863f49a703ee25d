package sliceutil

// Zip groups the i-th element of every collection into one tuple.
// The result has the length of the shortest collection; longer ones are truncated.
// Zip with no collections returns an empty result.
func Zip[T any](collections ...[]T) [][]T {
	if len(collections) == 0 {
		return [][]T{}
	}

	n := len(collections[0])
	for _, c := range collections[1:] {
		n = min(n, len(c))
	}

	res := make([][]T, n)
	for i := range n {
		tuple := make([]T, len(collections))
		for j, c := range collections {
			tuple[j] = c[i]
		}
		res[i] = tuple
	}
	return res
}
