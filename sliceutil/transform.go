package sliceutil

// Map transforms a slice of type T to a slice of type R.
func Map[T any, R any](collection []T, transform func(T) R) []R {
	if len(collection) == 0 {
		return []R{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = transform(v)
	}
	return res
}

// TryMap similar to Map, but transform may return an error.
// Returns immediately upon encountering an error.
func TryMap[T any, R any](collection []T, transform func(T) (R, error)) ([]R, error) {
	if len(collection) == 0 {
		return []R{}, nil
	}
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		var err error
		res[i], err = transform(v)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Chunk splits a slice into multiple chunks of specified size.
// the original slices are used for each chunk.
// The last chunk may be smaller if there are not enough elements.
func Chunk[T any](collection []T, size int) [][]T {
	if size <= 0 {
		panic("sliceutil.Chunk: size must be greater than 0")
	}
	if len(collection) == 0 {
		return [][]T{}
	}
	batchSize := (len(collection) + size - 1) / size
	_ = collection[len(collection)-1]
	res := make([][]T, 0, batchSize)
	for i := 0; i < len(collection); i += size {
		end := min(i+size, len(collection))
		res = append(res, collection[i:end:end])
	}
	return res
}
