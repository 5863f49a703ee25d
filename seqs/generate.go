package seqs

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
)

// ErrInvalidArgument is returned when a sequence cannot be built from the given bounds.
var ErrInvalidArgument = errors.New("invalid argument")

// Range yields start, start+step, ... while the value stays below end (step > 0)
// or above end (step < 0). A zero step is rejected.
//
// The returned sequence can be ranged over any number of times; every pass starts
// again from start.
func Range(start, end, step int) (iter.Seq[int], error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: range step cannot be zero", ErrInvalidArgument)
	}
	return func(yield func(int) bool) {
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
			// stop before i+step wraps around
			if step > 0 && i > math.MaxInt-step || step < 0 && i < math.MinInt-step {
				return
			}
		}
	}, nil
}

// XRange accepts the bounds the way a console range helper does:
//
//	XRange(end)              0, 1, ..., end-1
//	XRange(start, end)       start, ..., end-1
//	XRange(start, end, step) start, start+step, ...
func XRange(bounds ...int) (iter.Seq[int], error) {
	switch len(bounds) {
	case 1:
		return Range(0, bounds[0], 1)
	case 2:
		return Range(bounds[0], bounds[1], 1)
	case 3:
		return Range(bounds[0], bounds[1], bounds[2])
	default:
		return nil, fmt.Errorf("%w: range expects 1 to 3 bounds, got %d", ErrInvalidArgument, len(bounds))
	}
}

// Collect materializes XRange(bounds...) into a slice.
func Collect(bounds ...int) ([]int, error) {
	seq, err := XRange(bounds...)
	if err != nil {
		return nil, err
	}
	res := slices.Collect(seq)
	if res == nil {
		res = []int{}
	}
	return res, nil
}
