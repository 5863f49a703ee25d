package console

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"go.starlark.net/starlark"

	"numkit/seqs"
	"numkit/sliceutil"
)

// lazyRange is the console face of seqs.XRange. Every for-loop over it starts a fresh pass.
type lazyRange struct {
	bounds []int
	seq    iter.Seq[int]
}

var _ starlark.Iterable = (*lazyRange)(nil)

func newLazyRange(bounds ...int) (*lazyRange, error) {
	seq, err := seqs.XRange(bounds...)
	if err != nil {
		return nil, err
	}
	return &lazyRange{bounds: bounds, seq: seq}, nil
}

func (r *lazyRange) String() string {
	return "xrange(" + strings.Join(sliceutil.Map(r.bounds, strconv.Itoa), ", ") + ")"
}

func (r *lazyRange) Type() string { return "xrange" }

func (r *lazyRange) Freeze() {}

func (r *lazyRange) Truth() starlark.Bool { return starlark.True }

func (r *lazyRange) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: %s", r.Type())
}

func (r *lazyRange) Iterate() starlark.Iterator {
	next, stop := iter.Pull(seqs.Map(r.seq, func(i int) starlark.Value {
		return starlark.MakeInt(i)
	}))
	return &pullIterator{next: next, stop: stop}
}
