package console

import (
	"fmt"
	"iter"

	"go.starlark.net/starlark"

	"numkit/conv"
)

func numberOf(i starlark.Int) conv.Number {
	if v, ok := i.Int64(); ok {
		return conv.Int(v)
	}
	return conv.Big(i.BigInt())
}

func intValue(n conv.Number) starlark.Int {
	if v, ok := n.Int64(); ok {
		return starlark.MakeInt64(v)
	}
	return starlark.MakeBigInt(n.BigInt())
}

// convertible accepts the two kinds of console values the conversion helpers understand.
func convertible(v starlark.Value) (conv.Convertible, error) {
	switch x := v.(type) {
	case starlark.Int:
		return numberOf(x), nil
	case starlark.String:
		return conv.Text(string(x)), nil
	default:
		return nil, fmt.Errorf("%w: %s is neither int nor string", conv.ErrInvalidConversion, v.Type())
	}
}

// Str formats v like Starlark's str(): strings unquoted, everything else by its repr.
func Str(v starlark.Value) string {
	if s, ok := starlark.AsString(v); ok {
		return s
	}
	return v.String()
}

func values(x starlark.Iterable) iter.Seq[starlark.Value] {
	return func(yield func(starlark.Value) bool) {
		it := x.Iterate()
		defer it.Done()
		var v starlark.Value
		for it.Next(&v) {
			if !yield(v) {
				return
			}
		}
	}
}

type pullIterator struct {
	next func() (starlark.Value, bool)
	stop func()
}

func (it *pullIterator) Next(p *starlark.Value) bool {
	v, ok := it.next()
	if ok {
		*p = v
	}
	return ok
}

func (it *pullIterator) Done() {
	it.stop()
}
