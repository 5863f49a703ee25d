package console

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"go.starlark.net/starlark"

	"numkit/conv"
	"numkit/seqs"
	"numkit/sliceutil"
)

type helper struct {
	name  string
	value starlark.Value
}

// helpers lists the default console helpers in installation order.
func (c *Console) helpers() []helper {
	return []helper{
		{"dec", starlark.NewBuiltin("dec", builtinDec)},
		{"hex", starlark.NewBuiltin("hex", builtinHex)},
		{"bin", starlark.NewBuiltin("bin", builtinBin)},
		{"char", starlark.NewBuiltin("char", builtinChar)},
		{"chunks", starlark.NewBuiltin("chunks", builtinChunks)},
		{"sum", starlark.NewBuiltin("sum", builtinSum)},
		{"powm", starlark.NewBuiltin("powm", builtinPowm)},
		{"xrange", starlark.NewBuiltin("xrange", builtinXRange)},
		{"rangelist", starlark.NewBuiltin("rangelist", builtinRangeList)},
		{"zipall", starlark.NewBuiltin("zipall", builtinZipAll)},
		{"cp", starlark.NewBuiltin("cp", c.builtinCopy)},
		{"lg", starlark.NewBuiltin("lg", c.builtinLog)},
		{"nl", starlark.String("\n")},
	}
}

func unpackDecimal(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (conv.Number, error) {
	var x starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x); err != nil {
		return conv.Number{}, err
	}
	c, err := convertible(x)
	if err != nil {
		return conv.Number{}, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return c.Decimal()
}

func builtinDec(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	n, err := unpackDecimal(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	return intValue(n), nil
}

func builtinHex(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	n, err := unpackDecimal(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.String(n.Hex()), nil
}

func builtinBin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	n, err := unpackDecimal(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.String(n.Binary()), nil
}

func builtinChar(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	n, err := unpackDecimal(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	s, err := n.Char()
	if err != nil {
		return nil, err
	}
	return starlark.String(s), nil
}

func builtinChunks(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		text string
		size int
	)
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &text, &size); err != nil {
		return nil, err
	}
	chunks, err := conv.Text(text).Chunks(size)
	if err != nil {
		return nil, err
	}
	return starlark.NewList(sliceutil.Map(chunks, func(s string) starlark.Value {
		return starlark.String(s)
	})), nil
}

func builtinSum(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var xs starlark.Iterable
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &xs); err != nil {
		return nil, err
	}
	items, err := sliceutil.TryMap(slices.Collect(values(xs)), convertible)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	total, err := conv.SumOf(items...)
	if err != nil {
		return nil, err
	}
	return intValue(total), nil
}

func builtinPowm(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var base, exponent, modulus starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 3, &base, &exponent, &modulus); err != nil {
		return nil, err
	}
	operands, err := sliceutil.TryMap([]starlark.Value{base, exponent, modulus}, convertible)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	n, err := conv.PowMod(operands[0], operands[1], operands[2])
	if err != nil {
		return nil, err
	}
	return intValue(n), nil
}

func unpackBounds(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) ([]int, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}
	return sliceutil.TryMap(args, func(v starlark.Value) (int, error) {
		var i int
		if err := starlark.AsInt(v, &i); err != nil {
			return 0, fmt.Errorf("%s: %w", b.Name(), err)
		}
		return i, nil
	})
}

func builtinXRange(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	bounds, err := unpackBounds(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	r, err := newLazyRange(bounds...)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func builtinRangeList(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	bounds, err := unpackBounds(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	ints, err := seqs.Collect(bounds...)
	if err != nil {
		return nil, err
	}
	return starlark.NewList(sliceutil.Map(ints, func(i int) starlark.Value {
		return starlark.MakeInt(i)
	})), nil
}

func builtinZipAll(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}
	inputs, err := sliceutil.TryMap(args, func(v starlark.Value) (iter.Seq[starlark.Value], error) {
		it, ok := v.(starlark.Iterable)
		if !ok {
			return nil, fmt.Errorf("%s: %s is not iterable", b.Name(), v.Type())
		}
		return values(it), nil
	})
	if err != nil {
		return nil, err
	}

	var tuples []starlark.Value
	for tuple := range seqs.ZipAll(inputs...) {
		tuples = append(tuples, starlark.Tuple(tuple))
	}
	return starlark.NewList(tuples), nil
}

func (c *Console) builtinCopy(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x); err != nil {
		return nil, err
	}
	if c.clipboard == nil {
		c.logger.Debug("no clipboard available, value not copied")
		return x, nil
	}
	if err := c.clipboard.WriteAll(Str(x)); err != nil {
		c.logger.Debug("clipboard write failed", "error", err)
	}
	return x, nil
}

func (c *Console) builtinLog(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("lg: unexpected keyword arguments")
	}
	line := strings.Join(sliceutil.Map(args, Str), " ")
	if _, err := fmt.Fprintln(c.out, line); err != nil {
		return nil, err
	}
	return starlark.None, nil
}
