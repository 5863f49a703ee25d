// Package console is an interactive scope for number conversions.
//
// A Console evaluates Starlark snippets. Its global scope holds the helpers
// from a Registry: dec, hex, bin, char, chunks, sum, powm, xrange, rangelist,
// zipall, cp, lg and nl. Helpers are installed once, by Init, and a name can
// never be bound twice or shadow a Starlark builtin.
//
//	c := console.New()
//	if err := c.Init(); err != nil {
//		return err
//	}
//	v, err := c.Eval(`hex("255")`) // "ff"
package console
