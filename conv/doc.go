/*
Package conv converts integers and text between decimal, hexadecimal, binary and
character representations.

A [Number] is held as a native int64 while it fits and is promoted to a *big.Int
only when it does not, so callers never choose a representation themselves.

	n := conv.Int(255)
	n.Hex()    // "ff"
	n.Binary() // "11111111"

[Text] parses with a fixed precedence: a single non-digit character is its code
point, a run of 0/1 whose length is a multiple of 8 is binary, then decimal, then
hexadecimal (optionally "0x" prefixed).

	conv.Text("A").Decimal()        // 65
	conv.Text("00001010").Decimal() // 10
	conv.Text("ff").Decimal()       // 255

# Errors

Failures wrap one of [ErrInvalidConversion], [ErrUnsupportedOperation] or
[ErrInvalidArgument]; match them with errors.Is.
*/
package conv
