package conv

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Number is an integer of any size.
// Values that fit in an int64 are stored natively; big is set only for the rest.
// The zero value is 0.
type Number struct {
	small int64
	big   *big.Int
}

// Convertible is anything that can produce its decimal value.
type Convertible interface {
	Decimal() (Number, error)
}

// Int returns v as a Number.
func Int(v int64) Number {
	return Number{small: v}
}

// Big returns a Number holding a copy of v, demoted to int64 when it fits.
// A nil v is treated as 0.
func Big(v *big.Int) Number {
	if v == nil {
		return Number{}
	}
	if v.IsInt64() {
		return Number{small: v.Int64()}
	}
	return Number{big: new(big.Int).Set(v)}
}

// IsBig reports whether n needs arbitrary precision.
func (n Number) IsBig() bool {
	return n.big != nil
}

// Int64 returns n as an int64 and whether it fits.
func (n Number) Int64() (int64, bool) {
	if n.big != nil {
		return 0, false
	}
	return n.small, true
}

// BigInt returns n as a newly allocated *big.Int.
func (n Number) BigInt() *big.Int {
	if n.big != nil {
		return new(big.Int).Set(n.big)
	}
	return big.NewInt(n.small)
}

// Sign returns -1, 0 or +1.
func (n Number) Sign() int {
	if n.big != nil {
		return n.big.Sign()
	}
	switch {
	case n.small < 0:
		return -1
	case n.small > 0:
		return 1
	}
	return 0
}

// Cmp compares n and m and returns -1, 0 or +1.
func (n Number) Cmp(m Number) int {
	if n.big == nil && m.big == nil {
		switch {
		case n.small < m.small:
			return -1
		case n.small > m.small:
			return 1
		}
		return 0
	}
	return n.BigInt().Cmp(m.BigInt())
}

// Add returns n+m, promoting to arbitrary precision on int64 overflow.
func (n Number) Add(m Number) Number {
	if n.big == nil && m.big == nil {
		s := n.small + m.small
		overflow := n.small > 0 && m.small > 0 && s < 0 || n.small < 0 && m.small < 0 && s >= 0
		if !overflow {
			return Number{small: s}
		}
	}
	return Big(new(big.Int).Add(n.BigInt(), m.BigInt()))
}

// Decimal returns n unchanged. It makes Number a Convertible.
func (n Number) Decimal() (Number, error) {
	return n, nil
}

// String returns the base-10 form of n.
func (n Number) String() string {
	if n.big != nil {
		return n.big.String()
	}
	return strconv.FormatInt(n.small, 10)
}

// Hex returns the lowercase base-16 digits of |n|, zero-padded to an even count
// so every byte is two digits. No sign or prefix is included.
func (n Number) Hex() string {
	return padDigits(n.absText(16), 2)
}

// Binary returns the base-2 digits of |n|, zero-padded to a multiple of 8.
func (n Number) Binary() string {
	return padDigits(n.absText(2), 8)
}

// Char returns the character whose code point is n.
// Arbitrary-precision values never have one; neither do negative values,
// surrogates or values above unicode.MaxRune.
func (n Number) Char() (string, error) {
	if n.big != nil {
		return "", fmt.Errorf("%w: %s is arbitrary precision and has no character representation", ErrUnsupportedOperation, n)
	}
	if n.small < 0 || n.small > unicode.MaxRune || !utf8.ValidRune(rune(n.small)) {
		return "", fmt.Errorf("%w: %d is not a valid code point", ErrUnsupportedOperation, n.small)
	}
	return string(rune(n.small)), nil
}

func (n Number) absText(base int) string {
	if n.big != nil {
		return new(big.Int).Abs(n.big).Text(base)
	}
	u := uint64(n.small)
	if n.small < 0 {
		// two's complement negation also covers math.MinInt64
		u = -u
	}
	return strconv.FormatUint(u, base)
}

func padDigits(digits string, multiple int) string {
	if r := len(digits) % multiple; r != 0 {
		return strings.Repeat("0", multiple-r) + digits
	}
	return digits
}
