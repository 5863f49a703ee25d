package conv

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"numkit/sliceutil"
)

// Text is a string that can be read as a number.
type Text string

// Decimal parses t with the rules of Parse.
func (t Text) Decimal() (Number, error) {
	return Parse(string(t))
}

// Hex parses t and returns the hex digits of the result.
func (t Text) Hex() (string, error) {
	n, err := t.Decimal()
	if err != nil {
		return "", err
	}
	return n.Hex(), nil
}

// Binary parses t and returns the binary digits of the result.
func (t Text) Binary() (string, error) {
	n, err := t.Decimal()
	if err != nil {
		return "", err
	}
	return n.Binary(), nil
}

// Char parses t and returns the character for the result.
// Char of a single non-digit character is that character.
func (t Text) Char() (string, error) {
	n, err := t.Decimal()
	if err != nil {
		return "", err
	}
	return n.Char()
}

// Chunks splits t into consecutive pieces of at most size characters.
// Only the last piece may be shorter, and joining the pieces gives back t
// byte for byte, even when t is not valid UTF-8.
func (t Text) Chunks(size int) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidArgument, size)
	}
	chunks := sliceutil.Chunk(t.characters(), size)
	return sliceutil.Map(chunks, func(c []string) string {
		return strings.Join(c, "")
	}), nil
}

// characters splits t into the original bytes of each character.
// An invalid UTF-8 byte counts as one character and is kept as is.
func (t Text) characters() []string {
	s := string(t)
	chars := make([]string, 0, utf8.RuneCountInString(s))
	for s != "" {
		_, size := utf8.DecodeRuneInString(s)
		chars = append(chars, s[:size])
		s = s[size:]
	}
	return chars
}

// Parse reads s using the first rule that matches:
//
//  1. a single valid character other than '0'..'9' is its code point
//  2. a non-empty run of '0'/'1' whose length is a multiple of 8 is binary
//  3. a decimal numeral, optionally signed
//  4. a hexadecimal numeral, optionally prefixed with "0x" or "0X"
//
// Surrounding whitespace is ignored by rules 3 and 4. Results that do not fit
// an int64 come back as arbitrary-precision numbers.
func Parse(s string) (Number, error) {
	if r, size := utf8.DecodeRuneInString(s); size > 0 && size == len(s) && !isInvalidByte(r, size) && (r < '0' || r > '9') {
		return Int(int64(r)), nil
	}

	if isBinaryOctets(s) {
		return ParseBinary(s)
	}

	trimmed := strings.TrimSpace(s)
	if n, ok := parseRadix(trimmed, 10); ok {
		return n, nil
	}
	if n, err := ParseHex(trimmed); err == nil {
		return n, nil
	}

	return Number{}, fmt.Errorf("%w: %q is not a character, binary, decimal or hex numeral", ErrInvalidConversion, s)
}

// ParseDecimal reads s as an optionally signed base-10 numeral.
func ParseDecimal(s string) (Number, error) {
	if n, ok := parseRadix(strings.TrimSpace(s), 10); ok {
		return n, nil
	}
	return Number{}, fmt.Errorf("%w: %q is not a decimal numeral", ErrInvalidConversion, s)
}

// ParseHex reads s as a base-16 numeral with an optional "0x"/"0X" prefix.
// A sign is accepted only in front of an unprefixed numeral.
func ParseHex(s string) (Number, error) {
	digits := strings.TrimSpace(s)
	if rest, ok := cutHexPrefix(digits); ok {
		if strings.HasPrefix(rest, "+") || strings.HasPrefix(rest, "-") {
			return Number{}, fmt.Errorf("%w: %q has a sign after the hex prefix", ErrInvalidConversion, s)
		}
		digits = rest
	}
	if n, ok := parseRadix(digits, 16); ok {
		return n, nil
	}
	return Number{}, fmt.Errorf("%w: %q is not a hex numeral", ErrInvalidConversion, s)
}

// ParseBinary reads s as an unsigned base-2 numeral of any length.
func ParseBinary(s string) (Number, error) {
	if s == "" || strings.Trim(s, "01") != "" {
		return Number{}, fmt.Errorf("%w: %q is not a binary numeral", ErrInvalidConversion, s)
	}
	n, _ := parseRadix(s, 2)
	return n, nil
}

// isInvalidByte reports whether a decoded rune stands for a byte that is not UTF-8.
func isInvalidByte(r rune, size int) bool {
	return r == utf8.RuneError && size == 1
}

func isBinaryOctets(s string) bool {
	return len(s) > 0 && len(s)%8 == 0 && strings.Trim(s, "01") == ""
}

func cutHexPrefix(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return rest, true
	}
	return strings.CutPrefix(s, "0X")
}

func parseRadix(s string, base int) (Number, bool) {
	if v, err := strconv.ParseInt(s, base, 64); err == nil {
		return Int(v), true
	}
	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Number{}, false
	}
	return Big(b), true
}
