package conv

import (
	"fmt"
	"math/big"
)

// PowMod returns base^exponent mod modulus.
//
// It uses right-to-left binary exponentiation: the base is squared modulo
// modulus on every step and multiplied into the result whenever the current
// exponent bit is set. The modulus must be positive and the exponent
// non-negative; a modulus of 1 always gives 0.
func PowMod(base, exponent, modulus Convertible) (Number, error) {
	b, err := bigOf(base, "base")
	if err != nil {
		return Number{}, err
	}
	e, err := bigOf(exponent, "exponent")
	if err != nil {
		return Number{}, err
	}
	m, err := bigOf(modulus, "modulus")
	if err != nil {
		return Number{}, err
	}

	if m.Sign() <= 0 {
		return Number{}, fmt.Errorf("%w: modulus must be positive, got %s", ErrInvalidArgument, m)
	}
	if e.Sign() < 0 {
		return Number{}, fmt.Errorf("%w: exponent must not be negative, got %s", ErrInvalidArgument, e)
	}
	if m.Cmp(big.NewInt(1)) == 0 {
		return Int(0), nil
	}

	result := big.NewInt(1)
	b.Mod(b, m)
	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, m)
		}
		e.Rsh(e, 1)
		b.Mul(b, b)
		b.Mod(b, m)
	}
	return Big(result), nil
}

func bigOf(c Convertible, what string) (*big.Int, error) {
	n, err := c.Decimal()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	return n.BigInt(), nil
}
