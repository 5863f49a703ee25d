package conv

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigFromString(t *testing.T, s string) *big.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad test literal %q", s)
	return b
}

func TestBig_Normalizes(t *testing.T) {
	n := Big(big.NewInt(42))
	assert.False(t, n.IsBig(), "small big.Int should be demoted")
	v, ok := n.Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)

	huge := Big(bigFromString(t, "123456789012345678901234567890"))
	assert.True(t, huge.IsBig())
	_, ok = huge.Int64()
	assert.False(t, ok)
	assert.Equal(t, "123456789012345678901234567890", huge.String())

	assert.Equal(t, Number{}, Big(nil))
}

func TestBig_CopiesInput(t *testing.T) {
	src := bigFromString(t, "99999999999999999999")
	n := Big(src)
	src.SetInt64(1)
	assert.Equal(t, "99999999999999999999", n.String())

	out := n.BigInt()
	out.SetInt64(2)
	assert.Equal(t, "99999999999999999999", n.String())
}

func TestNumber_Hex(t *testing.T) {
	tests := []struct {
		name string
		n    Number
		want string
	}{
		{"zero", Int(0), "00"},
		{"one digit padded", Int(10), "0a"},
		{"two digits", Int(255), "ff"},
		{"three digits padded", Int(256), "0100"},
		{"negative uses magnitude", Int(-255), "ff"},
		{"min int64", Int(math.MinInt64), "8000000000000000"},
		{"max int64", Int(math.MaxInt64), "7fffffffffffffff"},
		{"arbitrary precision", Big(new(big.Int).Lsh(big.NewInt(1), 64)), "010000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.Hex())
		})
	}
}

func TestNumber_Binary(t *testing.T) {
	tests := []struct {
		name string
		n    Number
		want string
	}{
		{"zero", Int(0), "00000000"},
		{"five", Int(5), "00000101"},
		{"full byte", Int(255), "11111111"},
		{"two bytes", Int(256), "0000000100000000"},
		{"negative uses magnitude", Int(-5), "00000101"},
		{"arbitrary precision", Big(new(big.Int).Lsh(big.NewInt(1), 64)), "00000001" + strings.Repeat("0", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.n.Binary()
			assert.Equal(t, tt.want, got)
			assert.Zero(t, len(got)%8, "binary length must be a multiple of 8")
		})
	}
}

func TestNumber_Char(t *testing.T) {
	s, err := Int(65).Char()
	require.NoError(t, err)
	assert.Equal(t, "A", s)

	s, err = Int(0x1F600).Char()
	require.NoError(t, err)
	assert.Equal(t, "😀", s)

	for _, bad := range []Number{
		Int(-1),
		Int(0xD800),
		Int(0x110000),
		Int(math.MaxInt64),
		Big(bigFromString(t, "100000000000000000000")),
	} {
		_, err := bad.Char()
		assert.ErrorIs(t, err, ErrUnsupportedOperation, "Char(%s)", bad)
	}
}

func TestNumber_Decimal(t *testing.T) {
	n := Int(7)
	d, err := n.Decimal()
	require.NoError(t, err)
	assert.Equal(t, n, d)

	b := Big(bigFromString(t, "100000000000000000000"))
	d, err = b.Decimal()
	require.NoError(t, err)
	assert.Equal(t, 0, b.Cmp(d))
}

func TestNumber_Add(t *testing.T) {
	assert.Equal(t, Int(5), Int(2).Add(Int(3)))

	overflow := Int(math.MaxInt64).Add(Int(1))
	assert.True(t, overflow.IsBig())
	assert.Equal(t, "9223372036854775808", overflow.String())

	underflow := Int(math.MinInt64).Add(Int(-1))
	assert.True(t, underflow.IsBig())
	assert.Equal(t, "-9223372036854775809", underflow.String())

	back := overflow.Add(Int(-1))
	assert.False(t, back.IsBig(), "result that fits must be demoted")
	assert.Equal(t, Int(math.MaxInt64), back)
}

func TestNumber_CmpAndSign(t *testing.T) {
	huge := Big(bigFromString(t, "100000000000000000000"))

	assert.Equal(t, -1, Int(1).Cmp(Int(2)))
	assert.Equal(t, 1, Int(2).Cmp(Int(1)))
	assert.Equal(t, 0, Int(2).Cmp(Int(2)))
	assert.Equal(t, -1, Int(math.MaxInt64).Cmp(huge))
	assert.Equal(t, 1, huge.Cmp(Int(0)))

	assert.Equal(t, 0, Int(0).Sign())
	assert.Equal(t, -1, Int(-3).Sign())
	assert.Equal(t, 1, huge.Sign())
}
