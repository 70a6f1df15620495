//go:build unit

package money_test

import (
	"math"
	"testing"

	"hotel-reservation/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		cents int64
		err   bool
	}{
		{name: "integer", in: "2000", cents: 200000},
		{name: "one decimal", in: "2000.0", cents: 200000},
		{name: "two decimals", in: "3599.95", cents: 359995},
		{name: "surrounding spaces", in: " 3500.0 ", cents: 350000},
		{name: "zero", in: "0.0", cents: 0},
		{name: "empty", in: "", err: true},
		{name: "not a number", in: "abc", err: true},
		{name: "NaN", in: "NaN", err: true},
		{name: "infinity", in: "Inf", err: true},
		{name: "underscore digits", in: "1_000", err: true},
		{name: "hex float", in: "0x1p4", err: true},
		{name: "leading plus", in: "+5", err: true},
		{name: "exponent", in: "2e3", cents: 200000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := money.Parse(tc.in)
			if tc.err {
				assert.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cents, m.Cents())
		})
	}
}

func TestParseRejectsOutOfRange(t *testing.T) {
	for _, in := range []string{"1e17", "-1e17", "92233720368547758", "92233720368547750", "1e300", "1e308"} {
		t.Run(in, func(t *testing.T) {
			_, err := money.Parse(in)
			assert.ErrorIs(t, err, money.ErrOverflow)
		})
	}

	m, err := money.Parse("90000000000000000")
	require.NoError(t, err)
	assert.False(t, m.IsNegative())
}

func TestTimes(t *testing.T) {
	t.Run("multiplies", func(t *testing.T) {
		m, err := money.FromUnits(2000).Times(2)
		require.NoError(t, err)
		assert.Equal(t, "4000.0", m.String())
	})

	t.Run("zero", func(t *testing.T) {
		m, err := money.NewMoney(0).Times(math.MaxInt64)
		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Cents())
	})

	overflows := []struct {
		name  string
		cents int64
		n     int64
	}{
		{name: "large price for two nights", cents: 9_000_000_000_000_000_000, n: 2},
		{name: "max times max", cents: math.MaxInt64, n: math.MaxInt64},
		{name: "min times minus one", cents: math.MinInt64, n: -1},
	}
	for _, tc := range overflows {
		t.Run(tc.name, func(t *testing.T) {
			_, err := money.NewMoney(tc.cents).Times(tc.n)
			assert.ErrorIs(t, err, money.ErrOverflow)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "2000.0", money.FromUnits(2000).String())
	assert.Equal(t, "3599.95", money.NewMoney(359995).String())
	assert.Equal(t, "0.5", money.NewMoney(50).String())
	assert.Equal(t, "0.0", money.NewMoney(0).String())
}

func TestStringParseIsStable(t *testing.T) {
	for _, cents := range []int64{0, 1, 50, 99, 200000, 359995, 123456789} {
		m := money.NewMoney(cents)
		parsed, err := money.Parse(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}
