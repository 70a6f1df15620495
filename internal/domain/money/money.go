package money

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount = errors.New("invalid decimal amount")
	ErrOverflow      = errors.New("amount out of range")
)

// decimalPattern is the plain decimal form of the store files, optionally with an exponent.
var decimalPattern = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][+-]?\d+)?$`)

// centsLimit is 2^63, the first float64 that no longer converts to int64.
const centsLimit = float64(1 << 63)

// Money is an amount in hundredths of the currency unit.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func FromUnits(units int64) Money {
	return Money{cents: units * 100}
}

// Parse accepts the decimal notation used in the store files ("2000", "2000.0", "3599.95").
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return Money{}, ErrInvalidAmount
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	cents := math.Round(f * 100)
	if math.Abs(cents) >= centsLimit {
		return Money{}, ErrOverflow
	}
	return Money{cents: int64(cents)}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

// Times returns ErrOverflow when the product does not fit in int64 cents.
func (m Money) Times(n int64) (Money, error) {
	if m.cents == 0 || n == 0 {
		return Money{}, nil
	}
	product := m.cents * n
	if product/n != m.cents || (m.cents == -1 && n == math.MinInt64) || (n == -1 && m.cents == math.MinInt64) {
		return Money{}, ErrOverflow
	}
	return Money{cents: product}, nil
}

// String renders the amount the way the store files expect it: always with a fractional part.
func (m Money) String() string {
	s := strconv.FormatFloat(m.Units(), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
