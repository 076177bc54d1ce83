package cart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is an amount in cents.
type Money int64

// MaxMoney is the largest amount ParseMoney accepts and the largest item
// price a store accepts: $1,000,000,000.00.
const MaxMoney Money = 1_000_000_000_00

// ParseMoney parses a non-negative decimal amount with at most two fraction
// digits, such as "5", "15.5" or "1234.50". Amounts above MaxMoney are
// rejected.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidMoney)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && (frac == "" || len(frac) > 2)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	for _, part := range []string{whole, frac} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
			}
		}
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidMoney, s, err)
	}
	if units > int64(MaxMoney/100) {
		return 0, fmt.Errorf("%w: %q exceeds %s", ErrInvalidMoney, s, MaxMoney.Decimal())
	}
	cents := int64(0)
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		cents, _ = strconv.ParseInt(frac, 10, 64)
	}

	m := Money(units*100 + cents)
	if m > MaxMoney {
		return 0, fmt.Errorf("%w: %q exceeds %s", ErrInvalidMoney, s, MaxMoney.Decimal())
	}
	return m, nil
}

// MustParseMoney is like ParseMoney but panics on error.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + other, saturating at the int64 bounds instead of wrapping.
func (m Money) Add(other Money) Money {
	switch {
	case other > 0 && m > math.MaxInt64-other:
		return math.MaxInt64
	case other < 0 && m < math.MinInt64-other:
		return math.MinInt64
	}
	return m + other
}

func (m Money) Cents() int64 {
	return int64(m)
}

// Decimal renders the amount without currency symbol or grouping: "1234.50".
func (m Money) Decimal() string {
	sign, v := m.split()
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// String renders the amount for display: "$1,234.50".
func (m Money) String() string {
	sign, v := m.split()
	p := message.NewPrinter(language.English)
	return p.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}

func (m Money) split() (string, uint64) {
	if m < 0 {
		// -(m+1) cannot overflow, even for math.MinInt64.
		return "-", uint64(-(m + 1)) + 1
	}
	return "", uint64(m)
}

// MarshalText encodes the amount as a decimal string.
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.Decimal()), nil
}

func (m *Money) UnmarshalText(text []byte) error {
	v, err := ParseMoney(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
