// Package money formats and parses Brazilian real amounts.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol is the currency prefix printed before every amount.
const Symbol = "R$"

// FormatBRL renders d as "R$ 1.234,56": dot thousands separator, decimal
// comma, always two decimal places, rounded half away from zero.
func FormatBRL(d decimal.Decimal) string {
	rounded := d.Round(2)
	intPart, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")

	out := Symbol + " " + groupThousands(intPart) + "," + frac
	if rounded.IsNegative() {
		return "-" + out
	}
	return out
}

// ParseBRL accepts "R$ 1.234,56", "1.234,56", "12,5", "1,234.56" and plain
// "12.50". When both separators appear the last one is the decimal point.
// A lone dot followed by exactly three digits ("1.234") is rejected: it reads
// as a thousands separator in Brazil and as a decimal point elsewhere.
func ParseBRL(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, Symbol))
	raw = strings.ReplaceAll(raw, "\u00a0", "")
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.Replace(raw, "-"+Symbol, "-", 1)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("money: empty amount")
	}

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign, raw = "-", raw[1:]
	}
	plain, err := normalize(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("money: invalid amount %q: %w", s, err)
	}
	d, err := decimal.NewFromString(sign + plain)
	if err != nil {
		return decimal.Zero, fmt.Errorf("money: invalid amount %q: %w", s, err)
	}
	return d, nil
}

var errAmbiguous = errors.New("ambiguous separator, write 1.234,00 for thousands")

// normalize drops thousands separators and turns the decimal separator
// into a dot.
func normalize(body string) (string, error) {
	comma := strings.LastIndexByte(body, ',')
	dot := strings.LastIndexByte(body, '.')

	switch {
	case comma >= 0 && dot >= 0:
		point, group := comma, byte('.')
		if dot > comma {
			point, group = dot, ','
		}
		intPart, err := ungroup(body[:point], group)
		if err != nil {
			return "", err
		}
		return intPart + "." + body[point+1:], nil
	case comma >= 0:
		if strings.Count(body, ",") > 1 {
			return ungroup(body, ',')
		}
		return strings.Replace(body, ",", ".", 1), nil
	case dot >= 0:
		if strings.Count(body, ".") > 1 {
			return ungroup(body, '.')
		}
		if len(body)-dot-1 == 3 {
			return "", errAmbiguous
		}
	}
	return body, nil
}

// ungroup joins digit groups split by sep, requiring groups of three after
// the first.
func ungroup(s string, sep byte) (string, error) {
	groups := strings.Split(s, string(sep))
	for i, g := range groups {
		if (i == 0 && (g == "" || len(g) > 3)) || (i > 0 && len(g) != 3) {
			return "", fmt.Errorf("misplaced %q separator", sep)
		}
	}
	return strings.Join(groups, ""), nil
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
