package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// minorUnitsPerMajor é a razão entre centavos e a unidade principal da moeda
var minorUnitsPerMajor = decimal.NewFromInt(100)

// MinorToMajor converte centavos para a unidade principal (ex.: 1050 -> 10.50)
func MinorToMajor(minor decimal.Decimal) decimal.Decimal {
	return minor.Div(minorUnitsPerMajor)
}

// MajorToMinor converte a unidade principal para centavos (ex.: 10.50 -> 1050)
func MajorToMinor(major decimal.Decimal) decimal.Decimal {
	return major.Mul(minorUnitsPerMajor)
}

// TruncateMinor descarta a parte fracionária. Usado apenas no gasto acumulado (lifetime spend).
func TruncateMinor(minor decimal.Decimal) decimal.Decimal {
	return minor.Truncate(0)
}

// ParseAmount converte um valor numérico textual da plataforma.
// Campo vazio vale zero; valor ilegível vale zero e retorna ErrMalformedData.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, nil
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: valor %q: %v", ErrMalformedData, raw, err)
	}

	return value, nil
}

// AvailableFunds calcula (spendCap - amountSpent + balance) em centavos e devolve na unidade principal
func AvailableFunds(spendCap, amountSpent, balance decimal.Decimal) decimal.Decimal {
	return MinorToMajor(spendCap.Sub(amountSpent).Add(balance))
}
