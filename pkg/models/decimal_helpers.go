package models

import "github.com/shopspring/decimal"

// ToFloat64 safely converts decimal to float64
func ToFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// MeanFloat64 returns the arithmetic mean of values, treating an empty set as denominator 1
func MeanFloat64(values []float64) float64 {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	n := int64(len(values))
	if n == 0 {
		n = 1
	}
	return ToFloat64(sum.Div(decimal.NewFromInt(n)))
}
