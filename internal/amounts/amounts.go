// Package amounts converts between human-readable token quantities and the
// base-unit integers the chain expects. Every conversion is anchored on an
// explicit decimals count; nothing here guesses precision.
package amounts

import (
	"github.com/shopspring/decimal"

	txerr "github.com/puzzlend/puzzlend/internal/errors"
)

// NativeDecimals is the fixed decimal scale of the chain's own token.
const NativeDecimals = 8

var one = decimal.NewFromInt(1)
var hundred = decimal.NewFromInt(100)

// FromBase converts a base-unit quantity into human units.
func FromBase(base int64, decimals int) decimal.Decimal {
	return decimal.New(base, 0).Shift(int32(-decimals))
}

// ToBase converts a human-unit quantity into base units, flooring any
// precision beyond the asset's decimals.
func ToBase(amount decimal.Decimal, decimals int) (int64, error) {
	if amount.IsNegative() {
		return 0, txerr.New(txerr.CodeUsage, "amount must be non-negative")
	}
	scaled := amount.Shift(int32(decimals)).Floor()
	if !scaled.IsInteger() || !scaled.BigInt().IsInt64() {
		return 0, txerr.Newf(txerr.CodeUsage, "amount %s exceeds base-unit range", amount)
	}
	return scaled.IntPart(), nil
}

// FloorWhole truncates a quantity to a whole token count.
func FloorWhole(amount decimal.Decimal) decimal.Decimal {
	return amount.Floor()
}

// IsIntegral reports whether the quantity has no fractional part.
func IsIntegral(amount decimal.Decimal) bool {
	return amount.IsInteger()
}

// ScaleAPY turns a raw APY quantity and its decimal count into a percentage
// where 1.0 means 1%. The scale is decimals-2 because the contract stores
// rates as fractions, not percentage points.
func ScaleAPY(quantity int64, decimals int) float64 {
	return decimal.New(quantity, 0).Shift(int32(-(decimals - 2))).InexactFloat64()
}

// MinOutput applies a maximum slippage percentage to an estimated output and
// floors the result to an integer base-unit amount.
func MinOutput(estimatedOut int64, maxSlippagePct float64) int64 {
	slip := decimal.NewFromFloat(maxSlippagePct).Div(hundred)
	return decimal.New(estimatedOut, 0).Mul(one.Sub(slip)).Floor().IntPart()
}
