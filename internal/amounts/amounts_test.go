package amounts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFromBase(t *testing.T) {
	require.Equal(t, "1.5", FromBase(150_000_000, NativeDecimals).String())
	require.Equal(t, "0.000001", FromBase(1, 6).String())
	require.Equal(t, "42", FromBase(42, 0).String())
}

func TestToBaseFloorsExcessPrecision(t *testing.T) {
	// 1.2345678901 WAVES has more precision than 8 decimals can hold; the
	// extra digits are dropped, never rounded up.
	amount := decimal.RequireFromString("1.2345678901")
	base, err := ToBase(amount, NativeDecimals)
	require.NoError(t, err)
	require.Equal(t, int64(123_456_789), base)
}

func TestToBaseExactAmount(t *testing.T) {
	base, err := ToBase(decimal.RequireFromString("2.5"), 6)
	require.NoError(t, err)
	require.Equal(t, int64(2_500_000), base)
}

func TestBaseUnitsRoundTrip(t *testing.T) {
	// floor((q/10^d)*10^d) == q for any base-unit/decimals pair.
	for _, tc := range []struct {
		base     int64
		decimals int
	}{
		{150_000_000, NativeDecimals},
		{1, 6},
		{999_999, 6},
		{42, 0},
	} {
		back, err := ToBase(FromBase(tc.base, tc.decimals), tc.decimals)
		require.NoError(t, err)
		require.Equal(t, tc.base, back)
	}
}

func TestToBaseRejectsNegative(t *testing.T) {
	_, err := ToBase(decimal.RequireFromString("-1"), 6)
	require.Error(t, err)
}

func TestToBaseRejectsOverflow(t *testing.T) {
	_, err := ToBase(decimal.RequireFromString("99999999999999999999"), NativeDecimals)
	require.Error(t, err)
}

func TestIsIntegral(t *testing.T) {
	require.True(t, IsIntegral(decimal.RequireFromString("10")))
	require.True(t, IsIntegral(decimal.RequireFromString("10.00")))
	require.False(t, IsIntegral(decimal.RequireFromString("10.5")))
}

func TestScaleAPY(t *testing.T) {
	// 8 decimals scale by 10^6: raw 5_234_568 is 5.234568%.
	require.InDelta(t, 5.234568, ScaleAPY(5_234_568, 8), 1e-12)
	// 6 decimals scale by 10^4.
	require.InDelta(t, 3.25, ScaleAPY(32_500, 6), 1e-12)
}

func TestMinOutput(t *testing.T) {
	require.Equal(t, int64(990), MinOutput(1000, 1))
	require.Equal(t, int64(1000), MinOutput(1000, 0))
	// Fractional results floor.
	require.Equal(t, int64(994), MinOutput(999, 0.5))
}
