package indicators

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLatest(t *testing.T) {
	fallback := decimal.NewFromInt(42)

	assert.True(t, fallback.Equal(Latest(nil, fallback)))

	series := []decimal.Decimal{decimal.NewFromInt(1), decimal.NewFromInt(2)}
	assert.True(t, decimal.NewFromInt(2).Equal(Latest(series, fallback)))
}

func TestLatestPresent(t *testing.T) {
	fallback := decimal.NewFromInt(50)

	assert.True(t, fallback.Equal(LatestPresent(nil, fallback)))

	allAbsent := make([]decimal.NullDecimal, 5)
	assert.True(t, fallback.Equal(LatestPresent(allAbsent, fallback)))

	// trailing absent entries are skipped back to the last present one
	series := make([]decimal.NullDecimal, 5)
	series[1] = present(decimal.NewFromInt(7))
	series[2] = present(decimal.NewFromInt(9))
	assert.True(t, decimal.NewFromInt(9).Equal(LatestPresent(series, fallback)))
}

func TestClamp(t *testing.T) {
	lo := decimal.Zero
	hi := decimal.NewFromInt(100)

	assert.True(t, decimal.NewFromInt(50).Equal(clamp(decimal.NewFromInt(50), lo, hi)))
	assert.True(t, hi.Equal(clamp(decimal.NewFromInt(150), lo, hi)))
	assert.True(t, lo.Equal(clamp(decimal.NewFromInt(-10), lo, hi)))
}
