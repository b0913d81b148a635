package indicators

import (
	"sort"

	"github.com/shopspring/decimal"
)

const maxLevels = 5

// Levels price floors and ceilings picked from local extrema.
// Support sorts ascending, resistance descending, at most five each.
type Levels struct {
	Support    []decimal.Decimal
	Resistance []decimal.Decimal
}

// DetectLevels scans every position with a full +/-window neighborhood.
// A price is support when no neighbor sits strictly below it and resistance
// when no neighbor sits strictly above it, so plateaus qualify on both
// sides. Fewer than 2*window prices yields empty levels. A non-positive
// window falls back to DefaultLevelWindow.
func DetectLevels(prices []decimal.Decimal, window int) Levels {
	if window <= 0 {
		window = DefaultLevelWindow
	}
	if len(prices) < window*2 {
		return Levels{}
	}

	var support, resistance []decimal.Decimal
	for i := window; i < len(prices)-window; i++ {
		isMinimum := true
		for j := i - window; j <= i+window; j++ {
			if j != i && prices[j].LessThan(prices[i]) {
				isMinimum = false
				break
			}
		}
		if isMinimum {
			support = append(support, prices[i])
		}

		isMaximum := true
		for j := i - window; j <= i+window; j++ {
			if j != i && prices[j].GreaterThan(prices[i]) {
				isMaximum = false
				break
			}
		}
		if isMaximum {
			resistance = append(resistance, prices[i])
		}
	}

	return Levels{
		Support:    topLevels(support, false),
		Resistance: topLevels(resistance, true),
	}
}

// topLevels deduplicates, sorts and caps a level list.
func topLevels(levels []decimal.Decimal, descending bool) []decimal.Decimal {
	if len(levels) == 0 {
		return nil
	}

	sort.Slice(levels, func(i, j int) bool {
		if descending {
			return levels[i].GreaterThan(levels[j])
		}
		return levels[i].LessThan(levels[j])
	})

	deduped := levels[:1]
	for _, l := range levels[1:] {
		if !l.Equal(deduped[len(deduped)-1]) {
			deduped = append(deduped, l)
		}
	}

	if len(deduped) > maxLevels {
		deduped = deduped[:maxLevels]
	}
	return deduped
}
