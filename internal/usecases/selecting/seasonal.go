package selecting

import (
	"time"
)

// seasonalCuisines maps a calendar month to the cuisines pushed during it.
var seasonalCuisines = map[time.Month][]string{
	time.January:   {"korean", "japanese", "vietnamese"},
	time.February:  {"french", "italian"},
	time.March:     {"mediterranean", "indian"},
	time.April:     {"thai", "vietnamese"},
	time.May:       {"mexican"},
	time.June:      {"bbq", "seafood"},
	time.July:      {"bbq", "american"},
	time.August:    {"seafood", "japanese"},
	time.September: {"american", "pizza"},
	time.October:   {"american", "indian"},
	time.November:  {"american", "french"},
	time.December:  {"french", "italian"},
}

func isSeasonalMatch(categories []string, month time.Month) bool {
	preferred := seasonalCuisines[month]
	for _, category := range categories {
		for _, cuisine := range preferred {
			if category == cuisine {
				return true
			}
		}
	}
	return false
}
