package selecting

// weightedCategory biases the random draw toward historically popular
// cuisines without ever excluding the rare ones.
type weightedCategory struct {
	alias  string
	weight int
}

var categoryWeights = []weightedCategory{
	{"italian", 12},
	{"mexican", 12},
	{"japanese", 10},
	{"chinese", 10},
	{"american", 8},
	{"thai", 8},
	{"indian", 8},
	{"mediterranean", 6},
	{"korean", 5},
	{"vietnamese", 5},
	{"french", 5},
	{"bbq", 4},
	{"seafood", 4},
	{"pizza", 3},
}

var totalCategoryWeight = func() int {
	total := 0
	for _, c := range categoryWeights {
		total += c.weight
	}
	return total
}()

// categoryForRoll walks the weighted list for a roll in [0, totalWeight).
func categoryForRoll(roll int) string {
	for _, c := range categoryWeights {
		if roll < c.weight {
			return c.alias
		}
		roll -= c.weight
	}
	// Out-of-range roll falls through to the last category.
	return categoryWeights[len(categoryWeights)-1].alias
}
