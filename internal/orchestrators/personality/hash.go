package personality

import "github.com/dexkit/pokedex-api/internal/entities/dex"

// One prime per question, in question order. Multiplying each answer
// weight by a distinct prime spreads the 151 type IDs across answer
// combinations.
var questionPrimes = []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}

// typeID folds the answers into a catalog ID in [1, 151]. An unanswered
// or unrecognized answer counts as weight 1.
func typeID(answers Answers) int {
	hash := 0
	for i, q := range questions {
		weight := 1
		if opt, ok := findOption(q, answers[q.ID]); ok {
			weight = opt.Weight
		}
		hash += weight * questionPrimes[i]
	}
	return (hash % dex.CatalogSize) + 1
}
