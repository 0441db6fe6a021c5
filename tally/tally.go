package tally

import (
	"math"

	"github.com/pollbox/pollbox/models"
)

// Count derives per-option vote counts from the vote log under the current
// option list. Every current option is present in the result, starting at
// zero. Each vote's selection is flattened and every name still in the
// option list is incremented; names referencing removed options are
// silently dropped. Pure and total.
func Count(votes []models.Vote, options []string) map[string]int {
	counts := make(map[string]int, len(options))
	for _, opt := range options {
		counts[opt] = 0
	}
	for _, v := range votes {
		for _, name := range v.Option.Values() {
			if _, ok := counts[name]; ok {
				counts[name]++
			}
		}
	}
	return counts
}

// Percentages converts counts to per-option percentages of totalVotes,
// rounded to one decimal place. totalVotes is the number of vote records,
// not the sum of flattened selections, so multi-select percentages do not
// sum to 100%. A zero total yields 0.0 everywhere.
func Percentages(counts map[string]int, totalVotes int) map[string]float64 {
	pcts := make(map[string]float64, len(counts))
	for opt, c := range counts {
		if totalVotes == 0 {
			pcts[opt] = 0.0
			continue
		}
		pcts[opt] = math.Round(float64(c)/float64(totalVotes)*1000) / 10
	}
	return pcts
}
