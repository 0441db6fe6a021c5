package tally

import (
	"testing"

	"github.com/pollbox/pollbox/models"
)

func TestCountSingleSelect(t *testing.T) {
	options := []string{"A", "B", "C"}
	votes := []models.Vote{
		{Option: models.Single("A"), Timestamp: "2024-03-01T10:00:00Z"},
		{Option: models.Single("A"), Timestamp: "2024-03-01T10:01:00Z"},
		{Option: models.Single("B"), Timestamp: "2024-03-01T10:02:00Z"},
	}

	counts := Count(votes, options)
	want := map[string]int{"A": 2, "B": 1, "C": 0}
	if len(counts) != len(want) {
		t.Fatalf("Count() has %d keys, want %d", len(counts), len(want))
	}
	for opt, n := range want {
		if counts[opt] != n {
			t.Errorf("counts[%q] = %d, want %d", opt, counts[opt], n)
		}
	}
}

func TestCountMultiSelectFlattens(t *testing.T) {
	options := []string{"A", "B", "C"}
	votes := []models.Vote{
		{Option: models.Multiple([]string{"A", "C"}), Timestamp: "2024-03-01T10:00:00Z"},
	}

	counts := Count(votes, options)
	if counts["A"] != 1 || counts["B"] != 0 || counts["C"] != 1 {
		t.Errorf("Count() = %v, want A:1 B:0 C:1", counts)
	}
}

func TestCountDropsRemovedOptions(t *testing.T) {
	// "Old" was an option at submission time but is gone now
	options := []string{"A", "B"}
	votes := []models.Vote{
		{Option: models.Single("Old"), Timestamp: "2024-03-01T10:00:00Z"},
		{Option: models.Multiple([]string{"A", "Old"}), Timestamp: "2024-03-01T10:01:00Z"},
	}

	counts := Count(votes, options)
	if len(counts) != 2 {
		t.Fatalf("Count() has %d keys, want 2", len(counts))
	}
	if counts["A"] != 1 || counts["B"] != 0 {
		t.Errorf("Count() = %v, want A:1 B:0", counts)
	}
	if _, ok := counts["Old"]; ok {
		t.Error("removed option leaked into the tally")
	}
}

func TestCountProperties(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		votes   []models.Vote
	}{
		{"empty everything", nil, nil},
		{"no votes", []string{"A", "B"}, nil},
		{"no options", nil, []models.Vote{{Option: models.Single("A")}}},
		{"mixed", []string{"A", "B", "C"}, []models.Vote{
			{Option: models.Single("A")},
			{Option: models.Multiple([]string{"B", "C"})},
			{Option: models.Single("gone")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := Count(tt.votes, tt.options)

			if len(counts) != len(tt.options) {
				t.Errorf("Count() has %d keys, want one per option (%d)", len(counts), len(tt.options))
			}

			sum, flattened := 0, 0
			for _, n := range counts {
				if n < 0 {
					t.Errorf("negative count %d", n)
				}
				sum += n
			}
			for _, v := range tt.votes {
				flattened += v.Option.Len()
			}
			if sum > flattened {
				t.Errorf("sum of counts %d exceeds flattened selections %d", sum, flattened)
			}
		})
	}
}

func TestPercentagesZeroTotal(t *testing.T) {
	counts := map[string]int{"A": 0, "B": 0, "C": 0}
	pcts := Percentages(counts, 0)
	for opt, p := range pcts {
		if p != 0.0 {
			t.Errorf("pcts[%q] = %v, want 0.0", opt, p)
		}
	}
	if len(pcts) != 3 {
		t.Errorf("Percentages() has %d keys, want 3", len(pcts))
	}
}

func TestPercentagesOneDecimalRounding(t *testing.T) {
	counts := map[string]int{"A": 2, "B": 1, "C": 0}
	pcts := Percentages(counts, 3)

	want := map[string]float64{"A": 66.7, "B": 33.3, "C": 0.0}
	for opt, p := range want {
		if pcts[opt] != p {
			t.Errorf("pcts[%q] = %v, want %v", opt, pcts[opt], p)
		}
	}
}

func TestPercentagesMultiSelectDenominator(t *testing.T) {
	// One vote record choosing two options: each option gets 100% of one
	// vote, so percentages exceed a 100 sum. Total is vote records, not
	// flattened selections.
	options := []string{"A", "B", "C"}
	votes := []models.Vote{
		{Option: models.Multiple([]string{"A", "C"}), Timestamp: "2024-03-01T10:00:00Z"},
	}

	counts := Count(votes, options)
	pcts := Percentages(counts, len(votes))
	if pcts["A"] != 100.0 || pcts["C"] != 100.0 || pcts["B"] != 0.0 {
		t.Errorf("Percentages() = %v, want A:100 B:0 C:100", pcts)
	}
}
