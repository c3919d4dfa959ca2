// Package rank aggregates token counts across a corpus into a bounded,
// display-scaled word frequency ranking.
package rank

import (
	"math"
	"sort"
)

const (
	// MaxEntries bounds the ranking to the most frequent words.
	MaxEntries = 50

	// MinDisplaySize and MaxDisplaySize are the inclusive bounds of the
	// linear size scale used for presentation.
	MinDisplaySize = 12
	MaxDisplaySize = 36
)

// WordFrequency is one ranked entry. DisplaySize is scaled over the
// retained top entries only, not the full distribution.
type WordFrequency struct {
	Word        string `json:"word"`
	Frequency   int    `json:"frequency"`
	DisplaySize int    `json:"display_size"`
}

// Top counts occurrences per distinct token and returns up to MaxEntries
// entries sorted by descending frequency. Ties keep the order in which
// the tokens first appeared in the stream. An empty stream yields nil.
func Top(tokens []string) []WordFrequency {
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	var order []string
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	entries := make([]WordFrequency, 0, len(order))
	for _, word := range order {
		entries = append(entries, WordFrequency{Word: word, Frequency: counts[word]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Frequency > entries[j].Frequency
	})

	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	// min/max are taken after truncation so the scale reflects only the
	// displayed entries.
	maxFreq := entries[0].Frequency
	minFreq := entries[len(entries)-1].Frequency
	span := float64(maxFreq - minFreq)

	for i := range entries {
		norm := 0.0
		if span > 0 {
			norm = float64(entries[i].Frequency-minFreq) / span
		}
		size := float64(MinDisplaySize) + norm*float64(MaxDisplaySize-MinDisplaySize)
		entries[i].DisplaySize = int(math.Round(size))
	}

	return entries
}
