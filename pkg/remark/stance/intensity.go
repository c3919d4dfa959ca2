package stance

import "github.com/jonreiter/govader"

var analyzer = govader.NewSentimentIntensityAnalyzer()

// IntensityScore returns the VADER compound polarity of the text,
// in [-1, 1]. The lexicon is read-only after construction, so the
// shared analyzer is safe for concurrent use.
func IntensityScore(text string) float64 {
	return analyzer.PolarityScores(text).Compound
}
