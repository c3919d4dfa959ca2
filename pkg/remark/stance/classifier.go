// Package stance classifies individual consultation comments into one of
// three stance labels using fixed keyword lists. Matching is substring
// based and counts presence per distinct keyword, not occurrences.
package stance

import (
	"math/rand"
	"strings"
)

// Label is the three-way stance tag assigned to a comment.
type Label string

const (
	Agreement    Label = "agreement"
	Modification Label = "modification"
	Removal      Label = "removal"
)

// Confidence bounds for the two branches of the classifier.
const (
	baseConfidence = 0.6
	stepConfidence = 0.1
	maxConfidence  = 0.95
	tieFloor       = 0.7
	tieSpan        = 0.2
)

// defaultAgreement signals that the commenter endorses the proposal.
// Keywords match as substrings, so invertible stems are excluded:
// "agree" would match "disagree" and "commend" would match "recommend".
var defaultAgreement = []string{
	"support", "excellent", "good", "positive", "appreciate",
	"strengthen", "improve", "comprehensive", "welcome", "beneficial",
	"endorse",
}

// defaultRemoval signals opposition or a request to withdraw.
var defaultRemoval = []string{
	"concern", "poor", "harm", "restrict", "serious", "drive away",
	"burden", "against", "oppose", "remove", "withdraw", "excessive",
}

// Result is the classification of one comment. Intensity is the VADER
// compound polarity of the same text, carried alongside the keyword
// stance as a finer-grained signal.
type Result struct {
	Comment    string  `json:"comment"`
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
	Intensity  float64 `json:"intensity"`
}

// Classifier scores comments against agreement and removal keyword lists.
type Classifier struct {
	agreement []string
	removal   []string
	random    func() float64
}

// NewClassifier creates a classifier with the given keyword lists.
// Nil lists enable the defaults. The tie-break confidence draw uses the
// shared math/rand source until SetRandom replaces it.
func NewClassifier(agreement, removal []string) *Classifier {
	if agreement == nil {
		agreement = defaultAgreement
	}
	if removal == nil {
		removal = defaultRemoval
	}
	return &Classifier{
		agreement: lowered(agreement),
		removal:   lowered(removal),
		random:    rand.Float64,
	}
}

// SetRandom replaces the randomness source used for tie confidence.
// The function must return values in [0, 1).
func (c *Classifier) SetRandom(fn func() float64) {
	if fn != nil {
		c.random = fn
	}
}

// FixedRandom returns a source that always yields v. FixedRandom(0.5)
// pins tie confidence to the 0.8 midpoint for reproducible runs.
func FixedRandom(v float64) func() float64 {
	return func() float64 { return v }
}

// Classify scores one comment. It is total: every string, including the
// empty one, yields a result (zero matches fall into the tie branch).
func (c *Classifier) Classify(comment string) Result {
	lower := strings.ToLower(comment)

	agreementHits := countPresent(lower, c.agreement)
	removalHits := countPresent(lower, c.removal)

	result := Result{
		Comment:   comment,
		Intensity: IntensityScore(comment),
	}

	switch {
	case agreementHits > removalHits:
		result.Label = Agreement
		result.Confidence = winnerConfidence(agreementHits)
	case removalHits > agreementHits:
		result.Label = Removal
		result.Confidence = winnerConfidence(removalHits)
	default:
		result.Label = Modification
		result.Confidence = tieFloor + tieSpan*c.random()
	}
	return result
}

// ClassifyAll classifies every comment in input order.
func (c *Classifier) ClassifyAll(comments []string) []Result {
	results := make([]Result, len(comments))
	for i, comment := range comments {
		results[i] = c.Classify(comment)
	}
	return results
}

func winnerConfidence(hits int) float64 {
	conf := baseConfidence + stepConfidence*float64(hits)
	if conf > maxConfidence {
		return maxConfidence
	}
	return conf
}

// countPresent counts how many distinct keywords occur in the text.
// A keyword appearing multiple times still counts once.
func countPresent(lower string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	return hits
}

func lowered(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
