// Package summary derives a corpus-level executive summary from the full
// comment sequence: sentiment counts, an overall sentiment verdict, and
// deduplicated theme, concern and suggestion tags.
package summary

import "strings"

// Overall is the corpus-level sentiment verdict.
type Overall string

const (
	OverallPositive Overall = "positive"
	OverallNegative Overall = "negative"
	OverallMixed    Overall = "mixed"
)

// Rule tags the corpus when any trigger substring occurs in a comment.
// Rules are plain data so new tags can be added without touching the
// summarizer's control flow.
type Rule struct {
	Triggers []string
	Tag      string
}

// SentimentCounts holds the per-bucket comment totals.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Summary is the aggregate view of one comment corpus.
type Summary struct {
	TotalComments    int             `json:"total_comments"`
	Sentiment        SentimentCounts `json:"sentiment"`
	OverallSentiment Overall         `json:"overall_sentiment"`
	Themes           []string        `json:"themes"`
	Concerns         []string        `json:"concerns"`
	Suggestions      []string        `json:"suggestions"`
}

// Summarizer runs keyword detectors over every comment.
type Summarizer struct {
	positive []string
	negative []string
	neutral  []string

	themes      []Rule
	concerns    []Rule
	suggestions []Rule
}

// NewSummarizer creates a summarizer with the default signal lists and
// rule tables. Signals and triggers are lowercased once here rather than
// on every match.
func NewSummarizer() *Summarizer {
	return &Summarizer{
		positive:    lowered(defaultPositiveSignals),
		negative:    lowered(defaultNegativeSignals),
		neutral:     lowered(defaultNeutralSignals),
		themes:      loweredRules(defaultThemeRules),
		concerns:    loweredRules(defaultConcernRules),
		suggestions: loweredRules(defaultSuggestionRules),
	}
}

// SetSignals replaces the sentiment signal lists. Nil keeps the current
// list for that bucket.
func (s *Summarizer) SetSignals(positive, negative, neutral []string) {
	if positive != nil {
		s.positive = lowered(positive)
	}
	if negative != nil {
		s.negative = lowered(negative)
	}
	if neutral != nil {
		s.neutral = lowered(neutral)
	}
}

// SetRules replaces the tag rule tables. Nil keeps the current table.
func (s *Summarizer) SetRules(themes, concerns, suggestions []Rule) {
	if themes != nil {
		s.themes = loweredRules(themes)
	}
	if concerns != nil {
		s.concerns = loweredRules(concerns)
	}
	if suggestions != nil {
		s.suggestions = loweredRules(suggestions)
	}
}

// Summarize recomputes the summary from the full comment sequence.
// Zero comments yields nil, which callers render as an empty state.
func (s *Summarizer) Summarize(comments []string) *Summary {
	if len(comments) == 0 {
		return nil
	}

	out := &Summary{TotalComments: len(comments)}

	lowered := make([]string, len(comments))
	for i, comment := range comments {
		lowered[i] = strings.ToLower(comment)
	}

	for _, comment := range lowered {
		hasPositive := anyPresent(comment, s.positive)
		hasNegative := anyPresent(comment, s.negative)
		switch {
		case hasPositive && !hasNegative:
			out.Sentiment.Positive++
		case hasNegative && !hasPositive:
			out.Sentiment.Negative++
		default:
			out.Sentiment.Neutral++
		}
	}

	out.Themes = applyRules(lowered, s.themes)
	out.Concerns = applyRules(lowered, s.concerns)
	out.Suggestions = applyRules(lowered, s.suggestions)

	counts := out.Sentiment
	switch {
	case counts.Positive > counts.Negative && counts.Positive > counts.Neutral:
		out.OverallSentiment = OverallPositive
	case counts.Negative > counts.Positive && counts.Negative > counts.Neutral:
		out.OverallSentiment = OverallNegative
	default:
		out.OverallSentiment = OverallMixed
	}

	return out
}

// applyRules collects each rule's tag at most once, in table order, when
// any of its triggers occurs in any comment.
func applyRules(lowered []string, rules []Rule) []string {
	var tags []string
	for _, rule := range rules {
		for _, comment := range lowered {
			if anyPresent(comment, rule.Triggers) {
				tags = append(tags, rule.Tag)
				break
			}
		}
	}
	return tags
}

// anyPresent expects both the text and the terms to be lowercased.
func anyPresent(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func lowered(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// loweredRules copies the tables so callers' rule slices are not
// mutated.
func loweredRules(in []Rule) []Rule {
	out := make([]Rule, len(in))
	for i, r := range in {
		out[i] = Rule{Triggers: lowered(r.Triggers), Tag: r.Tag}
	}
	return out
}
