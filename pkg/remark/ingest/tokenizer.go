package ingest

import (
	"strings"
	"unicode"
)

// Predicate decides whether a candidate token survives filtering.
// Predicates receive the already lowercased token.
type Predicate func(string) bool

// suffixFragments are bare morpheme endings that show up when a word is
// split mid-token (e.g. by aggressive punctuation stripping). They carry
// no topical meaning on their own.
var suffixFragments = map[string]struct{}{
	"ing": {}, "ion": {}, "tion": {}, "ness": {}, "ment": {},
	"able": {}, "ible": {}, "ful": {}, "less": {},
}

// Tokenizer normalizes consultation text and splits it into word tokens
// suitable for frequency counting.
type Tokenizer struct {
	stopwords map[string]struct{}
	filters   []Predicate
}

// NewTokenizer creates a tokenizer with the given stopword list.
// A nil list enables the default consultation stopword set.
func NewTokenizer(stopwords []string) *Tokenizer {
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	t := &Tokenizer{stopwords: stops}
	t.filters = []Predicate{
		minLength,
		notPureDigits,
		notYear,
		notDateLike,
		notMostlyDigits,
		alphabeticOnly,
		func(tok string) bool { return !t.isStopword(tok) },
		notSuffixFragment,
	}
	return t
}

// Tokenize lowercases the text, destroys every rune that is not a letter
// or whitespace, splits on whitespace, and keeps only tokens that pass
// the full filter chain. An empty input yields an empty slice.
func (t *Tokenizer) Tokenize(text string) []string {
	var normalized strings.Builder
	normalized.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			normalized.WriteRune(r)
		} else {
			normalized.WriteRune(' ')
		}
	}

	var tokens []string
	for _, candidate := range strings.Fields(normalized.String()) {
		if t.Keep(candidate) {
			tokens = append(tokens, candidate)
		}
	}
	return tokens
}

// Keep applies the full predicate chain to a single token. It is exposed
// so individual filters can be exercised with tokens the normalizer would
// otherwise break apart (dates, mixed alphanumerics).
func (t *Tokenizer) Keep(token string) bool {
	token = strings.ToLower(token)
	for _, pred := range t.filters {
		if !pred(token) {
			return false
		}
	}
	return true
}

// AddFilter appends a predicate to the end of the chain.
func (t *Tokenizer) AddFilter(p Predicate) {
	t.filters = append(t.filters, p)
}

// AddStopword adds a word to the stopword list.
func (t *Tokenizer) AddStopword(word string) {
	t.stopwords[strings.ToLower(word)] = struct{}{}
}

// RemoveStopword removes a word from the stopword list.
func (t *Tokenizer) RemoveStopword(word string) {
	delete(t.stopwords, strings.ToLower(word))
}

func (t *Tokenizer) isStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}

func minLength(tok string) bool {
	return len(tok) >= 3
}

func notPureDigits(tok string) bool {
	return !isDigits(tok)
}

// notYear rejects 4-digit tokens in the 1900-2099 range.
func notYear(tok string) bool {
	if len(tok) != 4 || !isDigits(tok) {
		return true
	}
	return !((tok[0] == '1' && tok[1] == '9') || (tok[0] == '2' && tok[1] == '0'))
}

// notDateLike rejects numeric tokens joined by date separators,
// e.g. "12/04/2023", "2023-01-31", "1.2.2024".
func notDateLike(tok string) bool {
	parts := strings.FieldsFunc(tok, func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
	if len(parts) < 2 {
		return true
	}
	for _, p := range parts {
		if !isDigits(p) {
			return true
		}
	}
	return false
}

// notMostlyDigits rejects tokens that are numeric noise with at most one
// non-digit rune, e.g. "2023a" or "12345x".
func notMostlyDigits(tok string) bool {
	if len(tok) <= 2 {
		return true
	}
	digits := 0
	for _, r := range tok {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits < len(tok)-1
}

// alphabeticOnly guards residual tokens; after normalization this is
// mostly redundant but Keep can be called with raw candidates.
func alphabeticOnly(tok string) bool {
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func notSuffixFragment(tok string) bool {
	_, ok := suffixFragments[tok]
	return !ok
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
