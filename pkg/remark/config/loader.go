package config

import (
	"fmt"

	"github.com/civicsignal/remark/pkg/remark/ingest"
	"github.com/civicsignal/remark/pkg/remark/stance"
	"github.com/civicsignal/remark/pkg/remark/summary"
)

// Loader loads all configuration files and constructs components.
// Empty paths select the built-in defaults for that concern.
type Loader struct {
	KeywordsPath string
	StoplistPath string
	RulesPath    string
}

// Components holds all loaded analysis components
type Components struct {
	Tokenizer  *ingest.Tokenizer
	Classifier *stance.Classifier
	Summarizer *summary.Summarizer
}

// Load reads all configuration files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	// Load stoplist
	if l.StoplistPath != "" {
		stoplist, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Tokenizer = ingest.NewTokenizer(stoplist.Terms)
	} else {
		comp.Tokenizer = ingest.NewTokenizer(nil)
	}

	// Load keyword lists
	var kw *Keywords
	if l.KeywordsPath != "" {
		loaded, err := LoadKeywords(l.KeywordsPath)
		if err != nil {
			return nil, fmt.Errorf("load keywords: %w", err)
		}
		kw = loaded
	}

	if kw != nil {
		comp.Classifier = stance.NewClassifier(orNil(kw.Agreement), orNil(kw.Removal))
	} else {
		comp.Classifier = stance.NewClassifier(nil, nil)
	}

	comp.Summarizer = summary.NewSummarizer()
	if kw != nil {
		comp.Summarizer.SetSignals(orNil(kw.Positive), orNil(kw.Negative), orNil(kw.Neutral))
	}

	// Load rule tables
	if l.RulesPath != "" {
		rules, err := LoadRules(l.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("load rules: %w", err)
		}
		comp.Summarizer.SetRules(
			toRules(rules.Themes),
			toRules(rules.Concerns),
			toRules(rules.Suggestions),
		)
	}

	return comp, nil
}

func toRules(in []RuleConfig) []summary.Rule {
	if len(in) == 0 {
		return nil
	}
	out := make([]summary.Rule, len(in))
	for i, r := range in {
		out[i] = summary.Rule{Triggers: r.Triggers, Tag: r.Tag}
	}
	return out
}

// orNil maps an empty list to nil so component constructors keep their
// defaults for lists the file does not set.
func orNil(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	return in
}
