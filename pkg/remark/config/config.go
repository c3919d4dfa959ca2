package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Keywords represents the keyword list configuration. Empty lists fall
// back to the built-in defaults when components are constructed.
type Keywords struct {
	Agreement []string `yaml:"agreement"`
	Removal   []string `yaml:"removal"`
	Positive  []string `yaml:"positive"`
	Negative  []string `yaml:"negative"`
	Neutral   []string `yaml:"neutral"`
}

// LoadKeywords loads keyword lists from a YAML file
func LoadKeywords(path string) (*Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var kw Keywords
	if err := yaml.Unmarshal(data, &kw); err != nil {
		return nil, err
	}

	return &kw, nil
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}

// RuleConfig is one (triggers, tag) detector rule.
type RuleConfig struct {
	Triggers []string `yaml:"triggers"`
	Tag      string   `yaml:"tag"`
}

// Rules represents the theme/concern/suggestion rule tables.
type Rules struct {
	Themes      []RuleConfig `yaml:"themes"`
	Concerns    []RuleConfig `yaml:"concerns"`
	Suggestions []RuleConfig `yaml:"suggestions"`
}

// LoadRules loads rule tables from a YAML file
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, err
	}

	return &r, nil
}
