package summary

// Sentiment signal lists. The neutral list is deliberately distinct from
// the stance classifier's keyword lists: it marks comments that ask for
// changes rather than endorse or reject.
var (
	// "commend" is excluded: as a substring it would match "recommend",
	// pulling the neutral bucket's most common phrasing into positive.
	defaultPositiveSignals = []string{
		"support", "excellent", "good", "great", "appreciate", "welcome",
		"beneficial", "strengthen", "endorse",
	}
	defaultNegativeSignals = []string{
		"poor", "bad", "harmful", "concern", "worried", "against",
		"oppose", "burden", "damaging",
	}
	defaultNeutralSignals = []string{
		"suggest", "recommend", "consider", "clarify", "modify",
	}
)

// defaultThemeRules tag recurring subject matter across the corpus.
var defaultThemeRules = []Rule{
	{Triggers: []string{"transparen", "accountab"}, Tag: "Transparency and accountability"},
	{Triggers: []string{"complian", "audit"}, Tag: "Compliance and audit readiness"},
	{Triggers: []string{"data protection", "privacy", "personal data"}, Tag: "Data protection and privacy"},
	{Triggers: []string{"penalt", "enforcement", "prosecution"}, Tag: "Penalties and enforcement"},
	{Triggers: []string{"disclosure", "reporting requirement"}, Tag: "Disclosure and reporting"},
	{Triggers: []string{"digital", "online portal", "e-filing"}, Tag: "Digital processes"},
}

// defaultConcernRules tag risks stakeholders raise.
var defaultConcernRules = []Rule{
	{Triggers: []string{"drive away", "relocat", "move abroad"}, Tag: "Risk of driving away businesses"},
	{Triggers: []string{"cost", "expensive", "burden"}, Tag: "Increased compliance costs"},
	{Triggers: []string{"harsh", "excessive", "disproportionate"}, Tag: "Overly harsh penalties"},
	{Triggers: []string{"unclear", "ambiguous", "vague", "confusing"}, Tag: "Ambiguity in the provisions"},
	{Triggers: []string{"small business", "msme", "startup"}, Tag: "Disproportionate impact on small businesses"},
}

// defaultSuggestionRules tag concrete changes stakeholders propose.
var defaultSuggestionRules = []Rule{
	{Triggers: []string{"phased", "phase-wise", "in phases", "stagger"}, Tag: "Implement changes in phases"},
	{Triggers: []string{"clarify", "clearer", "guidance", "guideline"}, Tag: "Provide clearer implementation guidelines"},
	{Triggers: []string{"extend", "more time", "longer period", "defer"}, Tag: "Extend the compliance timeline"},
	{Triggers: []string{"exempt", "threshold", "carve-out"}, Tag: "Exempt smaller entities"},
	{Triggers: []string{"workshop", "awareness", "training"}, Tag: "Conduct awareness and training programmes"},
}
