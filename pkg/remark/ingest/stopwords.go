package ingest

// defaultStopwords is the built-in stopword set: common English function
// words plus the boilerplate vocabulary of regulatory consultations,
// which would otherwise dominate every frequency ranking.
var defaultStopwords = []string{
	// Articles, pronouns, demonstratives
	"the", "and", "for", "are", "but", "not", "you", "all", "any",
	"can", "her", "was", "one", "our", "out", "has", "had", "have",
	"your", "this", "that", "these", "those", "they", "them", "their",
	"there", "then", "than", "its", "his", "she", "him", "who", "whom",
	"whose", "which", "what", "when", "where", "why", "how",
	// Auxiliaries and modals
	"will", "would", "shall", "should", "could", "may", "might", "must",
	"been", "being", "does", "did", "doing", "done",
	// Conjunctions, prepositions, fillers
	"with", "from", "into", "onto", "upon", "over", "under", "about",
	"above", "below", "between", "through", "during", "before", "after",
	"also", "such", "some", "more", "most", "other", "each", "very",
	"just", "only", "same", "both", "because", "while", "against",
	"towards", "within", "without", "per", "via",
	// Consultation and legal boilerplate
	"provision", "provisions", "section", "sections", "subsection",
	"clause", "clauses", "ministry", "department", "government",
	"regulation", "regulations", "rule", "rules", "act", "law",
	"consultation", "comment", "comments", "feedback", "proposed",
	"proposal", "draft", "notification", "amendment", "amendments",
}

// DefaultStopwords returns a copy of the built-in stopword set.
func DefaultStopwords() []string {
	out := make([]string, len(defaultStopwords))
	copy(out, defaultStopwords)
	return out
}
