package domain

// DefaultTopK is the number of passages retrieved for a question when
// the caller does not ask for a specific count.
const DefaultTopK = 3

// ConfidenceThreshold is the mean-similarity cutoff between the
// uncertain and confident recommendation variants. A mean at or above
// the threshold selects the confident variant.
const ConfidenceThreshold = 0.05

// Fixed answer template text. The options and trade-offs are canned and
// deliberately independent of the retrieved passages; deriving them from
// corpus content is a known future extension, not current behaviour.
var (
	// CannedOptions are the candidate courses of action offered with
	// every answer.
	CannedOptions = []string{
		"Act cautiously with minimal reversible steps.",
		"Seek more information or a second perspective.",
		"Defer to a qualified human if stakes are high.",
	}

	// CannedTradeoffs mirror CannedOptions one-for-one.
	CannedTradeoffs = []string{
		"- Caution reduces harm but may delay benefits.",
		"- Gathering info takes time but improves accuracy.",
		"- Deferring improves safety but reduces autonomy.",
	}
)

// Recommendation variants, selected by thresholding the mean similarity.
const (
	// RecommendationUncertain is used when retrieval found nothing close.
	RecommendationUncertain = "Uncertain. Acquire more context, then reconsider."

	// RecommendationConfident is the generic counsel used otherwise.
	RecommendationConfident = "Prioritize non-harm and truthfulness; take a reversible step and review impact. If people’s safety/rights are involved, escalate to a human."
)

// RefusalMessage is shown verbatim when the safety filter blocks a
// question. Nothing from the question itself is echoed back.
const RefusalMessage = "This appears high-risk (medical/legal/self-harm/violence). I cannot advise specific actions. Please consult qualified help or escalate to a responsible human."

// AskOptions configures a single question.
type AskOptions struct {
	// TopK is the number of passages to retrieve. Values below 1 fall
	// back to DefaultTopK.
	TopK int
}

// Answer is the structured, templated response to one question.
// It is transient and owned by the presentation adapter that asked.
type Answer struct {
	// Context is the trimmed question being answered.
	Context string `json:"context"`

	// Principles holds one formatted line per retrieved passage.
	Principles []string `json:"principles"`

	// Options are the canned candidate courses of action.
	Options []string `json:"options"`

	// Tradeoffs are the canned trade-off notes for the options.
	Tradeoffs []string `json:"tradeoffs"`

	// Recommendation is the selected recommendation variant.
	Recommendation string `json:"recommendation"`

	// Confidence is the mean similarity score formatted to two
	// decimal places, e.g. "0.60". "0.00" when nothing was retrieved.
	Confidence string `json:"confidence"`

	// Citations holds one "{id} — {source}" line per retrieved passage.
	Citations []string `json:"citations"`
}
