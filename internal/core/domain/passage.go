package domain

import "strings"

// Passage represents a single curated text excerpt with attribution.
// Passages are loaded in bulk at startup and never mutated afterwards.
type Passage struct {
	// ID is the corpus identifier for the passage. Not enforced unique;
	// duplicate IDs are permitted and both remain retrievable.
	ID string `json:"id"`

	// Source is the attribution label (text, chapter, translator).
	Source string `json:"source"`

	// Themes are the ethical theme tags attached to the passage.
	Themes []string `json:"themes"`

	// Text is the passage body. Always non-empty for a loaded passage;
	// the corpus loader rejects records without one.
	Text string `json:"passage"`
}

// ThemeLabel joins the theme tags for display, falling back to a
// generic label when the passage carries none.
func (p Passage) ThemeLabel() string {
	if len(p.Themes) == 0 {
		return "principle"
	}
	return strings.Join(p.Themes, ", ")
}

// RetrievedPassage is a per-query projection of a Passage plus its
// similarity score. Created fresh for every query, never persisted.
type RetrievedPassage struct {
	// Score is the cosine similarity against the query, in [0, 1].
	Score float64 `json:"score"`

	// Passage is the matched corpus entry.
	Passage Passage `json:"passage"`
}

// Citation formats the passage attribution as "{id} — {source}".
func (r RetrievedPassage) Citation() string {
	return r.Passage.ID + " — " + r.Passage.Source
}
