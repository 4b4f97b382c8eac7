package entity

// TitleSuggestion is a generated title proposal for a video description.
type TitleSuggestion struct {
	Description string // Original description the suggestion was generated from
	Suggestion  string // Proposed title
}
