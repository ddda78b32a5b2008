package domain

// Gazette is the ranked three-tier structure returned by the model
type Gazette struct {
	Headline      *HeadlineEntry `json:"headline"`
	WorthYourTime []WorthEntry   `json:"worthYourTime"`
	InBrief       []BriefEntry   `json:"inBrief"`
}

// HeadlineEntry is the single lead story
type HeadlineEntry struct {
	NewsletterID int64    `json:"newsletterId"`
	InterestTag  string   `json:"interestTag"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Takeaways    []string `json:"takeaways"`
}

// WorthEntry is a worth-your-time item
type WorthEntry struct {
	NewsletterID    int64    `json:"newsletterId"`
	InterestTag     string   `json:"interestTag"`
	Hook            string   `json:"hook"`
	ExpandedSummary string   `json:"expandedSummary"`
	Takeaways       []string `json:"takeaways"`
}

// BriefEntry is an in-brief item
type BriefEntry struct {
	NewsletterID    int64  `json:"newsletterId"`
	InterestTag     string `json:"interestTag"`
	OneLiner        string `json:"oneLiner"`
	ExpandedSummary string `json:"expandedSummary"`
}

// ArticleSummary is the per-newsletter summarization result
type ArticleSummary struct {
	Category    string   `json:"category"`
	Headline    string   `json:"headline"`
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"key_points"`
	ReadingTime int      `json:"reading_time"`
}

// Categories lists the categories a summary can be assigned to
var Categories = []string{"Tech", "Product", "Business", "Design", "Other"}

// StreamEventType is the kind of streaming event
type StreamEventType string

const (
	EventArticle  StreamEventType = "article"
	EventError    StreamEventType = "error"
	EventComplete StreamEventType = "complete"
)

// Progress reports how many items of a streaming run have finished
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// StreamEvent is emitted by the streaming summarizer
type StreamEvent struct {
	Type     StreamEventType `json:"type"`
	Article  *ArticleView    `json:"article,omitempty"`
	Progress *Progress       `json:"progress,omitempty"`
}
