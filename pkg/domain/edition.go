package domain

import (
	"errors"
	"sort"
	"time"
)

// ErrEditionExists returned when an edition for the same day is already stored
var ErrEditionExists = errors.New("edition already exists for this date")

// ErrArticleExists returned when the newsletter already has an article in the edition
var ErrArticleExists = errors.New("newsletter already in this edition")

// EditionDateLayout is the layout of Edition.EditionDate
const EditionDateLayout = "2006-01-02"

// Edition is one generated digest, at most one per UTC calendar day
type Edition struct {
	ID          int64     `json:"id"`
	EditionDate string    `json:"editionDate"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// EditionDate returns the edition date key for the given time
func EditionDate(t time.Time) string {
	return t.UTC().Format(EditionDateLayout)
}

// Section is a tier of the gazette
type Section string

const (
	SectionHeadline      Section = "headline"
	SectionWorthYourTime Section = "worth_your_time"
	SectionInBrief       Section = "in_brief"
)

// EditionArticle is a single summarized newsletter placed into an edition
type EditionArticle struct {
	ID              int64    `json:"id"`
	EditionID       int64    `json:"editionId"`
	NewsletterID    int64    `json:"newsletterId"`
	Category        string   `json:"category"`
	Section         Section  `json:"section"`
	Position        int      `json:"position"`
	Headline        string   `json:"headline"`
	Summary         string   `json:"summary"`
	KeyPoints       []string `json:"keyPoints"`
	ExpandedSummary *string  `json:"expandedSummary"`
	ReadingTime     int      `json:"readingTime"`
}

// ArticleView is an edition article joined with its source newsletter
type ArticleView struct {
	EditionArticle
	Sender     string    `json:"sender"`
	RawHTML    string    `json:"rawHtml"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// GroupBySection groups articles by section, each group sorted by position.
// Articles without a section go to in_brief.
func GroupBySection(articles []ArticleView) map[Section][]ArticleView {
	res := map[Section][]ArticleView{}
	for _, a := range articles {
		sec := a.Section
		if sec == "" {
			sec = SectionInBrief
		}
		res[sec] = append(res[sec], a)
	}
	for _, group := range res {
		sort.SliceStable(group, func(i, j int) bool { return group[i].Position < group[j].Position })
	}
	return res
}

// Stats holds overall counters shown on the dashboard
type Stats struct {
	Newsletters int `json:"newsletters"`
	Editions    int `json:"editions"`
	Triaged     int `json:"triaged"`
	Kept        int `json:"kept"`
	Remaining   int `json:"remaining"` // stored newsletters without a triage decision
}
