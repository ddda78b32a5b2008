// Package feed renders editions as an RSS 2.0 feed
package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/nldigest/pkg/domain"
)

var sectionTitles = map[domain.Section]string{
	domain.SectionHeadline:      "Headline",
	domain.SectionWorthYourTime: "Worth Your Time",
	domain.SectionInBrief:       "In Brief",
}

// Generator creates RSS feeds from editions
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

// GenerateRSS creates an RSS 2.0 feed for an edition. Items follow gazette order:
// the headline, then worth-your-time, then in-brief, each by position.
func (g *Generator) GenerateRSS(edition *domain.Edition, articles []domain.ArticleView) (string, error) {
	grouped := domain.GroupBySection(articles)

	rssItems := make([]*RSSItem, 0, len(articles))
	for _, section := range []domain.Section{domain.SectionHeadline, domain.SectionWorthYourTime, domain.SectionInBrief} {
		for _, a := range grouped[section] {
			rssItems = append(rssItems, g.convertToRSSItem(edition, a))
		}
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         "Newsletter Digest - " + edition.EditionDate,
			Link:          fmt.Sprintf("%s/editions/%d", g.baseURL, edition.ID),
			Description:   fmt.Sprintf("Daily newsletter digest for %s", edition.EditionDate),
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss/latest", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().UTC().Format(time.RFC1123Z),
			PubDate:       edition.GeneratedAt.UTC().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts an edition article to an RSS item
func (g *Generator) convertToRSSItem(edition *domain.Edition, a domain.ArticleView) *RSSItem {
	var desc strings.Builder
	desc.WriteString(a.Summary)
	if a.ExpandedSummary != nil && *a.ExpandedSummary != "" && *a.ExpandedSummary != a.Summary {
		desc.WriteString("\n\n" + *a.ExpandedSummary)
	}
	if len(a.KeyPoints) > 0 {
		desc.WriteString("\n")
		for _, kp := range a.KeyPoints {
			desc.WriteString("\n- " + kp)
		}
	}
	fmt.Fprintf(&desc, "\n\n%d min read", a.ReadingTime)

	categories := []string{sectionTitles[a.Section]}
	if a.Category != "" {
		categories = append(categories, a.Category)
	}

	return &RSSItem{
		Title:       a.Headline,
		Link:        fmt.Sprintf("%s/editions/%d#article-%d", g.baseURL, edition.ID, a.ID),
		GUID:        GUID{Value: fmt.Sprintf("nldigest-%d-%d", edition.ID, a.ID), IsPermaLink: "false"},
		Description: desc.String(),
		Author:      a.Sender,
		PubDate:     a.ReceivedAt.UTC().Format(time.RFC1123Z),
		Categories:  categories,
	}
}
