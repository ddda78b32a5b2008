package content

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/markusmobius/go-trafilatura"
	"github.com/microcosm-cc/bluemonday"
)

// WordsPerMinute is the reading speed used for reading time estimates
const WordsPerMinute = 225

var strictPolicy = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return p
}()

// ExtractText returns readable plain text of an html newsletter body.
// It tries main-content extraction first and falls back to the flattened text of the whole body,
// so the result is empty only if the document has no text at all.
func ExtractText(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		IncludeImages:   false,
		IncludeLinks:    false,
		Deduplicate:     true,
	}

	result, err := trafilatura.Extract(strings.NewReader(html), opts)
	if err == nil && result != nil {
		if text := strings.TrimSpace(result.ContentText); text != "" {
			return text
		}
	}

	return flattenBody(html)
}

// flattenBody returns whitespace-collapsed text of the document body with scripts and styles removed
func flattenBody(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapseSpaces(StripTags(html))
	}
	doc.Find("script, style, noscript, head").Remove()

	sel := doc.Find("body")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	return collapseSpaces(sel.Text())
}

// StripTags removes all markup and returns the remaining text
func StripTags(html string) string {
	return strictPolicy.Sanitize(html)
}

// ReadingTime estimates reading time in minutes for the given html, never less than one minute
func ReadingTime(html string) int {
	return ReadingTimeWords(len(strings.Fields(StripTags(html))))
}

// ReadingTimeWords converts a word count into reading minutes, rounded, minimum 1
func ReadingTimeWords(words int) int {
	minutes := int(math.Round(float64(words) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
