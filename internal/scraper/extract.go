package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/selivandex/kdp-autostudio/pkg/models"
)

// Search result selectors
const (
	resultSelector        = "[data-asin]"
	titleSelector         = "h2 a span"
	titleFallbackSelector = "h2 span"
	priceSelector         = ".a-price .a-offscreen"
	ratingSelector        = ".a-icon-alt"
	reviewsSelector       = `a[href*="#customerReviews"]`
	reviewsAriaSelector   = "span[aria-label$='ratings']"
)

// ResultNodes returns at most limit search result nodes, in page order
func ResultNodes(doc *goquery.Document, limit int) *goquery.Selection {
	nodes := doc.Find(resultSelector)
	if limit < 0 {
		limit = 0
	}
	if nodes.Length() > limit {
		nodes = nodes.Slice(0, limit)
	}
	return nodes
}

// ExtractCompetitors reads competitor records from a search results page.
// At most limit nodes are considered; nodes without an ASIN are skipped.
func ExtractCompetitors(doc *goquery.Document, keyword string, limit int) []models.CompetitorRecord {
	records := []models.CompetitorRecord{}
	ResultNodes(doc, limit).Each(func(_ int, sel *goquery.Selection) {
		if record, ok := ExtractCompetitor(sel, keyword); ok {
			records = append(records, record)
		}
	})
	return records
}

// ExtractCompetitor reads one result node. Missing fields fall back to zero values.
func ExtractCompetitor(sel *goquery.Selection, keyword string) (models.CompetitorRecord, bool) {
	asin, ok := sel.Attr("data-asin")
	asin = strings.TrimSpace(asin)
	if !ok || asin == "" {
		return models.CompetitorRecord{}, false
	}

	title := firstNonEmpty(
		textOrFallback(sel.Find(titleSelector), ""),
		textOrFallback(sel.Find(titleFallbackSelector), ""),
	)
	if title == "" {
		title = models.UnknownTitle
	}

	reviews := firstNonEmpty(
		textOrFallback(sel.Find(reviewsSelector), ""),
		sel.Find(reviewsAriaSelector).First().AttrOr("aria-label", ""),
	)

	return models.CompetitorRecord{
		ASIN:        asin,
		Title:       title,
		Price:       ParsePrice(textOrFallback(sel.Find(priceSelector), "")),
		Rating:      ParseRating(innerHTMLOrFallback(sel.Find(ratingSelector), "")),
		ReviewCount: ParseReviewCount(reviews),
		Keyword:     keyword,
	}, true
}

func textOrFallback(sel *goquery.Selection, fallback string) string {
	value := strings.TrimSpace(sel.First().Text())
	if value == "" {
		return fallback
	}
	return value
}

func innerHTMLOrFallback(sel *goquery.Selection, fallback string) string {
	if sel.Length() == 0 {
		return fallback
	}
	html, err := sel.First().Html()
	if err != nil || strings.TrimSpace(html) == "" {
		return fallback
	}
	return strings.TrimSpace(html)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
