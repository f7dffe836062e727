package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/selivandex/kdp-autostudio/pkg/models"
)

const searchResultsHTML = `<html><body>
<div class="s-main-slot">
  <div data-asin="B0GARDEN01" data-component-type="s-search-result">
    <h2><a href="/dp/B0GARDEN01"><span>The Vegetable Gardener's Bible</span></a></h2>
    <span class="a-price"><span class="a-offscreen">$12,999.00</span></span>
    <i class="a-icon a-icon-star"><span class="a-icon-alt">4.5 out of 5 stars</span></i>
    <a href="/dp/B0GARDEN01#customerReviews"><span>1,234 ratings</span></a>
  </div>
  <div data-asin="" data-component-type="s-search-result">
    <h2><a><span>Sponsored carousel</span></a></h2>
  </div>
  <div data-component-type="s-search-result">
    <h2><a><span>No identifier at all</span></a></h2>
    <span class="a-price"><span class="a-offscreen">$5.00</span></span>
  </div>
  <div data-asin="B0GARDEN02" data-component-type="s-search-result">
    <h2><span>Square Foot Gardening</span></h2>
    <span class="a-price"><span class="a-offscreen">$19.99</span></span>
    <span aria-label="87 ratings">87</span>
  </div>
  <div data-asin="B0GARDEN03" data-component-type="s-search-result"></div>
</div>
</body></html>`

func loadDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return doc
}

func TestExtractCompetitors(t *testing.T) {
	doc := loadDoc(t, searchResultsHTML)

	records := ExtractCompetitors(doc, "gardening", 20)

	want := []models.CompetitorRecord{
		{ASIN: "B0GARDEN01", Title: "The Vegetable Gardener's Bible", Price: 12999.0, Rating: 4.5, ReviewCount: 1234, Keyword: "gardening"},
		{ASIN: "B0GARDEN02", Title: "Square Foot Gardening", Price: 19.99, ReviewCount: 87, Keyword: "gardening"},
		{ASIN: "B0GARDEN03", Title: models.UnknownTitle, Keyword: "gardening"},
	}

	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d: %+v", len(want), len(records), records)
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d:\nwant %+v\ngot  %+v", i, want[i], records[i])
		}
	}
}

func TestExtractCompetitors_SkipsMissingIdentifier(t *testing.T) {
	doc := loadDoc(t, searchResultsHTML)

	for _, r := range ExtractCompetitors(doc, "gardening", 20) {
		if r.ASIN == "" {
			t.Errorf("record without ASIN must be excluded: %+v", r)
		}
		if strings.Contains(r.Title, "No identifier") || strings.Contains(r.Title, "Sponsored") {
			t.Errorf("node without identifier leaked into results: %+v", r)
		}
	}
}

func TestExtractCompetitors_MaxResultsAppliesBeforeSkipping(t *testing.T) {
	doc := loadDoc(t, searchResultsHTML)

	// first two [data-asin] nodes are B0GARDEN01 and the empty one
	records := ExtractCompetitors(doc, "gardening", 2)
	if len(records) != 1 || records[0].ASIN != "B0GARDEN01" {
		t.Errorf("expected only B0GARDEN01, got %+v", records)
	}

	if got := ExtractCompetitors(doc, "gardening", 0); len(got) != 0 {
		t.Errorf("expected no records for limit 0, got %d", len(got))
	}
}

func TestExtractCompetitors_EmptyPage(t *testing.T) {
	doc := loadDoc(t, `<html><body><p>No results</p></body></html>`)

	records := ExtractCompetitors(doc, "obscure", 20)
	if records == nil || len(records) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", records)
	}
}
