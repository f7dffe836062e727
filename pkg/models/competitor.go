package models

// CompetitorRecord represents one book listing observed on a search results page
type CompetitorRecord struct {
	ASIN        string  `json:"asin"`
	Title       string  `json:"title"`
	Keyword     string  `json:"keyword"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
}

// UnknownTitle is used when a listing has no readable title
const UnknownTitle = "N/A"
