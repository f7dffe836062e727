package models

// Metadata represents the publishing metadata for a book listing
type Metadata struct {
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle"`
	Description     string   `json:"description"`
	Blurb           string   `json:"blurb"`
	Keywords        []string `json:"keywords"`
	BISACCategories []string `json:"bisac_categories"`
}

// KDP listing limits
const (
	MaxTitleLength       = 200
	MaxSubtitleLength    = 200
	MetadataKeywordCount = 7
	MinDescriptionLength = 500
	MaxDescriptionLength = 2000
	BISACCategoryCount   = 2
	MinBlurbLength       = 100
	MaxBlurbLength       = 200
)

// DefaultBISACCategories is used when no categories were suggested
var DefaultBISACCategories = []string{"BUS000000", "REF000000"}
