package domain

// Category buckets the catalog. Both poncho spellings exist in persisted
// catalogs, so both stay valid.
type Category string

const (
	CategoryPoncho  Category = "poncho"
	CategoryPonchos Category = "Ponchos"
	CategoryOther   Category = "other"
)

// Localized holds the two supported renderings of a display text.
type Localized struct {
	EN string `json:"en"`
	ES string `json:"es"`
}

// LocalizedList holds per-locale ordered bullet lists.
type LocalizedList struct {
	EN []string `json:"en"`
	ES []string `json:"es"`
}

// Product is a catalog entry. Images are ordered media references (image or
// video paths) and must never be empty.
type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description Localized         `json:"description"`
	Price       float64           `json:"price"`
	Images      []string          `json:"images"`
	Category    Category          `json:"category"`
	Details     *LocalizedList    `json:"details,omitempty"`
	Measures    map[string]string `json:"measures,omitempty"`
}
