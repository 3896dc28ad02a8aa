package models

// Book is the normalized record for a catalog search result. It is never
// persisted; the catalog stays remote and only identifiers are stored.
type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CoverImage  string `json:"cover_image"`
	ISBN        string `json:"isbn"`
}
