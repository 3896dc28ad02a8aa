package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moonlitpage-api/models"
)

const (
	searchLimit  = 30
	fieldUnknown = "unknown"

	// UnresolvedTitle is the display fallback when a post's book_id cannot
	// be resolved against the catalog.
	UnresolvedTitle = "unspecified"
)

// BookSearchService queries the Open Library search API and normalizes its
// heterogeneous documents into models.Book records.
type BookSearchService struct {
	baseURL string
	client  *http.Client
}

func NewBookSearchService(baseURL string) *BookSearchService {
	return &BookSearchService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// searchDoc is the strict optional-field schema for an upstream search
// document. Every field may be absent.
type searchDoc struct {
	CoverI          *int     `json:"cover_i"`
	CoverEditionKey string   `json:"cover_edition_key"`
	EditionKey      []string `json:"edition_key"`
	Title           string   `json:"title"`
	AuthorName      []string `json:"author_name"`
	Publisher       []string `json:"publisher"`
	Subject         []string `json:"subject"`
	ISBN            []string `json:"isbn"`
}

type searchResponse struct {
	Docs []searchDoc `json:"docs"`
}

// Search runs a free-text query against the catalog. It never returns an
// error: upstream failures of any kind (network, non-2xx, malformed payload,
// timeout) are logged and degrade to an empty result list. Documents without
// a cover image id are dropped. At most 30 results are returned.
func (bs *BookSearchService) Search(ctx context.Context, query string) []models.Book {
	endpoint := fmt.Sprintf("%s/search.json?q=%s&limit=%d", bs.baseURL, url.QueryEscape(query), searchLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Printf("Error searching Open Library data: %v", err)
		return nil
	}

	resp, err := bs.client.Do(req)
	if err != nil {
		log.Printf("Error searching Open Library data: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Error searching Open Library data: unexpected status %d", resp.StatusCode)
		return nil
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Error searching Open Library data: %v", err)
		return nil
	}

	books := make([]models.Book, 0, len(payload.Docs))
	for _, doc := range payload.Docs {
		if doc.CoverI == nil {
			continue
		}
		books = append(books, normalizeDoc(doc))
		if len(books) == searchLimit {
			break
		}
	}
	return books
}

// ResolveTitle resolves a display title for a stored book id. Open Library's
// search endpoint has no true by-id mode, so the id is re-run as a query and
// the first hit wins; unresolved or blank ids fall back to UnresolvedTitle.
func (bs *BookSearchService) ResolveTitle(ctx context.Context, bookID string) string {
	if bookID == "" {
		return UnresolvedTitle
	}
	books := bs.Search(ctx, bookID)
	if len(books) == 0 {
		return UnresolvedTitle
	}
	return books[0].Title
}

// normalizeDoc maps one upstream document to the internal book record.
// Caller guarantees doc.CoverI is non-nil.
func normalizeDoc(doc searchDoc) models.Book {
	id := doc.CoverEditionKey
	if id == "" && len(doc.EditionKey) > 0 {
		id = doc.EditionKey[0]
	}

	title := doc.Title
	if title == "" {
		title = "Unknown Title"
	}

	author := fieldUnknown
	if len(doc.AuthorName) > 0 {
		author = strings.Join(doc.AuthorName, ", ")
	}

	publisher := fieldUnknown
	if len(doc.Publisher) > 0 {
		publisher = doc.Publisher[0]
	}

	category := fieldUnknown
	if len(doc.Subject) > 0 {
		category = doc.Subject[0]
	}

	isbn := fieldUnknown
	if len(doc.ISBN) > 0 {
		isbn = doc.ISBN[0]
	}

	return models.Book{
		ID:          id,
		Title:       title,
		Author:      author,
		Publisher:   publisher,
		Description: fieldUnknown, // search documents carry no description
		Category:    category,
		CoverImage:  fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-M.jpg", *doc.CoverI),
		ISBN:        isbn,
	}
}
