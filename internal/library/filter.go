package library

import (
	"strings"

	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
)

// CategoryAll is the category sentinel that matches every genre.
const CategoryAll = "All"

// Filter selects and orders a book list. The zero value matches everything
// and preserves insertion order.
type Filter struct {
	Search   string // case-insensitive substring over title and author name
	Category string // exact genre match; "" or "All" passes everything
	Shelf    Shelf  // "" or ShelfAll passes everything
	Sort     SortKey
	Reverse  bool // invert the sort key's natural order
}

// Apply returns the matching subset in sorted order. progress feeds the
// shelf derivation and may be nil. The input slice is never mutated; the
// result is a fresh slice recomputed from scratch.
func (f Filter) Apply(books []api.Ebook, progress map[uuid.UUID]float64) []api.Ebook {
	out := make([]api.Ebook, 0, len(books))
	for _, b := range books {
		if f.Search != "" && !matchesSearch(b, f.Search) {
			continue
		}
		if !matchesCategory(b, f.Category) {
			continue
		}
		if f.Shelf != "" && f.Shelf != ShelfAll && BookShelf(b, progress) != f.Shelf {
			continue
		}
		out = append(out, b)
	}
	sortBooks(out, f.Sort, f.Reverse)
	return out
}

func matchesSearch(b api.Ebook, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(b.Title), q) {
		return true
	}
	return strings.Contains(strings.ToLower(b.AuthorName()), q)
}

func matchesCategory(b api.Ebook, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return b.Genre == category
}

// Categories returns the distinct genres present, sorted, with CategoryAll
// prepended. Feeds the browser's category selector.
func Categories(books []api.Ebook) []string {
	seen := map[string]bool{}
	var genres []string
	for _, b := range books {
		if b.Genre != "" && !seen[b.Genre] {
			seen[b.Genre] = true
			genres = append(genres, b.Genre)
		}
	}
	sortStrings(genres)
	return append([]string{CategoryAll}, genres...)
}
