package library

import (
	"sort"

	"github.com/inkwell-labs/inkctl/internal/api"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the library ordering. The empty key preserves insertion
// order, which is the browser's default.
type SortKey string

const (
	SortNone    SortKey = ""
	SortTitle   SortKey = "title"   // locale-aware, A→Z
	SortAuthor  SortKey = "author"  // locale-aware, A→Z
	SortRating  SortKey = "rating"  // numeric, best first
	SortCreated SortKey = "created" // newest first
)

// SortKeys lists the cycling order used by the browser.
func SortKeys() []SortKey {
	return []SortKey{SortNone, SortTitle, SortAuthor, SortRating, SortCreated}
}

// ParseSortKey maps a flag value onto a sort key, defaulting to SortNone.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortTitle, SortAuthor, SortRating, SortCreated:
		return SortKey(s)
	default:
		return SortNone
	}
}

// Label returns the key's display name for the browser footer.
func (k SortKey) Label() string {
	switch k {
	case SortTitle:
		return "title"
	case SortAuthor:
		return "author"
	case SortRating:
		return "rating"
	case SortCreated:
		return "created"
	default:
		return "default"
	}
}

// sortBooks orders books in place by key. The sort is stable so equal keys
// keep their insertion order, and reverse inverts the comparator, so two
// toggles restore the original order exactly.
func sortBooks(books []api.Ebook, key SortKey, reverse bool) {
	if key == SortNone {
		if reverse {
			for i, j := 0, len(books)-1; i < j; i, j = i+1, j-1 {
				books[i], books[j] = books[j], books[i]
			}
		}
		return
	}
	var cmp func(a, b api.Ebook) int
	switch key {
	case SortTitle:
		c := newCollator()
		cmp = func(a, b api.Ebook) int { return c.CompareString(a.Title, b.Title) }
	case SortAuthor:
		c := newCollator()
		cmp = func(a, b api.Ebook) int { return c.CompareString(a.AuthorName(), b.AuthorName()) }
	case SortRating:
		cmp = func(a, b api.Ebook) int { return compareFloat(b.RatingAverage, a.RatingAverage) }
	case SortCreated:
		cmp = func(a, b api.Ebook) int { return compareInt64(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano()) }
	default:
		return
	}
	sort.SliceStable(books, func(i, j int) bool {
		v := cmp(books[i], books[j])
		if reverse {
			return v > 0
		}
		return v < 0
	})
}

func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

func sortStrings(ss []string) {
	c := newCollator()
	sort.SliceStable(ss, func(i, j int) bool { return c.CompareString(ss[i], ss[j]) < 0 })
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
