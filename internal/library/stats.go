package library

import (
	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
)

// Stats aggregates a book list for the dashboard.
type Stats struct {
	Total int

	Reading    int
	Finished   int
	WantToRead int

	Drafts    int
	Published int
	Archived  int

	// AverageRating is the mean rating_average over books that have at
	// least one rating. Zero when nothing is rated.
	AverageRating float64
	RatedCount    int
}

// Collect computes dashboard statistics. progress may be nil.
func Collect(books []api.Ebook, progress map[uuid.UUID]float64) Stats {
	var s Stats
	var ratingSum float64
	for _, b := range books {
		s.Total++
		switch BookShelf(b, progress) {
		case ShelfReading:
			s.Reading++
		case ShelfFinished:
			s.Finished++
		default:
			s.WantToRead++
		}
		switch b.Status {
		case api.StatusDraft:
			s.Drafts++
		case api.StatusPublished:
			s.Published++
		case api.StatusArchived:
			s.Archived++
		}
		if b.RatingCount > 0 {
			s.RatedCount++
			ratingSum += b.RatingAverage
		}
	}
	if s.RatedCount > 0 {
		s.AverageRating = ratingSum / float64(s.RatedCount)
	}
	return s
}

// Recent returns up to n books ordered newest first.
func Recent(books []api.Ebook, n int) []api.Ebook {
	out := Filter{Sort: SortCreated}.Apply(books, nil)
	if len(out) > n {
		out = out[:n]
	}
	return out
}
