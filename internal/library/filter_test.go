package library_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/library"
)

func book(title, author, genre string, rating float64, ratings int, created time.Time) api.Ebook {
	return api.Ebook{
		ID:            uuid.New(),
		Title:         title,
		Genre:         genre,
		Status:        api.StatusPublished,
		RatingAverage: rating,
		RatingCount:   ratings,
		CreatedAt:     created,
		Author:        &api.Author{Username: author},
	}
}

func sampleBooks() []api.Ebook {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []api.Ebook{
		book("The Clean Coder", "uncle-bob", "Programming", 4.5, 120, base),
		book("Clean Architecture", "uncle-bob", "Programming", 4.2, 80, base.Add(24*time.Hour)),
		book("Dune", "herbert", "Science Fiction", 4.8, 900, base.Add(48*time.Hour)),
		book("Hyperion", "simmons", "Science Fiction", 4.6, 400, base.Add(72*time.Hour)),
		book("The Pragmatic Programmer", "hunt", "Programming", 0, 0, base.Add(96*time.Hour)),
	}
}

func titles(books []api.Ebook) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func equalTitles(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApply_EmptyFilterKeepsEverything(t *testing.T) {
	books := sampleBooks()
	f := library.Filter{Category: library.CategoryAll}

	got := f.Apply(books, nil)
	if len(got) != len(books) {
		t.Fatalf("expected %d books, got %d", len(books), len(got))
	}
	// No sort key: insertion order is preserved.
	if !equalTitles(titles(got), titles(books)) {
		t.Errorf("order changed without a sort key: %v", titles(got))
	}
}

func TestApply_SearchMatchesTitleAndAuthor(t *testing.T) {
	books := sampleBooks()

	byTitle := library.Filter{Search: "clean", Category: library.CategoryAll}.Apply(books, nil)
	if len(byTitle) != 2 {
		t.Fatalf("search %q: expected 2 books, got %d (%v)", "clean", len(byTitle), titles(byTitle))
	}

	byAuthor := library.Filter{Search: "HERBERT", Category: library.CategoryAll}.Apply(books, nil)
	if len(byAuthor) != 1 || byAuthor[0].Title != "Dune" {
		t.Fatalf("author search should be case-insensitive, got %v", titles(byAuthor))
	}
}

func TestApply_CategoryAndSearchCombine(t *testing.T) {
	books := sampleBooks()
	f := library.Filter{Search: "the", Category: "Programming"}

	got := f.Apply(books, nil)
	want := []string{"The Clean Coder", "The Pragmatic Programmer"}
	if !equalTitles(titles(got), want) {
		t.Errorf("got %v, want %v", titles(got), want)
	}
}

func TestApply_Idempotent(t *testing.T) {
	books := sampleBooks()
	f := library.Filter{Search: "e", Category: library.CategoryAll, Sort: library.SortTitle}

	once := f.Apply(books, nil)
	twice := f.Apply(once, nil)
	if !equalTitles(titles(once), titles(twice)) {
		t.Errorf("second application changed the result: %v vs %v", titles(once), titles(twice))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	books := sampleBooks()
	before := titles(books)

	library.Filter{Category: library.CategoryAll, Sort: library.SortTitle, Reverse: true}.Apply(books, nil)

	if !equalTitles(titles(books), before) {
		t.Errorf("input slice was reordered: %v", titles(books))
	}
}

func TestApply_SortByRatingBestFirst(t *testing.T) {
	books := sampleBooks()
	f := library.Filter{Category: library.CategoryAll, Sort: library.SortRating}

	got := titles(f.Apply(books, nil))
	if got[0] != "Dune" {
		t.Errorf("best rated first, got %v", got)
	}
	if got[len(got)-1] != "The Pragmatic Programmer" {
		t.Errorf("unrated last, got %v", got)
	}
}

func TestApply_SortByCreatedNewestFirst(t *testing.T) {
	books := sampleBooks()
	f := library.Filter{Category: library.CategoryAll, Sort: library.SortCreated}

	got := titles(f.Apply(books, nil))
	if got[0] != "The Pragmatic Programmer" || got[len(got)-1] != "The Clean Coder" {
		t.Errorf("newest first, got %v", got)
	}
}

func TestApply_ReverseIsInvolution(t *testing.T) {
	books := sampleBooks()
	forward := library.Filter{Category: library.CategoryAll, Sort: library.SortTitle}
	backward := forward
	backward.Reverse = true

	a := titles(forward.Apply(books, nil))
	b := titles(backward.Apply(books, nil))

	for i := range a {
		if a[i] != b[len(b)-1-i] {
			t.Fatalf("reverse is not a mirror: %v vs %v", a, b)
		}
	}
}

func TestApply_ReverseWithoutSortReversesInsertionOrder(t *testing.T) {
	books := sampleBooks()
	f := library.Filter{Category: library.CategoryAll, Reverse: true}

	got := titles(f.Apply(books, nil))
	want := titles(books)
	for i := range want {
		if got[i] != want[len(want)-1-i] {
			t.Fatalf("got %v", got)
		}
	}
}

func TestApply_ShelfUsesProgress(t *testing.T) {
	books := sampleBooks()
	progress := map[uuid.UUID]float64{
		books[0].ID: 100, // finished
		books[1].ID: 40,  // reading
	}

	reading := library.Filter{Category: library.CategoryAll, Shelf: library.ShelfReading}.Apply(books, progress)
	if len(reading) != 1 || reading[0].Title != "Clean Architecture" {
		t.Errorf("reading shelf: got %v", titles(reading))
	}

	finished := library.Filter{Category: library.CategoryAll, Shelf: library.ShelfFinished}.Apply(books, progress)
	if len(finished) != 1 || finished[0].Title != "The Clean Coder" {
		t.Errorf("finished shelf: got %v", titles(finished))
	}

	want := library.Filter{Category: library.CategoryAll, Shelf: library.ShelfWantToRead}.Apply(books, progress)
	if len(want) != 3 {
		t.Errorf("want-to-read shelf: expected 3, got %v", titles(want))
	}
}

func TestBookShelf_Mapping(t *testing.T) {
	b := sampleBooks()[0]

	cases := []struct {
		name     string
		status   api.EbookStatus
		progress float64
		have     bool
		want     library.Shelf
	}{
		{"archived is finished", api.StatusArchived, 0, false, library.ShelfFinished},
		{"complete progress is finished", api.StatusPublished, 100, true, library.ShelfFinished},
		{"partial progress is reading", api.StatusPublished, 12.5, true, library.ShelfReading},
		{"zero progress is want-to-read", api.StatusPublished, 0, true, library.ShelfWantToRead},
		{"no progress record is want-to-read", api.StatusPublished, 0, false, library.ShelfWantToRead},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b.Status = tc.status
			progress := map[uuid.UUID]float64{}
			if tc.have {
				progress[b.ID] = tc.progress
			}
			if got := library.BookShelf(b, progress); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCategories_DistinctSortedWithAllFirst(t *testing.T) {
	books := sampleBooks()

	got := library.Categories(books)
	want := []string{library.CategoryAll, "Programming", "Science Fiction"}
	if !equalTitles(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseShelf_UnknownFallsBackToAll(t *testing.T) {
	if got := library.ParseShelf("bogus"); got != library.ShelfAll {
		t.Errorf("got %v", got)
	}
	if got := library.ParseShelf("finished"); got != library.ShelfFinished {
		t.Errorf("got %v", got)
	}
}
