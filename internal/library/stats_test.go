package library_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/library"
)

func TestCollect(t *testing.T) {
	books := sampleBooks()
	books[4].Status = api.StatusDraft
	books[3].Status = api.StatusArchived
	progress := map[uuid.UUID]float64{
		books[0].ID: 100,
		books[1].ID: 50,
	}

	s := library.Collect(books, progress)

	if s.Total != 5 {
		t.Errorf("Total = %d, want 5", s.Total)
	}
	if s.Reading != 1 {
		t.Errorf("Reading = %d, want 1", s.Reading)
	}
	// books[0] finished via progress, books[3] via archive.
	if s.Finished != 2 {
		t.Errorf("Finished = %d, want 2", s.Finished)
	}
	if s.WantToRead != 2 {
		t.Errorf("WantToRead = %d, want 2", s.WantToRead)
	}
	if s.Drafts != 1 || s.Published != 3 || s.Archived != 1 {
		t.Errorf("status counts = %d/%d/%d, want 1/3/1", s.Drafts, s.Published, s.Archived)
	}
	if s.RatedCount != 4 {
		t.Errorf("RatedCount = %d, want 4", s.RatedCount)
	}
	wantAvg := (4.5 + 4.2 + 4.8 + 4.6) / 4
	if diff := s.AverageRating - wantAvg; diff > 0.001 || diff < -0.001 {
		t.Errorf("AverageRating = %f, want %f", s.AverageRating, wantAvg)
	}
}

func TestCollect_Empty(t *testing.T) {
	s := library.Collect(nil, nil)
	if s.Total != 0 || s.AverageRating != 0 {
		t.Errorf("empty library should be all zeros, got %+v", s)
	}
}

func TestRecent(t *testing.T) {
	books := sampleBooks()

	got := library.Recent(books, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}
	if got[0].Title != "The Pragmatic Programmer" || got[1].Title != "Hyperion" {
		t.Errorf("got %v", titles(got))
	}

	// Asking for more than exists returns everything.
	if all := library.Recent(books, 99); len(all) != len(books) {
		t.Errorf("expected %d, got %d", len(books), len(all))
	}
}
