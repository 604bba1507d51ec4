package reader_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/reader"
)

func newTestSession(n int) *reader.Session {
	book := api.Ebook{ID: uuid.New(), Title: "Test Book"}
	chapters := make([]api.ChapterSummary, n)
	// Deliberately out of order: the session must sort by chapter_number.
	for i := n - 1; i >= 0; i-- {
		chapters[n-1-i] = api.ChapterSummary{
			ID:            uuid.New(),
			EbookID:       book.ID,
			ChapterNumber: i + 1,
			Title:         "Chapter",
		}
	}
	return reader.NewSession(book, chapters)
}

func TestNewSession_SortsChaptersByNumber(t *testing.T) {
	s := newTestSession(5)
	for i, ch := range s.Summaries() {
		if ch.ChapterNumber != i+1 {
			t.Fatalf("chapter %d has number %d", i, ch.ChapterNumber)
		}
	}
}

func TestNavigation_ClampsAtBounds(t *testing.T) {
	s := newTestSession(3)

	if s.Previous() {
		t.Error("Previous at page 0 should not move")
	}
	if s.Page() != 0 {
		t.Fatalf("page = %d, want 0", s.Page())
	}

	if !s.Next() || !s.Next() {
		t.Fatal("Next should move inside bounds")
	}
	if s.Next() {
		t.Error("Next at the last page should not move")
	}
	if s.Page() != 2 {
		t.Fatalf("page = %d, want 2", s.Page())
	}
}

func TestJumpTo_RejectsInvalidTargets(t *testing.T) {
	s := newTestSession(3)

	if s.JumpTo(-1) || s.JumpTo(3) {
		t.Error("out-of-range jump should be rejected")
	}
	if s.JumpTo(0) {
		t.Error("jump to the current page is a no-op")
	}
	if !s.JumpTo(2) {
		t.Error("valid jump should move")
	}
	if s.Page() != 2 {
		t.Fatalf("page = %d, want 2", s.Page())
	}
}

func TestCommit_StaleFetchIsCachedButNotDisplayed(t *testing.T) {
	s := newTestSession(6)

	// Jump to chapter 3, dispatch its fetch.
	s.JumpTo(2)
	page1, seq1 := s.FetchTag()

	// Before it returns, jump to chapter 6 and dispatch another.
	s.JumpTo(5)
	page2, seq2 := s.FetchTag()

	ch3 := &api.Chapter{ID: s.Summary(2).ID, EbookID: s.Book().ID, ChapterNumber: 3, Content: "three"}
	ch6 := &api.Chapter{ID: s.Summary(5).ID, EbookID: s.Book().ID, ChapterNumber: 6, Content: "six"}

	// The second fetch lands first and is current.
	if !s.Commit(page2, seq2, ch6) {
		t.Error("fresh result should be displayable")
	}
	// The first lands late: cached, not displayable.
	if s.Commit(page1, seq1, ch3) {
		t.Error("stale result must not be displayed")
	}

	if got := s.Current(); got == nil || got.Content != "six" {
		t.Fatalf("current chapter = %+v, want chapter six", got)
	}

	// Going back to chapter 3 reuses the stale-but-valid cache entry.
	s.JumpTo(2)
	if got := s.Current(); got == nil || got.Content != "three" {
		t.Fatalf("revisit should hit the cache, got %+v", got)
	}
}

func TestToggleBookmark_TwiceRestoresSet(t *testing.T) {
	s := newTestSession(4)
	s.JumpTo(1)

	if !s.ToggleBookmark() {
		t.Fatal("first toggle should add")
	}
	if !s.IsBookmarked(1) {
		t.Fatal("page 1 should be bookmarked")
	}
	if s.ToggleBookmark() {
		t.Fatal("second toggle should remove")
	}
	if len(s.Bookmarks()) != 0 {
		t.Fatalf("bookmarks = %v, want empty", s.Bookmarks())
	}
}

func TestSetBookmarks_DropsOutOfRange(t *testing.T) {
	s := newTestSession(3)
	s.SetBookmarks([]int{2, 0, -1, 7})

	got := s.Bookmarks()
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("bookmarks = %v, want [0 2]", got)
	}
}

func TestProgressPercent(t *testing.T) {
	s := newTestSession(4)
	if got := s.ProgressPercent(); got != 25 {
		t.Errorf("page 0 of 4 = %f, want 25", got)
	}
	s.JumpTo(3)
	if got := s.ProgressPercent(); got != 100 {
		t.Errorf("last page = %f, want 100", got)
	}
}

func TestFontSize_Clamped(t *testing.T) {
	s := newTestSession(1)

	s.SetFontSize(5)
	if got := s.FontSize(); got != reader.MinFontSize {
		t.Errorf("font = %d, want min %d", got, reader.MinFontSize)
	}
	s.SetFontSize(99)
	if got := s.FontSize(); got != reader.MaxFontSize {
		t.Errorf("font = %d, want max %d", got, reader.MaxFontSize)
	}

	s.SetFontSize(reader.MaxFontSize)
	s.IncreaseFont()
	if got := s.FontSize(); got != reader.MaxFontSize {
		t.Errorf("increase past max moved to %d", got)
	}
}

func TestCycleTheme_WrapsAround(t *testing.T) {
	s := newTestSession(1)
	start := s.Theme()

	seen := map[reader.Theme]bool{start: true}
	s.CycleTheme()
	seen[s.Theme()] = true
	s.CycleTheme()
	seen[s.Theme()] = true

	if len(seen) != 3 {
		t.Errorf("three cycles should visit three themes, saw %v", seen)
	}
	s.CycleTheme()
	if s.Theme() != start {
		t.Errorf("full cycle should return to %v, got %v", start, s.Theme())
	}
}

func TestToggleMode(t *testing.T) {
	s := newTestSession(1)
	if s.Mode() != reader.ModePaginate {
		t.Fatalf("default mode = %v", s.Mode())
	}
	s.ToggleMode()
	if s.Mode() != reader.ModeScroll {
		t.Fatalf("mode = %v, want scroll", s.Mode())
	}
	s.ToggleMode()
	if s.Mode() != reader.ModePaginate {
		t.Fatalf("mode = %v, want paginate", s.Mode())
	}
}
