// Package reader holds the reading view's navigation state: a chapter
// cursor, the bookmark set, and appearance settings. One page is one
// chapter; within a chapter the view scrolls.
package reader

import (
	"sort"

	"github.com/inkwell-labs/inkctl/internal/api"
)

// Font size bounds, in points (rendered as column width in the terminal).
const (
	MinFontSize     = 14
	MaxFontSize     = 32
	DefaultFontSize = 16
)

// Session is the ephemeral, client-only reading state for one book. It is
// reset when the reader closes; only bookmarks and progress are synced out
// through the API by the view layer.
type Session struct {
	book     api.Ebook
	chapters []api.ChapterSummary

	page int
	// seq tags every cursor move. A chapter fetch carries the seq active
	// at dispatch; a result arriving under a newer seq is stale and must
	// not reach the screen (last cursor wins).
	seq uint64

	bookmarks map[int]struct{}
	content   map[int]*api.Chapter

	theme    Theme
	fontSize int
	mode     ViewMode
}

// NewSession creates a session over the book's chapters, ordered by
// chapter_number regardless of input order.
func NewSession(book api.Ebook, chapters []api.ChapterSummary) *Session {
	sorted := make([]api.ChapterSummary, len(chapters))
	copy(sorted, chapters)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ChapterNumber < sorted[j].ChapterNumber
	})
	return &Session{
		book:      book,
		chapters:  sorted,
		bookmarks: make(map[int]struct{}),
		content:   make(map[int]*api.Chapter),
		theme:     ThemeDark,
		fontSize:  DefaultFontSize,
		mode:      ModePaginate,
	}
}

// Book returns the book being read.
func (s *Session) Book() api.Ebook { return s.book }

// TotalPages equals the chapter count.
func (s *Session) TotalPages() int { return len(s.chapters) }

// Page returns the current cursor position.
func (s *Session) Page() int { return s.page }

// Summary returns the chapter summary at index i, or a zero value when out
// of range.
func (s *Session) Summary(i int) api.ChapterSummary {
	if i < 0 || i >= len(s.chapters) {
		return api.ChapterSummary{}
	}
	return s.chapters[i]
}

// Summaries returns the table of contents in reading order.
func (s *Session) Summaries() []api.ChapterSummary { return s.chapters }

// Next advances the cursor, clamped at the last page. Reports whether the
// cursor moved.
func (s *Session) Next() bool {
	if s.page >= len(s.chapters)-1 {
		return false
	}
	s.page++
	s.seq++
	return true
}

// Previous moves the cursor back, clamped at page zero.
func (s *Session) Previous() bool {
	if s.page <= 0 {
		return false
	}
	s.page--
	s.seq++
	return true
}

// JumpTo sets the cursor absolutely, used by the TOC and bookmark overlays.
// Out-of-range indices are a no-op.
func (s *Session) JumpTo(i int) bool {
	if i < 0 || i >= len(s.chapters) || i == s.page {
		return false
	}
	s.page = i
	s.seq++
	return true
}

// FetchTag snapshots the cursor and sequence for an outgoing chapter fetch.
func (s *Session) FetchTag() (page int, seq uint64) {
	return s.page, s.seq
}

// Commit stores a fetched chapter and reports whether it is still the one
// the cursor points at. Stale results are cached (they stay valid for their
// own page) but must not be displayed.
func (s *Session) Commit(page int, seq uint64, ch *api.Chapter) bool {
	if ch != nil && page >= 0 && page < len(s.chapters) {
		s.content[page] = ch
	}
	return seq == s.seq
}

// Current returns the fetched chapter for the cursor position, or nil when
// it has not arrived (or its fetch failed) — the view then falls back to the
// summary's title-only metadata instead of blanking.
func (s *Session) Current() *api.Chapter {
	return s.content[s.page]
}

// ToggleBookmark flips the current page's bookmark membership and reports
// the new state. Set semantics: toggling twice restores the original set.
func (s *Session) ToggleBookmark() bool {
	if _, ok := s.bookmarks[s.page]; ok {
		delete(s.bookmarks, s.page)
		return false
	}
	s.bookmarks[s.page] = struct{}{}
	return true
}

// IsBookmarked reports whether page i is bookmarked.
func (s *Session) IsBookmarked(i int) bool {
	_, ok := s.bookmarks[i]
	return ok
}

// Bookmarks returns the bookmarked page indices in ascending order.
func (s *Session) Bookmarks() []int {
	out := make([]int, 0, len(s.bookmarks))
	for i := range s.bookmarks {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// SetBookmarks replaces the set, used when hydrating from server-side
// bookmarks. Out-of-range indices are dropped.
func (s *Session) SetBookmarks(pages []int) {
	s.bookmarks = make(map[int]struct{}, len(pages))
	for _, i := range pages {
		if i >= 0 && i < len(s.chapters) {
			s.bookmarks[i] = struct{}{}
		}
	}
}

// ProgressPercent is the cursor position expressed for the progress API.
func (s *Session) ProgressPercent() float64 {
	if len(s.chapters) == 0 {
		return 0
	}
	return float64(s.page+1) / float64(len(s.chapters)) * 100
}
