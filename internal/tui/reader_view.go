package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/cache"
	"github.com/inkwell-labs/inkctl/internal/reader"
	"github.com/inkwell-labs/inkctl/internal/tui/delegate"
	"github.com/inkwell-labs/inkctl/internal/util"
	"github.com/muesli/reflow/wordwrap"
)

const fetchTimeout = 15 * time.Second

// chapterMsg carries a fetched chapter back into the update loop, tagged
// with the cursor and sequence active when the fetch was dispatched.
type chapterMsg struct {
	page    int
	seq     uint64
	chapter *api.Chapter
	err     error
}

// bookmarkSavedMsg reports the server-side id of a created bookmark.
type bookmarkSavedMsg struct {
	page int
	id   uuid.UUID
}

type overlay int

const (
	overlayNone overlay = iota
	overlayTOC
	overlayBookmarks
)

// chapterItem is a TOC/bookmark overlay row.
type chapterItem struct {
	index      int
	title      string
	bookmarked bool
	current    bool
}

// FilterValue implements list.Item.
func (c chapterItem) FilterValue() string { return c.title }

func renderChapterItem(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(chapterItem)
	if !ok {
		return
	}
	mark := "  "
	if ci.bookmarked {
		mark = StyleBookmark.Render("★") + " "
	}
	line := fmt.Sprintf("%s%3d  %s", mark, ci.index+1, util.Truncate(ci.title, 50))
	if ci.current {
		line += StyleHelp.Render("  (reading)")
	}
	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+line))
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(line))
	}
}

type readerModel struct {
	client *api.Client
	cache  *cache.Manager
	sess   *reader.Session
	keys   ReaderKeys

	overlay overlay
	toc     list.Model

	spin    spinner.Model
	loading bool
	// fetchFailed marks the current page's fetch as failed; the view then
	// shows title-only metadata instead of blanking what was on screen.
	fetchFailed bool

	// serverBookmarks maps chapter index to the backend bookmark id, for
	// deletion when the local toggle removes it.
	serverBookmarks map[int]uuid.UUID

	width  int
	height int
	scroll int // line offset within the wrapped chapter

	quitting bool
}

func (m readerModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchCurrent())
}

// fetchCurrent dispatches a chapter fetch tagged with the live cursor.
// Fetched chapters are written through to the disk cache, which also serves
// as the fallback when the network is down.
func (m *readerModel) fetchCurrent() tea.Cmd {
	page, seq := m.sess.FetchTag()
	summary := m.sess.Summary(page)
	client := m.client
	store := m.cache
	bookID := m.sess.Book().ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		ch, err := client.GetChapter(ctx, bookID, summary.ID)
		if err == nil {
			if store != nil {
				_ = store.Store(ch)
			}
			return chapterMsg{page: page, seq: seq, chapter: ch}
		}
		if store != nil {
			if cached, cerr := store.Load(bookID, summary.ID); cerr == nil && cached != nil {
				return chapterMsg{page: page, seq: seq, chapter: cached}
			}
		}
		return chapterMsg{page: page, seq: seq, err: err}
	}
}

// syncProgress reports the cursor position to the backend, best-effort.
// Reading is never interrupted by a failed sync.
func (m *readerModel) syncProgress() tea.Cmd {
	page, _ := m.sess.FetchTag()
	summary := m.sess.Summary(page)
	percent := m.sess.ProgressPercent()
	client := m.client
	bookID := m.sess.Book().ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		chID := summary.ID
		_, _ = client.SaveReadingProgress(ctx, bookID, api.ReadingProgressUpdate{
			ProgressPercent: percent,
			LastPosition:    page,
			ChapterID:       &chID,
		})
		return nil
	}
}

// saveBookmark mirrors a local bookmark to the backend, best-effort.
func (m *readerModel) saveBookmark(page int) tea.Cmd {
	summary := m.sess.Summary(page)
	client := m.client
	bookID := m.sess.Book().ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		chID := summary.ID
		bm, err := client.CreateBookmark(ctx, bookID, api.BookmarkCreate{
			Position:  page,
			Title:     summary.Title,
			ChapterID: &chID,
		})
		if err != nil {
			return nil
		}
		return bookmarkSavedMsg{page: page, id: bm.ID}
	}
}

// dropBookmark removes the backend copy of an untoggled bookmark.
func (m *readerModel) dropBookmark(page int) tea.Cmd {
	id, ok := m.serverBookmarks[page]
	if !ok {
		return nil
	}
	delete(m.serverBookmarks, page)
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		_ = client.DeleteBookmark(ctx, id)
		return nil
	}
}

// moved resets per-chapter view state and kicks off the fetch + sync pair.
func (m *readerModel) moved() tea.Cmd {
	m.scroll = 0
	m.loading = m.sess.Current() == nil
	m.fetchFailed = false
	return tea.Batch(m.fetchCurrent(), m.syncProgress())
}

func (m readerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.overlay != overlayNone {
			return m.updateOverlay(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Close):
			// No overlay open: esc leaves the reader.
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			if m.sess.Next() {
				return m, m.moved()
			}
			return m, nil

		case key.Matches(msg, m.keys.Previous):
			if m.sess.Previous() {
				return m, m.moved()
			}
			return m, nil

		case key.Matches(msg, m.keys.ScrollDn):
			m.scroll += m.scrollStep()
			m.clampScroll()
			return m, nil

		case key.Matches(msg, m.keys.ScrollUp):
			m.scroll -= m.scrollStep()
			if m.scroll < 0 {
				m.scroll = 0
			}
			return m, nil

		case key.Matches(msg, m.keys.TOC):
			m.openOverlay(overlayTOC)
			return m, nil

		case key.Matches(msg, m.keys.Bookmarks):
			m.openOverlay(overlayBookmarks)
			return m, nil

		case key.Matches(msg, m.keys.Bookmark):
			page := m.sess.Page()
			if m.sess.ToggleBookmark() {
				return m, m.saveBookmark(page)
			}
			return m, m.dropBookmark(page)

		case key.Matches(msg, m.keys.Theme):
			m.sess.CycleTheme()
			return m, nil

		case key.Matches(msg, m.keys.FontUp):
			m.sess.IncreaseFont()
			m.clampScroll()
			return m, nil

		case key.Matches(msg, m.keys.FontDown):
			m.sess.DecreaseFont()
			m.clampScroll()
			return m, nil

		case key.Matches(msg, m.keys.ViewMode):
			m.sess.ToggleMode()
			m.scroll = 0
			return m, nil
		}

	case chapterMsg:
		current := m.sess.Commit(msg.page, msg.seq, msg.chapter)
		if !current {
			// Stale response for an earlier cursor position: cached for
			// revisits, never displayed.
			return m, nil
		}
		m.loading = false
		m.fetchFailed = msg.err != nil
		return m, nil

	case bookmarkSavedMsg:
		if m.sess.IsBookmarked(msg.page) {
			m.serverBookmarks[msg.page] = msg.id
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.toc.SetSize(msg.Width-6, msg.Height-6)
		m.clampScroll()
		return m, nil
	}

	return m, nil
}

func (m readerModel) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the overlay's filter input is focused, every key belongs to
	// it — reader shortcuts must not hijack typing.
	if m.toc.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.toc, cmd = m.toc.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		m.overlay = overlayNone
		return m, nil

	case msg.String() == "enter":
		if item, ok := m.toc.SelectedItem().(chapterItem); ok {
			m.overlay = overlayNone
			if m.sess.JumpTo(item.index) {
				return m, m.moved()
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		m.overlay = overlayNone
		return m, nil
	}

	var cmd tea.Cmd
	m.toc, cmd = m.toc.Update(msg)
	return m, cmd
}

func (m *readerModel) openOverlay(o overlay) {
	items := m.overlayItems(o)
	m.toc.SetItems(items)
	if o == overlayTOC {
		m.toc.Title = "Contents"
		m.toc.Select(m.sess.Page())
	} else {
		m.toc.Title = "Bookmarks"
		m.toc.Select(0)
	}
	m.overlay = o
}

func (m *readerModel) overlayItems(o overlay) []list.Item {
	var items []list.Item
	if o == overlayBookmarks {
		for _, i := range m.sess.Bookmarks() {
			items = append(items, chapterItem{
				index:      i,
				title:      m.sess.Summary(i).Title,
				bookmarked: true,
				current:    i == m.sess.Page(),
			})
		}
		return items
	}
	for i, s := range m.sess.Summaries() {
		items = append(items, chapterItem{
			index:      i,
			title:      s.Title,
			bookmarked: m.sess.IsBookmarked(i),
			current:    i == m.sess.Page(),
		})
	}
	return items
}

// contentWidth maps the font size onto a column width: a larger font fits
// fewer characters on a fixed-width screen.
func (m readerModel) contentWidth() int {
	cols := 1120 / m.sess.FontSize()
	if max := m.width - 6; cols > max && max > 20 {
		cols = max
	}
	if cols < 30 {
		cols = 30
	}
	return cols
}

// wrappedLines returns the current chapter body wrapped for display.
func (m readerModel) wrappedLines() []string {
	ch := m.sess.Current()
	if ch == nil || ch.Content == "" {
		return nil
	}
	wrapped := wordwrap.String(ch.Content, m.contentWidth())
	return strings.Split(wrapped, "\n")
}

func (m readerModel) pageHeight() int {
	h := m.height - 6 // heading + status + frame
	if h < 4 {
		h = 4
	}
	return h
}

// scrollStep is one line in scroll mode and a full screen in paginate mode.
func (m readerModel) scrollStep() int {
	if m.sess.Mode() == reader.ModePaginate {
		return m.pageHeight()
	}
	return 1
}

func (m *readerModel) clampScroll() {
	lines := m.wrappedLines()
	maxScroll := len(lines) - m.pageHeight()
	if m.sess.Mode() == reader.ModePaginate {
		// Paginate moves in screenfuls; keep the offset on a page boundary.
		ph := m.pageHeight()
		if m.scroll > 0 && m.scroll%ph != 0 {
			m.scroll = (m.scroll / ph) * ph
		}
	}
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m readerModel) View() string {
	if m.quitting {
		return ""
	}

	contentStyle, headingStyle, statusStyle := ReaderStyles(m.sess.Theme())

	if m.overlay != overlayNone {
		return StyleBorder.Render(m.toc.View() + "\n" + RenderFooterBar([]ShortcutEntry{
			{Label: "enter jump"},
			{Label: "/ filter"},
			{Label: "esc close"},
		}, ""))
	}

	summary := m.sess.Summary(m.sess.Page())
	star := ""
	if m.sess.IsBookmarked(m.sess.Page()) {
		star = " " + StyleBookmark.Render("★")
	}
	heading := headingStyle.Render(fmt.Sprintf("%s — %d/%d  %s%s",
		util.Truncate(m.sess.Book().Title, 40),
		m.sess.Page()+1, m.sess.TotalPages(),
		util.Truncate(summary.Title, 40), star))

	var body string
	switch {
	case m.loading:
		body = contentStyle.Render(m.spin.View() + " loading chapter…")
	case m.sess.Current() == nil || m.sess.Current().Content == "":
		// Fetch failed or chapter has no body: show metadata only, never a
		// blank page.
		note := "no content available"
		if m.fetchFailed {
			note = "could not load chapter content — showing metadata only"
		}
		body = contentStyle.Render(summary.Title + "\n\n" + statusStyle.Render(note))
	default:
		lines := m.wrappedLines()
		start := m.scroll
		if start > len(lines) {
			start = len(lines)
		}
		end := start + m.pageHeight()
		if end > len(lines) {
			end = len(lines)
		}
		visible := strings.Join(lines[start:end], "\n")
		body = contentStyle.Width(m.contentWidth() + 4).Render(visible)
	}

	status := statusStyle.Render(fmt.Sprintf(" %s · %dpt · %s ",
		m.sess.Theme(), m.sess.FontSize(), m.sess.Mode()))
	help := RenderFooterBar([]ShortcutEntry{
		{Label: "←/→ chapters"},
		{Label: "t contents"},
		{Label: "b bookmark"},
		{Label: "B bookmarks"},
		{Label: "T theme"},
		{Label: "+/- text"},
		{Label: "v mode"},
		{Label: "q quit"},
	}, "")

	// ansi.StringWidth ignores the escape sequences lipgloss added.
	gap := m.width - ansi.StringWidth(status) - 2
	if gap < 1 {
		gap = 1
	}

	return heading + "\n" + body + "\n" + strings.Repeat(" ", gap) + status + "\n" + help
}

// RunReader opens the reading view for a book. chapters must be the book's
// summaries; bookmarks are the server-side saved positions used to hydrate
// the local set.
func RunReader(client *api.Client, store *cache.Manager, book api.Ebook, chapters []api.ChapterSummary, bookmarks []api.Bookmark, sess *reader.Session) error {
	if sess == nil {
		sess = reader.NewSession(book, chapters)
	}
	if sess.TotalPages() == 0 {
		return fmt.Errorf("book has no chapters yet")
	}

	serverIDs := make(map[int]uuid.UUID, len(bookmarks))
	pages := make([]int, 0, len(bookmarks))
	for _, bm := range bookmarks {
		pages = append(pages, bm.Position)
		serverIDs[bm.Position] = bm.ID
	}
	sess.SetBookmarks(pages)

	toc := list.New(nil, delegate.New(renderChapterItem), 0, 0)
	toc.SetShowStatusBar(false)
	toc.SetFilteringEnabled(true)
	toc.Styles.Title = StyleHeader
	toc.Styles.HelpStyle = StyleHelp

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := readerModel{
		client:          client,
		cache:           store,
		sess:            sess,
		keys:            NewReaderKeys(),
		toc:             toc,
		spin:            sp,
		loading:         true,
		serverBookmarks: serverIDs,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("running reader: %w", err)
	}
	return nil
}
