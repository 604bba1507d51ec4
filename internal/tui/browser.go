package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/library"
	"github.com/inkwell-labs/inkctl/internal/tui/delegate"
	"github.com/inkwell-labs/inkctl/internal/util"
)

// BookRow is one library entry with its derived shelf.
type BookRow struct {
	Book  api.Ebook
	Shelf library.Shelf
}

// FilterValue implements list.Item. Filtering runs through the library
// engine, not through the list's built-in filter.
func (r BookRow) FilterValue() string { return r.Book.Title }

// BrowserResult holds the outcome of a browser session.
type BrowserResult struct {
	Selected *api.Ebook     // book chosen for reading, nil when just quit
	Filter   library.Filter // filter state at exit
}

type browserModel struct {
	list   list.Model
	search textinput.Model
	keys   BrowserKeys

	books    []api.Ebook
	progress map[uuid.UUID]float64

	filter     library.Filter
	categories []string
	catIdx     int
	shelfIdx   int
	sortIdx    int

	searching bool
	selected  *api.Ebook
	quitting  bool
	width     int
	height    int
}

func renderBookRow(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(BookRow)
	if !ok {
		return
	}

	title := util.Truncate(row.Book.Title, 40)
	author := row.Book.AuthorName()

	genreStr := ""
	if row.Book.Genre != "" {
		genreStr = " " + StyleTag.Render("["+row.Book.Genre+"]")
	}

	shelfMark := ""
	switch row.Shelf {
	case library.ShelfReading:
		shelfMark = " " + StyleTag.Render("▶")
	case library.ShelfFinished:
		shelfMark = " " + StyleSuccess.Render("✓")
	}

	rating := ""
	if row.Book.RatingCount > 0 {
		rating = " " + StyleHelp.Render(util.Stars(row.Book.RatingAverage))
	}

	line := fmt.Sprintf("%-42s %s%s%s%s", title, StyleHelp.Render(author), genreStr, rating, shelfMark)

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+line))
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(line))
	}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While the search input has focus every printable key belongs to
		// it — browser shortcuts must not fire mid-typing.
		if m.searching {
			switch msg.String() {
			case "esc":
				m.searching = false
				m.search.Blur()
				m.search.SetValue(m.filter.Search)
				return m, nil
			case "enter":
				m.searching = false
				m.search.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				m.filter.Search = m.search.Value()
				m.refilter()
				return m, cmd
			}
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Search):
			m.searching = true
			m.search.Focus()
			return m, textinput.Blink

		case key.Matches(msg, m.keys.Category):
			m.catIdx = (m.catIdx + 1) % len(m.categories)
			m.filter.Category = m.categories[m.catIdx]
			m.refilter()
			return m, nil

		case key.Matches(msg, m.keys.Shelf):
			shelves := library.Shelves()
			m.shelfIdx = (m.shelfIdx + 1) % len(shelves)
			m.filter.Shelf = shelves[m.shelfIdx]
			m.refilter()
			return m, nil

		case key.Matches(msg, m.keys.Sort):
			keys := library.SortKeys()
			m.sortIdx = (m.sortIdx + 1) % len(keys)
			m.filter.Sort = keys[m.sortIdx]
			m.refilter()
			return m, nil

		case key.Matches(msg, m.keys.Reverse):
			m.filter.Reverse = !m.filter.Reverse
			m.refilter()
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if row, ok := m.list.SelectedItem().(BookRow); ok {
				book := row.Book
				m.selected = &book
				m.quitting = true
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := StyleBorder.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// refilter recomputes the visible rows from the full book set.
func (m *browserModel) refilter() {
	visible := m.filter.Apply(m.books, m.progress)
	items := make([]list.Item, len(visible))
	for i, b := range visible {
		items[i] = BookRow{Book: b, Shelf: library.BookShelf(b, m.progress)}
	}
	m.list.SetItems(items)
}

func (m browserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.searching || m.filter.Search != "" {
		b.WriteString(" " + m.search.View() + "\n")
	}
	b.WriteString(m.list.View())
	b.WriteString("\n")

	order := "↑"
	if m.filter.Reverse {
		order = "↓"
	}
	b.WriteString(RenderFooterBar([]ShortcutEntry{
		{Key: "/", Label: "/ search"},
		{Key: "c", Label: "c " + displayCategory(m.filter.Category)},
		{Key: "s", Label: "s " + m.filter.Shelf.Label()},
		{Key: "o", Label: "o sort: " + m.filter.Sort.Label() + order},
		{Key: "enter", Label: "enter read"},
		{Key: "q", Label: "q quit"},
	}, ""))

	return StyleBorder.Render(b.String())
}

func displayCategory(c string) string {
	if c == "" {
		return library.CategoryAll
	}
	return c
}

// RunLibraryBrowser launches the interactive library. books is the full
// fetched list; progress keys reading positions by ebook id and may be nil.
func RunLibraryBrowser(books []api.Ebook, progress map[uuid.UUID]float64, initial library.Filter) (*BrowserResult, error) {
	if len(books) == 0 {
		return nil, fmt.Errorf("no books to display")
	}

	l := list.New(nil, delegate.New(renderBookRow), 0, 0)
	l.Title = "Library"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.HelpStyle = StyleHelp

	search := textinput.New()
	search.Placeholder = "title or author"
	search.Prompt = "search: "
	search.CharLimit = 80
	search.SetValue(initial.Search)

	m := browserModel{
		list:       l,
		search:     search,
		keys:       NewBrowserKeys(),
		books:      books,
		progress:   progress,
		filter:     initial,
		categories: library.Categories(books),
	}
	for i, c := range m.categories {
		if c == initial.Category {
			m.catIdx = i
		}
	}
	for i, s := range library.Shelves() {
		if s == initial.Shelf {
			m.shelfIdx = i
		}
	}
	for i, k := range library.SortKeys() {
		if k == initial.Sort {
			m.sortIdx = i
		}
	}
	m.refilter()

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running library browser: %w", err)
	}

	if fm, ok := finalModel.(browserModel); ok {
		return &BrowserResult{Selected: fm.selected, Filter: fm.filter}, nil
	}
	return &BrowserResult{}, nil
}
