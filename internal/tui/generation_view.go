package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
)

const pollInterval = 2 * time.Second

// pollMsg carries one generation progress snapshot.
type pollMsg struct {
	prog *api.GenerationProgress
	err  error
}

type pollTickMsg time.Time

type generationModel struct {
	client *api.Client
	bookID uuid.UUID

	bar  progress.Model
	spin spinner.Model

	latest   *api.GenerationProgress
	pollErrs int
	err      error

	done      bool
	cancelled bool
}

func (m generationModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.poll())
}

func (m *generationModel) poll() tea.Cmd {
	client := m.client
	bookID := m.bookID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		prog, err := client.GenerationProgressFor(ctx, bookID)
		return pollMsg{prog: prog, err: err}
	}
}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}

func (m generationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" || msg.String() == "esc" {
			// Stops watching only. The job keeps running server-side; use
			// the cancel command to abort it.
			m.done = true
			m.cancelled = true
			return m, tea.Quit
		}

	case pollMsg:
		if msg.err != nil {
			m.pollErrs++
			// Transient failures are retried; give up after a streak.
			if m.pollErrs >= 5 {
				m.err = msg.err
				m.done = true
				return m, tea.Quit
			}
			return m, pollTick()
		}
		m.pollErrs = 0
		m.latest = msg.prog
		if msg.prog.Status.Terminal() {
			m.done = true
			return m, tea.Quit
		}
		return m, pollTick()

	case pollTickMsg:
		return m, m.poll()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 20
		if m.bar.Width > 80 {
			m.bar.Width = 80
		}
		return m, nil
	}

	return m, nil
}

func (m generationModel) View() string {
	if m.done {
		return ""
	}
	if m.latest == nil {
		return fmt.Sprintf("\n  %s fetching generation status…\n", m.spin.View())
	}

	percent := float64(m.latest.ProgressPercent) / 100
	detail := ""
	if m.latest.CurrentChapter != nil && m.latest.TotalChapters != nil {
		detail = fmt.Sprintf("  chapter %d of %d", *m.latest.CurrentChapter, *m.latest.TotalChapters)
	}

	return fmt.Sprintf(
		"\n  %s Generating — %s\n\n  %s %d%%%s\n\n%s\n",
		m.spin.View(),
		m.latest.Status,
		m.bar.ViewAs(percent),
		m.latest.ProgressPercent,
		detail,
		RenderFooterBar([]ShortcutEntry{{Label: "q stop watching"}}, ""),
	)
}

// WatchGeneration polls a book's generation job and renders a live progress
// bar until the job reaches a terminal status. It returns the final snapshot,
// or nil when the user stopped watching.
func WatchGeneration(client *api.Client, bookID uuid.UUID) (*api.GenerationProgress, error) {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := generationModel{
		client: client,
		bookID: bookID,
		bar:    progress.New(progress.WithDefaultGradient()),
		spin:   sp,
	}

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("watching generation: %w", err)
	}
	fm, ok := final.(generationModel)
	if !ok {
		return nil, nil
	}
	if fm.err != nil {
		return nil, fm.err
	}
	if fm.cancelled {
		return nil, nil
	}
	return fm.latest, nil
}
