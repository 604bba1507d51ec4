// Package delegate provides a reusable list.ItemDelegate whose only custom
// part is the render function.
package delegate

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one list item.
type RenderFunc func(w io.Writer, m list.Model, index int, item list.Item)

// Base is a single-line delegate with a no-op Update.
type Base struct {
	height   int
	renderFn RenderFunc
}

// New creates a delegate with the given render function.
func New(renderFn RenderFunc) Base {
	return Base{height: 1, renderFn: renderFn}
}

// Height implements list.ItemDelegate.
func (d Base) Height() int { return d.height }

// Spacing implements list.ItemDelegate.
func (d Base) Spacing() int { return 0 }

// Update implements list.ItemDelegate.
func (d Base) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

// Render implements list.ItemDelegate.
func (d Base) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if d.renderFn != nil {
		d.renderFn(w, m, index, item)
	}
}
