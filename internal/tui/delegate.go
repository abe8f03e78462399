package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/checklist/internal/model"
	"github.com/idilsaglam/checklist/internal/ui"
)

// entryItem adapts model.Entry to list.Item.
type entryItem struct {
	model.Entry
}

func (i entryItem) FilterValue() string { return i.Text }

func toItems(entries []model.Entry) []list.Item {
	out := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryItem{e})
	}
	return out
}

// Single-line rows: checkbox glyph, then the label. Done rows are struck.
type itemDelegate struct {
	focused bool
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}
	box := ui.MutedStyle.Render(ui.Checkbox(false))
	text := it.Text
	if it.Done {
		box = ui.SuccessStyle.Render(ui.Checkbox(true))
		text = ui.StrikeStyled(text)
	}

	prefix := "  "
	if d.focused && index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}
