// Package tui is the interactive terminal front end: an entry form on the
// bottom and the checklist above it.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/checklist/internal/ui"
	"github.com/idilsaglam/checklist/internal/widget"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// framed input box: border + title line + input line
	inputHeight = 4
)

type focus int

const (
	focusInput focus = iota
	focusList
)

type Options struct {
	Placeholder string
	Logger      zerolog.Logger
}

type Model struct {
	widget *widget.ListWidget
	input  *textinput.Model
	list   list.Model
	keys   keyMap
	focus  focus
	log    zerolog.Logger

	width, height int
	status        string
}

// New builds the model with an empty list and the input focused.
func New(opt Options) (Model, error) {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = opt.Placeholder
	ti.Focus()

	w, err := widget.New(&ti, widget.NewEntryList(), widget.WithLogger(opt.Logger))
	if err != nil {
		return Model{}, fmt.Errorf("build widget: %w", err)
	}

	keys := defaultKeys()
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.SetStatusBarItemName("entry", "entries")
	l.AdditionalShortHelpKeys = keys.help
	l.AdditionalFullHelpKeys = keys.help

	m := Model{
		widget: w,
		input:  &ti,
		list:   l,
		keys:   keys,
		log:    opt.Logger,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.list.Title = m.header()
	m.resize()
	return m, nil
}

// Run starts the program and blocks until the user quits.
func Run(opt Options) error {
	m, err := New(opt)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	if fm, ok := final.(Model); ok {
		done, pending := fm.widget.List().Stats()
		fm.log.Info().Int("done", done).Int("pending", pending).Msg("session ended")
	}
	return nil
}

func (m Model) Widget() *widget.ListWidget { return m.widget }

func (m Model) InputFocused() bool { return m.focus == focusInput }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.SwitchFocus):
			return m, m.switchFocus()
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	var inputCmd, listCmd tea.Cmd
	*m.input, inputCmd = m.input.Update(msg)
	m.list, listCmd = m.list.Update(msg)
	return m, tea.Batch(inputCmd, listCmd)
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		e := m.widget.Submit()
		m.status = fmt.Sprintf("added %q", e.Text)
		cmd := m.sync()
		m.list.Select(len(m.list.Items()) - 1)
		return m, cmd
	}
	var cmd tea.Cmd
	*m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		it, ok := m.list.SelectedItem().(entryItem)
		if !ok {
			return m, nil
		}
		// the checkbox flips natively; the widget only reads its new state
		e, _ := m.widget.SetDone(it.ID, !it.Done)
		verb := "unchecked"
		if e.Done {
			verb = "checked"
		}
		m.status = fmt.Sprintf("%s %q", verb, e.Text)
		return m, m.sync()
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) switchFocus() tea.Cmd {
	var cmd tea.Cmd
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
	} else {
		m.focus = focusInput
		cmd = m.input.Focus()
	}
	m.list.SetDelegate(itemDelegate{focused: m.focus == focusList})
	return cmd
}

// sync re-renders the list from the widget's entries.
func (m *Model) sync() tea.Cmd {
	cmd := m.list.SetItems(toItems(m.widget.Entries()))
	m.list.Title = m.header()
	return cmd
}

func (m Model) header() string {
	done, pending := m.widget.List().Stats()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		"Todos",
		ui.SuccessStyle.Render(ui.Current().SymDone), done,
		ui.PendingStyle.Render(ui.Current().SymPending), pending,
		ui.AccentStyle.Render("Total"), done+pending,
	)
}

func (m *Model) resize() {
	hf, vf := ui.FrameStyle.GetFrameSize()
	innerW := max(m.width-hf, 10)
	m.list.SetSize(innerW, max(m.height-vf-inputHeight, 3))
	m.input.Width = max(innerW-hf-len(m.input.Prompt)-1, 1)
}

func (m Model) View() string {
	title := "Add new entry"
	if m.status != "" {
		title += " " + ui.MutedStyle.Render("("+m.status+")")
	}
	bar := ui.FrameStyle.Render(title + "\n" + m.input.View())
	return ui.FrameStyle.Render(m.list.View() + "\n" + bar)
}
