package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/checklist/internal/model"
	"github.com/idilsaglam/checklist/internal/tui"
	"github.com/idilsaglam/checklist/internal/ui"
	"github.com/idilsaglam/checklist/internal/widget"
)

// Options tune output behavior from root flags and config.
type Options struct {
	Group       bool // group the play panel by pending/done
	Placeholder string
	Logger      zerolog.Logger

	Out, Err io.Writer
}

func (o *Options) defaults() {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// With no arguments it starts the interactive list.
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		return doInteractive(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "tui":
		return doInteractive(opt)

	case "play":
		if len(a) == 0 {
			ui.Fail(opt.Err, "usage: checklist play <step>...")
			return 2
		}
		return doPlay(a, opt)
	}

	ui.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `checklist - a tiny in-memory to-do list

Usage:
  checklist [flags] [subcommand] [args]

Subcommands:
  tui                Interactive list (default)
  play <step>...     Run steps against a fresh list and print it
  help               Show this help

Steps:
  add <text>         Append an unchecked entry (text may be empty)
  check <n>          Check entry n (1-based)
  uncheck <n>        Uncheck entry n
  toggle <n>         Flip entry n

Keys (tui):
  enter              Add the typed entry
  tab                Switch between input and list
  space / x          Check or uncheck the selected entry
  q / esc            Quit from the list, ctrl+c anywhere

Examples:
  checklist
  checklist play add "Buy milk" check 1 add "Walk dog"
  checklist --group play add a add b toggle 2
`)
}

// -------------- subcommand impls ----------------

func doInteractive(opt Options) int {
	err := tui.Run(tui.Options{
		Placeholder: opt.Placeholder,
		Logger:      opt.Logger,
	})
	if err != nil {
		ui.Fail(opt.Err, "tui: "+err.Error())
		return 1
	}
	return 0
}

func doPlay(steps []string, opt Options) int {
	field := &widget.Field{}
	w, err := widget.New(field, widget.NewEntryList(), widget.WithLogger(opt.Logger))
	if err != nil {
		ui.Fail(opt.Err, "widget: "+err.Error())
		return 1
	}
	w.Subscribe(func(ev widget.Event) {
		switch ev.Kind {
		case widget.EntryAdded:
			ui.OK(opt.Out, fmt.Sprintf("added %d. %q", ev.Index+1, ev.Entry.Text))
		case widget.EntryToggled:
			verb := "unchecked"
			if ev.Entry.Done {
				verb = "checked"
			}
			ui.OK(opt.Out, fmt.Sprintf("%s %d. %q", verb, ev.Index+1, ev.Entry.Text))
		}
	})

	for i := 0; i < len(steps); i += 2 {
		verb := steps[i]
		switch verb {
		case "add", "check", "uncheck", "toggle":
		default:
			ui.Fail(opt.Err, "play: unknown step: "+verb)
			return 2
		}
		if i+1 >= len(steps) {
			ui.Fail(opt.Err, fmt.Sprintf("play: %s: missing argument", verb))
			return 2
		}
		arg := steps[i+1]

		if verb == "add" {
			field.SetValue(arg)
			w.Submit()
			continue
		}

		n, err := strconv.Atoi(arg)
		if err != nil {
			ui.Fail(opt.Err, fmt.Sprintf("play: %s: not a number: %s", verb, arg))
			return 2
		}
		e, ok := w.List().At(n - 1)
		if !ok {
			ui.Fail(opt.Err, fmt.Sprintf("play: %s: index out of range: have %d, got %d", verb, w.List().Len(), n))
			ui.Hint(opt.Err, "indexes count added entries from 1")
			return 2
		}

		switch verb {
		case "check":
			w.SetDone(e.ID, true)
		case "uncheck":
			w.SetDone(e.ID, false)
		case "toggle":
			w.Toggle(n - 1)
		}
	}

	renderPanel(opt.Out, w.Entries(), opt.Group)
	return 0
}

// -------------- rendering helpers --------------

func stats(items []model.Entry) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func renderPanel(out io.Writer, entries []model.Entry, group bool) {
	t := ui.Current()
	d, p := stats(entries)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Todos"),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymPending), p,
		ui.C(t.Accent, "Total"), len(entries),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")
	if group {
		lines = append(lines, groupLines(entries)...)
	} else {
		lines = append(lines, flatLines(entries, 1)...)
	}
	ui.Panel(out, lines)
}

func flatLines(items []model.Entry, first int) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(t.Muted, "no entries")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", first+i)
		box := ui.C(t.Muted, ui.Checkbox(false))
		text := it.Text
		if it.Done {
			box = ui.C(t.Success, ui.Checkbox(true))
			text = ui.Strike(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", ui.C("\033[2m", idx), box, text))
	}
	return out
}

// groupLines keeps each entry's original number so steps stay addressable.
func groupLines(items []model.Entry) []string {
	t := ui.Current()
	var pend, done []string
	for i, it := range items {
		ln := flatLines([]model.Entry{it}, i+1)[0]
		if it.Done {
			done = append(done, ln)
		} else {
			pend = append(pend, ln)
		}
	}
	none := []string{ui.C(t.Muted, "(none)")}
	if len(pend) == 0 {
		pend = none
	}
	if len(done) == 0 {
		done = none
	}
	lines := []string{ui.C(t.Accent, "Pending")}
	lines = append(lines, pend...)
	lines = append(lines, "", ui.C(t.Accent, "Done"))
	return append(lines, done...)
}
