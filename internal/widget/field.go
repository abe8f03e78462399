package widget

// Input is the text-entry control the widget reads on submit and then clears.
// *textinput.Model from bubbles satisfies it.
type Input interface {
	Value() string
	SetValue(string)
}

// Field is a bare in-memory Input, used when no terminal is attached.
type Field struct {
	value string
}

func (f *Field) Value() string     { return f.value }
func (f *Field) SetValue(s string) { f.value = s }
