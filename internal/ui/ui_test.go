package ui

import (
	"bytes"
	"strings"
	"testing"
)

func withTheme(t *testing.T, name string) {
	t.Helper()
	prev, pf, pd := current, forceColor, disableColor
	t.Cleanup(func() {
		current, forceColor, disableColor = prev, pf, pd
		applyStyles(prev)
	})
	if err := SetTheme(name); err != nil {
		t.Fatalf("set theme: %v", err)
	}
}

func TestStrike_PlainOverlay(t *testing.T) {
	withTheme(t, "mono")
	if got, want := Strike("ab"), "a̶b̶"; got != want {
		t.Fatalf("Strike = %q, want %q", got, want)
	}
	if got := Strike(""); got != "" {
		t.Fatalf("Strike(\"\") = %q", got)
	}
	if got := StrikeStyled("x"); got != "x̶" {
		t.Fatalf("StrikeStyled = %q", got)
	}
}

func TestStrike_ForcedColor(t *testing.T) {
	withTheme(t, "classic")
	SetColorForcing(true, false)
	got := Strike("done")
	if !strings.HasPrefix(got, "\033[9m") || !strings.HasSuffix(got, reset) {
		t.Fatalf("Strike = %q, want SGR 9 wrapped", got)
	}
}

func TestSetTheme(t *testing.T) {
	withTheme(t, "classic")
	if err := SetTheme("nope"); err == nil {
		t.Fatalf("unknown theme accepted")
	}
	if Current().Name != "classic" {
		t.Fatalf("failed SetTheme changed the theme")
	}
	if err := SetTheme("MONO"); err != nil {
		t.Fatalf("SetTheme(MONO): %v", err)
	}
	if ColorEnabled() {
		t.Fatalf("mono should disable colour")
	}
	if Checkbox(true) != "[x]" || Checkbox(false) != "[ ]" {
		t.Fatalf("mono checkboxes = %q %q", Checkbox(true), Checkbox(false))
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 10, "░░░░░░░░░░   0%"},
		{1, 2, 10, "█████░░░░░  50%"},
		{3, 3, 5, "█████ 100%"},
		{1, 1, 2, "█████ 100%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d,%d,%d) = %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestPanel_PadsToWidestLine(t *testing.T) {
	withTheme(t, "mono")
	var buf bytes.Buffer
	Panel(&buf, []string{"ab", "abcd", Strike("xy")})
	want := "+------+\n" +
		"| ab   |\n" +
		"| abcd |\n" +
		"| x̶y̶   |\n" +
		"+------+\n"
	if buf.String() != want {
		t.Fatalf("panel =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestOKFail(t *testing.T) {
	withTheme(t, "mono")
	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "bad")
	Hint(&buf, "try again")
	want := "✔ added\n✖ bad\nHint: try again\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
