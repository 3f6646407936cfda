package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/san-kum/asciifx/internal/glyph"
)

func frame(width int, chars string) glyph.Frame {
	f := glyph.Frame{Width: width}
	for _, ch := range chars {
		c := glyph.Cell{Char: ch}
		if ch != ' ' {
			c.Styled = true
			c.Color = glyph.RGB{R: 255, G: 128, B: 0}
		}
		f.Cells = append(f.Cells, c)
	}
	return f
}

func TestTextLineBreaks(t *testing.T) {
	r := New(&bytes.Buffer{}, WithColorProfile(termenv.Ascii))
	out := r.Text(frame(3, "abcdefgh"))

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "abc" || lines[1] != "def" || lines[2] != "gh" {
		t.Errorf("unexpected layout: %q", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("no trailing newline expected")
	}
}

func TestTextTrueColor(t *testing.T) {
	r := New(&bytes.Buffer{}, WithColorProfile(termenv.TrueColor))
	out := r.Text(frame(2, "a "))

	if !strings.Contains(out, "38;2;255;128;0") {
		t.Errorf("expected truecolor foreground sequence, got %q", out)
	}
	if !strings.HasSuffix(out, " ") {
		t.Errorf("blank cell should be a bare space, got %q", out)
	}
}

func TestPlainMatchesAscii(t *testing.T) {
	f := frame(4, "ab cd ef")
	r := New(&bytes.Buffer{}, WithColorProfile(termenv.Ascii))
	if r.Text(f) != Plain(f) {
		t.Errorf("ascii profile should render plain text: %q vs %q", r.Text(f), Plain(f))
	}
}

func TestColumns(t *testing.T) {
	r := New(&bytes.Buffer{}, WithColorProfile(termenv.Ascii))
	out := r.Columns("ab\ncd", "info\n")

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "ab"+strings.Repeat(" ", InfoPadding)+"info") {
		t.Errorf("unexpected first line %q", lines[0])
	}

	if r.Columns("ab", "") != "ab" {
		t.Error("empty info should leave the image untouched")
	}
}

func TestHex(t *testing.T) {
	if got := Hex(glyph.RGB{R: 1, G: 171, B: 255}); got != "#01abff" {
		t.Errorf("expected #01abff, got %s", got)
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("light").Name != "light" {
		t.Error("expected light theme")
	}
	if GetTheme("neon").Name != "dark" {
		t.Error("unknown theme should fall back to dark")
	}
}

func TestPadded(t *testing.T) {
	r := New(&bytes.Buffer{}, WithColorProfile(termenv.Ascii))
	out := r.Padded("ab\ncd")
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, strings.Repeat(" ", InfoPadding)) {
			t.Errorf("line not padded: %q", line)
		}
	}
}
