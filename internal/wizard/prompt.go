package wizard

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ask prints label with its default and returns the trimmed answer, or def
// when the answer is empty or input is exhausted.
func (w *Wizard) ask(label, def string) string {
	if def != "" {
		fmt.Fprintf(w.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(w.out, "%s: ", label)
	}
	if w.eof {
		fmt.Fprintln(w.out)
		return def
	}
	input, err := w.in.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			w.eof = true
		}
		fmt.Fprintln(w.out)
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return def
	}
	return input
}

func (w *Wizard) askInt(label string, def int) int {
	input := w.ask(label, strconv.Itoa(def))
	n, err := strconv.Atoi(input)
	if err != nil {
		fmt.Fprintln(w.out, w.ui.Warning(fmt.Sprintf("⚠ %q is not a number, keeping %d", input, def)))
		return def
	}
	return n
}

// askChoice repeats the question until the answer is one of choices.
func (w *Wizard) askChoice(label string, choices []string, def string) string {
	prompt := fmt.Sprintf("%s [%s]", label, strings.Join(choices, "/"))
	for {
		input := w.ask(prompt, def)
		for _, c := range choices {
			if strings.EqualFold(input, c) {
				return c
			}
		}
		if w.eof {
			return choices[0]
		}
		fmt.Fprintln(w.out, w.ui.Warning("Please select one of the available options"))
	}
}

func (w *Wizard) confirm(label string, def bool) bool {
	d := "y/N"
	if def {
		d = "Y/n"
	}
	input := strings.ToLower(w.ask(label, d))
	switch input {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	}
	return def
}
