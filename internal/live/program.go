package live

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	TickInterval = 50 * time.Millisecond
	TimeStep     = 0.2

	ExitMessage     = "[Exited animation 👋]"
	LiteExitMessage = "[Exited animation with 'q']"
)

// FrameFunc renders the frame for wave time t.
type FrameFunc func(t float64) string

type TickMsg time.Time

// Model is the Bubble Tea model driving the animation.
type Model struct {
	frame    FrameFunc
	t        float64
	view     string
	quitting bool
}

func NewModel(frame FrameFunc) Model {
	return Model{frame: frame, t: TimeStep, view: frame(TimeStep)}
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case TickMsg:
		m.t += TimeStep
		m.view = m.frame(m.t)
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.view
}

// T returns the current wave time.
func (m Model) T() float64 { return m.t }

// Run animates frame on the alternate screen until a quit key is pressed or
// ctx is canceled, then clears the screen and prints a confirmation.
func Run(ctx context.Context, frame FrameFunc, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(NewModel(frame),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	fmt.Fprint(out, clearScreen)
	fmt.Fprintln(out, ExitMessage)
	return err
}
