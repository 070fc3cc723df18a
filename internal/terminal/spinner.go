package terminal

import (
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// doneMsg signals the spinner program that the wrapped operation
// finished.
type doneMsg struct{}

// spinnerModel renders a spinner next to a message until doneMsg arrives.
type spinnerModel struct {
	spinner spinner.Model
	message string
}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	return spinnerModel{spinner: s, message: message}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		// The wrapped operation cannot be canceled from the keyboard;
		// ignore input so stray keypresses do not kill the spinner.
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	return m.spinner.View() + " " + m.message
}

// RunWithSpinner executes fn while displaying a spinner with the given
// message, and returns fn's error. If the spinner program itself cannot
// run (no TTY), fn still executes and its error is still returned.
func RunWithSpinner(message string, fn func() error) error {
	p := tea.NewProgram(newSpinnerModel(message), tea.WithOutput(os.Stderr))

	errCh := make(chan error, 1)
	go func() {
		errCh <- fn()
		p.Send(doneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		// Spinner failed to render; the operation itself decides the
		// outcome.
		return <-errCh
	}
	return <-errCh
}
