package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/darrenoakey/generate-image/internal/image"
)

var spinnerElapsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// genSpinnerModel is a simple spinner shown while the API call runs
type genSpinnerModel struct {
	spinner  spinner.Model
	message  string
	result   *image.Result
	err      error
	done     bool
	start    time.Time
	generate func() (*image.Result, error)
}

type genResultMsg struct {
	result *image.Result
	err    error
}

func (m genSpinnerModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			result, err := m.generate()
			return genResultMsg{result: result, err: err}
		},
	)
}

func (m genSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}

	case genResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m genSpinnerModel) View() string {
	if m.done {
		return ""
	}
	elapsed := time.Since(m.start).Round(time.Second)
	return fmt.Sprintf("%s %s %s\n", m.spinner.View(), m.message,
		spinnerElapsedStyle.Render(fmt.Sprintf("(%s, ctrl+c to cancel)", elapsed)))
}

func runWithSpinner(ctx context.Context, generate func() (*image.Result, error), message string) (*image.Result, error) {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := genSpinnerModel{
		spinner:  s,
		message:  message,
		start:    time.Now(),
		generate: generate,
	}

	// Try to open /dev/tty for terminal input
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		// Fallback: run without spinner UI
		return generate()
	}
	defer tty.Close()

	p := tea.NewProgram(m, tea.WithInput(tty), tea.WithOutput(os.Stderr), tea.WithoutSignalHandler())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	final := finalModel.(genSpinnerModel)
	if final.err != nil {
		return nil, final.err
	}
	if final.result == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("generation cancelled")
	}
	return final.result, nil
}
