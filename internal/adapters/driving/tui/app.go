// Package tui provides the interactive terminal UI for Vichara:
// a single ask view with a question input and a rendered answer.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
	"github.com/vedanta-labs/vichara-cli/internal/core/ports/driving"
)

// answerMsg carries a composed answer back into the update loop.
type answerMsg struct {
	answer *domain.Answer
}

// refusalMsg signals the safety filter blocked the question.
type refusalMsg struct{}

// errorMsg carries a pipeline failure.
type errorMsg struct {
	err error
}

// App is the bubbletea model for the ask view.
type App struct {
	input  textinput.Model
	styles *Styles

	ask driving.AskService
	ctx context.Context

	answer  *domain.Answer
	refused bool
	err     error
	asking  bool

	width  int
	height int
}

// NewApp creates the TUI app around the ask service.
func NewApp(ask driving.AskService) *App {
	ti := textinput.New()
	ti.Placeholder = "e.g., A teammate lied to a client. What is the right course of action?"
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 72

	return &App{
		input:  ti,
		styles: DefaultStyles(),
		ask:    ask,
		ctx:    context.Background(),
		width:  80,
		height: 24,
	}
}

// WithContext sets the context used for ask calls.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init initialises the app.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			a.answer = nil
			a.refused = false
			a.err = nil
			return a, nil
		case "enter":
			if a.asking {
				return a, nil
			}
			question := strings.TrimSpace(a.input.Value())
			if question == "" {
				a.err = errors.New("type a question first")
				return a, nil
			}
			a.asking = true
			a.err = nil
			a.refused = false
			return a, a.askCmd(question)
		}

	case answerMsg:
		a.asking = false
		a.answer = msg.answer
		return a, nil

	case refusalMsg:
		a.asking = false
		a.answer = nil
		a.refused = true
		return a, nil

	case errorMsg:
		a.asking = false
		a.err = msg.err
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// askCmd runs the pipeline off the update loop.
func (a *App) askCmd(question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := a.ask.Ask(a.ctx, question, domain.AskOptions{})
		if err != nil {
			if errors.Is(err, domain.ErrRiskyQuery) {
				return refusalMsg{}
			}
			return errorMsg{err: err}
		}
		return answerMsg{answer: answer}
	}
}

// View renders the ask view.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Vichara"))
	b.WriteString("\n")
	b.WriteString(a.styles.Caption.Render("Retrieves curated passages, then reasons with a transparent template."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.InputField.Render(a.input.View()))
	b.WriteString("\n\n")

	switch {
	case a.asking:
		b.WriteString(a.styles.Caption.Render("Thinking..."))
	case a.refused:
		b.WriteString(a.styles.Error.Render(domain.RefusalMessage))
	case a.err != nil:
		b.WriteString(a.styles.Error.Render(a.err.Error()))
	case a.answer != nil:
		b.WriteString(a.renderAnswer())
	}

	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("enter ask · esc clear · ctrl+c quit"))

	return b.String()
}

// renderAnswer formats the answer sections.
func (a *App) renderAnswer() string {
	var b strings.Builder
	ans := a.answer

	b.WriteString(a.styles.Section.Render("Recommendation"))
	b.WriteString("\n" + ans.Recommendation + "\n")
	b.WriteString(a.styles.Caption.Render("Confidence (rough): " + ans.Confidence))
	b.WriteString("\n\n")

	b.WriteString(a.styles.Section.Render("Principles (retrieved)"))
	b.WriteString("\n")
	for _, p := range ans.Principles {
		b.WriteString(p + "\n")
	}
	b.WriteString("\n")

	b.WriteString(a.styles.Section.Render("Options"))
	b.WriteString("\n")
	for _, o := range ans.Options {
		b.WriteString("- " + o + "\n")
	}
	b.WriteString("\n")

	b.WriteString(a.styles.Section.Render("Trade-offs"))
	b.WriteString("\n")
	for _, t := range ans.Tradeoffs {
		b.WriteString(t + "\n")
	}
	b.WriteString("\n")

	b.WriteString(a.styles.Section.Render("Citations"))
	b.WriteString("\n")
	for _, c := range ans.Citations {
		b.WriteString("- " + c + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
