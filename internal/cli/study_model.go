package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/lexis/internal/cli/formatter"
	"github.com/alexanderramin/lexis/internal/domain"
	"github.com/alexanderramin/lexis/internal/session"
)

type studyPhase int

const (
	phaseAsking studyPhase = iota
	phaseAnswered
	phaseDone
)

// tickMsg and speechDoneMsg arrive from the runner's goroutines through
// the events channel.
type tickMsg time.Duration

type speechDoneMsg struct{}

type studyKeyMap struct {
	Quit   key.Binding
	Reveal key.Binding
	Submit key.Binding
	Next   key.Binding
	Up     key.Binding
	Down   key.Binding
	Replay key.Binding
	Grades [4]key.Binding
	Picks  [4]key.Binding
}

func defaultStudyKeys() studyKeyMap {
	return studyKeyMap{
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		Reveal: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "reveal")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "check")),
		Next:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "next")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Replay: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "replay")),
		Grades: [4]key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "again")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "hard")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "good")),
			key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "easy")),
		},
		Picks: [4]key.Binding{
			key.NewBinding(key.WithKeys("1")),
			key.NewBinding(key.WithKeys("2")),
			key.NewBinding(key.WithKeys("3")),
			key.NewBinding(key.WithKeys("4")),
		},
	}
}

// studyModel drives a started session.Runner.
type studyModel struct {
	ctx    context.Context
	runner *session.Runner
	mode   domain.StudyMode
	keys   studyKeyMap
	input  textinput.Model
	events <-chan tea.Msg

	phase    studyPhase
	card     session.Card
	revealed bool
	selected int
	verdict  *session.Verdict
	speaking bool
	err      error
	// completeErr is set when the finished session could not be saved.
	completeErr error
	quitting    bool
	width       int
}

func newStudyModel(ctx context.Context, runner *session.Runner, events <-chan tea.Msg) *studyModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "type the word"
	ti.CharLimit = 120

	m := &studyModel{
		ctx:    ctx,
		runner: runner,
		mode:   runner.Mode(),
		keys:   defaultStudyKeys(),
		input:  ti,
		events: events,
	}
	if m.mode == domain.ModeListening {
		m.input.Placeholder = "type what you hear"
	}
	m.loadCard()
	return m
}

func (m *studyModel) usesInput() bool {
	return m.mode == domain.ModeTyping || m.mode == domain.ModeListening
}

func (m *studyModel) loadCard() {
	card, err := m.runner.Current()
	if err != nil {
		m.phase = phaseDone
		return
	}
	m.card = card
	m.phase = phaseAsking
	m.revealed = false
	m.selected = 0
	m.verdict = nil
	m.err = nil
	m.speaking = card.Prompt.Speak != "" && card.AudioErr == nil
	m.input.Reset()
	if m.usesInput() {
		m.input.Focus()
	}
}

func waitForEvent(ch <-chan tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		return <-ch
	}
}

func (m *studyModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForEvent(m.events)}
	if m.usesInput() {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

func (m *studyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		if m.phase == phaseDone {
			return m, nil
		}
		return m, waitForEvent(m.events)
	case speechDoneMsg:
		m.speaking = false
		return m, waitForEvent(m.events)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.usesInput() && m.phase == phaseAsking {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *studyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.phase == phaseDone {
		if key.Matches(msg, m.keys.Quit, m.keys.Next) || msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}
	if key.Matches(msg, m.keys.Quit) {
		m.runner.Abandon()
		m.quitting = true
		return m, tea.Quit
	}

	if m.phase == phaseAnswered {
		if key.Matches(msg, m.keys.Next) {
			m.advance()
		} else if key.Matches(msg, m.keys.Replay) {
			m.replay()
		}
		return m, nil
	}

	switch m.mode {
	case domain.ModeFlashcard:
		return m.handleFlashcard(msg)
	case domain.ModeQuiz:
		return m.handleQuiz(msg)
	default:
		return m.handleTextAnswer(msg)
	}
}

func (m *studyModel) handleFlashcard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.revealed {
		if key.Matches(msg, m.keys.Reveal) {
			m.revealed = true
		}
		return m, nil
	}
	for i, b := range m.keys.Grades {
		if key.Matches(msg, b) {
			m.answer(session.Response{Difficulty: i + 1})
			break
		}
	}
	return m, nil
}

func (m *studyModel) handleQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	opts := m.card.Prompt.Options
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(opts)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Submit):
		if m.selected < len(opts) {
			m.answer(session.Response{Choice: opts[m.selected]})
		}
	default:
		for i, b := range m.keys.Picks {
			if i < len(opts) && key.Matches(msg, b) {
				m.selected = i
				m.answer(session.Response{Choice: opts[i]})
				break
			}
		}
	}
	return m, nil
}

func (m *studyModel) handleTextAnswer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if strings.TrimSpace(m.input.Value()) == "" {
			return m, nil
		}
		m.answer(session.Response{Text: m.input.Value()})
		return m, nil
	case key.Matches(msg, m.keys.Replay):
		m.replay()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *studyModel) answer(resp session.Response) {
	v, err := m.runner.Answer(m.ctx, resp)
	if err != nil {
		// The card stays unanswered; the learner can try again.
		m.err = err
		return
	}
	m.err = nil
	m.verdict = &v
	m.phase = phaseAnswered
	m.input.Blur()
	if v.Replay && v.AudioErr == nil {
		m.speaking = true
	}
}

func (m *studyModel) replay() {
	if err := m.runner.Replay(); err != nil {
		m.err = err
		return
	}
	m.speaking = m.card.Prompt.Speak != ""
}

func (m *studyModel) advance() {
	err := m.runner.Next(m.ctx)
	if m.runner.State() == session.StateComplete {
		m.phase = phaseDone
		m.completeErr = err
		return
	}
	if err != nil {
		m.err = err
		return
	}
	m.loadCard()
}

func (m *studyModel) View() string {
	if m.quitting && m.phase != phaseDone {
		return formatter.Dim("Session abandoned. Answers so far are saved.") + "\n"
	}
	if m.phase == phaseDone {
		return m.viewSummary()
	}

	var b strings.Builder
	b.WriteString(formatter.FormatSessionHeader(m.mode, m.card, m.runner.Stats(), m.runner.Elapsed()))
	b.WriteString("\n\n")
	b.WriteString(formatter.RenderBox("", formatter.FormatPrompt(m.mode, m.card)))
	b.WriteString("\n\n")

	switch m.mode {
	case domain.ModeFlashcard:
		if m.revealed || m.phase == phaseAnswered {
			b.WriteString(formatter.StyleGreen.Render("→ "+m.card.Prompt.Answer) + "\n")
		}
	case domain.ModeQuiz:
		b.WriteString(formatter.FormatOptions(m.card.Prompt.Options, m.selected))
	default:
		b.WriteString(m.input.View() + "\n")
	}
	if m.speaking {
		b.WriteString(formatter.Dim("🔊 speaking…") + "\n")
	}

	if m.verdict != nil {
		b.WriteString("\n" + formatter.FormatVerdict(*m.verdict) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + m.helpLine())
	return b.String()
}

func (m *studyModel) viewSummary() string {
	summary, ok := m.runner.Summary()
	if !ok {
		return formatter.Dim("No session recorded.") + "\n"
	}
	out := formatter.FormatSummary(summary) + "\n"
	if m.completeErr != nil {
		out += formatter.StyleRed.Render("Could not save the session: "+m.completeErr.Error()) + "\n"
	}
	if !m.quitting {
		out += formatter.Dim("enter: exit") + "\n"
	}
	return out
}

func (m *studyModel) helpLine() string {
	var bindings []key.Binding
	switch {
	case m.phase == phaseAnswered:
		bindings = []key.Binding{m.keys.Next}
	case m.mode == domain.ModeFlashcard && !m.revealed:
		bindings = []key.Binding{m.keys.Reveal}
	case m.mode == domain.ModeFlashcard:
		bindings = m.keys.Grades[:]
	case m.mode == domain.ModeQuiz:
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Submit}
	default:
		bindings = []key.Binding{m.keys.Submit}
	}
	if m.card.Prompt.Speak != "" {
		bindings = append(bindings, m.keys.Replay)
	}
	bindings = append(bindings, m.keys.Quit)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return formatter.Dim(strings.Join(parts, "  "))
}

// trySend delivers msg without blocking the runner's goroutines; a full
// channel drops the event.
func trySend(ch chan<- tea.Msg, msg tea.Msg) {
	select {
	case ch <- msg:
	default:
	}
}
