package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"visab/internal/domain"
)

// BotPort is the TUI-facing subset of the bot.
type BotPort interface {
	Answer(text string) domain.Reply
}

// CorpusReloadedMsg tells the model the document was reloaded and carries
// the new summary.
type CorpusReloadedMsg struct {
	Summary   string
	Sentences int
}

type turn struct {
	question string
	reply    domain.Reply
}

// Model is the Bubble Tea model for the chat application.
type Model struct {
	bot      BotPort
	input    textinput.Model
	viewport viewport.Model
	turns    []turn
	summary  string
	status   string
	ready    bool
}

// New creates a new chat model instance.
func New(bot BotPort, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about the document and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{bot: bot, input: ti, viewport: vp, summary: summary, status: "Loaded. Say hello or ask a question."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around transcript and input boxes
		_, th := transcriptBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + summary
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-th)
		m.refresh()
		return m, nil
	case CorpusReloadedMsg:
		m.summary = msg.Summary
		m.status = fmt.Sprintf("Document reloaded (%d sentences)", msg.Sentences)
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				reply := m.bot.Answer(q)
				m.turns = append(m.turns, turn{question: q, reply: reply})
				m.status = fmt.Sprintf("Answered via %s", reply.Kind)
				m.input.SetValue("")
				m.refresh()
				return m, nil
			}
		case "pgup":
			m.viewport.HalfViewUp()
			return m, nil
		case "pgdown":
			m.viewport.HalfViewDown()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the conversation so far.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Visab Bot")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.summary)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	return header + "\n" + summary + "\n" + transcript + "\n" + input + "\n" + status
}

func (m *Model) refresh() {
	m.viewport.SetContent(renderTranscript(m.turns, m.viewport.Width))
	m.viewport.GotoBottom()
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	fallbackStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func renderTranscript(turns []turn, width int) string {
	if len(turns) == 0 {
		return "No messages yet."
	}
	wrap := lipgloss.NewStyle()
	if width > 4 {
		wrap = wrap.Width(width - 4)
	}
	var b strings.Builder
	for i, t := range turns {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(userStyle.Render("You: "))
		b.WriteString(wrap.Render(t.question))
		b.WriteString("\n")
		style := botStyle
		if t.reply.Kind == domain.ReplyFallback {
			style = fallbackStyle
		}
		b.WriteString(style.Render("Bot: "))
		b.WriteString(wrap.Render(t.reply.Text))
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
