package assistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	openai "github.com/sashabaranov/go-openai"
)

// RunChat starts the interactive chat screen and blocks until the user
// leaves it.
func RunChat(ctx context.Context, assistant *Assistant, runner *Runner) error {
	model := newChatModel(ctx, assistant, runner)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

type replyMsg struct {
	text string
	err  error
}

type ranMsg struct {
	command string
	output  string
	err     error
}

type chatModel struct {
	ctx       context.Context
	assistant *Assistant
	runner    *Runner

	viewport viewport.Model
	input    textinput.Model
	spin     spinner.Model

	history    []openai.ChatCompletionMessage
	transcript []string
	commands   []string
	lastReply  string
	waiting    bool
	status     string
	ready      bool
}

func newChatModel(ctx context.Context, assistant *Assistant, runner *Runner) chatModel {
	input := textinput.New()
	input.Placeholder = "ask about trading, or /run N to execute a suggested command"
	input.CharLimit = 512
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return chatModel{
		ctx:       ctx,
		assistant: assistant,
		runner:    runner,
		input:     input,
		spin:      spin,
	}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Reserve rows for the title, the input line and the help line.
		height := msg.Height - 4
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+y":
			if m.lastReply != "" {
				if err := clipboard.WriteAll(m.lastReply); err != nil {
					m.status = "clipboard unavailable"
				} else {
					m.status = "reply copied"
				}
			}
			return m, nil
		case "enter":
			if m.waiting {
				return m, nil
			}
			return m.submit()
		}

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			m.appendLine(warnStyle.Render("error: " + msg.err.Error()))
			return m, nil
		}
		m.lastReply = msg.text
		m.history = append(m.history, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: msg.text,
		})
		m.appendLine(assistantStyle.Render(msg.text))
		m.commands = ExtractCommands(msg.text)
		for i, cmd := range m.commands {
			line := fmt.Sprintf("  [%d] %s", i+1, cmd)
			if IsTradingCommand(cmd) {
				line += warnStyle.Render("  (places or changes an order)")
			}
			m.appendLine(commandStyle.Render(line))
		}
		if len(m.commands) > 0 {
			m.appendLine(helpStyle.Render("  /run N executes a command above"))
		}
		return m, nil

	case ranMsg:
		m.waiting = false
		if msg.err != nil {
			m.appendLine(warnStyle.Render("error: " + msg.err.Error()))
			return m, nil
		}
		m.appendLine(commandStyle.Render("$ " + msg.command))
		m.appendLine(msg.output)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m chatModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	m.input.SetValue("")
	m.status = ""

	switch {
	case text == "exit" || text == "quit":
		return m, tea.Quit

	case text == "/clear":
		m.history = nil
		m.transcript = nil
		m.commands = nil
		m.lastReply = ""
		m.refreshViewport()
		return m, nil

	case strings.HasPrefix(text, "/run"):
		arg := strings.TrimSpace(strings.TrimPrefix(text, "/run"))
		n := 1
		if arg != "" {
			parsed, err := strconv.Atoi(arg)
			if err != nil {
				m.appendLine(warnStyle.Render("usage: /run N"))
				return m, nil
			}
			n = parsed
		}
		if n < 1 || n > len(m.commands) {
			m.appendLine(warnStyle.Render("no such command; ask first, then /run N"))
			return m, nil
		}
		command := m.commands[n-1]
		m.waiting = true
		return m, tea.Batch(m.spin.Tick, m.runCommand(command))
	}

	m.history = append(m.history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})
	m.appendLine(userStyle.Render("you: ") + text)
	m.waiting = true
	return m, tea.Batch(m.spin.Tick, m.ask())
}

func (m chatModel) ask() tea.Cmd {
	history := make([]openai.ChatCompletionMessage, len(m.history))
	copy(history, m.history)
	return func() tea.Msg {
		text, err := m.assistant.Chat(m.ctx, history)
		return replyMsg{text: text, err: err}
	}
}

func (m chatModel) runCommand(command string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.runner.Run(m.ctx, command)
		return ranMsg{command: command, output: out, err: err}
	}
}

func (m *chatModel) appendLine(line string) {
	m.transcript = append(m.transcript, line)
	m.refreshViewport()
}

func (m *chatModel) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

func (m chatModel) View() string {
	title := chatTitleStyle.Render("fubon assistant") + helpStyle.Render("  ("+m.assistant.Model()+")")

	inputLine := m.input.View()
	if m.waiting {
		inputLine = m.spin.View() + " thinking..."
	}

	help := helpStyle.Render("enter send · /run N execute · /clear reset · ctrl+y copy reply · esc quit")
	if m.status != "" {
		help += helpStyle.Render("  — " + m.status)
	}

	if !m.ready {
		return title + "\n"
	}
	return title + "\n" + m.viewport.View() + "\n" + inputLine + "\n" + help
}
