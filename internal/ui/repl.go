package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Lkuropatkina/HSEproject/internal/ast"
	"github.com/Lkuropatkina/HSEproject/internal/diag"
	"github.com/Lkuropatkina/HSEproject/internal/driver"
	"github.com/Lkuropatkina/HSEproject/internal/source"
)

// Options задают поведение интерактивного цикла.
type Options struct {
	Eval driver.EvalOptions
	TeX  bool // оборачивать дерево в $...$
}

// replFile — виртуальное имя файла для спанов диагностик.
const replFile = "repl"

// entry — одна вычисленная строка истории.
type entry struct {
	input  string
	render string // пустой, если вычисление не дошло до ответа
	value  string
	diags  []diagLine
}

type diagLine struct {
	sev  diag.Severity
	text string
}

// evalEntry прогоняет строку через конвейер и собирает строки вывода.
// Состояние между строками не переносится.
func evalEntry(line string, opts Options) entry {
	e := entry{input: line}

	res, err := driver.EvaluateSource(replFile, []byte(line), opts.Eval)
	if res != nil {
		for _, d := range res.Bag.Items() {
			e.diags = append(e.diags, diagLine{sev: d.Severity, text: formatDiag(d, res.FileSet)})
		}
		if res.Root != ast.NoExprID && !res.Bag.HasErrors() {
			render := res.Render
			if opts.TeX {
				render = "$" + render + "$"
			}
			e.render = render
			e.value = strconv.FormatFloat(res.Value, 'g', -1, 64)
		}
	}
	if err != nil && len(e.diags) == 0 {
		e.diags = append(e.diags, diagLine{sev: diag.SevError, text: err.Error()})
	}
	return e
}

func formatDiag(d diag.Diagnostic, fs *source.FileSet) string {
	if d.Primary.Empty() || fs == nil {
		return fmt.Sprintf("%s %s: %s", d.Severity, d.Code.ID(), d.Message)
	}
	start, _ := fs.Resolve(d.Primary)
	return fmt.Sprintf("%s %s: %s (%d:%d)", d.Severity, d.Code.ID(), d.Message, start.Line, start.Col)
}

type replModel struct {
	input   textinput.Model
	history viewport.Model
	entries []entry
	opts    Options

	// введённые строки для прокрутки стрелками
	submitted []string
	histPos   int

	width  int
	height int
	ready  bool
}

// NewReplModel возвращает Bubble Tea модель интерактивного калькулятора.
func NewReplModel(opts Options) tea.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	return &replModel{
		input: ti,
		opts:  opts,
		width: 80,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if line == "exit" || line == "quit" {
				return m, tea.Quit
			}
			m.submitted = append(m.submitted, line)
			m.histPos = len(m.submitted)
			m.entries = append(m.entries, evalEntry(line, m.opts))
			m.refreshHistory()
			return m, nil
		case tea.KeyUp:
			if m.histPos > 0 {
				m.histPos--
				m.input.SetValue(m.submitted[m.histPos])
				m.input.CursorEnd()
			}
			return m, nil
		case tea.KeyDown:
			if m.histPos < len(m.submitted) {
				m.histPos++
				if m.histPos == len(m.submitted) {
					m.input.Reset()
				} else {
					m.input.SetValue(m.submitted[m.histPos])
					m.input.CursorEnd()
				}
			}
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		m.resize()
		return m, nil
	}

	// остальное - мигание курсора и прочая внутренняя кухня textinput
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) View() string {
	var b strings.Builder
	if m.ready {
		b.WriteString(m.history.View())
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle().Render("enter: evaluate   ctrl+d: exit   pgup/pgdn: scroll"))
	return b.String()
}

func (m *replModel) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.input.Width = m.width - 4

	historyHeight := m.height - 3
	if historyHeight < 1 {
		historyHeight = 1
	}
	if !m.ready {
		m.history = viewport.New(m.width, historyHeight)
		m.ready = true
	} else {
		m.history.Width = m.width
		m.history.Height = historyHeight
	}
	m.refreshHistory()
}

func (m *replModel) refreshHistory() {
	if !m.ready {
		return
	}
	m.history.SetContent(m.renderEntries())
	m.history.GotoBottom()
}

func (m *replModel) renderEntries() string {
	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(promptStyle().Render("> "))
		b.WriteString(truncate(e.input, m.width-2))
		b.WriteString("\n")
		for _, d := range e.diags {
			b.WriteString(styleSeverity(d.sev).Render(truncate(d.text, m.width)))
			b.WriteString("\n")
		}
		if e.render != "" {
			b.WriteString(truncate("tree representation: "+e.render, m.width))
			b.WriteString("\n")
			b.WriteString(truncate("tree value: "+e.value, m.width))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func promptStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
}

func helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Faint(true)
}

func styleSeverity(sev diag.Severity) lipgloss.Style {
	switch {
	case sev >= diag.SevError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case sev == diag.SevWarning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
