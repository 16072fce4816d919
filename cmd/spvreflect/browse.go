package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wippyai/spirv-reflect/shaderfs"
	"github.com/wippyai/spirv-reflect/spirv"
)

var errNotTerminal = errors.New("browse needs an interactive terminal")

func (a *app) browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse FILE",
		Short: "Browse the disassembly interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errNotTerminal
			}
			p := tea.NewProgram(newBrowseModel(args[0]), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

// headerLines is the height taken by the title, filter and help rows.
const headerLines = 4

type browseModel struct {
	err      error
	module   *spirv.Module
	filename string
	lines    []string
	shown    int
	filter   textinput.Model
	view     viewport.Model
}

type browseLoadedMsg struct {
	err    error
	module *spirv.Module
	lines  []string
}

func newBrowseModel(filename string) *browseModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter by opcode or operand"
	ti.Width = 40
	return &browseModel{
		filename: filename,
		filter:   ti,
		view:     viewport.New(80, 20),
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.load
}

func (m *browseModel) load() tea.Msg {
	mod, err := shaderfs.DecodeFile(m.filename)
	if err != nil {
		return browseLoadedMsg{err: err}
	}
	names := mod.Names()
	lines := make([]string, len(mod.Instructions))
	for i := range mod.Instructions {
		lines[i] = spirv.FormatInstruction(&mod.Instructions[i], names)
	}
	return browseLoadedMsg{module: mod, lines: lines}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filter.Focused() {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "enter":
				m.filter.Blur()
				return m, nil
			case "esc":
				m.filter.Blur()
				m.filter.SetValue("")
				m.refresh()
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.refresh()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "/":
			return m, m.filter.Focus()
		case "esc":
			m.filter.SetValue("")
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-headerLines, 1)

	case browseLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.module = msg.module
		m.lines = msg.lines
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// refresh rebuilds the viewport content from the lines matching the filter.
func (m *browseModel) refresh() {
	needle := strings.ToLower(m.filter.Value())
	var b strings.Builder
	m.shown = 0
	for _, line := range m.lines {
		if needle != "" && !strings.Contains(strings.ToLower(line), needle) {
			continue
		}
		if m.shown > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		m.shown++
	}
	m.view.SetContent(b.String())
	m.view.GotoTop()
}

func (m *browseModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.module == nil {
		return "Decoding module..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("SPIR-V " + m.module.VersionString()))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString(helpStyle.Render(fmt.Sprintf("  %d/%d instructions", m.shown, len(m.lines))))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n")
	b.WriteString(m.view.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ scroll • / filter • esc clear • q quit"))
	return b.String()
}
