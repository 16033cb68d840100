package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codepane"
	"github.com/iw2rmb/codepane/codefile"
	"github.com/iw2rmb/codepane/editor"
)

type model struct {
	editor editor.Model
}

func newModel() model {
	cfg := editor.Config{
		Files: []codefile.File{
			{Name: "main.go", Language: "go", Code: "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hello from codepane\")\n}\n"},
			{Name: "util.py", Language: "python", Code: "def double(x):\n    return 2 * x\n"},
			{Name: "notes.md", Language: "markdown", Code: "# Notes\n\n- tab switches files\n- e edits, ctrl+s saves\n- ctrl+q quits\n"},
		},
		Style: editor.DefaultStyle(),
	}
	return model{editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-v" {
			fmt.Println("codepane-demo", codepane.VersionTag())
			return
		}
	}

	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
