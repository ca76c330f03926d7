package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ishidiag/fishbone/pkg/bone"
	fberrors "github.com/ishidiag/fishbone/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// editorRow is one visible line of the flattened bone tree.
type editorRow struct {
	path  bone.Path
	label string
	depth int
	head  bool
}

// inputAction says what the text being typed will become.
type inputAction int

const (
	actionNone inputAction = iota
	actionAddBig
	actionAddMid
	actionAddSmall
	actionRename
)

// EditorModel is the bubbletea model for interactive diagram editing.
// Mutations go straight into the diagram; the autosave hook is called
// after each one so a crash loses at most the value being typed.
type EditorModel struct {
	Diagram  *bone.Diagram
	Rows     []editorRow
	Cursor   int
	Offset   int
	Height   int
	Saved    bool
	Dirty    bool
	Autosave func(*bone.Diagram)

	action inputAction
	input  string
	status string
}

// NewEditorModel creates an editor model over the given diagram.
func NewEditorModel(d *bone.Diagram) EditorModel {
	m := EditorModel{
		Diagram: d,
		Height:  20,
	}
	m.Rows = flattenDiagram(d)
	return m
}

// flattenDiagram turns the tree into display rows, head first, then each
// big bone with its mid and small bones indented beneath it.
func flattenDiagram(d *bone.Diagram) []editorRow {
	rows := []editorRow{{label: d.Head, head: true}}
	for _, b := range d.Bones {
		rows = append(rows, editorRow{
			path:  bone.Path{Level: bone.LevelBig, BigID: b.ID},
			label: b.Label,
			depth: 1,
		})
		for _, mid := range b.MidBones {
			rows = append(rows, editorRow{
				path:  bone.Path{Level: bone.LevelMid, BigID: b.ID, MidID: mid.ID},
				label: mid.Label,
				depth: 2,
			})
			for _, s := range mid.SmallBones {
				rows = append(rows, editorRow{
					path:  bone.Path{Level: bone.LevelSmall, BigID: b.ID, MidID: mid.ID, SmallID: s.ID},
					label: s.Label,
					depth: 3,
				})
			}
		}
	}
	return rows
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.action != actionNone {
			return m.updateInput(msg), nil
		}
		return m.updateBrowse(msg)
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m EditorModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "s", "ctrl+s":
		m.Saved = true
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
			if m.Cursor < m.Offset {
				m.Offset = m.Cursor
			}
		}
	case "down", "j":
		if m.Cursor < len(m.Rows)-1 {
			m.Cursor++
			if m.Cursor >= m.Offset+m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case "a":
		row := m.Rows[m.Cursor]
		switch {
		case row.head:
			m.action = actionAddBig
		case row.path.Level == bone.LevelBig:
			m.action = actionAddMid
		default:
			m.action = actionAddSmall
		}
		m.input = ""
	case "r":
		m.action = actionRename
		m.input = m.Rows[m.Cursor].label
	case "d":
		row := m.Rows[m.Cursor]
		if row.head {
			m.status = "the head statement cannot be deleted"
			break
		}
		if m.Diagram.Delete(row.path) {
			m.afterMutation()
			if m.Cursor >= len(m.Rows) {
				m.Cursor = len(m.Rows) - 1
			}
		}
	}
	return m, nil
}

func (m EditorModel) updateInput(msg tea.KeyMsg) EditorModel {
	switch msg.String() {
	case "esc":
		m.action = actionNone
		m.input = ""
		m.status = ""
	case "enter":
		m = m.commitInput()
	case "backspace":
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.input += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.input += " "
		}
	}
	return m
}

func (m EditorModel) commitInput() EditorModel {
	label := strings.TrimSpace(m.input)
	if err := fberrors.ValidateLabel(label); err != nil {
		m.status = fberrors.UserMessage(err)
		return m
	}

	row := m.Rows[m.Cursor]
	switch m.action {
	case actionAddBig:
		m.Diagram.AddBig(label)
	case actionAddMid:
		m.Diagram.AddMid(row.path.BigID, label)
	case actionAddSmall:
		m.Diagram.AddSmall(row.path.BigID, row.path.MidID, label)
	case actionRename:
		if row.head {
			m.Diagram.Head = label
		} else {
			m.Diagram.Relabel(row.path, label)
		}
	}

	m.action = actionNone
	m.input = ""
	m.status = ""
	m.afterMutation()
	return m
}

func (m *EditorModel) afterMutation() {
	m.Dirty = true
	m.Rows = flattenDiagram(m.Diagram)
	if m.Autosave != nil {
		m.Autosave(m.Diagram)
	}
}

func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Edit Diagram"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  a add  r rename  d delete  s save  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	for i := m.Offset; i < end; i++ {
		row := m.Rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		indent := strings.Repeat("  ", row.depth)
		marker := "◆"
		if row.head {
			marker = "◈"
		}

		line := fmt.Sprintf("%s%s%s %s", cursor, indent, marker, row.label)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if row.head {
			b.WriteString(listNormalStyle.Render(line))
		} else if row.path.Level == bone.LevelSmall {
			b.WriteString(listDimStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.action != actionNone:
		b.WriteString(StyleHighlight.Render(inputPrompt(m.action) + ": "))
		b.WriteString(m.input)
		b.WriteString(listDimStyle.Render("▏  enter confirm, esc cancel"))
	case m.Dirty:
		b.WriteString(listDimStyle.Render(fmt.Sprintf("%d bones, unsaved changes", m.Diagram.BoneCount())))
	default:
		b.WriteString(listDimStyle.Render(fmt.Sprintf("%d bones", m.Diagram.BoneCount())))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(listErrorStyle.Render(m.status))
	}

	return b.String()
}

func inputPrompt(a inputAction) string {
	switch a {
	case actionAddBig:
		return "New category"
	case actionAddMid:
		return "New cause"
	case actionAddSmall:
		return "New detail"
	case actionRename:
		return "New label"
	}
	return ""
}
