package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hepstack/datamc/pkg/dataset"
	"github.com/hepstack/datamc/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// EntryListModel - Interactive histogram selection
// =============================================================================

// EntryListModel is the bubbletea model for picking a histogram entry.
type EntryListModel struct {
	Entries  []dataset.Entry
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewEntryListModel creates a new entry list model over the 1D histogram
// entries of a location.
func NewEntryListModel(entries []dataset.Entry) EntryListModel {
	hists := make([]dataset.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Hist1D {
			hists = append(hists, e)
		}
	}
	return EntryListModel{
		Entries: hists,
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m EntryListModel) Init() tea.Cmd {
	return nil
}

func (m EntryListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Entries[m.Cursor].Name
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m EntryListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Histogram"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	for i := m.Offset; i < end; i++ {
		name := m.Entries[i].Name
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + name))
		} else {
			b.WriteString(listNormalStyle.Render("  " + name))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pickEntry runs the interactive picker and returns the selected histogram
// name. An empty name means the user quit without selecting.
func pickEntry(entries []dataset.Entry) (string, error) {
	model := NewEntryListModel(entries)
	if len(model.Entries) == 0 {
		return "", errors.New(errors.ErrCodeMissingData, "no 1D histograms to pick from")
	}

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "picker failed")
	}
	m, ok := final.(EntryListModel)
	if !ok {
		return "", errors.New(errors.ErrCodeInternal, "picker returned an unexpected model")
	}
	return m.Selected, nil
}
