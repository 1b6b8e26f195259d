package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hepstack/datamc/pkg/dataset"
)

func key(t tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: t}
}

func TestEntryListModelFiltersHistograms(t *testing.T) {
	m := NewEntryListModel([]dataset.Entry{
		{Name: "data", Hist1D: true},
		{Name: "title", Hist1D: false},
		{Name: "signal", Hist1D: true},
	})

	if len(m.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(m.Entries))
	}
	if m.Entries[0].Name != "data" || m.Entries[1].Name != "signal" {
		t.Errorf("entries = %v", m.Entries)
	}
}

func TestEntryListModelSelection(t *testing.T) {
	var m tea.Model = NewEntryListModel([]dataset.Entry{
		{Name: "data", Hist1D: true},
		{Name: "signal", Hist1D: true},
		{Name: "background", Hist1D: true},
	})

	m, _ = m.Update(key(tea.KeyDown))
	m, _ = m.Update(key(tea.KeyDown))
	m, _ = m.Update(key(tea.KeyEnter))

	got := m.(EntryListModel)
	if got.Selected != "background" {
		t.Errorf("Selected = %q, want %q", got.Selected, "background")
	}
}

func TestEntryListModelQuitWithoutSelection(t *testing.T) {
	var m tea.Model = NewEntryListModel([]dataset.Entry{
		{Name: "data", Hist1D: true},
	})

	m, _ = m.Update(key(tea.KeyEsc))

	got := m.(EntryListModel)
	if got.Selected != "" {
		t.Errorf("Selected = %q, want empty", got.Selected)
	}
}

func TestEntryListModelCursorBounds(t *testing.T) {
	var m tea.Model = NewEntryListModel([]dataset.Entry{
		{Name: "data", Hist1D: true},
		{Name: "signal", Hist1D: true},
	})

	// Up at the top stays put, down past the end stays on the last entry.
	m, _ = m.Update(key(tea.KeyUp))
	if m.(EntryListModel).Cursor != 0 {
		t.Errorf("Cursor = %d after up at top", m.(EntryListModel).Cursor)
	}
	m, _ = m.Update(key(tea.KeyDown))
	m, _ = m.Update(key(tea.KeyDown))
	m, _ = m.Update(key(tea.KeyDown))
	if m.(EntryListModel).Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", m.(EntryListModel).Cursor)
	}
}
