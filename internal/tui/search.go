package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pinbook/internal/adapter"
	"pinbook/internal/app"
	"pinbook/models"
)

// searchState is the incremental place search screen. typeGen counts
// keystroke bursts: each edit bumps it and schedules a debounce tick
// carrying the new value, so only the tick for the last edit survives.
type searchState struct {
	input       textinput.Model
	suggestions []models.Suggestion
	history     []models.SearchHistoryEntry
	idx         int
	typeGen     uint64
	searching   bool
}

func (m *mainLoopModel) startSearch() {
	input := textinput.New()
	input.Placeholder = "場所を検索"
	input.Width = 48
	input.Focus()

	m.search = searchState{input: input}
	m.screen = screenSearch
	m.errMsg = ""
}

func (m mainLoopModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case debounceMsg:
		if msg.gen != m.search.typeGen || strings.TrimSpace(msg.query) == "" {
			return m, nil
		}
		m.search.searching = true
		return m, m.cmdSuggest(msg.query)
	case suggestionsMsg:
		if !m.services.Search.Latest(msg.gen) {
			return m, nil
		}
		m.search.searching = false
		if msg.err != nil {
			m.errMsg = "検索エラー: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.search.suggestions = msg.suggestions
		m.search.idx = 0
		return m, nil
	case historyLoadedMsg:
		if msg.err != nil {
			m.errMsg = "履歴の読み込みエラー: " + msg.err.Error()
			return m, nil
		}
		m.search.history = msg.entries
		return m, nil
	case resolvedMsg:
		m.search.searching = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrPlaceNotFound) {
				m.errMsg = app.MsgPlaceNotFound
			} else {
				m.errMsg = "検索エラー: " + msg.err.Error()
			}
			return m, nil
		}
		m.errMsg = ""
		m.startForm(models.Place{
			Name:      msg.details.Name,
			Address:   msg.details.Address,
			Latitude:  msg.details.Latitude,
			Longitude: msg.details.Longitude,
			TabID:     m.filterTabID(),
		}, false)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.screen = screenList
			return m, nil
		case "up":
			if m.search.idx > 0 {
				m.search.idx--
			}
			return m, nil
		case "down":
			if m.search.idx < m.searchRowCount()-1 {
				m.search.idx++
			}
			return m, nil
		case "enter":
			return m.pickSearchRow()
		}
	}

	before := m.search.input.Value()
	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	after := m.search.input.Value()

	if after == before {
		return m, cmd
	}

	m.search.typeGen++
	m.search.idx = 0

	if strings.TrimSpace(after) == "" {
		m.search.suggestions = nil
		m.search.searching = false
		return m, tea.Batch(cmd, m.cmdLoadHistory())
	}

	gen := m.search.typeGen
	tick := tea.Tick(m.services.Search.DebounceInterval(), func(time.Time) tea.Msg {
		return debounceMsg{gen: gen, query: after}
	})
	return m, tea.Batch(cmd, tick)
}

// searchRowCount is the number of selectable rows: suggestions while typing,
// history entries while the field is empty.
func (m mainLoopModel) searchRowCount() int {
	if strings.TrimSpace(m.search.input.Value()) == "" {
		return len(m.search.history)
	}
	return len(m.search.suggestions)
}

func (m mainLoopModel) pickSearchRow() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(m.search.input.Value()) == "" {
		if m.search.idx < 0 || m.search.idx >= len(m.search.history) {
			return m, nil
		}
		// Re-run the search with the remembered query.
		query := m.search.history[m.search.idx].Query
		m.search.input.SetValue(query)
		m.search.input.CursorEnd()
		m.search.typeGen++
		m.search.idx = 0
		m.search.searching = true
		return m, m.cmdSuggest(query)
	}

	if m.search.idx < 0 || m.search.idx >= len(m.search.suggestions) {
		return m, nil
	}
	m.search.searching = true
	return m, m.cmdResolve(m.search.suggestions[m.search.idx])
}

func (m mainLoopModel) viewSearch() string {
	var b strings.Builder

	b.WriteString("検索: [ " + m.search.input.View() + " ]\n\n")

	if strings.TrimSpace(m.search.input.Value()) == "" {
		if len(m.search.history) == 0 {
			b.WriteString("検索履歴はありません\n")
		} else {
			b.WriteString("[ 検索履歴 ]\n")
			for i, entry := range m.search.history {
				cursor := " "
				if i == m.search.idx {
					cursor = ">"
				}
				b.WriteString(cursor + " " + entry.Query + "\n")
			}
		}
	} else if m.search.searching {
		b.WriteString("検索中...\n")
	} else if len(m.search.suggestions) == 0 {
		b.WriteString("候補がありません\n")
	} else {
		for i, s := range m.search.suggestions {
			cursor := " "
			if i == m.search.idx {
				cursor = ">"
			}
			line := s.Text
			if s.Description != "" && s.Description != s.Text {
				line += "  (" + fitText(s.Description, 40) + ")"
			}
			b.WriteString(cursor + " " + line + "\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\nエラー: " + m.errMsg + "\n")
	}

	return renderPage(
		"検索",
		strings.TrimRight(b.String(), "\n"),
		"enter: 選択 │ ↑/↓: 移動 │ esc: 戻る",
	)
}

func (m mainLoopModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Search

	return func() tea.Msg {
		entries, err := svc.History(ctx)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m mainLoopModel) cmdSuggest(query string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Search

	return func() tea.Msg {
		gen, suggestions, err := svc.Suggest(ctx, query)
		return suggestionsMsg{gen: gen, suggestions: suggestions, err: err}
	}
}

func (m mainLoopModel) cmdResolve(suggestion models.Suggestion) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Search

	return func() tea.Msg {
		details, err := svc.Resolve(ctx, suggestion)
		return resolvedMsg{details: details, err: err}
	}
}
