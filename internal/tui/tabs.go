package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pinbook/models"
)

type tabsMode int

const (
	tabsModeBrowse tabsMode = iota
	tabsModeAdd
	tabsModeRename
)

// tabsState is the tab management screen. Add and rename share the single
// name input; mode says which operation commits on enter.
type tabsState struct {
	mode     tabsMode
	idx      int
	name     textinput.Model
	renameID string
	saving   bool
}

func (m *mainLoopModel) startTabs() {
	m.tabsScr = tabsState{}
	m.screen = screenTabs
	m.errMsg = ""
}

func (m mainLoopModel) updateTabs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(tabSavedMsg); ok {
		m.tabsScr.saving = false
		if saved.err != nil {
			m.errMsg = saveErrorMessage(saved.err)
			return m, nil
		}
		m.tabsScr.mode = tabsModeBrowse
		m.errMsg = ""
		m.status = "タブを保存しました"
		m.loading = true
		return m, m.cmdLoadList()
	}

	if m.tabsScr.mode != tabsModeBrowse {
		return m.updateTabNameInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.screen = screenList
	case "up":
		if m.tabsScr.idx > 0 {
			m.tabsScr.idx--
		}
	case "down":
		if m.tabsScr.idx < len(m.tabs)-1 {
			m.tabsScr.idx++
		}
	case "a":
		if m.tabsScr.saving {
			return m, nil
		}
		m.tabsScr.mode = tabsModeAdd
		m.tabsScr.name = newTabNameInput("")
	case "r":
		tab, ok := m.currentTab()
		if !ok || m.tabsScr.saving {
			return m, nil
		}
		m.tabsScr.mode = tabsModeRename
		m.tabsScr.renameID = tab.ID
		m.tabsScr.name = newTabNameInput(tab.Name)
	case "K", "shift+up":
		return m.moveTab(-1)
	case "J", "shift+down":
		return m.moveTab(1)
	case "ctrl+d":
		tab, ok := m.currentTab()
		if !ok || m.tabsScr.saving {
			return m, nil
		}
		m.tabsScr.saving = true
		return m, m.cmdDeleteTab(tab.ID)
	}

	return m, nil
}

func newTabNameInput(value string) textinput.Model {
	input := textinput.New()
	input.Placeholder = "タブ名"
	input.Width = 24
	input.SetValue(value)
	input.CursorEnd()
	input.Focus()
	return input
}

func (m mainLoopModel) updateTabNameInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.tabsScr.mode = tabsModeBrowse
			return m, nil
		case "enter":
			if m.tabsScr.saving {
				return m, nil
			}
			name := m.tabsScr.name.Value()
			m.tabsScr.saving = true
			if m.tabsScr.mode == tabsModeRename {
				return m, m.cmdRenameTab(m.tabsScr.renameID, name)
			}
			return m, m.cmdCreateTab(name)
		}
	}

	var cmd tea.Cmd
	m.tabsScr.name, cmd = m.tabsScr.name.Update(msg)
	return m, cmd
}

func (m mainLoopModel) moveTab(delta int) (tea.Model, tea.Cmd) {
	tab, ok := m.currentTab()
	if !ok || m.tabsScr.saving {
		return m, nil
	}

	target := m.tabsScr.idx + delta
	if target < 0 || target >= len(m.tabs) {
		return m, nil
	}

	m.tabsScr.saving = true
	m.tabsScr.idx = target
	return m, m.cmdReorderTab(tab.ID, m.tabs[target].Order)
}

func (m mainLoopModel) currentTab() (models.Tab, bool) {
	if len(m.tabs) == 0 || m.tabsScr.idx < 0 || m.tabsScr.idx >= len(m.tabs) {
		return models.Tab{}, false
	}
	return m.tabs[m.tabsScr.idx], true
}

func (m mainLoopModel) viewTabs() string {
	var b strings.Builder

	for i, tab := range m.tabs {
		cursor := " "
		if i == m.tabsScr.idx {
			cursor = ">"
		}
		kind := "標準"
		if tab.Custom {
			kind = "カスタム"
		}
		b.WriteString(cursor + " " + fitText(tab.Name, 16) + "  (" + kind + ")\n")
	}

	switch m.tabsScr.mode {
	case tabsModeAdd:
		b.WriteString("\n新しいタブ名: [ " + m.tabsScr.name.View() + " ]  (enter: 作成 / esc: 取消)\n")
	case tabsModeRename:
		b.WriteString("\n変更後の名前: [ " + m.tabsScr.name.View() + " ]  (enter: 変更 / esc: 取消)\n")
	}

	if m.tabsScr.saving {
		b.WriteString("\n保存中...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nエラー: " + m.errMsg + "\n")
	}
	if m.status != "" {
		b.WriteString("状態: " + m.status + "\n")
	}

	return renderPage(
		"タブ管理",
		strings.TrimRight(b.String(), "\n"),
		"a: 追加 │ r: 名前変更 │ J/K: 並び替え │ ctrl+d: 削除 │ esc: 戻る",
	)
}

func (m mainLoopModel) cmdCreateTab(name string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Tabs

	return func() tea.Msg {
		_, err := svc.Create(ctx, name)
		return tabSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdRenameTab(id, name string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Tabs

	return func() tea.Msg {
		_, err := svc.Rename(ctx, id, name)
		return tabSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdReorderTab(id string, order int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Tabs

	return func() tea.Msg {
		return tabSavedMsg{err: svc.Reorder(ctx, id, order)}
	}
}

func (m mainLoopModel) cmdDeleteTab(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Tabs

	return func() tea.Msg {
		return tabSavedMsg{err: svc.Delete(ctx, id)}
	}
}
