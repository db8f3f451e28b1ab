package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pinbook/internal/service"
	"pinbook/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
	screenSearch
	screenTabs
	screenSettings
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	screen  screen
	loading bool
	status  string
	errMsg  string

	allPlaces  []models.Place
	tabs       []models.Tab
	tabIdx     int
	sortPolicy service.SortPolicy
	idx        int

	detail   models.Place
	form     formState
	search   searchState
	tabsScr  tabsState
	settings settingsState
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	return mainLoopModel{
		ctx:        ctx,
		services:   services,
		loading:    true,
		sortPolicy: service.SortCreatedDesc,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadList()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.allPlaces = msg.places
		m.tabs = msg.tabs
		if m.tabIdx > len(m.tabs) {
			m.tabIdx = 0
		}
		m.clampIdx()
		return m, nil
	case savedMsg:
		m.form.saving = false
		if msg.err != nil {
			m.errMsg = saveErrorMessage(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.status = "保存しました"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadList()
	case deletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("削除エラー: %v", msg.err)
			return m, nil
		}
		m.status = "削除しました"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadList()
	case draftMsg:
		if msg.err != nil {
			m.errMsg = locationErrorMessage(msg.err)
			return m, nil
		}
		m.status = "現在地を取得しました"
		m.errMsg = ""
		m.startForm(msg.place, false)
		return m, nil
	case linkCopiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("コピーエラー: %v", msg.err)
			return m, nil
		}
		m.status = "ナビリンクをコピーしました"
		m.errMsg = ""
		return m, nil
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenSearch:
		return m.updateSearch(msg)
	case screenTabs:
		return m.updateTabs(msg)
	case screenSettings:
		return m.updateSettings(msg)
	}

	return m.updateList(msg)
}

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up":
		if m.idx > 0 {
			m.idx--
		}
	case "down":
		if m.idx < len(m.visible())-1 {
			m.idx++
		}
	case "left":
		if m.tabIdx > 0 {
			m.tabIdx--
			m.idx = 0
		}
	case "right":
		if m.tabIdx < len(m.tabs) {
			m.tabIdx++
			m.idx = 0
		}
	case "o":
		m.sortPolicy = service.NextSortPolicy(m.sortPolicy)
		m.clampIdx()
	case "enter":
		place, ok := m.current()
		if !ok {
			m.status = "ピンがありません"
			return m, nil
		}
		m.detail = place
		m.screen = screenDetail
	case "a":
		m.startForm(models.Place{TabID: m.filterTabID()}, false)
	case "e":
		place, ok := m.current()
		if !ok {
			m.status = "ピンがありません"
			return m, nil
		}
		m.startForm(place, true)
	case "g":
		m.status = "現在地を取得中..."
		return m, m.cmdDraftFromLocation()
	case "/":
		m.startSearch()
		return m, m.cmdLoadHistory()
	case "t":
		m.startTabs()
	case "s":
		m.screen = screenSettings
		return m, m.cmdLoadSettings()
	case "ctrl+d":
		place, ok := m.current()
		if !ok {
			m.status = "ピンがありません"
			return m, nil
		}
		return m, m.cmdDelete(place.ID)
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenDetail:
		return m.viewDetail()
	case screenForm:
		return m.viewForm()
	case screenSearch:
		return m.viewSearch()
	case screenTabs:
		return m.viewTabs()
	case screenSettings:
		return m.viewSettings()
	}
	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	out := ""

	if m.loading {
		return renderPage("ピン一覧", "読み込み中...", listHotKeys)
	}

	if m.errMsg != "" {
		out += "エラー: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "状態: " + m.status + "\n"
	}
	if out != "" {
		out += "\n"
	}

	out += m.viewTabBar() + "\n"
	out += "並び順: " + sortPolicyLabel(m.sortPolicy) + "\n\n"

	visible := m.visible()
	if len(visible) == 0 {
		out += "ピンがありません\n"
	} else {
		out += "    名前                     │ 住所\n"
		out += "────┼──────────────────────────┼────────────────────────\n"
		for i, place := range visible {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			out += fmt.Sprintf("%s %-2d│ %-24s │ %s\n",
				cursor, i+1, fitText(place.Name, 24), valueOrDash(place.Address))
		}
	}

	return renderPage("ピン一覧", strings.TrimRight(out, "\n"), listHotKeys)
}

const listHotKeys = "a: 追加 │ g: 現在地 │ /: 検索 │ enter: 開く │ o: 並び替え │ ←/→: タブ │ t: タブ管理 │ s: 設定"

func (m mainLoopModel) viewTabBar() string {
	parts := make([]string, 0, len(m.tabs)+1)
	for i, tab := range m.tabFilters() {
		name := tab.Name
		if i == m.tabIdx {
			name = "[" + name + "]"
		}
		parts = append(parts, name)
	}
	return "タブ: " + strings.Join(parts, " ")
}

// tabFilters is the tab bar contents: the "all" sentinel followed by the
// stored tabs in display order.
func (m mainLoopModel) tabFilters() []models.Tab {
	filters := make([]models.Tab, 0, len(m.tabs)+1)
	filters = append(filters, models.Tab{ID: models.TabAll, Name: "すべて"})
	filters = append(filters, m.tabs...)
	return filters
}

func (m mainLoopModel) filterTabID() string {
	filters := m.tabFilters()
	if m.tabIdx < 0 || m.tabIdx >= len(filters) {
		return models.TabAll
	}
	return filters[m.tabIdx].ID
}

func (m mainLoopModel) visible() []models.Place {
	return service.SortPlaces(service.FilterByTab(m.allPlaces, m.filterTabID()), m.sortPolicy)
}

func (m mainLoopModel) current() (models.Place, bool) {
	visible := m.visible()
	if len(visible) == 0 || m.idx < 0 || m.idx >= len(visible) {
		return models.Place{}, false
	}
	return visible[m.idx], true
}

func (m *mainLoopModel) clampIdx() {
	if n := len(m.visible()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func sortPolicyLabel(policy service.SortPolicy) string {
	switch policy {
	case service.SortNameAsc:
		return "名前順"
	case service.SortCreatedAsc:
		return "登録が古い順"
	default:
		return "登録が新しい順"
	}
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	places := m.services.Places
	tabs := m.services.Tabs

	return func() tea.Msg {
		placeList, err := places.List(ctx)
		if err != nil {
			return listLoadedMsg{err: err}
		}
		tabList, err := tabs.List(ctx)
		if err != nil {
			return listLoadedMsg{err: err}
		}
		return listLoadedMsg{places: placeList, tabs: tabList}
	}
}

func (m mainLoopModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Places

	return func() tea.Msg {
		return deletedMsg{err: svc.Delete(ctx, id)}
	}
}

func (m mainLoopModel) cmdDraftFromLocation() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Places

	return func() tea.Msg {
		draft, err := svc.DraftFromCurrentLocation(ctx)
		return draftMsg{place: draft, err: err}
	}
}
