package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"pinbook/models"
)

func (m mainLoopModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.screen = screenList
	case "e":
		m.startForm(m.detail, true)
	case "n":
		return m, m.cmdCopyNavigationLink(m.detail)
	case "ctrl+d":
		place := m.detail
		m.screen = screenList
		return m, m.cmdDelete(place.ID)
	}

	return m, nil
}

func (m mainLoopModel) viewDetail() string {
	place := m.detail
	var b strings.Builder

	b.WriteString("[ 基本情報 ]\n")
	b.WriteString("名前      : " + place.Name + "\n")
	b.WriteString("タブ      : " + m.tabName(place.TabID) + "\n")
	b.WriteString("住所      : " + valueOrDash(place.Address) + "\n")
	b.WriteString("郵便番号  : " + valueOrDash(place.PostalCode) + "\n")
	b.WriteString("電話      : " + valueOrDash(place.Phone) + "\n")
	b.WriteString("座標      : " + formatCoordinate(place.Latitude) + ", " + formatCoordinate(place.Longitude) + "\n")

	b.WriteString("\n[ メモ ]\n")
	if strings.TrimSpace(place.Note) != "" {
		b.WriteString(place.Note + "\n")
	} else {
		b.WriteString("(なし)\n")
	}

	b.WriteString("\n登録日時  : " + place.CreatedAt.Local().Format("2006-01-02 15:04") + "\n")

	if m.errMsg != "" {
		b.WriteString("\nエラー: " + m.errMsg + "\n")
	}
	if m.status != "" {
		b.WriteString("状態: " + m.status + "\n")
	}

	return renderPage(
		"ピン: "+place.Name,
		strings.TrimRight(b.String(), "\n"),
		"n: ナビリンクをコピー │ e: 編集 │ ctrl+d: 削除 │ esc: 戻る",
	)
}

func (m mainLoopModel) tabName(tabID string) string {
	for _, tab := range m.tabs {
		if tab.ID == tabID {
			return tab.Name
		}
	}
	return tabID
}

func (m mainLoopModel) cmdCopyNavigationLink(place models.Place) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Navigation

	return func() tea.Msg {
		link, err := svc.LinkTo(ctx, place)
		if err != nil {
			return linkCopiedMsg{err: fmt.Errorf("build link: %w", err)}
		}
		return linkCopiedMsg{err: clipboard.WriteAll(link)}
	}
}
