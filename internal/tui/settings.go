package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pinbook/models"
)

var travelModes = []models.TravelMode{
	models.TravelModeDriving,
	models.TravelModeTransit,
	models.TravelModeWalking,
}

// settingsState is the settings screen. The travel mode is cycled in place
// and saved on enter.
type settingsState struct {
	loaded   bool
	settings models.Settings
	saving   bool
}

func (m mainLoopModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		if msg.err != nil {
			m.errMsg = "設定の読み込みエラー: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.settings = settingsState{loaded: true, settings: msg.settings}
		return m, nil
	case settingsSavedMsg:
		m.settings.saving = false
		if msg.err != nil {
			m.errMsg = "設定の保存エラー: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "設定を保存しました"
		return m, nil
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
	case "left":
		m.cycleTravelMode(-1)
	case "right":
		m.cycleTravelMode(1)
	case "enter":
		if !m.settings.loaded || m.settings.saving {
			return m, nil
		}
		m.settings.saving = true
		return m, m.cmdSaveTravelMode(m.settings.settings.TravelMode)
	}

	return m, nil
}

func (m *mainLoopModel) cycleTravelMode(delta int) {
	if !m.settings.loaded {
		return
	}

	idx := 0
	for i, mode := range travelModes {
		if mode == m.settings.settings.TravelMode {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(travelModes)) % len(travelModes)
	m.settings.settings.TravelMode = travelModes[idx]
}

func travelModeLabel(mode models.TravelMode) string {
	switch mode {
	case models.TravelModeTransit:
		return "公共交通機関"
	case models.TravelModeWalking:
		return "徒歩"
	default:
		return "車"
	}
}

func (m mainLoopModel) viewSettings() string {
	var b strings.Builder

	if !m.settings.loaded {
		b.WriteString("読み込み中...\n")
	} else {
		b.WriteString("移動手段: < " + travelModeLabel(m.settings.settings.TravelMode) + " >\n")
	}

	if m.settings.saving {
		b.WriteString("\n保存中...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nエラー: " + m.errMsg + "\n")
	}
	if m.status != "" {
		b.WriteString("状態: " + m.status + "\n")
	}

	return renderPage(
		"設定",
		strings.TrimRight(b.String(), "\n"),
		"←/→: 変更 │ enter: 保存 │ esc: 戻る",
	)
}

func (m mainLoopModel) cmdLoadSettings() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Settings

	return func() tea.Msg {
		settings, err := svc.Get(ctx)
		return settingsLoadedMsg{settings: settings, err: err}
	}
}

func (m mainLoopModel) cmdSaveTravelMode(mode models.TravelMode) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Settings

	return func() tea.Msg {
		return settingsSavedMsg{err: svc.SetTravelMode(ctx, mode)}
	}
}
