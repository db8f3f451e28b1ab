package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pinbook/internal/adapter"
	"pinbook/internal/service"
	"pinbook/models"
)

const (
	formFieldName = iota
	formFieldAddress
	formFieldPostal
	formFieldPhone
	formFieldLatitude
	formFieldLongitude
	formFieldCount
)

// formState is the create/edit place form. The note textarea sits after the
// text inputs in the focus cycle; the target tab is cycled with ctrl+t
// rather than focused.
type formState struct {
	inputs      []textinput.Model
	focus       int
	noteFocused bool
	note        textarea.Model

	tabIdx  int
	editing bool
	editID  string

	saving        bool
	dictating     bool
	stopDictation context.CancelFunc
	errMsg        string
}

func (m *mainLoopModel) startForm(place models.Place, editing bool) {
	labels := [formFieldCount]struct{ placeholder, value string }{
		{placeholder: "名前", value: place.Name},
		{placeholder: "住所", value: place.Address},
		{placeholder: "郵便番号", value: place.PostalCode},
		{placeholder: "電話番号", value: place.Phone},
		{placeholder: "緯度", value: coordinateValue(place.Latitude, editing)},
		{placeholder: "経度", value: coordinateValue(place.Longitude, editing)},
	}

	inputs := make([]textinput.Model, 0, formFieldCount)
	for i, l := range labels {
		in := textinput.New()
		in.Placeholder = l.placeholder
		in.SetValue(l.value)
		in.Width = 40
		if i == formFieldName {
			in.Focus()
		}
		inputs = append(inputs, in)
	}

	note := textarea.New()
	note.Placeholder = "メモ"
	note.SetWidth(54)
	note.SetHeight(4)
	note.SetValue(place.Note)

	tabIdx := 0
	for i, tab := range m.tabs {
		if tab.ID == place.TabID {
			tabIdx = i
			break
		}
	}

	m.form = formState{
		inputs:  inputs,
		note:    note,
		tabIdx:  tabIdx,
		editing: editing,
		editID:  place.ID,
	}
	m.screen = screenForm
	m.errMsg = ""
}

// coordinateValue renders a coordinate for the form. A brand-new draft shows
// empty fields instead of "0"; an existing record always shows its values.
func coordinateValue(v float64, editing bool) string {
	if !editing && v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(dictationDoneMsg); ok {
		m.form.dictating = false
		m.form.stopDictation = nil
		if done.err != nil {
			m.form.errMsg = dictationErrorMessage(done.err)
			return m, nil
		}
		m.form.note.SetValue(service.AppendNote(m.form.note.Value(), done.text))
		m.form.errMsg = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.cancelDictation()
			return m, tea.Quit
		case "esc":
			if m.form.dictating {
				m.cancelDictation()
				return m, nil
			}
			m.screen = screenList
			return m, nil
		case "tab":
			m.cycleFormFocus(1)
			return m, nil
		case "shift+tab":
			m.cycleFormFocus(-1)
			return m, nil
		case "ctrl+t":
			if len(m.tabs) > 0 {
				m.form.tabIdx = (m.form.tabIdx + 1) % len(m.tabs)
			}
			return m, nil
		case "ctrl+r":
			return m.toggleDictation()
		case "ctrl+s":
			if m.form.saving {
				return m, nil
			}
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	if m.form.noteFocused {
		m.form.note, cmd = m.form.note.Update(msg)
	} else {
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) cycleFormFocus(delta int) {
	// The note textarea is one extra stop after the text inputs.
	positions := formFieldCount + 1
	pos := m.form.focus
	if m.form.noteFocused {
		pos = formFieldCount
	}

	pos = (pos + delta + positions) % positions

	for i := range m.form.inputs {
		m.form.inputs[i].Blur()
	}
	m.form.note.Blur()

	if pos == formFieldCount {
		m.form.noteFocused = true
		m.form.note.Focus()
		return
	}
	m.form.noteFocused = false
	m.form.focus = pos
	m.form.inputs[pos].Focus()
}

func (m mainLoopModel) toggleDictation() (tea.Model, tea.Cmd) {
	if m.form.dictating {
		// Second press stops the recording; the partial transcript arrives
		// through dictationDoneMsg.
		m.cancelDictation()
		return m, nil
	}

	if !m.services.Dictation.Available() {
		m.form.errMsg = dictationErrorMessage(adapter.ErrSpeechUnsupported)
		return m, nil
	}

	dictCtx, cancel := context.WithCancel(m.ctx)
	m.form.dictating = true
	m.form.stopDictation = cancel
	m.form.errMsg = ""

	svc := m.services.Dictation
	return m, func() tea.Msg {
		text, err := svc.Dictate(dictCtx)
		return dictationDoneMsg{text: text, err: err}
	}
}

func (m *mainLoopModel) cancelDictation() {
	if m.form.stopDictation != nil {
		m.form.stopDictation()
	}
}

func (m mainLoopModel) submitForm() (tea.Model, tea.Cmd) {
	values := make([]string, formFieldCount)
	for i := range m.form.inputs {
		values[i] = strings.TrimSpace(m.form.inputs[i].Value())
	}

	lat, latErr := parseCoordinate(values[formFieldLatitude])
	lng, lngErr := parseCoordinate(values[formFieldLongitude])
	if latErr != nil || lngErr != nil {
		m.form.errMsg = "座標の形式が正しくありません"
		return m, nil
	}

	tabID := models.TabOther
	if m.form.tabIdx >= 0 && m.form.tabIdx < len(m.tabs) {
		tabID = m.tabs[m.form.tabIdx].ID
	}

	m.form.errMsg = ""
	m.form.saving = true

	if m.form.editing {
		note := m.form.note.Value()
		upd := models.PlaceUpdate{
			Name:       &values[formFieldName],
			Address:    &values[formFieldAddress],
			PostalCode: &values[formFieldPostal],
			Phone:      &values[formFieldPhone],
			Latitude:   &lat,
			Longitude:  &lng,
			TabID:      &tabID,
			Note:       &note,
		}
		return m, m.cmdUpdatePlace(m.form.editID, upd)
	}

	place := models.Place{
		Name:       values[formFieldName],
		Address:    values[formFieldAddress],
		PostalCode: values[formFieldPostal],
		Phone:      values[formFieldPhone],
		Latitude:   lat,
		Longitude:  lng,
		TabID:      tabID,
		Note:       m.form.note.Value(),
	}
	return m, m.cmdCreatePlace(place)
}

func parseCoordinate(v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

func (m mainLoopModel) viewForm() string {
	var b strings.Builder

	b.WriteString("名前      : [ " + m.form.inputs[formFieldName].View() + " ]\n")
	b.WriteString("住所      : [ " + m.form.inputs[formFieldAddress].View() + " ]\n")
	b.WriteString("郵便番号  : [ " + m.form.inputs[formFieldPostal].View() + " ]\n")
	b.WriteString("電話番号  : [ " + m.form.inputs[formFieldPhone].View() + " ]\n")
	b.WriteString("緯度      : [ " + m.form.inputs[formFieldLatitude].View() + " ]\n")
	b.WriteString("経度      : [ " + m.form.inputs[formFieldLongitude].View() + " ]\n")

	tabName := "その他"
	if m.form.tabIdx >= 0 && m.form.tabIdx < len(m.tabs) {
		tabName = m.tabs[m.form.tabIdx].Name
	}
	b.WriteString("タブ      : " + tabName + "  (ctrl+t で切替)\n")

	b.WriteString("\nメモ:\n")
	b.WriteString(m.form.note.View() + "\n")

	if m.form.dictating {
		b.WriteString("\n● 録音中... (ctrl+r で停止)\n")
	}
	if m.form.errMsg != "" {
		b.WriteString("\nエラー: " + m.form.errMsg + "\n")
	}
	if m.form.saving {
		b.WriteString("\n保存中...\n")
	}

	title := "ピンの追加"
	if m.form.editing {
		title = "ピンの編集"
	}

	hotKeys := "tab: 次の項目 │ ctrl+s: 保存 │ esc: 戻る"
	if m.services.Dictation.Available() {
		hotKeys = "tab: 次の項目 │ ctrl+r: 音声入力 │ ctrl+s: 保存 │ esc: 戻る"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) cmdCreatePlace(place models.Place) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Places

	return func() tea.Msg {
		_, err := svc.Create(ctx, place)
		return savedMsg{err: err}
	}
}

func (m mainLoopModel) cmdUpdatePlace(id string, upd models.PlaceUpdate) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Places

	return func() tea.Msg {
		_, err := svc.Update(ctx, id, upd)
		return savedMsg{err: err}
	}
}
