// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Neoscout.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that acts as a router to all other sub-views.
package tui // import "github.com/veskari/neoscout/internal/tui"

import (
	"fmt"
	"math"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/veskari/neoscout/internal/i18n"
	"github.com/veskari/neoscout/internal/model"
	"github.com/veskari/neoscout/internal/neodb"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// dashboardView is the landing screen with dataset statistics.
	dashboardView viewState = iota
	browserView
	detailView
	languageView
)

// dashboardDataMsg is a message containing the data for the dashboard.
type dashboardDataMsg struct {
	data dashboardData
}

// backToDashboardMsg signals a sub-view wants to return to the dashboard.
type backToDashboardMsg struct{}

// backToBrowserMsg signals the detail view wants to return to the browser.
type backToBrowserMsg struct{}

// showDetailMsg carries the approach selected in the browser.
type showDetailMsg struct {
	approach *model.CloseApproach
}

// languageChangedMsg signals that the language has changed and the UI
// should be re-initialized.
type languageChangedMsg struct{}

// dashboardData holds the summary information for the dashboard view.
type dashboardData struct {
	neoCount       int
	approachCount  int
	hazardousCount int
	largest        *model.NearEarthObject
	fastest        *model.CloseApproach
	closest        *model.CloseApproach
}

// mainModel is the top-level model for the TUI. It acts as a state machine
// and router, delegating updates and view rendering to the currently active
// sub-model.
type mainModel struct {
	db        *neodb.Database
	state     viewState
	dashboard dashboardData
	browser   *browserModel
	detail    detailModel
	language  languageModel
	width     int
	height    int
	err       error
}

// languageModel holds the state for the language selection menu.
type languageModel struct {
	choices     map[string]string // map of lang code to display name
	orderedKeys []string          // for stable iteration
	cursor      int
}

// ConfigSaver persists a language choice so it survives restarts. The CLI
// injects one before launching the TUI.
type ConfigSaver interface {
	Save(lang string) error
}

var configSaver ConfigSaver

// SetConfigSaver installs the saver used when the language changes.
func SetConfigSaver(s ConfigSaver) {
	configSaver = s
}

func initialModel(db *neodb.Database) mainModel {
	return mainModel{db: db, state: dashboardView}
}

// Init kicks off the initial command to load data for the dashboard.
func (m mainModel) Init() tea.Cmd {
	return refreshDashboardCmd(m.db)
}

// Update is the main message loop. It handles all events and delegates them
// to the active sub-model.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings that work everywhere.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case dashboardDataMsg:
		m.dashboard = msg.data
		return m, nil
	case languageChangedMsg:
		// Re-initialize the entire model so new translations apply everywhere.
		newModel := initialModel(m.db)
		newModel.width = m.width
		newModel.height = m.height
		return newModel, newModel.Init()
	}

	// Delegate updates to the currently active view.
	switch m.state {
	case browserView:
		if _, ok := msg.(backToDashboardMsg); ok {
			m.state = dashboardView
			return m, refreshDashboardCmd(m.db)
		}
		if detailMsg, ok := msg.(showDetailMsg); ok {
			m.state = detailView
			m.detail = newDetailModel(detailMsg.approach)
			return m, nil
		}
		var newBrowser tea.Model
		newBrowser, cmd = m.browser.Update(msg)
		m.browser = newBrowser.(*browserModel)

	case detailView:
		if _, ok := msg.(backToBrowserMsg); ok {
			m.state = browserView
			return m, nil
		}
		var newDetail tea.Model
		newDetail, cmd = m.detail.Update(msg)
		m.detail = newDetail.(detailModel)

	case languageView:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q", "esc":
				m.state = dashboardView
				return m, refreshDashboardCmd(m.db)
			case "up", "k":
				if m.language.cursor > 0 {
					m.language.cursor--
				}
			case "down", "j":
				if m.language.cursor < len(m.language.orderedKeys)-1 {
					m.language.cursor++
				}
			case "enter":
				langCode := m.language.orderedKeys[m.language.cursor]
				i18n.SetLang(langCode)
				if configSaver != nil {
					if err := configSaver.Save(langCode); err != nil {
						m.err = fmt.Errorf("failed to save config: %w", err)
						return m, nil
					}
				}
				return m, func() tea.Msg { return languageChangedMsg{} }
			}
		}

	default: // dashboardView
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q":
				return m, tea.Quit
			case "enter", "b":
				m.state = browserView
				browser := newBrowserModel(m.db.Query())
				m.browser = &browser
				var updated tea.Model
				updated, cmd = m.browser.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
				m.browser = updated.(*browserModel)
				return m, cmd
			case "L":
				m.state = languageView
				m.language = newLanguageModel()
				return m, nil
			}
		}
	}

	return m, cmd
}

// View renders the TUI, delegating to the currently active sub-model.
func (m mainModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("An error occurred: %v", m.err))
	}

	switch m.state {
	case browserView:
		return m.browser.View()
	case detailView:
		return m.detail.View()
	case languageView:
		return m.language.View()
	default:
		return m.dashboardView()
	}
}

// dashboardView renders the landing screen with dataset statistics.
func (m mainModel) dashboardView() string {
	title := mainTitleStyle.Render("☄ " + i18n.T("tui.dashboard.title"))
	subTitle := helpStyle.Render(i18n.T("tui.dashboard.subtitle"))
	header := lipgloss.JoinVertical(lipgloss.Left, title, subTitle)

	var items []string
	items = append(items,
		i18n.T("tui.dashboard.neo_count", m.dashboard.neoCount),
		i18n.T("tui.dashboard.approach_count", m.dashboard.approachCount),
	)
	hazardLine := i18n.T("tui.dashboard.hazardous_count", m.dashboard.hazardousCount)
	if m.dashboard.hazardousCount > 0 {
		hazardLine = specialStyle.Render(hazardLine)
	}
	items = append(items, hazardLine, "")

	if neo := m.dashboard.largest; neo != nil {
		items = append(items, i18n.T("tui.dashboard.largest",
			neo.Fullname(), humanize.CommafWithDigits(neo.Diameter, 3)))
	}
	if ca := m.dashboard.fastest; ca != nil {
		items = append(items, i18n.T("tui.dashboard.fastest",
			ca.Designation, humanize.CommafWithDigits(ca.Velocity, 2)))
	}
	if ca := m.dashboard.closest; ca != nil {
		items = append(items, i18n.T("tui.dashboard.closest",
			ca.Designation, formatAU(ca.Distance)))
	}

	pane := paneStyle.Width(60).Render(lipgloss.JoinVertical(lipgloss.Left, items...))
	footer := helpStyle.Render(i18n.T("tui.dashboard.help"))

	return lipgloss.JoinVertical(lipgloss.Left, header, pane, "", footer)
}

// newLanguageModel creates a new model for the language selection view.
func newLanguageModel() languageModel {
	choices := i18n.AvailableLocales()

	keys := make([]string, 0, len(choices))
	for k := range choices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return languageModel{choices: choices, orderedKeys: keys}
}

func (m languageModel) View() string {
	var listItems []string
	for i, langCode := range m.orderedKeys {
		displayName := m.choices[langCode]
		if m.cursor == i {
			listItems = append(listItems, selectedItemStyle.Render("▸ "+displayName))
		} else {
			listItems = append(listItems, itemStyle.Render("  "+displayName))
		}
	}

	pane := paneStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, listItems...))
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("🌐"), pane)
}

// Run starts the Bubble Tea program over an in-memory dataset.
func Run(db *neodb.Database) error {
	_, err := tea.NewProgram(initialModel(db), tea.WithAltScreen()).Run()
	return err
}

// refreshDashboardCmd is a tea.Cmd that computes summary statistics for the
// dashboard from the in-memory database.
func refreshDashboardCmd(db *neodb.Database) tea.Cmd {
	return func() tea.Msg {
		data := dashboardData{
			neoCount:      db.NEOCount(),
			approachCount: db.ApproachCount(),
		}
		for _, neo := range db.NEOs() {
			if neo.Hazardous {
				data.hazardousCount++
			}
			if neo.HasDiameter() && (data.largest == nil || neo.Diameter > data.largest.Diameter) {
				data.largest = neo
			}
		}
		for _, ca := range db.Query() {
			if !math.IsNaN(ca.Velocity) && (data.fastest == nil || ca.Velocity > data.fastest.Velocity) {
				data.fastest = ca
			}
			if !math.IsNaN(ca.Distance) && (data.closest == nil || ca.Distance < data.closest.Distance) {
				data.closest = ca
			}
		}
		return dashboardDataMsg{data: data}
	}
}

// formatAU renders an astronomical-unit distance with enough precision for
// near misses without drowning wider passes in digits.
func formatAU(v float64) string {
	if math.IsNaN(v) {
		return i18n.T("tui.unknown")
	}
	return humanize.CommafWithDigits(v, 6)
}
