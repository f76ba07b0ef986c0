// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/veskari/neoscout/internal/i18n"
	"github.com/veskari/neoscout/internal/model"
)

// browserModel lists close approaches in a scrollable table with an
// incremental filter over designation and name.
type browserModel struct {
	table       table.Model
	input       textinput.Model
	all         []*model.CloseApproach // Master list of all approaches
	visible     []*model.CloseApproach // Rows currently in the table
	isFiltering bool
	width       int
	height      int
}

func newBrowserModel(approaches []*model.CloseApproach) browserModel {
	m := browserModel{all: approaches}

	columns := []table.Column{
		{Title: i18n.T("tui.browser.col_time"), Width: 17},
		{Title: i18n.T("tui.browser.col_designation"), Width: 12},
		{Title: i18n.T("tui.browser.col_name"), Width: 20},
		{Title: i18n.T("tui.browser.col_distance"), Width: 14},
		{Title: i18n.T("tui.browser.col_velocity"), Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15), // Placeholder height
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorSubtle).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorWhite).
		Background(colorHighlight).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = i18n.T("tui.browser.filter_placeholder")
	ti.CharLimit = 64

	m.table = t
	m.input = ti
	m.rebuildTableRows()
	return m
}

// rebuildTableRows filters the master list and populates the table.
func (m *browserModel) rebuildTableRows() {
	needle := strings.ToLower(m.input.Value())
	m.visible = m.visible[:0]

	var rows []table.Row
	for _, ca := range m.all {
		if needle != "" && !approachMatches(ca, needle) {
			continue
		}
		m.visible = append(m.visible, ca)

		name := ""
		desCell := ca.Designation
		if ca.NEO != nil {
			name = ca.NEO.Name
			if ca.NEO.Hazardous {
				desCell = specialStyle.Render(ca.Designation)
			}
		}
		rows = append(rows, table.Row{
			ca.TimeStr(),
			desCell,
			name,
			formatCell(ca.Distance, 6),
			formatCell(ca.Velocity, 2),
		})
	}
	m.table.SetRows(rows)

	// Go to the top of the table after filtering
	if m.isFiltering {
		m.table.GotoTop()
	}
}

// approachMatches reports whether the approach's designation or the linked
// object's name contains the lowercase needle.
func approachMatches(ca *model.CloseApproach, needle string) bool {
	if strings.Contains(strings.ToLower(ca.Designation), needle) {
		return true
	}
	return ca.NEO != nil && strings.Contains(strings.ToLower(ca.NEO.Name), needle)
}

// formatCell renders a float for a table cell, blank when unknown.
func formatCell(v float64, digits int) string {
	if math.IsNaN(v) {
		return ""
	}
	return humanize.CommafWithDigits(v, digits)
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// header(3) + filter/help(3)
		m.table.SetHeight(msg.Height - 6)
		m.table.SetWidth(msg.Width - 4)

	case tea.KeyMsg:
		// If filtering, route keys to the text input.
		if m.isFiltering {
			switch msg.Type {
			case tea.KeyEsc:
				m.isFiltering = false
				m.input.SetValue("")
				m.input.Blur()
				m.rebuildTableRows()
				return &m, nil
			case tea.KeyEnter:
				m.isFiltering = false
				m.input.Blur()
				return &m, nil
			}
			m.input, cmd = m.input.Update(msg)
			m.rebuildTableRows()
			return &m, cmd
		}

		switch msg.String() {
		case "/":
			m.isFiltering = true
			m.input.SetValue("")
			m.rebuildTableRows()
			return &m, m.input.Focus()
		case "enter":
			if ca := m.selected(); ca != nil {
				return &m, func() tea.Msg { return showDetailMsg{approach: ca} }
			}
			return &m, nil
		case "q", "esc":
			if m.input.Value() != "" {
				m.input.SetValue("")
				m.rebuildTableRows()
				return &m, nil
			}
			return &m, func() tea.Msg { return backToDashboardMsg{} }
		}
	}

	m.table, cmd = m.table.Update(msg)
	cmds = append(cmds, cmd)

	return &m, tea.Batch(cmds...)
}

// selected returns the approach under the cursor, nil when the table is empty.
func (m browserModel) selected() *model.CloseApproach {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return nil
	}
	return m.visible[idx]
}

func (m browserModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("☄ "+i18n.T("tui.browser.title")) + "\n\n")
	b.WriteString(m.table.View())
	b.WriteString(m.footerView())
	return b.String()
}

func (m browserModel) footerView() string {
	var filterStatus string
	switch {
	case m.isFiltering:
		filterStatus = m.input.View()
	case m.input.Value() != "":
		filterStatus = fmt.Sprintf("%s (esc)", m.input.Value())
	}
	return helpStyle.Render(fmt.Sprintf("\n%s %s", i18n.T("tui.browser.help"), filterStatus))
}
