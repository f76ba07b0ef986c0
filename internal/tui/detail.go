// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/veskari/neoscout/internal/i18n"
	"github.com/veskari/neoscout/internal/model"
)

// detailModel shows one close approach and the object it belongs to.
type detailModel struct {
	approach *model.CloseApproach
	status   string
	err      error
}

func newDetailModel(ca *model.CloseApproach) detailModel {
	return detailModel{approach: ca}
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "c":
			if err := clipboard.WriteAll(m.approach.Designation); err != nil {
				m.err = err
				return m, nil
			}
			m.status = i18n.T("tui.detail.copied", m.approach.Designation)
			return m, nil
		case "q", "esc":
			return m, func() tea.Msg { return backToBrowserMsg{} }
		}
	}
	return m, nil
}

func (m detailModel) View() string {
	ca := m.approach
	if ca == nil {
		return ""
	}

	name := i18n.T("tui.unknown")
	diameter := i18n.T("tui.unknown")
	hazardous := i18n.T("tui.unknown")
	if neo := ca.NEO; neo != nil {
		if neo.Name != "" {
			name = neo.Name
		}
		if neo.HasDiameter() {
			diameter = humanize.CommafWithDigits(neo.Diameter, 3)
		}
		if neo.Hazardous {
			hazardous = specialStyle.Render(i18n.T("tui.yes"))
		} else {
			hazardous = successStyle.Render(i18n.T("tui.no"))
		}
	}

	rows := []struct {
		label string
		value string
	}{
		{i18n.T("tui.detail.designation"), ca.Designation},
		{i18n.T("tui.detail.name"), name},
		{i18n.T("tui.detail.diameter"), diameter},
		{i18n.T("tui.detail.hazardous"), hazardous},
		{i18n.T("tui.detail.time"), ca.TimeStr()},
		{i18n.T("tui.detail.distance"), detailFloat(ca.Distance, 6)},
		{i18n.T("tui.detail.velocity"), detailFloat(ca.Velocity, 2)},
	}

	maxLabel := 0
	for _, r := range rows {
		if len(r.label) > maxLabel {
			maxLabel = len(r.label)
		}
	}

	var lines []string
	for _, r := range rows {
		pad := strings.Repeat(" ", maxLabel-len(r.label))
		lines = append(lines, fmt.Sprintf("%s%s  %s", r.label, pad, r.value))
	}

	pane := paneStyle.Width(60).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	var b strings.Builder
	b.WriteString(titleStyle.Render("☄ "+i18n.T("tui.detail.title")) + "\n")
	b.WriteString(pane + "\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(statusMessageStyle.Render(m.status) + "\n")
	}
	b.WriteString(helpStyle.Render(i18n.T("tui.detail.help")))
	return b.String()
}

// detailFloat renders a measurement, falling back to the unknown marker.
func detailFloat(v float64, digits int) string {
	if math.IsNaN(v) {
		return i18n.T("tui.unknown")
	}
	return humanize.CommafWithDigits(v, digits)
}
