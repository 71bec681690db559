package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/stefvanboven/mino-companion/internal/constants"
	"github.com/stefvanboven/mino-companion/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDay:
		content = m.viewDay()
	case StateMeds:
		content = m.viewMeds()
	case StateAddMed:
		content = m.form.View()
	}

	sections := []string{m.viewTabs(), content}
	if m.message != "" {
		sections = append(sections, messageStyle.Render(m.message))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Stock"} {
		if m.state == SessionState(i) || (m.state == StateAddMed && i == 1) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDay() string {
	now := time.Now()
	header := m.date
	if m.date == now.Format(constants.DateFormat) {
		header += " (today)"
	}

	rows := []string{titleStyle.Render("Medication for " + header), ""}
	for i, task := range m.tasks {
		cursor := "  "
		if i == m.taskCur {
			cursor = "> "
		}
		status := m.engine.StatusOf(task, m.date, now)
		line := fmt.Sprintf("%s%s  %-24s %s", cursor, task.Time, task.Name, renderStatus(status))
		if i == m.taskCur {
			line = selectedStyle.Render(line)
		}
		rows = append(rows, line)
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) viewMeds() string {
	rows := []string{titleStyle.Render("Medication stock"), ""}
	for i, med := range m.meds {
		cursor := "  "
		if i == m.medCur {
			cursor = "> "
		}

		note := ""
		switch {
		case med.IsOrdered:
			note = orderedStyle.Render("reported to caregiver")
		case med.LowStock():
			note = lowStockStyle.Render("refill needed")
		}

		line := fmt.Sprintf("%s%-20s %-8s %3d left  %s", cursor, med.Name, med.Dosage, med.Stock, note)
		if i == m.medCur {
			line = selectedStyle.Render(line)
		}
		rows = append(rows, line)
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderStatus(status models.TaskStatus) string {
	switch status {
	case models.StatusTaken:
		return takenStyle.Render("taken")
	case models.StatusWaiting:
		return waitingStyle.Render("waiting")
	case models.StatusActionable:
		return actionableStyle.Render("due now")
	case models.StatusMissedToday, models.StatusMissedHistoric:
		return missedStyle.Render("missed")
	case models.StatusFuture:
		return waitingStyle.Render("upcoming")
	default:
		return string(status)
	}
}
