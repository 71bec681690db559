package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/stefvanboven/mino-companion/internal/models"
	"github.com/stefvanboven/mino-companion/internal/schedule"
	"github.com/stefvanboven/mino-companion/internal/storage"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state == StateAddMed {
			return m.updateAddMed(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			if m.state == StateDay {
				m.state = StateMeds
			} else {
				m.state = StateDay
			}
			m.message = ""
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.reload()
			return m, nil
		}

		if m.state == StateDay {
			return m.updateDay(msg)
		}
		return m.updateMeds(msg)
	}

	if m.state == StateAddMed && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) updateDay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch {
	case key.Matches(msg, m.keys.PrevDay):
		if next := schedule.Navigate(m.date, -1, now); next != m.date {
			m.date = next
			m.message = ""
			m.reload()
		}
	case key.Matches(msg, m.keys.NextDay):
		if next := schedule.Navigate(m.date, 1, now); next != m.date {
			m.date = next
			m.message = ""
			m.reload()
		}
	case key.Matches(msg, m.keys.Up):
		if m.taskCur > 0 {
			m.taskCur--
		}
	case key.Matches(msg, m.keys.Down):
		if m.taskCur < len(m.tasks)-1 {
			m.taskCur++
		}
	case key.Matches(msg, m.keys.Confirm):
		if m.taskCur < len(m.tasks) {
			task := m.tasks[m.taskCur]
			if err := m.engine.Confirm(context.Background(), task.ID, m.date, now); err != nil {
				m.message = fmt.Sprintf("Cannot confirm: %v", err)
			} else {
				m.message = fmt.Sprintf("Confirmed %s", task.Name)
				m.reload()
			}
		}
	}

	return m, nil
}

func (m Model) updateMeds(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.medCur > 0 {
			m.medCur--
		}
	case key.Matches(msg, m.keys.Down):
		if m.medCur < len(m.meds)-1 {
			m.medCur++
		}
	case key.Matches(msg, m.keys.Add):
		m.medForm = &MedFormModel{}
		m.form = newMedForm(m.medForm)
		m.state = StateAddMed
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Notify):
		if m.medCur < len(m.meds) {
			med := m.meds[m.medCur]
			if med.IsOrdered {
				m.message = fmt.Sprintf("%s is already reported", med.Name)
				break
			}
			m.robot.NotifyCaregiver(context.Background())

			// Re-read before writing so a list that changed since the
			// view loaded is not clobbered.
			meds, err := storage.Medications(m.store)
			if err != nil {
				m.message = fmt.Sprintf("Error: %v", err)
				break
			}
			for i := range meds {
				if meds[i].ID == med.ID {
					meds[i].IsOrdered = true
				}
			}
			if err := storage.SaveMedications(m.store, meds); err != nil {
				m.message = fmt.Sprintf("Error: %v", err)
			} else {
				m.message = fmt.Sprintf("Refill request sent for %s", med.Name)
				m.reload()
			}
		}
	}

	return m, nil
}

func (m Model) updateAddMed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.state = StateMeds
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		stock, _ := strconv.Atoi(m.medForm.Stock)
		med := models.Medication{
			ID:     uuid.New().String(),
			Name:   m.medForm.Name,
			Dosage: m.medForm.Dosage,
			Stock:  stock,
		}
		if med.Dosage == "" {
			med.Dosage = "n/a"
		}
		if err := storage.SaveMedications(m.store, append(m.meds, med)); err != nil {
			m.message = fmt.Sprintf("Error: %v", err)
		} else {
			m.message = fmt.Sprintf("Added %s", med.Name)
		}
		m.state = StateMeds
		m.form = nil
		m.reload()
		return m, nil
	}

	return m, cmd
}
