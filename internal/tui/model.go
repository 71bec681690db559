package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/stefvanboven/mino-companion/internal/constants"
	"github.com/stefvanboven/mino-companion/internal/models"
	"github.com/stefvanboven/mino-companion/internal/robot"
	"github.com/stefvanboven/mino-companion/internal/schedule"
	"github.com/stefvanboven/mino-companion/internal/storage"
)

type SessionState int

const (
	StateDay SessionState = iota
	StateMeds
	StateAddMed
)

// MedFormModel backs the huh add-medication form.
type MedFormModel struct {
	Name   string
	Dosage string
	Stock  string
}

type Model struct {
	store  storage.Provider
	engine *schedule.Engine
	robot  *robot.Client

	state    SessionState
	keys     KeyMap
	help     help.Model
	date     string
	tasks    []models.DoseTask
	taskCur  int
	meds     []models.Medication
	medCur   int
	form     *huh.Form
	medForm  *MedFormModel
	message  string
	width    int
	height   int
	quitting bool
}

func NewModel(store storage.Provider, engine *schedule.Engine, client *robot.Client) Model {
	m := Model{
		store:  store,
		engine: engine,
		robot:  client,
		state:  StateDay,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		date:   time.Now().Format(constants.DateFormat),
	}
	m.reload()
	return m
}

// reload refreshes both views from the store.
func (m *Model) reload() {
	now := time.Now()
	tasks, err := m.engine.TasksForDate(m.date, now)
	if err != nil {
		m.message = fmt.Sprintf("Error: %v", err)
		return
	}
	m.tasks = tasks
	if m.taskCur >= len(m.tasks) {
		m.taskCur = 0
	}

	meds, err := storage.Medications(m.store)
	if err != nil {
		m.message = fmt.Sprintf("Error: %v", err)
		return
	}
	m.meds = meds
	if m.medCur >= len(m.meds) {
		m.medCur = 0
	}
}

func newMedForm(fm *MedFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("medication name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Dosage").
				Description("e.g. 500mg").
				Value(&fm.Dosage),
			huh.NewInput().
				Title("Units in stock").
				Value(&fm.Stock).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 0 {
						return fmt.Errorf("stock cannot be negative")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case StateMeds:
		return []key.Binding{m.keys.Tab, m.keys.Up, m.keys.Down, m.keys.Add, m.keys.Notify, m.keys.Quit}
	default:
		return []key.Binding{m.keys.Tab, m.keys.PrevDay, m.keys.NextDay, m.keys.Confirm, m.keys.Quit}
	}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

var _ tea.Model = Model{}

func (m Model) Init() tea.Cmd {
	return nil
}
