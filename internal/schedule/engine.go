// Package schedule derives the dose task list for a calendar date and decides,
// for any dose, what state it is in relative to wall-clock time and stored
// confirmation state.
package schedule

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/stefvanboven/mino-companion/internal/constants"
	"github.com/stefvanboven/mino-companion/internal/data"
	"github.com/stefvanboven/mino-companion/internal/errs"
	"github.com/stefvanboven/mino-companion/internal/logger"
	"github.com/stefvanboven/mino-companion/internal/models"
	"github.com/stefvanboven/mino-companion/internal/storage"
)

// Notifier receives best-effort notifications about confirmed doses. Failures
// must be swallowed by the implementation; the engine never checks them.
type Notifier interface {
	DoseConfirmed(ctx context.Context, entryID int)
}

// Config tunes the engine. Zero values fall back to the package defaults.
type Config struct {
	// MissWindow is how long after the scheduled time a dose stays
	// confirmable.
	MissWindow time.Duration
	// FillRate is the probability a synthesized historic dose is marked
	// taken. Zero means the package default; a negative value synthesizes
	// an all-untaken history.
	FillRate float64
	// Rand supplies randomness for history synthesis; injectable for tests.
	Rand func() float64
	// Notifier, when set, is told about confirmed doses after they are
	// durably recorded.
	Notifier Notifier
}

type Engine struct {
	store      storage.Provider
	entries    []models.ScheduleEntry
	missWindow time.Duration
	fillRate   float64
	rand       func() float64
	notifier   Notifier
}

func New(store storage.Provider, cfg Config) *Engine {
	e := &Engine{
		store:      store,
		entries:    data.DailySchedule(),
		missWindow: cfg.MissWindow,
		fillRate:   cfg.FillRate,
		rand:       cfg.Rand,
		notifier:   cfg.Notifier,
	}
	if e.missWindow <= 0 {
		e.missWindow = constants.DefaultMissWindow
	}
	if e.fillRate == 0 {
		e.fillRate = constants.HistoryFillRate
	} else if e.fillRate < 0 {
		e.fillRate = 0
	}
	if e.rand == nil {
		e.rand = rand.Float64
	}
	return e
}

// Entries returns the static dosing template sorted by time of day.
func (e *Engine) Entries() []models.ScheduleEntry {
	entries := make([]models.ScheduleEntry, len(e.entries))
	copy(entries, e.entries)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})
	return entries
}

// TasksForDate builds the authoritative dose task list for a date. Structure
// (time, medication linkage, display name) always comes from the static
// schedule and the current medication list, so renames reflect immediately;
// taken flags come from the persisted day record when one exists. A date in
// the past with no record gets a synthesized history that is persisted on the
// spot, so it is stable on reload.
func (e *Engine) TasksForDate(date string, now time.Time) ([]models.DoseTask, error) {
	return e.loadTasks(date, now, true)
}

// loadTasks builds the task list. fill controls whether an unvisited past date
// gets synthesized history; read-only callers pass false so they never write.
func (e *Engine) loadTasks(date string, now time.Time, fill bool) ([]models.DoseTask, error) {
	meds, err := storage.Medications(e.store)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(meds))
	for _, m := range meds {
		names[m.ID] = m.Name
	}

	tasks := make([]models.DoseTask, 0, len(e.entries))
	for _, entry := range e.Entries() {
		name, ok := names[entry.MedicationID]
		if !ok {
			name = "Unknown"
		}
		tasks = append(tasks, models.DoseTask{
			ID:           entry.ID,
			Time:         entry.Time,
			MedicationID: entry.MedicationID,
			Name:         fmt.Sprintf("%s %s", entry.Amount, name),
		})
	}

	stored, ok, err := storage.DayTasks(e.store, date)
	if err != nil {
		return nil, err
	}

	if ok {
		taken := make(map[int]bool, len(stored))
		for _, t := range stored {
			if t.Taken {
				taken[t.ID] = true
			}
		}
		for i := range tasks {
			tasks[i].Taken = taken[tasks[i].ID]
		}
		return tasks, nil
	}

	if fill && date < now.Format(constants.DateFormat) {
		// First visit to a past date: no audit trail exists, so fill in
		// plausible history and persist it immediately.
		for i := range tasks {
			tasks[i].Taken = e.rand() < e.fillRate
		}
		if err := storage.SaveDayTasks(e.store, date, tasks); err != nil {
			return nil, err
		}
		logger.Debug("synthesized history for unvisited date", "date", date)
	}

	return tasks, nil
}

// StatusOf classifies a dose task for a date at a given instant. It is a pure
// function of its arguments and the configured miss window.
func (e *Engine) StatusOf(task models.DoseTask, date string, now time.Time) models.TaskStatus {
	if task.Taken {
		return models.StatusTaken
	}

	today := now.Format(constants.DateFormat)
	switch {
	case date < today:
		return models.StatusMissedHistoric
	case date > today:
		return models.StatusFuture
	}

	scheduled, err := scheduledInstant(date, task.Time, now.Location())
	if err != nil {
		// Malformed schedule time; treat the dose as not yet due.
		return models.StatusWaiting
	}

	switch {
	case now.Before(scheduled):
		return models.StatusWaiting
	case now.After(scheduled.Add(e.missWindow)):
		return models.StatusMissedToday
	default:
		return models.StatusActionable
	}
}

// Confirm records that a dose was taken. It is only legal while the dose is
// actionable; any other state is rejected without mutating anything, including
// history synthesis for past dates. The confirmation is durably recorded
// (taken flag, then stock decrement) before the best-effort robot notification
// is attempted, so a notification failure never loses a confirmation.
func (e *Engine) Confirm(ctx context.Context, entryID int, date string, now time.Time) error {
	tasks, err := e.loadTasks(date, now, false)
	if err != nil {
		return err
	}

	idx := -1
	for i, t := range tasks {
		if t.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: no dose task %d on %s", errs.ErrInvalidState, entryID, date)
	}

	status := e.StatusOf(tasks[idx], date, now)
	if status != models.StatusActionable {
		return fmt.Errorf("%w: dose task %d is %s, not actionable", errs.ErrInvalidState, entryID, status)
	}

	tasks[idx].Taken = true
	if err := storage.SaveDayTasks(e.store, date, tasks); err != nil {
		return err
	}

	if err := e.decrementStock(tasks[idx].MedicationID, e.amountFor(entryID)); err != nil {
		return err
	}

	if e.notifier != nil {
		e.notifier.DoseConfirmed(ctx, entryID)
	}

	logger.Info("dose confirmed", "entry", entryID, "date", date)
	return nil
}

func (e *Engine) amountFor(entryID int) int {
	for _, entry := range e.entries {
		if entry.ID == entryID {
			return models.ParseAmount(entry.Amount)
		}
	}
	return 1
}

func (e *Engine) decrementStock(medID string, amount int) error {
	meds, err := storage.Medications(e.store)
	if err != nil {
		return err
	}

	for i := range meds {
		if meds[i].ID == medID {
			meds[i].Stock = max(0, meds[i].Stock-amount)
			break
		}
	}

	return storage.SaveMedications(e.store, meds)
}

// Navigate moves the viewed date by the given number of days, clamped to the
// navigation window around today. An out-of-window move returns the current
// date unchanged.
func Navigate(current string, days int, now time.Time) string {
	cur, err := time.ParseInLocation(constants.DateFormat, current, now.Location())
	if err != nil {
		return now.Format(constants.DateFormat)
	}

	candidate := cur.AddDate(0, 0, days)
	today, _ := time.ParseInLocation(constants.DateFormat, now.Format(constants.DateFormat), now.Location())

	offset := daysBetween(today, candidate)
	if offset > constants.NavigationWindowDays || offset < -constants.NavigationWindowDays {
		return current
	}
	return candidate.Format(constants.DateFormat)
}

func scheduledInstant(date, clock string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(constants.DateFormat, date, loc)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(constants.TimeFormat, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// daysBetween counts calendar days from a to b, DST-safe.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
