package schedule

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stefvanboven/mino-companion/internal/constants"
	"github.com/stefvanboven/mino-companion/internal/errs"
	"github.com/stefvanboven/mino-companion/internal/models"
	"github.com/stefvanboven/mino-companion/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "mino.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

type fakeNotifier struct {
	confirmed []int
}

func (n *fakeNotifier) DoseConfirmed(_ context.Context, entryID int) {
	n.confirmed = append(n.confirmed, entryID)
}

func TestStatusOf_TodayTransitions(t *testing.T) {
	store := newTestStore(t)
	engine := New(store, Config{MissWindow: 5 * time.Second})

	date := "2026-03-10"
	task := models.DoseTask{ID: 101, Time: "08:00", MedicationID: "1"}

	cases := []struct {
		name string
		now  time.Time
		want models.TaskStatus
	}{
		{"before scheduled time", time.Date(2026, 3, 10, 7, 59, 0, 0, time.UTC), models.StatusWaiting},
		{"at scheduled time", time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), models.StatusActionable},
		{"inside miss window", time.Date(2026, 3, 10, 8, 0, 2, 0, time.UTC), models.StatusActionable},
		{"at window edge", time.Date(2026, 3, 10, 8, 0, 5, 0, time.UTC), models.StatusActionable},
		{"past miss window", time.Date(2026, 3, 10, 8, 0, 6, 0, time.UTC), models.StatusMissedToday},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.StatusOf(task, date, tc.now)
			if got != tc.want {
				t.Errorf("StatusOf at %s = %s, want %s", tc.now.Format("15:04:05"), got, tc.want)
			}
		})
	}
}

func TestStatusOf_TakenWinsOverClock(t *testing.T) {
	store := newTestStore(t)
	engine := New(store, Config{MissWindow: 5 * time.Second})

	task := models.DoseTask{ID: 101, Time: "08:00", MedicationID: "1", Taken: true}

	// Well past the miss window; taken must still win.
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	if got := engine.StatusOf(task, "2026-03-10", now); got != models.StatusTaken {
		t.Errorf("StatusOf taken task = %s, want %s", got, models.StatusTaken)
	}

	// Taken also wins on historic dates.
	if got := engine.StatusOf(task, "2026-03-01", now); got != models.StatusTaken {
		t.Errorf("StatusOf taken historic task = %s, want %s", got, models.StatusTaken)
	}
}

func TestStatusOf_OtherDates(t *testing.T) {
	store := newTestStore(t)
	engine := New(store, Config{})

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	task := models.DoseTask{ID: 101, Time: "08:00", MedicationID: "1"}

	if got := engine.StatusOf(task, "2026-03-09", now); got != models.StatusMissedHistoric {
		t.Errorf("StatusOf on past date = %s, want %s", got, models.StatusMissedHistoric)
	}
	if got := engine.StatusOf(task, "2026-03-11", now); got != models.StatusFuture {
		t.Errorf("StatusOf on future date = %s, want %s", got, models.StatusFuture)
	}

	// A dose on a future date is FUTURE even when its clock time has already
	// passed today.
	evening := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	if got := engine.StatusOf(task, "2026-03-11", evening); got != models.StatusFuture {
		t.Errorf("StatusOf future date late evening = %s, want %s", got, models.StatusFuture)
	}
}

func TestTasksForDate_JoinsScheduleAndMedications(t *testing.T) {
	store := newTestStore(t)
	engine := New(store, Config{})

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tasks, err := engine.TasksForDate("2026-03-10", now)
	if err != nil {
		t.Fatalf("TasksForDate failed: %v", err)
	}

	if len(tasks) != 5 {
		t.Fatalf("expected 5 tasks, got %d", len(tasks))
	}

	// Sorted by time of day.
	for i := 1; i < len(tasks); i++ {
		if tasks[i-1].Time > tasks[i].Time {
			t.Errorf("tasks out of order: %s before %s", tasks[i-1].Time, tasks[i].Time)
		}
	}

	if tasks[0].ID != 101 || tasks[0].Name != "3x Paracetamol" {
		t.Errorf("first task = %+v, want entry 101 named '3x Paracetamol'", tasks[0])
	}
}

func TestTasksForDate_RenameReflectsImmediately(t *testing.T) {
	store := newTestStore(t)
	engine := New(store, Config{})

	meds, err := storage.Medications(store)
	if err != nil {
		t.Fatalf("Medications failed: %v", err)
	}
	for i := range meds {
		if meds[i].ID == "1" {
			meds[i].Name = "Panadol"
		}
	}
	if err := storage.SaveMedications(store, meds); err != nil {
		t.Fatalf("SaveMedications failed: %v", err)
	}

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tasks, err := engine.TasksForDate("2026-03-10", now)
	if err != nil {
		t.Fatalf("TasksForDate failed: %v", err)
	}

	if tasks[0].Name != "3x Panadol" {
		t.Errorf("renamed task = %q, want '3x Panadol'", tasks[0].Name)
	}
}

func TestTasksForDate_SynthesizesAndPersistsHistory(t *testing.T) {
	store := newTestStore(t)

	// Deterministic rand: first two doses taken, rest missed.
	calls := 0
	engine := New(store, Config{
		FillRate: 0.85,
		Rand: func() float64 {
			calls++
			if calls <= 2 {
				return 0.1
			}
			return 0.9
		},
	})

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tasks, err := engine.TasksForDate("2026-03-05", now)
	if err != nil {
		t.Fatalf("TasksForDate failed: %v", err)
	}

	if !tasks[0].Taken || !tasks[1].Taken || tasks[2].Taken {
		t.Errorf("synthesized history did not follow injected rand: %+v", tasks)
	}

	stored, ok, err := storage.DayTasks(store, "2026-03-05")
	if err != nil || !ok {
		t.Fatalf("expected persisted day record, ok=%v err=%v", ok, err)
	}
	if len(stored) != len(tasks) {
		t.Fatalf("persisted %d tasks, want %d", len(stored), len(tasks))
	}

	// A second load must reuse the record, not re-roll.
	again, err := engine.TasksForDate("2026-03-05", now)
	if err != nil {
		t.Fatalf("TasksForDate reload failed: %v", err)
	}
	for i := range tasks {
		if tasks[i].Taken != again[i].Taken {
			t.Errorf("task %d changed between loads: %v vs %v", tasks[i].ID, tasks[i].Taken, again[i].Taken)
		}
	}
}

func TestTasksForDate_NegativeFillRateSynthesizesUntaken(t *testing.T) {
	store := newTestStore(t)
	engine := New(store, Config{FillRate: -1})

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tasks, err := engine.TasksForDate("2026-03-05", now)
	if err != nil {
		t.Fatalf("TasksForDate failed: %v", err)
	}

	for _, task := range tasks {
		if task.Taken {
			t.Errorf("task %d marked taken with all-untaken fill policy", task.ID)
		}
	}

	// The record is still persisted so the date stays stable on reload.
	if _, ok, _ := storage.DayTasks(store, "2026-03-05"); !ok {
		t.Error("synthesized day record was not persisted")
	}
}

func TestTasksForDate_TodayIsNotSynthesized(t *testing.T) {
	store := newTestStore(t)
	engine := New(store, Config{Rand: func() float64 { return 0.0 }})

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tasks, err := engine.TasksForDate("2026-03-10", now)
	if err != nil {
		t.Fatalf("TasksForDate failed: %v", err)
	}

	for _, task := range tasks {
		if task.Taken {
			t.Errorf("today's task %d marked taken without confirmation", task.ID)
		}
	}

	if _, ok, _ := storage.DayTasks(store, "2026-03-10"); ok {
		t.Error("today must not get a synthesized day record")
	}
}

func TestConfirm_ActionableDose(t *testing.T) {
	store := newTestStore(t)
	notifier := &fakeNotifier{}
	engine := New(store, Config{MissWindow: 5 * time.Second, Notifier: notifier})

	// Entry 101 is 3x Paracetamol (med "1", stock 24).
	now := time.Date(2026, 3, 10, 8, 0, 2, 0, time.UTC)
	if err := engine.Confirm(context.Background(), 101, "2026-03-10", now); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	tasks, err := engine.TasksForDate("2026-03-10", now)
	if err != nil {
		t.Fatalf("TasksForDate failed: %v", err)
	}
	if !tasks[0].Taken {
		t.Error("confirmed task not marked taken")
	}

	meds, err := storage.Medications(store)
	if err != nil {
		t.Fatalf("Medications failed: %v", err)
	}
	for _, m := range meds {
		if m.ID == "1" && m.Stock != 21 {
			t.Errorf("stock after 3x confirm = %d, want 21", m.Stock)
		}
	}

	if len(notifier.confirmed) != 1 || notifier.confirmed[0] != 101 {
		t.Errorf("notifier calls = %v, want [101]", notifier.confirmed)
	}
}

func TestConfirm_StockClampsAtZero(t *testing.T) {
	store := newTestStore(t)
	engine := New(store, Config{MissWindow: 5 * time.Second})

	meds, err := storage.Medications(store)
	if err != nil {
		t.Fatalf("Medications failed: %v", err)
	}
	for i := range meds {
		if meds[i].ID == "1" {
			meds[i].Stock = 2
		}
	}
	if err := storage.SaveMedications(store, meds); err != nil {
		t.Fatalf("SaveMedications failed: %v", err)
	}

	now := time.Date(2026, 3, 10, 8, 0, 1, 0, time.UTC)
	if err := engine.Confirm(context.Background(), 101, "2026-03-10", now); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	meds, _ = storage.Medications(store)
	for _, m := range meds {
		if m.ID == "1" && m.Stock != 0 {
			t.Errorf("stock = %d, want 0 (never negative)", m.Stock)
		}
	}
}

func TestConfirm_RejectsNonActionable(t *testing.T) {
	store := newTestStore(t)
	engine := New(store, Config{MissWindow: 5 * time.Second})

	cases := []struct {
		name string
		date string
		now  time.Time
	}{
		{"waiting dose", "2026-03-10", time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)},
		{"missed dose", "2026-03-10", time.Date(2026, 3, 10, 8, 1, 0, 0, time.UTC)},
		{"future date", "2026-03-11", time.Date(2026, 3, 10, 8, 0, 1, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := engine.Confirm(context.Background(), 101, tc.date, tc.now)
			if !errors.Is(err, errs.ErrInvalidState) {
				t.Fatalf("Confirm error = %v, want ErrInvalidState", err)
			}

			meds, _ := storage.Medications(store)
			for _, m := range meds {
				if m.ID == "1" && m.Stock != 24 {
					t.Errorf("stock mutated on rejected confirm: %d", m.Stock)
				}
			}
		})
	}
}

func TestConfirm_PastDateWritesNothing(t *testing.T) {
	store := newTestStore(t)
	engine := New(store, Config{MissWindow: 5 * time.Second})

	// Never-visited past date: the rejection must not leave a synthesized
	// day record behind.
	now := time.Date(2026, 3, 10, 8, 0, 1, 0, time.UTC)
	err := engine.Confirm(context.Background(), 101, "2026-03-05", now)
	if !errors.Is(err, errs.ErrInvalidState) {
		t.Fatalf("Confirm error = %v, want ErrInvalidState", err)
	}

	if _, ok, _ := storage.DayTasks(store, "2026-03-05"); ok {
		t.Error("rejected confirm persisted a day record")
	}

	meds, _ := storage.Medications(store)
	for _, m := range meds {
		if m.ID == "1" && m.Stock != 24 {
			t.Errorf("stock mutated on rejected confirm: %d", m.Stock)
		}
	}
}

func TestConfirm_UnknownEntry(t *testing.T) {
	store := newTestStore(t)
	engine := New(store, Config{})

	now := time.Date(2026, 3, 10, 8, 0, 1, 0, time.UTC)
	err := engine.Confirm(context.Background(), 999, "2026-03-10", now)
	if !errors.Is(err, errs.ErrInvalidState) {
		t.Errorf("Confirm unknown entry error = %v, want ErrInvalidState", err)
	}
}

func TestNavigate_ClampsToWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	if got := Navigate("2026-03-10", -1, now); got != "2026-03-09" {
		t.Errorf("Navigate back = %s, want 2026-03-09", got)
	}
	if got := Navigate("2026-03-10", 1, now); got != "2026-03-11" {
		t.Errorf("Navigate forward = %s, want 2026-03-11", got)
	}

	// At the window edges further movement is refused.
	edgeBack := now.AddDate(0, 0, -constants.NavigationWindowDays).Format(constants.DateFormat)
	if got := Navigate(edgeBack, -1, now); got != edgeBack {
		t.Errorf("Navigate past back edge = %s, want %s", got, edgeBack)
	}
	edgeFwd := now.AddDate(0, 0, constants.NavigationWindowDays).Format(constants.DateFormat)
	if got := Navigate(edgeFwd, 1, now); got != edgeFwd {
		t.Errorf("Navigate past forward edge = %s, want %s", got, edgeFwd)
	}
}

func TestNavigate_BadDateFallsBackToToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	if got := Navigate("not-a-date", 1, now); got != "2026-03-10" {
		t.Errorf("Navigate from bad date = %s, want today", got)
	}
}
