package models

import (
	"strconv"
	"strings"
)

// ScheduleEntry is one line of the fixed daily dosing template. The same
// entries apply to every calendar date; only the per-date taken state varies.
type ScheduleEntry struct {
	ID           int    `json:"id"`
	MedicationID string `json:"medication_id"`
	Time         string `json:"time"`   // HH:MM format
	Amount       string `json:"amount"` // e.g. "3x"
}

// DoseTask is one scheduled administration of one medication on one date,
// built fresh by joining a ScheduleEntry with the current medication list.
type DoseTask struct {
	ID           int    `json:"id"`
	Time         string `json:"time"` // HH:MM format
	MedicationID string `json:"medication_id"`
	Name         string `json:"name"`
	Taken        bool   `json:"taken"`
}

type TaskStatus string

const (
	StatusTaken          TaskStatus = "taken"
	StatusWaiting        TaskStatus = "waiting"
	StatusActionable     TaskStatus = "actionable"
	StatusMissedToday    TaskStatus = "missed_today"
	StatusMissedHistoric TaskStatus = "missed_historic"
	StatusFuture         TaskStatus = "future"
)

// ParseAmount extracts the dose count from an amount label ("3x" -> 3).
// Unparseable labels count as a single unit.
func ParseAmount(label string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(label), "x"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
