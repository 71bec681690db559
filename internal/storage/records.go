package storage

import (
	"encoding/json"
	"fmt"

	"github.com/stefvanboven/mino-companion/internal/constants"
	"github.com/stefvanboven/mino-companion/internal/data"
	"github.com/stefvanboven/mino-companion/internal/models"
)

// Medications returns the stored medication list, reconciled against the
// built-in default set: any default entry whose id is absent is appended,
// stored entries are never overwritten. When the merge added something the
// merged result is written back immediately, so a default shipped in a later
// release appears without erasing user customizations.
func Medications(p Provider) ([]models.Medication, error) {
	raw, ok, err := p.Get(constants.KeyMedications)
	if err != nil {
		return nil, err
	}

	var meds []models.Medication
	if ok {
		if err := json.Unmarshal(raw, &meds); err != nil {
			return nil, fmt.Errorf("failed to parse medication list: %w", err)
		}
	}

	seen := make(map[string]bool, len(meds))
	for _, m := range meds {
		seen[m.ID] = true
	}

	added := false
	for _, def := range data.DefaultMedications() {
		if !seen[def.ID] {
			meds = append(meds, def)
			added = true
		}
	}

	if added {
		if err := SaveMedications(p, meds); err != nil {
			return nil, err
		}
	}

	return meds, nil
}

// SaveMedications fully overwrites the stored medication list.
func SaveMedications(p Provider, meds []models.Medication) error {
	raw, err := json.Marshal(meds)
	if err != nil {
		return fmt.Errorf("failed to serialize medication list: %w", err)
	}
	return p.Set(constants.KeyMedications, raw)
}

// DayTasks returns the persisted dose state for a date. The second return
// value reports whether a record exists for that date.
func DayTasks(p Provider, date string) ([]models.DoseTask, bool, error) {
	raw, ok, err := p.Get(constants.DayKeyPrefix + date)
	if err != nil || !ok {
		return nil, false, err
	}

	var tasks []models.DoseTask
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, false, fmt.Errorf("failed to parse day record %s: %w", date, err)
	}
	return tasks, true, nil
}

// SaveDayTasks persists the dose state for a date. Once written it is the
// source of truth for that date on every subsequent load.
func SaveDayTasks(p Provider, date string, tasks []models.DoseTask) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to serialize day record %s: %w", date, err)
	}
	return p.Set(constants.DayKeyPrefix+date, raw)
}

// Settings returns the stored settings, falling back to defaults when absent.
func Settings(p Provider) (models.Settings, error) {
	settings := models.Settings{
		RobotDataURL:    constants.DefaultRobotDataURL,
		RobotCommandURL: constants.DefaultRobotCommandURL,
		DemoMode:        true,
	}

	raw, ok, err := p.Get(constants.KeySettings)
	if err != nil {
		return settings, err
	}
	if !ok {
		return settings, nil
	}

	if err := json.Unmarshal(raw, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// SaveSettings persists the app configuration.
func SaveSettings(p Provider, settings models.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	return p.Set(constants.KeySettings, raw)
}
