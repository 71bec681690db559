package cli

import (
	"fmt"
	"time"

	"github.com/stefvanboven/mino-companion/internal/constants"
	"github.com/stefvanboven/mino-companion/internal/schedule"
)

type DayCmd struct {
	Date   string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
	Offset int    `short:"o" help:"Days to shift from the given date (clamped to ±7 around today)."`
}

func (c *DayCmd) Run(ctx *Context) error {
	app, err := ctx.setup()
	if err != nil {
		return err
	}

	now := time.Now()
	date, err := resolveDate(c.Date, now)
	if err != nil {
		return err
	}
	if c.Offset != 0 {
		date = schedule.Navigate(date, c.Offset, now)
	}

	tasks, err := app.Engine.TasksForDate(date, now)
	if err != nil {
		return err
	}

	fmt.Printf("Doses for %s:\n\n", date)
	for _, task := range tasks {
		status := app.Engine.StatusOf(task, date, now)
		fmt.Printf("%s  %-28s %s\n", task.Time, task.Name, statusLabel(status))
	}

	return nil
}

func resolveDate(s string, now time.Time) (string, error) {
	if s == "" || s == "today" {
		return now.Format(constants.DateFormat), nil
	}
	if _, err := time.ParseInLocation(constants.DateFormat, s, now.Location()); err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return s, nil
}
