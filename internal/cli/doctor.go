package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/stefvanboven/mino-companion/internal/backup"
	"github.com/stefvanboven/mino-companion/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: store reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("FAIL  store reachable: %v\n", err)
		fmt.Println()
		fmt.Println("Some checks failed.")
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("OK    store reachable")

	// Check 2: medication list parses and merges
	if meds, err := storage.Medications(ctx.Store); err != nil {
		fmt.Printf("FAIL  medication list: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("OK    medication list (%d entries)\n", len(meds))
	}

	// Check 3: backups present (warning only)
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if backups, err := mgr.List(); err != nil || len(backups) == 0 {
		fmt.Println("WARN  no backups found, run 'mino backup create'")
	} else {
		fmt.Printf("OK    backups present (%d)\n", len(backups))
	}

	// Check 4: robot reachable (warning only, the robot may be off)
	app, err := ctx.setup()
	if err == nil {
		if info, herr := app.Robot.Health(context.Background()); herr != nil {
			fmt.Printf("WARN  robot not reachable at %s\n", app.Settings.RobotDataURL)
		} else {
			fmt.Printf("OK    robot online (reported time %s)\n", info.Time)
		}
	}

	// Check 5: clock sanity
	if y := time.Now().Year(); y < 2020 || y > 2100 {
		fmt.Printf("FAIL  system clock looks wrong (year %d)\n", y)
		hasError = true
	} else {
		fmt.Println("OK    system clock")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Some checks failed.")
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}
