package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/stefvanboven/mino-companion/internal/cli"
	"github.com/stefvanboven/mino-companion/internal/logger"
	"github.com/stefvanboven/mino-companion/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/mino/mino.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize mino storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Day     cli.DayCmd     `cmd:"" help:"Show the medication schedule for a day."`
	Confirm cli.ConfirmCmd `cmd:"" help:"Confirm a scheduled dose as taken."`
	Med     struct {
		List   cli.MedListCmd   `cmd:"" help:"List medications and stock."`
		Add    cli.MedAddCmd    `cmd:"" help:"Add a medication."`
		Remove cli.MedRemoveCmd `cmd:"" help:"Remove a medication."`
		Scan   cli.MedScanCmd   `cmd:"" help:"Register a medication by barcode."`
		Refill cli.MedRefillCmd `cmd:"" help:"Refill a medication by barcode."`
		Notify cli.MedNotifyCmd `cmd:"" help:"Ask the caregiver for a refill."`
	} `cmd:"" help:"Manage medications."`
	Robot struct {
		Health   cli.RobotHealthCmd   `cmd:"" help:"Check robot connectivity."`
		Move     cli.RobotMoveCmd     `cmd:"" help:"Drive the robot."`
		Cam      cli.RobotCamCmd      `cmd:"" help:"Aim the robot camera."`
		Reminder cli.RobotReminderCmd `cmd:"" help:"Start or stop the reminder routine."`
		Video    cli.RobotVideoCmd    `cmd:"" help:"Print the live video feed URL."`
	} `cmd:"" help:"Control the Mino robot."`
	Contact struct {
		Set  cli.ContactSetCmd  `cmd:"" help:"Set the caregiver contact."`
		Show cli.ContactShowCmd `cmd:"" help:"Show the caregiver contact."`
	} `cmd:"" help:"Manage the caregiver contact."`
	Connect cli.ConnectCmd `cmd:"" help:"Configure the robot endpoints."`
	Demo    cli.DemoCmd    `cmd:"" help:"Toggle demo mode."`
	Backup  struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a storage backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Reset  cli.ResetCmd  `cmd:"" help:"Wipe all local data."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run environment checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("mino"),
		kong.Description("Companion app for the Mino home-care robot"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
