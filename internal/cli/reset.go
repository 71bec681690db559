package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stefvanboven/mino-companion/internal/backup"
)

type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

// Run wipes all medication history, stock and settings. A backup is taken
// first so the wipe is recoverable.
func (c *ResetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if !c.Force {
		fmt.Println("This removes all medication history and stock data.")
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		if r := strings.TrimSpace(strings.ToLower(response)); r != "y" && r != "yes" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if path, err := mgr.Create(); err == nil {
		fmt.Printf("Backup created: %s\n", filepath.Base(path))
	} else {
		fmt.Fprintf(os.Stderr, "Warning: pre-reset backup failed: %v\n", err)
	}

	if err := ctx.Store.Clear(); err != nil {
		return err
	}

	fmt.Println("All data reset to factory defaults.")
	return nil
}
