package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stefvanboven/mino-companion/internal/errs"
)

type ConfirmCmd struct {
	ID   int    `arg:"" help:"Schedule entry id of the dose to confirm."`
	Date string `help:"Date of the dose (YYYY-MM-DD)." default:"today"`
}

func (c *ConfirmCmd) Run(ctx *Context) error {
	app, err := ctx.setup()
	if err != nil {
		return err
	}

	now := time.Now()
	date, err := resolveDate(c.Date, now)
	if err != nil {
		return err
	}

	if err := app.Engine.Confirm(context.Background(), c.ID, date, now); err != nil {
		if errors.Is(err, errs.ErrInvalidState) {
			return fmt.Errorf("dose cannot be confirmed right now: %w", err)
		}
		return err
	}

	fmt.Printf("Confirmed dose %d for %s\n", c.ID, date)
	return nil
}
