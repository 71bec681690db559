package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stefvanboven/mino-companion/internal/barcode"
	"github.com/stefvanboven/mino-companion/internal/logger"
	"github.com/stefvanboven/mino-companion/internal/models"
	"github.com/stefvanboven/mino-companion/internal/storage"
	"github.com/stefvanboven/mino-companion/internal/validation"
)

type MedListCmd struct{}

func (c *MedListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	meds, err := storage.Medications(ctx.Store)
	if err != nil {
		return err
	}

	fmt.Println("Medication stock:")
	for _, m := range meds {
		note := ""
		switch {
		case m.IsOrdered:
			note = "  (caregiver notified)"
		case m.LowStock():
			note = "  (low, refill needed)"
		}
		fmt.Printf("  %-4s %-20s %-8s %3d left%s\n", m.ID, m.Name, m.Dosage, m.Stock, note)
	}

	return nil
}

type MedAddCmd struct {
	Name   string `arg:"" help:"Medication name."`
	Dosage string `short:"d" help:"Dosage label (e.g. 500mg)." default:"n/a"`
	Stock  int    `short:"s" help:"Units in stock." required:""`
}

func (c *MedAddCmd) Run(ctx *Context) error {
	app, err := ctx.setup()
	if err != nil {
		return err
	}

	med := models.Medication{
		ID:     uuid.New().String(),
		Name:   c.Name,
		Dosage: c.Dosage,
		Stock:  c.Stock,
	}
	if err := validation.ValidateMedication(med); err != nil {
		return err
	}

	meds, err := storage.Medications(ctx.Store)
	if err != nil {
		return err
	}
	if err := storage.SaveMedications(ctx.Store, append(meds, med)); err != nil {
		return err
	}

	// Keep the robot's own list in sync when it happens to be online.
	if err := app.Robot.AddMedication(context.Background(), med.Name); err != nil {
		logger.Debug("medication not synced to robot", "name", med.Name, "error", err)
	}

	fmt.Printf("Added medication: %s (ID: %s)\n", med.Name, med.ID)
	return nil
}

type MedRemoveCmd struct {
	ID string `arg:"" help:"Medication id to remove."`
}

func (c *MedRemoveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	meds, err := storage.Medications(ctx.Store)
	if err != nil {
		return err
	}

	kept := meds[:0]
	found := false
	for _, m := range meds {
		if m.ID == c.ID {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return fmt.Errorf("medication not found: %s", c.ID)
	}

	if err := storage.SaveMedications(ctx.Store, kept); err != nil {
		return err
	}

	fmt.Printf("Removed medication %s\n", c.ID)
	return nil
}

type MedScanCmd struct {
	Code string `arg:"" help:"Scanned EAN barcode."`
}

func (c *MedScanCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	med, err := barcode.Register(ctx.Store, c.Code)
	if err != nil {
		return err
	}

	fmt.Printf("Registered %s %s with %d units (ID: %s)\n", med.Name, med.Dosage, med.Stock, med.ID)
	return nil
}

type MedRefillCmd struct {
	ID   string `arg:"" help:"Medication id to refill."`
	Code string `arg:"" help:"Scanned EAN barcode of the new box."`
}

func (c *MedRefillCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	med, err := barcode.Refill(ctx.Store, c.ID, c.Code)
	if err != nil {
		return err
	}

	fmt.Printf("Refilled %s, now %d units\n", med.Name, med.Stock)
	return nil
}

type MedNotifyCmd struct {
	ID string `arg:"" help:"Medication id to report to the caregiver."`
}

// Run asks the robot to alert the caregiver and marks the medication as
// reported. The robot call is best-effort; the local flag is set regardless
// so the request is not repeated when the robot happens to be offline.
func (c *MedNotifyCmd) Run(ctx *Context) error {
	app, err := ctx.setup()
	if err != nil {
		return err
	}

	meds, err := storage.Medications(ctx.Store)
	if err != nil {
		return err
	}

	idx := -1
	for i, m := range meds {
		if m.ID == c.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("medication not found: %s", c.ID)
	}
	if meds[idx].IsOrdered {
		fmt.Printf("%s was already reported to %s\n", meds[idx].Name, app.Settings.Contact.Name)
		return nil
	}

	app.Robot.NotifyCaregiver(context.Background())

	meds[idx].IsOrdered = true
	if err := storage.SaveMedications(ctx.Store, meds); err != nil {
		return err
	}

	contact := app.Settings.Contact.Name
	if contact == "" {
		contact = "the caregiver"
	}
	fmt.Printf("Refill request for %s sent to %s\n", meds[idx].Name, contact)
	return nil
}
