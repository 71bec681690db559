package cli

import (
	"context"
	"fmt"

	"github.com/stefvanboven/mino-companion/internal/models"
	"github.com/stefvanboven/mino-companion/internal/robot"
	"github.com/stefvanboven/mino-companion/internal/storage"
	"github.com/stefvanboven/mino-companion/internal/validation"
)

type ConnectCmd struct {
	DataURL    string `help:"Robot data endpoint (health, medications, video)."`
	CommandURL string `help:"Robot command endpoint (movement, reminder lights)."`
	Test       bool   `help:"Test the connection after saving." default:"true"`
}

// Run updates the robot endpoints and verifies reachability. The two
// endpoints are stored separately; neither is ever derived from the other.
func (c *ConnectCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := storage.Settings(ctx.Store)
	if err != nil {
		return err
	}

	if c.DataURL != "" {
		if err := validation.ValidateBaseURL(c.DataURL); err != nil {
			return err
		}
		settings.RobotDataURL = c.DataURL
	}
	if c.CommandURL != "" {
		if err := validation.ValidateBaseURL(c.CommandURL); err != nil {
			return err
		}
		settings.RobotCommandURL = c.CommandURL
	}

	if err := storage.SaveSettings(ctx.Store, settings); err != nil {
		return err
	}
	fmt.Printf("Robot endpoints: data=%s command=%s\n", settings.RobotDataURL, settings.RobotCommandURL)

	if !c.Test {
		return nil
	}

	client := robot.New(settings.RobotDataURL, settings.RobotCommandURL)
	info, err := client.Health(context.Background())
	if err != nil {
		return fmt.Errorf("connection test failed, check IP and WiFi: %w", err)
	}
	fmt.Printf("Connected, robot time: %s\n", info.Time)
	return nil
}

type ContactSetCmd struct {
	Name     string `arg:"" help:"Caregiver name."`
	Phone    string `arg:"" help:"Caregiver phone number."`
	Relation string `short:"r" help:"Relation to the user (e.g. daughter)."`
}

func (c *ContactSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	contact := models.CaregiverContact{
		Name:     c.Name,
		Relation: c.Relation,
		Phone:    validation.CleanPhone(c.Phone),
	}
	if err := validation.ValidateContact(contact); err != nil {
		return err
	}

	settings, err := storage.Settings(ctx.Store)
	if err != nil {
		return err
	}
	settings.Contact = contact

	if err := storage.SaveSettings(ctx.Store, settings); err != nil {
		return err
	}

	fmt.Printf("Caregiver contact saved: %s (%s)\n", contact.Name, contact.Phone)
	return nil
}

type ContactShowCmd struct{}

func (c *ContactShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := storage.Settings(ctx.Store)
	if err != nil {
		return err
	}

	contact := settings.Contact
	if contact.Name == "" {
		fmt.Println("No caregiver contact configured.")
		return nil
	}

	fmt.Printf("Name:     %s\n", contact.Name)
	if contact.Relation != "" {
		fmt.Printf("Relation: %s\n", contact.Relation)
	}
	fmt.Printf("Phone:    %s\n", contact.Phone)
	return nil
}

type DemoCmd struct {
	Enabled bool `arg:"" help:"Enable or disable demo mode (short miss window)."`
}

func (c *DemoCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := storage.Settings(ctx.Store)
	if err != nil {
		return err
	}
	settings.DemoMode = c.Enabled

	if err := storage.SaveSettings(ctx.Store, settings); err != nil {
		return err
	}

	fmt.Printf("Demo mode: %v\n", c.Enabled)
	return nil
}
