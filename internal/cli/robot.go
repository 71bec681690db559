package cli

import (
	"context"
	"fmt"

	"github.com/stefvanboven/mino-companion/internal/robot"
)

type RobotHealthCmd struct{}

func (c *RobotHealthCmd) Run(ctx *Context) error {
	app, err := ctx.setup()
	if err != nil {
		return err
	}

	info, err := app.Robot.Health(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Robot online, reported time: %s\n", info.Time)
	return nil
}

type RobotMoveCmd struct {
	Direction string `arg:"" help:"forward|backward|left|right|stop"`
}

func (c *RobotMoveCmd) Run(ctx *Context) error {
	app, err := ctx.setup()
	if err != nil {
		return err
	}

	dir, err := robot.ParseDirection(c.Direction)
	if err != nil {
		return err
	}

	app.Robot.Move(context.Background(), dir)
	fmt.Printf("Sent move command: %s\n", dir)
	return nil
}

type RobotCamCmd struct {
	Direction string `arg:"" help:"up|down|left|right|stop"`
}

func (c *RobotCamCmd) Run(ctx *Context) error {
	app, err := ctx.setup()
	if err != nil {
		return err
	}

	dir, err := robot.ParseDirection("cam_" + c.Direction)
	if err != nil {
		return err
	}

	app.Robot.Move(context.Background(), dir)
	fmt.Printf("Sent camera command: %s\n", dir)
	return nil
}

type RobotReminderCmd struct {
	Action string `arg:"" help:"start|stop" enum:"start,stop"`
}

func (c *RobotReminderCmd) Run(ctx *Context) error {
	app, err := ctx.setup()
	if err != nil {
		return err
	}

	if c.Action == "start" {
		app.Robot.StartReminder(context.Background())
	} else {
		app.Robot.StopReminder(context.Background())
	}
	fmt.Printf("Reminder lights: %s\n", c.Action)
	return nil
}

type RobotVideoCmd struct{}

func (c *RobotVideoCmd) Run(ctx *Context) error {
	app, err := ctx.setup()
	if err != nil {
		return err
	}

	fmt.Println(app.Robot.VideoFeedURL())
	return nil
}
