package cli

import (
	"github.com/stefvanboven/mino-companion/internal/constants"
	"github.com/stefvanboven/mino-companion/internal/models"
	"github.com/stefvanboven/mino-companion/internal/robot"
	"github.com/stefvanboven/mino-companion/internal/schedule"
	"github.com/stefvanboven/mino-companion/internal/storage"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// App bundles everything a command needs once the store is loaded.
type App struct {
	Engine   *schedule.Engine
	Robot    *robot.Client
	Settings models.Settings
}

// setup loads the store and wires the engine to the configured robot. The
// miss window follows the demo-mode setting: seconds for demos, the clinical
// grace period otherwise.
func (c *Context) setup() (*App, error) {
	if err := c.Store.Load(); err != nil {
		return nil, err
	}

	settings, err := storage.Settings(c.Store)
	if err != nil {
		return nil, err
	}

	client := robot.New(settings.RobotDataURL, settings.RobotCommandURL)

	missWindow := constants.DefaultMissWindow
	if settings.DemoMode {
		missWindow = constants.DemoMissWindow
	}

	engine := schedule.New(c.Store, schedule.Config{
		MissWindow: missWindow,
		Notifier:   client,
	})

	return &App{Engine: engine, Robot: client, Settings: settings}, nil
}

func statusLabel(status models.TaskStatus) string {
	switch status {
	case models.StatusTaken:
		return "[taken]"
	case models.StatusWaiting:
		return "[waiting]"
	case models.StatusActionable:
		return "[due now]"
	case models.StatusMissedToday:
		return "[missed]"
	case models.StatusMissedHistoric:
		return "[missed]"
	case models.StatusFuture:
		return "[upcoming]"
	default:
		return "[unknown]"
	}
}
