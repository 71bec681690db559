// Package robot talks to the Mino robot over its local-network HTTP API. The
// robot exposes two roles on separate ports: a data role (health, medication
// sync, video) whose failures are surfaced to the caller, and a command role
// (movement, camera, reminder lights) whose failures are swallowed so a robot
// that is switched off never breaks the app.
package robot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/stefvanboven/mino-companion/internal/constants"
	"github.com/stefvanboven/mino-companion/internal/errs"
	"github.com/stefvanboven/mino-companion/internal/logger"
)

// Direction is a command-role movement or camera instruction. The values are
// the robot firmware's own path segments.
type Direction string

const (
	Forward   Direction = "vooruit"
	Backward  Direction = "achteruit"
	Left      Direction = "links"
	Right     Direction = "rechts"
	Stop      Direction = "stop"
	CamUp     Direction = "cam_up"
	CamDown   Direction = "cam_down"
	CamLeft   Direction = "cam_left"
	CamRight  Direction = "cam_right"
	CamStop   Direction = "cam_stop"
	LightsOn  Direction = "reminder_start"
	LightsOff Direction = "reminder_stop"
)

var directions = map[Direction]bool{
	Forward: true, Backward: true, Left: true, Right: true, Stop: true,
	CamUp: true, CamDown: true, CamLeft: true, CamRight: true, CamStop: true,
	LightsOn: true, LightsOff: true,
}

// ParseDirection maps a user-supplied direction name to a Direction, accepting
// both the English aliases and the firmware's native names.
func ParseDirection(s string) (Direction, error) {
	aliases := map[string]Direction{
		"forward": Forward, "backward": Backward, "left": Left, "right": Right,
		"up": CamUp, "down": CamDown,
	}
	if d, ok := aliases[strings.ToLower(s)]; ok {
		return d, nil
	}
	d := Direction(strings.ToLower(s))
	if directions[d] {
		return d, nil
	}
	return "", fmt.Errorf("%w: unknown direction %q", errs.ErrValidation, s)
}

// HealthInfo is the data role's health response.
type HealthInfo struct {
	Time string `json:"time"`
}

// RemoteMedication is a medication record as the robot reports it.
type RemoteMedication struct {
	ID   int    `json:"id"`
	Name string `json:"naam"`
}

// Client reaches the robot at two independently configured base URLs.
type Client struct {
	DataURL    string
	CommandURL string
	HTTPClient *http.Client
}

// New returns a client with the default per-call timeout applied.
func New(dataURL, commandURL string) *Client {
	return &Client{
		DataURL:    strings.TrimRight(dataURL, "/"),
		CommandURL: strings.TrimRight(commandURL, "/"),
		HTTPClient: &http.Client{Timeout: constants.RobotTimeout},
	}
}

// Health checks the data role and returns the robot's reported time.
func (c *Client) Health(ctx context.Context) (HealthInfo, error) {
	var info HealthInfo
	if err := c.data(ctx, http.MethodGet, "/health", nil, &info); err != nil {
		return HealthInfo{}, err
	}
	return info, nil
}

// Medications fetches the robot's own medication list.
func (c *Client) Medications(ctx context.Context) ([]RemoteMedication, error) {
	var meds []RemoteMedication
	if err := c.data(ctx, http.MethodGet, "/medicijnen", nil, &meds); err != nil {
		return nil, err
	}
	return meds, nil
}

// ConfirmMedication reports a confirmed dose to the robot's data role.
func (c *Client) ConfirmMedication(ctx context.Context, id int) error {
	return c.data(ctx, http.MethodPost, fmt.Sprintf("/medicijnen/%d/bevestig", id), nil, nil)
}

// AddMedication registers a medication on the robot.
func (c *Client) AddMedication(ctx context.Context, name string) error {
	body := map[string]string{"naam": name}
	return c.data(ctx, http.MethodPost, "/medicijnen", body, nil)
}

// VideoFeedURL returns the MJPEG camera stream address.
func (c *Client) VideoFeedURL() string {
	return c.DataURL + "/video_feed"
}

// Move sends a movement or camera command. Best-effort: a failure is logged
// and dropped.
func (c *Client) Move(ctx context.Context, dir Direction) {
	c.command(ctx, "/move/"+string(dir))
}

// StartReminder turns on the robot's reminder light sequence.
func (c *Client) StartReminder(ctx context.Context) {
	c.command(ctx, "/move/"+string(LightsOn))
}

// StopReminder turns the reminder lights off.
func (c *Client) StopReminder(ctx context.Context) {
	c.command(ctx, "/move/"+string(LightsOff))
}

// NotifyCaregiver asks the robot to alert the configured caregiver.
// Best-effort.
func (c *Client) NotifyCaregiver(ctx context.Context) {
	c.commandPost(ctx, "/notify_caregiver")
}

// DoseConfirmed implements schedule.Notifier: lights off plus a data-role
// confirmation, both fire-and-forget.
func (c *Client) DoseConfirmed(ctx context.Context, entryID int) {
	c.StopReminder(ctx)
	if err := c.ConfirmMedication(ctx, entryID); err != nil {
		logger.Debug("dose confirmation not delivered", "entry", entryID, "error", err)
	}
}

func (c *Client) data(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.DataURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &errs.ConnectivityError{Endpoint: c.DataURL + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &errs.ConnectivityError{
			Endpoint: c.DataURL + path,
			Err:      fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse robot response: %w", err)
	}
	return nil
}

func (c *Client) command(ctx context.Context, path string) {
	c.fireAndForget(ctx, http.MethodGet, path)
}

func (c *Client) commandPost(ctx context.Context, path string) {
	c.fireAndForget(ctx, http.MethodPost, path)
}

func (c *Client) fireAndForget(ctx context.Context, method, path string) {
	req, err := http.NewRequestWithContext(ctx, method, c.CommandURL+path, nil)
	if err != nil {
		logger.Debug("bad robot command", "path", path, "error", err)
		return
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Debug("robot command not delivered", "path", path, "error", err)
		return
	}
	resp.Body.Close()
}
