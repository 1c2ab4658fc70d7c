package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sdixit/rollcall/internal/config"
	"github.com/sdixit/rollcall/internal/netid"
	"github.com/sdixit/rollcall/internal/portal"
	"github.com/sdixit/rollcall/internal/prefs"
	"github.com/sdixit/rollcall/internal/session"
	"github.com/sdixit/rollcall/internal/state"
	"github.com/sdixit/rollcall/internal/ui"
)

// passwordEnv supplies the login password; the config file never
// stores it. When unset the login exchange is skipped.
const passwordEnv = "ROLLCALL_PASSWORD"

// Options configure the rollcall application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/rollcall/prefs.toml
	ServerURL  string // overrides the config file
	PollEvery  int    // session poll seconds; zero uses the config value
}

// Run boots the rollcall TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if url := strings.TrimSpace(opts.ServerURL); url != "" {
		cfg.ServerURL = url
	}
	if opts.PollEvery > 0 {
		cfg.PollSeconds = opts.PollEvery
	}
	if cfg.StudentID == "" {
		return fmt.Errorf("student_id is not set; add it to the config file")
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := portal.NewClient(cfg.ServerURL)
	if err != nil {
		return fmt.Errorf("init portal client: %w", err)
	}

	if password := os.Getenv(passwordEnv); password != "" {
		if err := login(ctx, client, cfg.StudentID, password); err != nil {
			return err
		}
	}

	prober := netid.NewProber()
	deviceID := netid.DeviceID()

	store := &state.Store{}

	identity := session.Identity{
		StudentID: cfg.StudentID,
		DeviceID:  deviceID,
		BSSID:     prober.BSSID,
	}
	authorizer := &session.NetworkAuthorizer{Prober: prober, Allowlist: client}
	controller := session.NewController(identity, authorizer, client, store.SetMarking)

	StartPollers(ctx, Pollers{
		Store:       store,
		Client:      client,
		Controller:  controller,
		Prober:      prober,
		Authorizer:  authorizer,
		StudentID:   cfg.StudentID,
		DeviceID:    deviceID,
		SessionPoll: time.Duration(cfg.PollSeconds) * time.Second,
	})
	StartTicker(ctx, controller)

	uiOpts := ui.Options{
		Context:    ctx,
		Controller: controller,
		Store:      store,
		StudentID:  cfg.StudentID,
		DeviceID:   deviceID,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// login performs the single login exchange before anything else runs.
// A teacher account is rejected up front; this client is the student
// portal only.
func login(ctx context.Context, client *portal.Client, username, password string) error {
	bounded, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := client.Login(bounded, username, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if !resp.IsStudent() {
		return fmt.Errorf("login: account %q is not a student account", username)
	}
	return nil
}
