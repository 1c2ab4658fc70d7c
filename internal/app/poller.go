package app

import (
	"context"
	"log"
	"time"

	"github.com/sdixit/rollcall/internal/netid"
	"github.com/sdixit/rollcall/internal/portal"
	"github.com/sdixit/rollcall/internal/session"
	"github.com/sdixit/rollcall/internal/state"
)

const (
	defaultSessionPoll = 30 * time.Second
	ringPollInterval   = 10 * time.Second
	wifiPollInterval   = 5 * time.Second
	rosterPollInterval = time.Hour
	pingInterval       = 30 * time.Second
	tickInterval       = time.Second

	maxBackoff = 30 * time.Second
)

// Pollers bundles everything the background tasks need.
type Pollers struct {
	Store       *state.Store
	Client      *portal.Client
	Controller  *session.Controller
	Prober      netid.Prober
	Authorizer  session.Authorizer
	StudentID   string
	DeviceID    string
	SessionPoll time.Duration
}

// StartPollers launches the background tasks that keep the store and
// the controller fed. Each task owns its cadence and backs off on
// consecutive failures. All goroutines stop when ctx is cancelled.
func StartPollers(ctx context.Context, p Pollers) {
	sessionPoll := p.SessionPoll
	if sessionPoll <= 0 {
		sessionPoll = defaultSessionPoll
	}

	runEvery(ctx, "session", sessionPoll, func(ctx context.Context) error {
		status, err := p.Client.FetchSession(ctx)
		p.Store.SetSession(status, err)
		if err != nil {
			// Prior controller state stays untouched: display fails
			// open on the last known status, marking fails closed
			// because it needs an explicit open session.
			return err
		}
		p.Controller.HandleSession(status.Active)
		return nil
	})

	runEvery(ctx, "rings", ringPollInterval, func(ctx context.Context) error {
		ring, err := p.Client.FetchRings(ctx, p.StudentID)
		if err != nil {
			return err
		}
		p.Store.SetRing(ring)
		return nil
	})

	runEvery(ctx, "wifi", wifiPollInterval, wifiTask(p))

	runEvery(ctx, "roster", rosterPollInterval, func(ctx context.Context) error {
		timetable, err := p.Client.FetchTimetable(ctx)
		p.Store.SetTimetable(timetable, err)
		if err != nil {
			return err
		}
		summary, err := p.Client.FetchAttendanceSummary(ctx, p.StudentID)
		p.Store.SetSummary(summary, err)
		return err
	})

	runEvery(ctx, "ping", pingInterval, func(ctx context.Context) error {
		return p.Client.Ping(ctx, portal.PingRequest{
			Username: p.StudentID,
			Type:     "student",
			DeviceID: p.DeviceID,
			Status:   "active",
		})
	})
}

// wifiTask probes the local network, refreshes the store, and reports
// connectivity flips to the service.
func wifiTask(p Pollers) func(ctx context.Context) error {
	var last *bool
	return func(ctx context.Context) error {
		ssid, connected := p.Prober.Present()
		status := state.WiFiStatus{Connected: connected, SSID: ssid}
		if connected {
			status.BSSID = p.Prober.BSSID()
			status.Authorized = p.Authorizer.Check(ctx)
		}
		p.Store.SetWiFi(status)

		if last != nil && *last == connected {
			return nil
		}
		last = &connected

		word := "disconnected"
		if connected {
			word = "connected"
		}
		// Best effort; a dropped flip report is overwritten by the next.
		_ = p.Client.PostWiFiStatus(ctx, portal.WiFiStatusUpdate{
			Username: p.StudentID,
			Status:   word,
			BSSID:    status.BSSID,
			SSID:     ssid,
			Device:   p.DeviceID,
		})
		return nil
	}
}

// StartTicker drives the controller at the fixed one second cadence.
// It returns immediately.
func StartTicker(ctx context.Context, controller *session.Controller) {
	go func() {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				controller.Tick(ctx)
			}
		}
	}()
}

// runEvery runs task at the given cadence. After consecutive failures
// the wait doubles from the base, capped at maxBackoff; the cap also
// means long-cadence tasks (roster) retry promptly instead of waiting
// a full cycle. Success snaps back to the base cadence. Returns
// immediately.
func runEvery(ctx context.Context, name string, interval time.Duration, task func(ctx context.Context) error) {
	go func() {
		failures := 0
		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			if err := task(ctx); err != nil {
				failures++
				log.Printf("%s poll failed (%d consecutive): %v", name, failures, err)
			} else {
				failures = 0
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// calculateBackoff doubles the base interval per consecutive failure,
// capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
