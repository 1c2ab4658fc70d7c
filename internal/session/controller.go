package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sdixit/rollcall/internal/portal"
)

// State identifies where the controller is in the marking lifecycle.
type State int

const (
	// StateIdle means no attendance window is open.
	StateIdle State = iota
	// StateWaiting means a window is open and the student may start.
	StateWaiting
	// StateCounting means the presence countdown is running.
	StateCounting
	// StatePaused means the countdown is frozen on an unauthorized network.
	StatePaused
	// StateCompleted means the countdown finished; terminal until a new
	// window opens and the student starts again.
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWaiting:
		return "waiting"
	case StateCounting:
		return "counting"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Severity classifies an Update for presentation styling.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeveritySuccess
)

// Update is what the presentation layer receives on every tick and
// transition.
type Update struct {
	State     State
	Remaining int
	Message   string
	Severity  Severity
}

// Notifier consumes presentation updates. A nil notifier is valid.
type Notifier func(Update)

// Authorizer decides whether the local network may mark attendance.
type Authorizer interface {
	Check(ctx context.Context) bool
}

// Events records attendance events on the remote service. Implemented
// by *portal.Client.
type Events interface {
	PostAttendance(ctx context.Context, event portal.AttendanceEvent) error
}

// Identity names the student and device attendance events are
// attributed to.
type Identity struct {
	StudentID string
	DeviceID  string
	BSSID     func() string // current network id for present events; may be nil
}

// MarkingSeconds is the presence countdown length.
const MarkingSeconds = 120

const defaultEventTimeout = 5 * time.Second

// ErrNotWaiting reports StartMarking called outside the Waiting state.
var ErrNotWaiting = errors.New("no attendance session open for marking")

// ErrUnauthorized reports an authorization rejection at marking start.
var ErrUnauthorized = errors.New("network is not authorized for attendance")

// Controller owns the attendance marking state machine. One instance
// exists per logged-in student; all fields are owned exclusively by
// the controller and guarded for the pollers that feed it.
type Controller struct {
	identity   Identity
	authorizer Authorizer
	events     Events
	notify     Notifier
	timeout    time.Duration
	now        func() time.Time

	mu        sync.Mutex
	state     State
	remaining int
}

// Option customizes a Controller.
type Option func(*Controller)

// WithEventTimeout bounds remote event emission and authorization checks.
func WithEventTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

// WithClock injects the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController builds an idle controller for the given student.
func NewController(identity Identity, authorizer Authorizer, events Events, notify Notifier, opts ...Option) *Controller {
	c := &Controller{
		identity:   identity,
		authorizer: authorizer,
		events:     events,
		notify:     notify,
		timeout:    defaultEventTimeout,
		now:        time.Now,
		state:      StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Remaining returns the countdown seconds left.
func (c *Controller) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// HandleSession feeds the latest session-status poll result into the
// machine. A closed session never aborts an in-progress mark: while
// counting or paused the result is ignored until the mark settles.
func (c *Controller) HandleSession(active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateCounting, StatePaused:
		return
	case StateIdle:
		if active {
			c.state = StateWaiting
			c.emit("Attendance session active - you can mark attendance", SeverityInfo)
		}
	default: // Waiting, Completed
		if !active {
			c.state = StateIdle
			c.remaining = 0
			c.emit("No active attendance session", SeverityInfo)
		}
	}
}

// StartMarking begins the presence countdown. It requires an open
// session (Waiting) and a passing authorization check; the present
// event is recorded before counting starts.
func (c *Controller) StartMarking(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateWaiting {
		c.mu.Unlock()
		return fmt.Errorf("start marking in state %s: %w", c.state, ErrNotWaiting)
	}
	c.mu.Unlock()

	if !c.authorized(ctx) {
		return ErrUnauthorized
	}

	// Recorded best-effort: the countdown is the authoritative signal
	// and a dropped event is recovered by the next left/present pair.
	c.postEvent(ctx, portal.PresentEvent(c.identity.StudentID, c.identity.DeviceID, c.currentBSSID(), c.now()))

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateWaiting {
		return fmt.Errorf("start marking in state %s: %w", c.state, ErrNotWaiting)
	}
	c.state = StateCounting
	c.remaining = MarkingSeconds
	c.emit(formatCountdown(c.remaining), SeverityInfo)
	return nil
}

// Tick advances the machine by one fixed interval. Call once per
// second of wall time while the application runs.
func (c *Controller) Tick(ctx context.Context) {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()

	switch state {
	case StateCounting, StatePaused:
	default:
		return
	}

	authorized := c.authorized(ctx)

	var left *portal.AttendanceEvent

	c.mu.Lock()
	switch c.state {
	case StateCounting:
		if !authorized {
			c.state = StatePaused
			event := portal.LeftEvent(c.identity.StudentID, c.identity.DeviceID, c.now())
			left = &event
			c.emit("WiFi disconnected! Timer paused.", SeverityWarning)
			break
		}
		if c.remaining > 0 {
			c.remaining--
		}
		if c.remaining == 0 {
			c.state = StateCompleted
			c.emit("Attendance marked successfully!", SeveritySuccess)
			break
		}
		c.emit(formatCountdown(c.remaining), SeverityInfo)

	case StatePaused:
		if authorized {
			// No present re-emit on resume; only pause entry is
			// recorded at the protocol level.
			c.state = StateCounting
			c.emit("WiFi reconnected! Resuming timer.", SeverityInfo)
			break
		}
		c.emit("WiFi disconnected! Timer paused.", SeverityWarning)
	}
	c.mu.Unlock()

	if left != nil {
		// Fire and forget: a dropped left event is not retried.
		c.postEvent(ctx, *left)
	}
}

func (c *Controller) authorized(ctx context.Context) bool {
	if c.authorizer == nil {
		return false
	}
	bounded, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.authorizer.Check(bounded)
}

func (c *Controller) postEvent(ctx context.Context, event portal.AttendanceEvent) {
	if c.events == nil {
		return
	}
	bounded, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	_ = c.events.PostAttendance(bounded, event)
}

func (c *Controller) currentBSSID() string {
	if c.identity.BSSID == nil {
		return ""
	}
	return c.identity.BSSID()
}

// emit must be called with c.mu held.
func (c *Controller) emit(message string, severity Severity) {
	if c.notify == nil {
		return
	}
	c.notify(Update{
		State:     c.state,
		Remaining: c.remaining,
		Message:   message,
		Severity:  severity,
	})
}

func formatCountdown(remaining int) string {
	return "Time remaining: " + FormatRemaining(remaining)
}

// FormatRemaining renders a second count as MM:SS.
func FormatRemaining(remaining int) string {
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
}
