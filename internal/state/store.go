package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/sdixit/rollcall/internal/portal"
	"github.com/sdixit/rollcall/internal/session"
)

// WiFiStatus is the latest local network observation.
type WiFiStatus struct {
	Connected  bool
	SSID       string
	BSSID      string
	Authorized bool
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Session             portal.SessionStatus
	HasSession          bool
	Marking             session.Update
	HasMarking          bool
	WiFi                WiFiStatus
	Ring                portal.RingStatus
	Timetable           portal.Timetable
	Summary             portal.AttendanceSummary
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // consecutive session poll failures
}

// IsOffline returns true when the service has been unreachable for
// multiple session polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot. Each poller
// writes its own slice of the snapshot; the UI reads whole copies.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetSession records a session poll result. On error the previous
// status is kept and the failure counter advances; the session poll is
// the liveness signal for the offline indicator.
func (s *Store) SetSession(status portal.SessionStatus, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.Session = status
	s.snapshot.HasSession = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// SetMarking records the latest controller update. The controller's
// notifier calls this on every tick and transition.
func (s *Store) SetMarking(update session.Update) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Marking = update
	s.snapshot.HasMarking = true
}

// SetWiFi records the latest network observation.
func (s *Store) SetWiFi(status WiFiStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.WiFi = status
}

// SetRing records the latest random-ring poll result.
func (s *Store) SetRing(ring portal.RingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Ring = ring
}

// SetTimetable stores a refreshed timetable. Errors keep the previous
// table so the display degrades to stale data rather than blank.
func (s *Store) SetTimetable(timetable portal.Timetable, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.snapshot.LastError = err
		return
	}
	s.snapshot.Timetable = cloneTimetable(timetable)
}

// SetSummary stores a refreshed attendance summary, keeping the
// previous one on error.
func (s *Store) SetSummary(summary portal.AttendanceSummary, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.snapshot.LastError = err
		return
	}
	s.snapshot.Summary = cloneSummary(summary)
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Timetable = cloneTimetable(s.snapshot.Timetable)
	snap.Summary = cloneSummary(s.snapshot.Summary)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneTimetable(timetable portal.Timetable) portal.Timetable {
	if len(timetable) == 0 {
		return nil
	}
	dup := make(portal.Timetable, len(timetable))
	for day, periods := range timetable {
		inner := make(map[string]string, len(periods))
		for period, subject := range periods {
			inner[period] = subject
		}
		dup[day] = inner
	}
	return dup
}

func cloneSummary(summary portal.AttendanceSummary) portal.AttendanceSummary {
	dup := summary
	if len(summary.History) > 0 {
		dup.History = make([]portal.AttendanceRecord, len(summary.History))
		copy(dup.History, summary.History)
	}
	dup.Holidays.National = cloneHolidays(summary.Holidays.National)
	dup.Holidays.Custom = cloneHolidays(summary.Holidays.Custom)
	return dup
}

func cloneHolidays(holidays map[string]portal.Holiday) map[string]portal.Holiday {
	if len(holidays) == 0 {
		return nil
	}
	dup := make(map[string]portal.Holiday, len(holidays))
	for date, holiday := range holidays {
		dup[date] = holiday
	}
	return dup
}
