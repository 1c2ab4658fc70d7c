package portal

import "time"

// wire format for attendance event timestamps.
const clockLayout = "15:04:05"

// LoginRequest is the payload for /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse mirrors the /login reply. Type distinguishes the
// student portal from the teacher portal.
type LoginResponse struct {
	Type string `json:"type"`
}

// IsStudent reports whether the account belongs to the student portal.
func (r LoginResponse) IsStudent() bool {
	return r.Type == "student"
}

// SessionStatus mirrors /get_attendance_session.
type SessionStatus struct {
	Active bool `json:"active"`
}

// BSSIDList mirrors /get_authorized_bssids.
type BSSIDList struct {
	BSSIDs []string `json:"bssids"`
}

// EventStatus enumerates the attendance event kinds the service accepts.
type EventStatus string

const (
	StatusPresent EventStatus = "present"
	StatusLeft    EventStatus = "left"
)

// AttendanceEvent is the payload for /update_attendance. TimeIn is set
// for present events, TimeOut for left events; both use HH:MM:SS.
type AttendanceEvent struct {
	StudentID string      `json:"student_id"`
	Status    EventStatus `json:"status"`
	TimeIn    string      `json:"time_in,omitempty"`
	TimeOut   string      `json:"time_out,omitempty"`
	DeviceID  string      `json:"device_id"`
	BSSID     string      `json:"bssid,omitempty"`
}

// PresentEvent builds a present event stamped with the given time.
func PresentEvent(studentID, deviceID, bssid string, at time.Time) AttendanceEvent {
	return AttendanceEvent{
		StudentID: studentID,
		Status:    StatusPresent,
		TimeIn:    at.Format(clockLayout),
		DeviceID:  deviceID,
		BSSID:     bssid,
	}
}

// LeftEvent builds a left event stamped with the given time.
func LeftEvent(studentID, deviceID string, at time.Time) AttendanceEvent {
	return AttendanceEvent{
		StudentID: studentID,
		Status:    StatusLeft,
		TimeOut:   at.Format(clockLayout),
		DeviceID:  deviceID,
	}
}

// PingRequest is the payload for the /ping heartbeat.
type PingRequest struct {
	Username string `json:"username"`
	Type     string `json:"type"`
	DeviceID string `json:"device_id"`
	Status   string `json:"status"`
}

// WiFiStatusUpdate is the payload for /update_wifi_status.
type WiFiStatusUpdate struct {
	Username string `json:"username"`
	Status   string `json:"status"`
	BSSID    string `json:"bssid,omitempty"`
	SSID     string `json:"ssid,omitempty"`
	Device   string `json:"device"`
}

// RingStatus mirrors /get_random_rings.
type RingStatus struct {
	RingActive bool   `json:"ring_active"`
	LastRing   string `json:"last_ring"`
}

// Timetable maps day name to period label to subject.
type Timetable map[string]map[string]string

// Subject returns the subject for a day/period, empty when unset.
func (t Timetable) Subject(day, period string) string {
	return t[day][period]
}

// AttendanceRecord is one row of the attendance history.
type AttendanceRecord struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// Holiday describes a single holiday entry keyed by date.
type Holiday struct {
	Name string `json:"name"`
}

// Holidays groups school-wide and teacher-declared holidays by date
// (YYYY-MM-DD keys).
type Holidays struct {
	National map[string]Holiday `json:"national_holidays"`
	Custom   map[string]Holiday `json:"custom_holidays"`
}

// Lookup returns the holiday for a date from either group.
func (h Holidays) Lookup(date string) (Holiday, bool) {
	if hol, ok := h.National[date]; ok {
		return hol, true
	}
	if hol, ok := h.Custom[date]; ok {
		return hol, true
	}
	return Holiday{}, false
}

// AttendanceSummary mirrors /student_attendance/{id}.
type AttendanceSummary struct {
	Holidays Holidays           `json:"holidays"`
	History  []AttendanceRecord `json:"attendance_history"`
}

// PresentDates returns the dates recorded present, AbsentDates those
// recorded absent.
func (s AttendanceSummary) PresentDates() []string {
	return s.datesWithStatus("present")
}

// AbsentDates returns the dates recorded absent.
func (s AttendanceSummary) AbsentDates() []string {
	return s.datesWithStatus("absent")
}

func (s AttendanceSummary) datesWithStatus(status string) []string {
	var dates []string
	for _, record := range s.History {
		if record.Status == status {
			dates = append(dates, record.Date)
		}
	}
	return dates
}
