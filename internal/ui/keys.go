package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding

	// View switching
	ViewAttendance key.Binding
	ViewTimetable  key.Binding
	ViewCalendar   key.Binding

	// Attendance
	Mark       key.Binding
	CopyDevice key.Binding

	// Calendar
	PrevMonth key.Binding
	NextMonth key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next view"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous view"),
		),
		ViewAttendance: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Attendance"),
		),
		ViewTimetable: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Timetable"),
		),
		ViewCalendar: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Calendar"),
		),
		Mark: key.NewBinding(
			key.WithKeys("m", "enter"),
			key.WithHelp("m", "Mark attendance"),
		),
		CopyDevice: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy device id"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "Previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "Next month"),
		),
	}
}
