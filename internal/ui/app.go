// Package ui provides the Bubble Tea TUI for rollcall.
package ui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdixit/rollcall/internal/prefs"
	"github.com/sdixit/rollcall/internal/session"
	"github.com/sdixit/rollcall/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewAttendance View = iota
	ViewTimetable
	ViewCalendar
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *session.Controller
	Store      *state.Store
	StudentID  string
	DeviceID   string
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	controller *session.Controller
	store      *state.Store
	studentID  string
	deviceID   string
	prefsPath  string

	// UI state
	theme       Theme
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Calendar state
	calMonth time.Month
	calYear  int

	// Transient notice from the last mark/copy action
	notice         string
	noticeSeverity session.Severity

	// Marking guard: one StartMarking in flight at a time
	marking bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	now := time.Now()

	return Model{
		ctx:         ctx,
		controller:  opts.Controller,
		store:       opts.Store,
		studentID:   opts.StudentID,
		deviceID:    opts.DeviceID,
		prefsPath:   prefsPath,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		currentView: ViewAttendance,
		calMonth:    now.Month(),
		calYear:     now.Year(),
	}
}

// Run starts the TUI and blocks until the user quits or the context
// is cancelled.
func Run(opts Options) error {
	program := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

type tickMsg time.Time

type markResultMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		if m.store != nil {
			m.snapshot = m.store.Snapshot()
		}
		m.lastUpdated = time.Time(msg)
		return m, tickCmd()

	case markResultMsg:
		m.marking = false
		switch {
		case msg.err == nil:
			m.notice = ""
		case errors.Is(msg.err, session.ErrUnauthorized):
			m.notice = "You must be connected to the school WiFi to mark attendance"
			m.noticeSeverity = session.SeverityWarning
		case errors.Is(msg.err, session.ErrNotWaiting):
			m.notice = "No active attendance session"
			m.noticeSeverity = session.SeverityWarning
		default:
			m.notice = "Marking failed: " + msg.err.Error()
			m.noticeSeverity = session.SeverityWarning
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.notice = "Copy failed: " + msg.err.Error()
			m.noticeSeverity = session.SeverityWarning
		} else {
			m.notice = "Device id copied to clipboard"
			m.noticeSeverity = session.SeverityInfo
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key dismisses the help overlay.
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		next := NextTheme(m.theme.Name)
		m.theme = GetTheme(next)
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: next})
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.currentView = (m.currentView + 1) % 3
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.currentView = (m.currentView + 2) % 3
		return m, nil

	case key.Matches(msg, m.keys.ViewAttendance):
		m.currentView = ViewAttendance
		return m, nil

	case key.Matches(msg, m.keys.ViewTimetable):
		m.currentView = ViewTimetable
		return m, nil

	case key.Matches(msg, m.keys.ViewCalendar):
		m.currentView = ViewCalendar
		return m, nil

	case key.Matches(msg, m.keys.Mark):
		if m.currentView != ViewAttendance || m.marking || m.controller == nil {
			return m, nil
		}
		m.marking = true
		m.notice = ""
		controller, ctx := m.controller, m.ctx
		return m, func() tea.Msg {
			return markResultMsg{err: controller.StartMarking(ctx)}
		}

	case key.Matches(msg, m.keys.CopyDevice):
		deviceID := m.deviceID
		return m, func() tea.Msg {
			return copiedMsg{err: clipboard.WriteAll(deviceID)}
		}

	case key.Matches(msg, m.keys.PrevMonth):
		if m.currentView == ViewCalendar {
			m.calYear, m.calMonth = prevMonth(m.calYear, m.calMonth)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextMonth):
		if m.currentView == ViewCalendar {
			m.calYear, m.calMonth = nextMonth(m.calYear, m.calMonth)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	var content string
	switch m.currentView {
	case ViewTimetable:
		content = m.renderTimetable()
	case ViewCalendar:
		content = m.renderCalendar()
	default:
		content = m.renderAttendance()
	}

	return header + "\n" + content + "\n" + footer
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
