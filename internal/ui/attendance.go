package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sdixit/rollcall/internal/session"
)

// renderAttendance draws the marking view: session banner, countdown,
// ring alert and any action notice.
func (m Model) renderAttendance() string {
	styles := m.theme.Styles()

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.renderTimerLine())
	b.WriteString("\n\n")

	if m.snapshot.HasSession && m.snapshot.Session.Active && markable(m.snapshot.Marking, m.snapshot.HasMarking) {
		b.WriteString(styles.AccentText.Render("Press m to mark attendance"))
		b.WriteString("\n")
	}

	if m.snapshot.Ring.RingActive {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render("RANDOM RING ALERT! Teacher has called on you!"))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.severityStyle(m.noticeSeverity).Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Device: " + m.deviceID))
	b.WriteString("\n")

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// renderTimerLine renders the controller's latest message, falling
// back to the pre-session placeholder.
func (m Model) renderTimerLine() string {
	if !m.snapshot.HasMarking {
		if m.snapshot.HasSession && m.snapshot.Session.Active {
			return m.severityStyle(session.SeverityInfo).Render("Attendance session active - you can mark attendance")
		}
		return m.theme.Styles().MutedText.Render("Waiting for attendance session...")
	}

	update := m.snapshot.Marking
	line := update.Message
	if update.State == session.StateCounting || update.State == session.StatePaused {
		line = line + "  (" + session.FormatRemaining(update.Remaining) + " left)"
	}
	return m.severityStyle(update.Severity).Bold(true).Render(line)
}

// markable reports whether the controller would accept a start.
func markable(update session.Update, hasMarking bool) bool {
	if !hasMarking {
		return true
	}
	switch update.State {
	case session.StateIdle, session.StateWaiting:
		return true
	default:
		return false
	}
}

func (m Model) severityStyle(severity session.Severity) lipgloss.Style {
	styles := m.theme.Styles()
	switch severity {
	case session.SeveritySuccess:
		return styles.SuccessText
	case session.SeverityWarning:
		return styles.WarningText
	default:
		return styles.InfoText
	}
}
