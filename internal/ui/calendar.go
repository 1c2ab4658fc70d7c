package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sdixit/rollcall/internal/state"
)

const calendarColWidth = 10

var weekdayHeader = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// renderCalendar draws the month grid with attendance and holiday
// markers.
func (m Model) renderCalendar() string {
	styles := m.theme.Styles()

	var b strings.Builder

	title := fmt.Sprintf("%s %d", m.calMonth, m.calYear)
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString(styles.FaintText.Render("   ←/→ change month"))
	b.WriteString("\n\n")

	var header []string
	for _, day := range weekdayHeader {
		header = append(header, padCell(day, calendarColWidth))
	}
	b.WriteString(styles.MutedText.Render(strings.Join(header, " ")))
	b.WriteString("\n")

	for _, week := range monthWeeks(m.calYear, m.calMonth) {
		var cells []string
		for _, day := range week {
			cells = append(cells, m.renderDay(day))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.DayStyle("present").Render("■ present"))
	b.WriteString("  ")
	b.WriteString(styles.DayStyle("absent").Render("■ absent"))
	b.WriteString("  ")
	b.WriteString(styles.DayStyle("holiday").Render("■ holiday"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) renderDay(day int) string {
	styles := m.theme.Styles()
	if day == 0 {
		return padCell("", calendarColWidth)
	}

	date := fmt.Sprintf("%04d-%02d-%02d", m.calYear, m.calMonth, day)
	kind, label := classifyDay(m.snapshot, date)

	cell := fmt.Sprintf("%2d", day)
	if label != "" {
		cell += " " + label
	}
	cell = padCell(cell, calendarColWidth)

	if kind == "" {
		return styles.Text.Render(cell)
	}
	return styles.DayStyle(kind).Render(cell)
}

// classifyDay maps a date to its calendar marker. Holidays win over
// attendance records, absences over presences, as the original roster
// display does.
func classifyDay(snap state.Snapshot, date string) (kind, label string) {
	if holiday, ok := snap.Summary.Holidays.Lookup(date); ok {
		name := holiday.Name
		if name == "" {
			name = "Holiday"
		}
		return "holiday", truncate(name, calendarColWidth-4)
	}
	for _, record := range snap.Summary.History {
		if record.Date != date {
			continue
		}
		switch record.Status {
		case "absent":
			return "absent", "Absent"
		case "present":
			return "present", "Present"
		}
	}
	return "", ""
}

// monthWeeks returns the month laid out Monday-first, zero for days
// outside the month.
func monthWeeks(year int, month time.Month) [][7]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := (int(first.Weekday()) + 6) % 7 // Monday-first

	var weeks [][7]int
	var week [7]int
	col := offset
	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}
