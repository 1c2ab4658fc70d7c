package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Display order for the timetable grid; matches the periods the
// service publishes.
var (
	timetableDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

	timetablePeriods = []string{
		"09:40-10:40 AM", "10:40-11:40 AM",
		"Lunch Break", "12:10-01:10 PM",
		"01:10-02:10 PM", "Short Break",
		"02:20-03:10 PM", "03:10-04:10 PM",
	}
)

const timetableColWidth = 16

// renderTimetable draws the weekly grid.
func (m Model) renderTimetable() string {
	styles := m.theme.Styles()

	if len(m.snapshot.Timetable) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			styles.MutedText.Render("No timetable available"))
	}

	var b strings.Builder

	cells := []string{padCell("Period/Day", timetableColWidth)}
	for _, day := range timetableDays {
		cells = append(cells, padCell(day, timetableColWidth))
	}
	b.WriteString(styles.AccentText.Bold(true).Render(strings.Join(cells, " ")))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", (timetableColWidth+1)*len(cells)-1)))
	b.WriteString("\n")

	for _, period := range timetablePeriods {
		row := []string{padCell(period, timetableColWidth)}
		for _, day := range timetableDays {
			row = append(row, padCell(m.snapshot.Timetable.Subject(day, period), timetableColWidth))
		}
		b.WriteString(styles.Text.Render(strings.Join(row, " ")))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
