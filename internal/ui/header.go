package ui

import (
	"strings"
	"time"
)

// renderHeader draws the top bar: logo, student identity, network
// state and the offline badge.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	var parts []string
	parts = append(parts, styles.Logo.Render("ROLLCALL"))
	parts = append(parts, styles.MutedText.Render("Student "+m.studentID))

	wifi := m.snapshot.WiFi
	switch {
	case !wifi.Connected:
		parts = append(parts, styles.DangerText.Render("WiFi: Not Connected"))
	case wifi.Authorized:
		parts = append(parts, styles.SuccessText.Render("WiFi: "+wifi.SSID+" (Authorized)"))
	default:
		parts = append(parts, styles.WarningText.Render("WiFi: "+wifi.SSID+" (Unauthorized)"))
	}

	if m.snapshot.IsOffline() {
		parts = append(parts, styles.DangerText.Render("OFFLINE"))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderFooter draws the bottom bar: view tabs, key hints and data age.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	tabs := []string{"[a]ttendance", "[t]imetable", "[c]alendar"}
	active := int(m.currentView)
	for i := range tabs {
		if i == active {
			tabs[i] = styles.AccentText.Render(tabs[i])
		} else {
			tabs[i] = styles.FaintText.Render(tabs[i])
		}
	}

	hints := styles.FaintText.Render("m mark · y copy id · T theme · ? help · q quit")

	age := ""
	if !m.lastUpdated.IsZero() {
		age = styles.FaintText.Render("updated " + humanizeDuration(time.Since(m.lastUpdated)) + " ago")
	}

	left := strings.Join(tabs, " ")
	line := left + "  " + hints
	if age != "" {
		line += "  " + age
	}
	return styles.Footer.Width(m.width).Render(line)
}
