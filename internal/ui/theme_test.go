package ui

import "testing"

func TestGetTheme_FallsBackToDefault(t *testing.T) {
	if got := GetTheme("NoSuchTheme"); got.Name != "Nightfox" {
		t.Fatalf("GetTheme fallback = %q, want Nightfox", got.Name)
	}
	if got := GetTheme("Kanagawa"); got.Name != "Kanagawa" {
		t.Fatalf("GetTheme = %q, want Kanagawa", got.Name)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}

	seen := map[string]bool{}
	current := names[0]
	for range names {
		seen[current] = true
		current = NextTheme(current)
	}
	if current != names[0] {
		t.Fatalf("cycle did not return to start: %q", current)
	}
	for _, name := range names {
		if !seen[name] {
			t.Fatalf("theme %q never visited", name)
		}
	}

	if got := NextTheme("NoSuchTheme"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestDayStyle_UnknownKindUsesMuted(t *testing.T) {
	styles := GetTheme("Slate").Styles()
	known := styles.DayStyle("present").Render("x")
	unknown := styles.DayStyle("mystery").Render("x")
	if known == "" || unknown == "" {
		t.Fatal("DayStyle rendered empty output")
	}
}

func TestEveryThemeHasDayColors(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for _, kind := range []string{"present", "absent", "holiday"} {
			if theme.DayColors[kind] == "" {
				t.Errorf("theme %s missing day color %q", name, kind)
			}
		}
	}
}
