package ui

import (
	"testing"
)

// TestSetTheme verifies theme selection by name.
func TestSetTheme(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	tests := []struct {
		name     string
		theme    string
		wantName string
	}{
		{"dark theme", "dark", "dark"},
		{"light theme", "light", "light"},
		{"no color theme", "none", "none"},
		{"unknown defaults to dark", "solarized", "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetTheme(tt.theme)
			if got := GetCurrentTheme().Name; got != tt.wantName {
				t.Errorf("after SetTheme(%q), theme = %q, want %q", tt.theme, got, tt.wantName)
			}
		})
	}
}

// TestInitTheme verifies flag and NO_COLOR handling.
func TestInitTheme(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	t.Run("noColor flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" {
			t.Error("InitTheme(true) should select NoColorTheme")
		}
		if ColorGreen() != "" || ColorReset() != "" {
			t.Error("color accessors should return empty strings when colors are disabled")
		}
	})

	t.Run("NO_COLOR env disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Error("InitTheme should honor NO_COLOR")
		}
	})
}

// TestColorAccessors verifies accessors map to the active theme fields.
func TestColorAccessors(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)
	SetCurrentTheme(DarkTheme)

	if ColorBlue() != DarkTheme.Primary {
		t.Errorf("ColorBlue() = %q, want primary %q", ColorBlue(), DarkTheme.Primary)
	}
	if ColorRed() != DarkTheme.Error {
		t.Errorf("ColorRed() = %q, want error %q", ColorRed(), DarkTheme.Error)
	}
	if ColorUnderline() != DarkTheme.Underline {
		t.Errorf("ColorUnderline() = %q, want %q", ColorUnderline(), DarkTheme.Underline)
	}
}

// TestGetCurrentTUITheme verifies the TUI palette follows the active theme.
func TestGetCurrentTUITheme(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	SetCurrentTheme(NoColorTheme)
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("NoColorTheme should map to NoColorTUITheme")
	}

	SetCurrentTheme(DarkTheme)
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("DarkTheme should map to DarkTUITheme")
	}
}
