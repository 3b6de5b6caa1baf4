// Package ui holds the color themes shared by the report, the comparison
// table and the dashboard. It exposes ANSI escape accessors for plain CLI
// output and a lipgloss palette for the TUI, switchable between dark, light
// and colorless variants (NO_COLOR is honored).
//
// Presentation packages depend on this one for styling so that color policy
// lives in a single place.
package ui
