package ui

// Color accessor functions return the ANSI escape code for a color category
// from the currently active theme. With NoColorTheme active they all return
// the empty string, so callers can interpolate them unconditionally.

// ColorBlue returns the primary accent color code.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorCyan returns the informational color code.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorGreen returns the success color code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error color code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorMagenta returns the secondary accent color code.
func ColorMagenta() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold text code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline text code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the formatting reset code.
func ColorReset() string { return GetCurrentTheme().Reset }
