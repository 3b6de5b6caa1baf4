// Package logging defines the Logger interface used throughout the array
// summer, with a zerolog-backed adapter for structured output and a plain
// standard-library adapter for environments without it. Callers attach
// context through typed Field helpers rather than format strings.
package logging
