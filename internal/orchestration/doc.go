// Package orchestration coordinates the execution of one or more summer
// implementations: it fans them out under an errgroup, times each run,
// funnels progress updates to a reporter, and analyzes the collected results
// for consistency.
//
// The package deliberately knows nothing about presentation. Progress display
// and result rendering are injected through the ProgressReporter and
// ResultPresenter interfaces so the CLI, TUI and tests can plug in their own.
package orchestration
