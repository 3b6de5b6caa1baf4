package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/parsum/internal/config"
	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/format"
	"github.com/agbru/parsum/internal/orchestration"
	"github.com/agbru/parsum/internal/sysmon"
	"github.com/agbru/parsum/internal/vecsum"
)

// KeyMap defines the key bindings of the dashboard.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the standard key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// TickMsg drives the elapsed clock and the system stat sampling.
type TickMsg time.Time

// SysStatsMsg carries a system monitor sample into the TUI.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// SumCompleteMsg signals that the whole run finished with an exit code.
type SumCompleteMsg struct {
	ExitCode int
}

// ContextCancelledMsg signals that the execution context was canceled.
type ContextCancelledMsg struct {
	Err error
}

// Model is the root bubbletea model for the summation dashboard.
type Model struct {
	bar    progress.Model
	keymap KeyMap

	ctx    context.Context
	cancel context.CancelFunc
	ref    *programRef

	config  config.AppConfig
	summers []vecsum.Summer
	a, b    []int
	version string

	startTime time.Time
	avg       float64
	results   []orchestration.SumResult
	sys       sysmon.Stats
	err       error
	done      bool
	exitCode  int
	width     int
}

// NewModel creates a new dashboard model. The input arrays are generated by
// the caller so the TUI and the plain CLI sum identical data.
func NewModel(parentCtx context.Context, summers []vecsum.Summer, a, b []int, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	return Model{
		bar:       progress.New(progress.WithDefaultGradient()),
		keymap:    DefaultKeyMap(),
		ctx:       ctx,
		cancel:    cancel,
		ref:       &programRef{},
		config:    cfg,
		summers:   summers,
		a:         a,
		b:         b,
		version:   version,
		startTime: time.Now(),
		exitCode:  apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startSummationCmd(m.ref, m.ctx, m.summers, m.a, m.b, m.config),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) {
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		barWidth := msg.Width - 8
		if barWidth < 10 {
			barWidth = 10
		}
		m.bar.Width = barWidth
		return m, nil

	case ProgressMsg:
		if msg.AverageProgress > m.avg {
			m.avg = msg.AverageProgress
		}
		return m, nil

	case ProgressDoneMsg:
		m.avg = 1.0
		return m, nil

	case ComparisonResultsMsg:
		m.results = msg.Results
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case SumCompleteMsg:
		m.done = true
		m.exitCode = msg.ExitCode
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.sys = sysmon.Stats{CPUPercent: msg.CPUPercent, MemPercent: msg.MemPercent}
		return m, nil

	case ContextCancelledMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder

	title := titleStyle.Render("parsum") + " " + versionStyle.Render(m.version)
	b.WriteString(title + "  " + m.statusView() + "\n\n")

	b.WriteString(m.bar.ViewAs(m.avg) + "\n\n")
	b.WriteString(m.metricsView() + "\n")

	if body := m.resultsView(); body != "" {
		b.WriteString("\n" + body + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	}

	footer := footerKeyStyle.Render("q") + footerDescStyle.Render(" quit")
	b.WriteString("\n" + footer)

	return panelStyle.Width(m.width - 2).Render(b.String())
}

func (m Model) statusView() string {
	switch {
	case m.err != nil:
		return statusErrorStyle.Render("FAILED")
	case m.done:
		return statusDoneStyle.Render("DONE")
	default:
		return statusRunningStyle.Render("RUNNING")
	}
}

func (m Model) metricsView() string {
	elapsed := time.Since(m.startTime)
	doneItems := int(float64(m.config.Items) * m.avg)

	parts := []string{
		metricLabelStyle.Render("Items ") + metricValueStyle.Render(fmt.Sprintf("%d", m.config.Items)),
		metricLabelStyle.Render("Workers ") + metricValueStyle.Render(fmt.Sprintf("%d", m.config.Threads)),
		metricLabelStyle.Render("Chunk ") + metricValueStyle.Render(fmt.Sprintf("%d", m.config.ChunkSize)),
		metricLabelStyle.Render("Elapsed ") + metricValueStyle.Render(format.FormatExecutionDuration(elapsed)),
		metricLabelStyle.Render("Rate ") + metricValueStyle.Render(format.FormatThroughput(doneItems, elapsed)),
		metricLabelStyle.Render("Sys ") + metricValueStyle.Render(m.sys.String()),
	}
	return strings.Join(parts, "   ")
}

func (m Model) resultsView() string {
	if len(m.results) == 0 {
		return ""
	}

	lines := make([]string, 0, len(m.results))
	for _, res := range m.results {
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Err != nil {
			lines = append(lines, errorStyle.Render(
				fmt.Sprintf("%-18s %10s  failure: %v", res.Name, duration, res.Err)))
			continue
		}
		lines = append(lines, resultStyle.Render(
			fmt.Sprintf("%-18s %10s  success", res.Name, duration)))
	}
	return strings.Join(lines, "\n")
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, summers []vecsum.Summer, a, b []int, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, summers, a, b, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startSummationCmd returns a tea.Cmd that launches the orchestration.
func startSummationCmd(ref *programRef, ctx context.Context, summers []vecsum.Summer, a, b []int, cfg config.AppConfig) tea.Cmd {
	return func() tea.Msg {
		progressReporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		opts := vecsum.Options{ChunkSize: cfg.ChunkSize, Workers: cfg.Threads}
		results := orchestration.ExecuteSummations(ctx, summers, a, b, cfg.Items, opts, progressReporter, io.Discard)
		exitCode := orchestration.AnalyzeComparisonResults(results, presenter, io.Discard)

		return SumCompleteMsg{ExitCode: exitCode}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
		}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
