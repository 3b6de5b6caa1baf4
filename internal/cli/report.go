// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResults], [DisplayElapsed], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatResultLine].

package cli

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/agbru/parsum/internal/config"
	"github.com/agbru/parsum/internal/format"
	"github.com/agbru/parsum/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user: the array size, scheduling parameters and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Performing %s%s%s array sum with:\n",
		ui.ColorGreen(), cfg.Mode, ui.ColorReset())
	fmt.Fprintf(out, "Threads: %s%d%s\n", ui.ColorCyan(), cfg.Threads, ui.ColorReset())
	fmt.Fprintf(out, "Items: %s%d%s\n", ui.ColorCyan(), cfg.Items, ui.ColorReset())
	fmt.Fprintf(out, "Chunk size: %s%d%s\n", ui.ColorCyan(), cfg.ChunkSize, ui.ColorReset())
	fmt.Fprintf(out, "Output rows: %s%d%s\n", ui.ColorCyan(), cfg.MaxOutputRows, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// DisplayElapsed reports the wall-clock time of the summation in seconds,
// matching the classic report line of the demo.
//
// Parameters:
//   - d: The measured duration.
//   - out: The writer for standard output.
func DisplayElapsed(d time.Duration, out io.Writer) {
	fmt.Fprintf(out, "Summed arrays in: %s%s%s seconds.\n",
		ui.ColorYellow(), format.FormatSeconds(d), ui.ColorReset())
}

// FormatResultLine renders a single "a[i] + b[i] = c[i]" line.
//
// Parameters:
//   - a, b, c: The input and output values at one index.
//
// Returns:
//   - string: The formatted line without a trailing newline.
func FormatResultLine(a, b, c int) string {
	return fmt.Sprintf("%d + %d = %d", a, b, c)
}

// DisplayResults prints a truncated view of the summation results.
//
// When the array fits within maxOutputRows, every line is printed. Otherwise
// the first maxOutputRows/2 and last maxOutputRows/2 lines are printed,
// separated by three ellipsis marker lines. A maxOutputRows of 0 suppresses
// the listing entirely.
//
// Parameters:
//   - out: The writer for standard output.
//   - a, b, c: The input arrays and their element-wise sum, all of equal length.
//   - maxOutputRows: The output row budget.
func DisplayResults(out io.Writer, a, b, c []int, maxOutputRows int) {
	if maxOutputRows <= 0 {
		return
	}

	n := len(c)
	if n <= maxOutputRows {
		for i := 0; i < n; i++ {
			fmt.Fprintln(out, FormatResultLine(a[i], b[i], c[i]))
		}
		return
	}

	edge := maxOutputRows / 2
	for i := 0; i < edge; i++ {
		fmt.Fprintln(out, FormatResultLine(a[i], b[i], c[i]))
	}

	fmt.Fprintln(out, ".")
	fmt.Fprintln(out, ".")
	fmt.Fprintln(out, ".")

	for i := n - edge; i < n; i++ {
		fmt.Fprintln(out, FormatResultLine(a[i], b[i], c[i]))
	}
}
