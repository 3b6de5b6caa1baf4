package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/agbru/parsum/internal/config"
	apperrors "github.com/agbru/parsum/internal/errors"
)

// TestNew tests Application construction from command-line arguments.
func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		var errBuf bytes.Buffer
		application, err := New([]string{"parsum"}, &errBuf)
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}

		if application.Config.Threads != config.DefaultThreads {
			t.Errorf("Threads = %d, want %d", application.Config.Threads, config.DefaultThreads)
		}
		if application.Config.Items != config.DefaultItems {
			t.Errorf("Items = %d, want %d", application.Config.Items, config.DefaultItems)
		}
		if application.Logger == nil {
			t.Error("Logger should be initialized")
		}
	})

	t.Run("Flags override defaults", func(t *testing.T) {
		var errBuf bytes.Buffer
		application, err := New([]string{"parsum", "--threads", "4", "--items", "50"}, &errBuf)
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}

		if application.Config.Threads != 4 {
			t.Errorf("Threads = %d, want 4", application.Config.Threads)
		}
		if application.Config.Items != 50 {
			t.Errorf("Items = %d, want 50", application.Config.Items)
		}
	})

	t.Run("Invalid flag value is rejected", func(t *testing.T) {
		var errBuf bytes.Buffer
		_, err := New([]string{"parsum", "--threads", "abc"}, &errBuf)
		if err == nil {
			t.Fatal("expected an error for a non-numeric flag value")
		}
	})

	t.Run("Help is passed through", func(t *testing.T) {
		var errBuf bytes.Buffer
		_, err := New([]string{"parsum", "--help"}, &errBuf)
		if !IsHelpError(err) {
			t.Errorf("expected a help error, got %v", err)
		}
	})
}

// TestIsHelpError tests help error detection.
func TestIsHelpError(t *testing.T) {
	if !IsHelpError(flag.ErrHelp) {
		t.Error("flag.ErrHelp should be a help error")
	}
	if IsHelpError(errors.New("boom")) {
		t.Error("an ordinary error should not be a help error")
	}
	if IsHelpError(nil) {
		t.Error("nil should not be a help error")
	}
}

// TestApplication_Run_Compute exercises the end-to-end compute path.
func TestApplication_Run_Compute(t *testing.T) {
	t.Run("Sequential run succeeds", func(t *testing.T) {
		var errBuf, out bytes.Buffer
		application, err := New([]string{"parsum",
			"--mode", "sequential", "--items", "100", "--chunk-size", "10",
			"--threads", "2", "--max-output-rows", "4", "--no-color", "--quiet"}, &errBuf)
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}

		code := application.Run(context.Background(), &out)
		if code != apperrors.ExitSuccess {
			t.Fatalf("Run = %d, want %d; stderr: %s", code, apperrors.ExitSuccess, errBuf.String())
		}

		if !strings.Contains(out.String(), " + ") {
			t.Errorf("output should contain result lines, got:\n%s", out.String())
		}
	})

	t.Run("Parallel run prints banner and elapsed", func(t *testing.T) {
		var errBuf, out bytes.Buffer
		application, err := New([]string{"parsum",
			"--items", "100", "--chunk-size", "10", "--threads", "2",
			"--max-output-rows", "2", "--no-color"}, &errBuf)
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}

		code := application.Run(context.Background(), &out)
		if code != apperrors.ExitSuccess {
			t.Fatalf("Run = %d, want %d", code, apperrors.ExitSuccess)
		}

		output := out.String()
		if !strings.Contains(output, "--- Execution Configuration ---") {
			t.Error("output should contain the configuration banner")
		}
		if !strings.Contains(output, "Summed arrays in:") {
			t.Error("output should contain the elapsed line")
		}
	})

	t.Run("Compare mode prints summary", func(t *testing.T) {
		var errBuf, out bytes.Buffer
		application, err := New([]string{"parsum",
			"--mode", "compare", "--items", "100", "--chunk-size", "10",
			"--threads", "2", "--no-color", "--quiet"}, &errBuf)
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}

		code := application.Run(context.Background(), &out)
		if code != apperrors.ExitSuccess {
			t.Fatalf("Run = %d, want %d", code, apperrors.ExitSuccess)
		}

		if !strings.Contains(out.String(), "--- Comparison Summary ---") {
			t.Errorf("output should contain the comparison summary, got:\n%s", out.String())
		}
	})

	t.Run("Fixed seed yields identical output", func(t *testing.T) {
		run := func() string {
			var errBuf, out bytes.Buffer
			application, err := New([]string{"parsum",
				"--mode", "sequential", "--items", "20", "--chunk-size", "5",
				"--threads", "2", "--seed", "42", "--max-output-rows", "20",
				"--no-color", "--quiet"}, &errBuf)
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
			if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
				t.Fatalf("Run = %d, want %d", code, apperrors.ExitSuccess)
			}
			return out.String()
		}

		if first, second := run(), run(); first != second {
			t.Errorf("seeded runs differ:\n%s\n---\n%s", first, second)
		}
	})

	t.Run("Verbose adds runtime stats", func(t *testing.T) {
		var errBuf, out bytes.Buffer
		application, err := New([]string{"parsum",
			"--mode", "sequential", "--items", "50", "--chunk-size", "10",
			"--threads", "2", "--verbose", "--no-color"}, &errBuf)
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}

		code := application.Run(context.Background(), &out)
		if code != apperrors.ExitSuccess {
			t.Fatalf("Run = %d, want %d", code, apperrors.ExitSuccess)
		}

		if !strings.Contains(out.String(), "Heap allocated:") {
			t.Errorf("verbose output should contain memory stats, got:\n%s", out.String())
		}
	})
}

// TestGenerateInputs tests input array generation.
func TestGenerateInputs(t *testing.T) {
	t.Run("Lengths match configured items", func(t *testing.T) {
		a := &Application{Config: config.AppConfig{Items: 10, Seed: 1}}
		x, y := a.generateInputs()
		if len(x) != 10 || len(y) != 10 {
			t.Errorf("len(x)=%d len(y)=%d, want 10", len(x), len(y))
		}
	})

	t.Run("Triangular input is deterministic", func(t *testing.T) {
		a := &Application{Config: config.AppConfig{Items: 5, Seed: 1}}
		x, _ := a.generateInputs()
		want := []int{0, 1, 3, 6, 10}
		for i := range want {
			if x[i] != want[i] {
				t.Errorf("x[%d] = %d, want %d", i, x[i], want[i])
			}
		}
	})

	t.Run("Zero seed still generates values in range", func(t *testing.T) {
		a := &Application{Config: config.AppConfig{Items: 100}}
		_, y := a.generateInputs()
		for i, v := range y {
			if v < 0 || v > 100000 {
				t.Errorf("y[%d] = %d, out of range [0, 100000]", i, v)
			}
		}
	})
}

// TestVersion tests the version helpers.
func TestVersion(t *testing.T) {
	t.Run("HasVersionFlag detects the flag", func(t *testing.T) {
		if !HasVersionFlag([]string{"--version"}) {
			t.Error("--version should be detected")
		}
		if !HasVersionFlag([]string{"--quiet", "-version"}) {
			t.Error("-version should be detected among other flags")
		}
		if HasVersionFlag([]string{"--quiet"}) {
			t.Error("no version flag should be detected")
		}
	})

	t.Run("PrintVersion writes the version", func(t *testing.T) {
		var buf bytes.Buffer
		PrintVersion(&buf)
		if !strings.Contains(buf.String(), Version) {
			t.Errorf("output %q should contain %q", buf.String(), Version)
		}
	})
}
