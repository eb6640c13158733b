package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tsets/pkg/graph"
	"github.com/matzehuels/tsets/pkg/observability"
	"github.com/matzehuels/tsets/pkg/pipeline"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", LogInfo, func(l *log.Logger) { l.Info("enumerated") }, true},
		{"debug at info level", LogInfo, func(l *log.Logger) { l.Debug("stage done") }, false},
		{"debug at debug level", LogDebug, func(l *log.Logger) { l.Debug("stage done") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestCommandLogger(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	root := c.RootCommand()

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"enumerate"}, "cmd=enumerate"},
		{[]string{"cache", "clear"}, `cmd="cache clear"`},
	}
	for _, tt := range tests {
		cmd, _, err := root.Find(tt.args)
		if err != nil {
			t.Fatalf("Find(%v): %v", tt.args, err)
		}
		buf.Reset()
		commandLogger(c.Logger, cmd).Info("x")
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("%v logged %q, want %s", tt.args, buf.String(), tt.want)
		}
	}

	if commandLogger(c.Logger, root) != c.Logger {
		t.Error("root command should use the CLI logger unchanged")
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext without a logger should return log.Default()")
	}
	l := newLogger(io.Discard, LogInfo)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLogRendered(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, LogInfo)
	start := time.Now()

	logRendered(l, graph.Cycle(5), "svg", "graph.svg", pipeline.NoHighlight, start)
	if out := buf.String(); !strings.Contains(out, "rendered") || !strings.Contains(out, "path=graph.svg") || strings.Contains(out, "tset=") {
		t.Errorf("unhighlighted render logged %q", out)
	}

	buf.Reset()
	logRendered(l, graph.Cycle(5), "png", "tset-2.png", 2, start)
	if out := buf.String(); !strings.Contains(out, "tset=2") || !strings.Contains(out, "format=png") {
		t.Errorf("highlighted render logged %q", out)
	}
}

func TestEnumerateLogsCarryCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var logs bytes.Buffer
	path := filepath.Join(t.TempDir(), "c6.txt")
	if _, err := executeCLI(New(&logs, LogInfo), io.Discard, "enumerate", "-n", "6", "-o", path); err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	out := logs.String()
	for _, want := range []string{"enumerated", "cmd=enumerate", "matchings=17", "filtered=12"} {
		if !strings.Contains(out, want) {
			t.Errorf("first run log missing %q:\n%s", want, out)
		}
	}

	logs.Reset()
	if _, err := executeCLI(New(&logs, LogInfo), io.Discard, "enumerate", "-n", "6", "-o", path); err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if out := logs.String(); !strings.Contains(out, "loaded from cache") || !strings.Contains(out, "cmd=enumerate") {
		t.Errorf("second run should be served from the file cache:\n%s", out)
	}
}

func TestVerboseLogsStagesThroughSpinner(t *testing.T) {
	forceTerminal(t)
	t.Cleanup(observability.Reset)
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var logs, status bytes.Buffer
	c := New(&logs, LogInfo)
	c.SetLogLevel(LogDebug)

	path := filepath.Join(t.TempDir(), "c5.txt")
	if _, err := executeCLI(c, &status, "enumerate", "-n", "5", "--no-cache", "-o", path); err != nil {
		t.Fatalf("enumerate: %v", err)
	}

	if !strings.Contains(status.String(), "filtering T-sets") {
		t.Errorf("spinner did not show the filter stage:\n%q", status.String())
	}
	for _, want := range []string{"stage done", "stage=independent_sets", "stage=filter"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("debug log missing %q:\n%s", want, logs.String())
		}
	}
}
