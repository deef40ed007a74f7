package analyzer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/buildwire/internal/host"
	"github.com/alexisbeaulieu97/buildwire/internal/logger"
)

func newBufferedAnalyzer(t *testing.T) (*UnresolvedDependencies, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)
	return New(log), buf
}

func warnLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestBuildFinishedEmitsConsolidatedWarning(t *testing.T) {
	t.Parallel()

	a, buf := newBufferedAnalyzer(t)
	a.Analyze("compile", []host.ModuleID{"org.demo:a:1.0.0", "org.demo:b:2.0.0"})
	a.Analyze("runtime", []host.ModuleID{"org.demo:c:1.0.0"})

	a.BuildFinished(host.NewProject("demo", "1.0.0"))

	entries := warnLines(t, buf)
	require.Len(t, entries, 1)

	msg, _ := entries[0]["message"].(string)
	require.Contains(t, msg, "compile")
	require.Contains(t, msg, "runtime")
	require.Contains(t, msg, "org.demo:a:1.0.0")
	require.Contains(t, msg, "org.demo:b:2.0.0")
	require.Contains(t, msg, "org.demo:c:1.0.0")
	require.Equal(t, "warn", entries[0]["level"])
	require.Equal(t, "demo", entries[0]["project"])
	require.Equal(t, float64(2), entries[0]["configurations"])
}

func TestBuildFinishedIsIdempotent(t *testing.T) {
	t.Parallel()

	a, buf := newBufferedAnalyzer(t)
	a.Analyze("compile", []host.ModuleID{"org.demo:a:1.0.0"})

	p := host.NewProject("demo", "1.0.0")
	a.BuildFinished(p)
	a.BuildFinished(p)

	require.Len(t, warnLines(t, buf), 1)
}

func TestBuildFinishedSilentWithoutEntries(t *testing.T) {
	t.Parallel()

	a, buf := newBufferedAnalyzer(t)
	a.Analyze("compile", nil)
	a.Analyze("runtime", []host.ModuleID{})

	a.BuildFinished(host.NewProject("demo", "1.0.0"))
	require.Empty(t, buf.String())
}

func TestAnalyzeLatestResolutionWins(t *testing.T) {
	t.Parallel()

	a, buf := newBufferedAnalyzer(t)
	a.Analyze("compile", []host.ModuleID{"org.demo:a:1.0.0"})
	a.Analyze("compile", []host.ModuleID{"org.demo:b:2.0.0"})

	a.BuildFinished(host.NewProject("demo", "1.0.0"))

	entries := warnLines(t, buf)
	require.Len(t, entries, 1)
	msg, _ := entries[0]["message"].(string)
	require.NotContains(t, msg, "org.demo:a:1.0.0")
	require.Contains(t, msg, "org.demo:b:2.0.0")
}

func TestAnalyzeSuccessfulReResolveClearsEntry(t *testing.T) {
	t.Parallel()

	a, buf := newBufferedAnalyzer(t)
	a.Analyze("compile", []host.ModuleID{"org.demo:a:1.0.0"})
	a.Analyze("compile", nil)

	a.BuildFinished(host.NewProject("demo", "1.0.0"))
	require.Empty(t, buf.String())
}

func TestAnalyzeAfterFlushIsIgnored(t *testing.T) {
	t.Parallel()

	a, buf := newBufferedAnalyzer(t)
	p := host.NewProject("demo", "1.0.0")
	a.BuildFinished(p)

	a.Analyze("compile", []host.ModuleID{"org.demo:a:1.0.0"})
	a.BuildFinished(p)

	require.Empty(t, buf.String())
}
