package logger

import (
	"strings"
	"sync"
	"testing"
)

// TestConcurrency_MultipleLevels verifies that the write mutex prevents
// garbled output when many goroutines log simultaneously at different
// levels.
func TestConcurrency_MultipleLevels(t *testing.T) {
	stdoutBuf, stderrBuf := resetForTest(t)

	cfg := DefaultConfig()
	cfg.Level = TraceLevel
	cfg.Preset = PresetSimple
	cfg.NoColor = true
	mustInit(t, cfg)

	const numGoroutines = 200
	const messagesPerGoroutine = 25

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				Debugf("goroutine-%d-debug-%d", id, j)
				Infof("goroutine-%d-info-%d", id, j)
				Warnf("goroutine-%d-warn-%d", id, j)
				Errorf("goroutine-%d-error-%d", id, j)
			}
		}(i)
	}
	wg.Wait()

	output := stdoutBuf.String() + stderrBuf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")

	expectedLines := numGoroutines * messagesPerGoroutine * 4
	if len(lines) != expectedLines {
		t.Fatalf("expected %d log lines, got %d", expectedLines, len(lines))
	}

	// Each line must be complete: level tag at the start, goroutine
	// marker in the body.
	for i, line := range lines {
		hasLevelTag := strings.HasPrefix(line, "DEBUG") ||
			strings.HasPrefix(line, "INFO") ||
			strings.HasPrefix(line, "WARN") ||
			strings.HasPrefix(line, "ERROR")
		if !hasLevelTag {
			t.Fatalf("line %d appears garbled (missing level tag): %q", i, line)
		}
		if !strings.Contains(line, "goroutine-") {
			t.Fatalf("line %d appears garbled (missing goroutine marker): %q", i, line)
		}
	}
}

// TestConcurrency_ThreadPreset exercises the goroutine-id capture under
// contention; every rendered id must be a complete bracketed number.
func TestConcurrency_ThreadPreset(t *testing.T) {
	stdoutBuf, _ := resetForTest(t)

	cfg := DefaultConfig()
	cfg.Preset = PresetThread
	cfg.NoColor = true
	mustInit(t, cfg)

	const numGoroutines = 100
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			Infof("msg-%d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(stdoutBuf.String()), "\n")
	if len(lines) != numGoroutines {
		t.Fatalf("expected %d log lines, got %d", numGoroutines, len(lines))
	}
	for i, line := range lines {
		open := strings.Index(line, "[")
		end := strings.Index(line, "]")
		if open < 0 || end < open+2 {
			t.Fatalf("line %d missing goroutine id: %q", i, line)
		}
		for _, r := range line[open+1 : end] {
			if r < '0' || r > '9' {
				t.Fatalf("line %d has non-numeric goroutine id: %q", i, line)
			}
		}
	}
}
