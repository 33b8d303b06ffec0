package logger

import (
	"bytes"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/itchyny/timefmt-go"
)

// Per-field colors. fatih/color checks color.NoColor at Sprint time, so
// these degrade to plain text automatically once Init disables color.
var (
	levelColors = map[Level]*color.Color{
		ErrorLevel: color.New(color.FgRed, color.Bold),
		WarnLevel:  color.New(color.FgYellow, color.Bold),
		InfoLevel:  color.New(color.FgGreen, color.Bold),
		DebugLevel: color.New(color.FgBlue, color.Bold),
		TraceLevel: color.New(color.FgMagenta, color.Bold),
	}
	timestampColor  = color.New(color.FgCyan)
	callSiteColor   = color.New(color.FgYellow)
	mainThreadColor = color.New(color.FgHiGreen)
	threadColor     = color.New(color.FgHiBlue)
)

// render builds one log line, without a trailing newline, according to
// the preset:
//
//	FULL:   <ts> <LEVEL> [<gid>] [<path>:<line>] <msg>
//	THREAD: <LEVEL> [<gid>] <msg>
//	SIMPLE: <LEVEL> <msg>
func render(cfg *Config, level Level, file string, line int, msg string) string {
	tag := levelColors[level].Sprint(level.String())

	var b strings.Builder
	switch cfg.Preset {
	case PresetThread:
		b.WriteString(tag)
		b.WriteString(" [")
		b.WriteString(colorGoroutine(goroutineID()))
		b.WriteString("] ")
	case PresetSimple:
		b.WriteString(tag)
		b.WriteString(" ")
	default: // PresetFull
		b.WriteString(timestampColor.Sprint(timefmt.Format(time.Now(), cfg.TimeFormat)))
		b.WriteString(" ")
		b.WriteString(tag)
		b.WriteString(" [")
		b.WriteString(colorGoroutine(goroutineID()))
		b.WriteString("] [")
		b.WriteString(callSiteColor.Sprintf("%s:%d", truncatePath(file, cfg.PathDepth), line))
		b.WriteString("] ")
	}
	b.WriteString(msg)
	return b.String()
}

// truncatePath keeps the last depth directory segments of file plus its
// base name. Depth 0 keeps the base name alone; a depth reaching past
// the start of the path returns it unchanged.
func truncatePath(file string, depth int) string {
	file = filepath.ToSlash(file)
	if depth == 0 {
		return path.Base(file)
	}
	segs := strings.Split(file, "/")
	keep := depth + 1
	if keep >= len(segs) {
		return file
	}
	return strings.Join(segs[len(segs)-keep:], "/")
}

// isProjectFile reports whether file lies at or under root. Paths are
// slash-normalized before comparison; an empty root classifies nothing
// as project.
func isProjectFile(file, root string) bool {
	if root == "" {
		return false
	}
	file = filepath.ToSlash(file)
	root = strings.TrimSuffix(filepath.ToSlash(root), "/")
	return file == root || strings.HasPrefix(file, root+"/")
}

// goroutineID extracts the numeric id from the runtime.Stack header
// ("goroutine 18 [running]:"). It stands in for the thread name, which
// Go does not expose.
func goroutineID() string {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return "?"
	}
	return string(fields[1])
}

// colorGoroutine highlights the main goroutine the way the thread
// presets highlight the main thread.
func colorGoroutine(id string) string {
	if id == "1" {
		return mainThreadColor.Sprint(id)
	}
	return threadColor.Sprint(id)
}
