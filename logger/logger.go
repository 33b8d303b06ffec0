package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Levels define log verbosity. The ordering is fixed: ErrorLevel is the
// least verbose and TraceLevel the most. A call is emitted only when its
// level is at or below the configured threshold.
type Level int

const (
	// ErrorLevel enables error logging only.
	ErrorLevel Level = iota
	// WarnLevel enables warning logging.
	WarnLevel
	// InfoLevel enables informational logging.
	InfoLevel
	// DebugLevel enables debug logging.
	DebugLevel
	// TraceLevel enables trace logging (everything).
	TraceLevel
)

// String returns the fixed-width tag used in rendered lines.
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN "
	case InfoLevel:
		return "INFO "
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "?????"
	}
}

// ParseLevel maps a case-insensitive level name to its Level.
// Unrecognized names fail with a descriptive error rather than being
// coerced to a default.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return ErrorLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q (want error, warn, info, debug or trace)", s)
	}
}

// Preset selects which fields appear in a rendered line.
type Preset int

const (
	// PresetFull renders timestamp, level, goroutine id, call site and message.
	PresetFull Preset = iota
	// PresetThread renders level, goroutine id and message.
	PresetThread
	// PresetSimple renders level and message only.
	PresetSimple
)

// ParsePreset maps a case-insensitive preset name to its Preset.
func ParsePreset(s string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return PresetFull, nil
	case "thread":
		return PresetThread, nil
	case "simple":
		return PresetSimple, nil
	default:
		return PresetFull, fmt.Errorf("unknown preset %q (want full, thread or simple)", s)
	}
}

// DefaultTimeFormat is the strftime pattern used when Config.TimeFormat
// is left empty.
const DefaultTimeFormat = "%Y-%m-%d %H:%M:%S"

// LevelEnv is the environment variable that, when set to a valid level
// name, overrides Config.Level at Init time.
const LevelEnv = "CONLOG_LEVEL"

// Config defines the process-wide logging configuration installed by Init.
type Config struct {
	// Level is the verbosity threshold; calls above it are suppressed.
	// Default: InfoLevel (via DefaultConfig; the zero value is ErrorLevel)
	Level Level
	// OnlyProjectLogs suppresses calls whose source file lies outside
	// ProjectRoot, regardless of level. Requires ProjectRoot to be set.
	// Default: false
	OnlyProjectLogs bool
	// ProjectRoot is the source-tree prefix that classifies a call site
	// as belonging to the project. Compared after slash normalization.
	// Default: "" (classification disabled)
	ProjectRoot string
	// PathDepth is the number of trailing directory segments shown for
	// the call-site file; 0 shows only the base name, values beyond the
	// path length show the full path.
	// Default: 1 (via DefaultConfig)
	PathDepth int
	// TimeFormat is the strftime pattern for timestamps; empty means
	// DefaultTimeFormat.
	TimeFormat string
	// Preset selects the rendered line layout.
	// Default: PresetFull
	Preset Preset
	// NoColor forces plain output even on a color-capable terminal.
	// Plain output is also used automatically when stdout is not a
	// terminal.
	// Default: false
	NoColor bool
}

// DefaultConfig returns the documented defaults: info threshold, no
// project filtering, path depth 1, DefaultTimeFormat and PresetFull.
func DefaultConfig() Config {
	return Config{
		Level:      InfoLevel,
		PathDepth:  1,
		TimeFormat: DefaultTimeFormat,
		Preset:     PresetFull,
	}
}

// ErrAlreadyInitialized is returned by Init when a configuration has
// already been installed for this process.
var ErrAlreadyInitialized = errors.New("logger: already initialized")

// global state
var (
	// active holds the installed configuration; nil means Init has not
	// run and calls fall back to DefaultConfig.
	active atomic.Pointer[Config]

	// initialized guards the one-time install.
	initialized atomic.Bool

	// Mutex serializing writes so concurrent calls never interleave
	// within a line.
	logMutex sync.Mutex
)

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

func (c *Config) validate() error {
	if c.Level < ErrorLevel || c.Level > TraceLevel {
		return fmt.Errorf("logger: level %d out of range", int(c.Level))
	}
	if c.Preset < PresetFull || c.Preset > PresetSimple {
		return fmt.Errorf("logger: preset %d out of range", int(c.Preset))
	}
	if c.PathDepth < 0 {
		return fmt.Errorf("logger: path depth must not be negative, got %d", c.PathDepth)
	}
	if c.OnlyProjectLogs && c.ProjectRoot == "" {
		return errors.New("logger: OnlyProjectLogs requires ProjectRoot")
	}
	if c.TimeFormat == "" {
		c.TimeFormat = DefaultTimeFormat
	}
	return nil
}

// Init validates config and installs it as the process-wide logging
// configuration. It succeeds at most once; later calls return
// ErrAlreadyInitialized. Before the first successful Init, log calls use
// DefaultConfig.
//
// The CONLOG_LEVEL environment variable, when set to a valid level name,
// overrides Config.Level; an invalid value is reported once on stderr
// and the configured level is kept.
func Init(config Config) error {
	if err := config.validate(); err != nil {
		return err
	}
	if env := os.Getenv(LevelEnv); env != "" {
		if lvl, err := ParseLevel(env); err == nil {
			config.Level = lvl
		} else {
			fmt.Fprintf(outStderr, "invalid %s value %q, keeping level %s\n",
				LevelEnv, env, strings.TrimSpace(config.Level.String()))
		}
	}
	if !initialized.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}
	if config.NoColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}
	active.Store(&config)
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// current returns the installed configuration, or the defaults when Init
// has not run yet.
func current() Config {
	if c := active.Load(); c != nil {
		return *c
	}
	return DefaultConfig()
}

// emit is the single funnel behind every public call. It applies the
// level and project filters, captures the call site, renders the line
// and performs one locked write. Write errors are dropped: a log call
// must never fail its caller.
func emit(level Level, newline bool, msg string) {
	cfg := current()
	if level > cfg.Level {
		return
	}
	file, line := callSite(3)
	if cfg.OnlyProjectLogs && !isProjectFile(file, cfg.ProjectRoot) {
		return
	}
	rendered := render(&cfg, level, file, line, msg)
	if newline {
		rendered += "\n"
	}

	out := outStdout
	if level <= WarnLevel {
		out = outStderr
	}
	logMutex.Lock()
	defer logMutex.Unlock()
	_, _ = io.WriteString(out, rendered)
}

// callSite captures the file and line of the public call site. skip is
// counted from callSite itself: emit's caller is always a one-level
// public wrapper, so the constant holds for the whole call surface.
func callSite(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", 0
	}
	return file, line
}

// --- Formatted logging methods (fmt.Sprintf style) ---

// Errorf logs an error message formatted with fmt.Sprintf.
func Errorf(format string, v ...any) {
	emit(ErrorLevel, true, sprintf(format, v...))
}

// Warnf logs a warning message formatted with fmt.Sprintf.
func Warnf(format string, v ...any) {
	emit(WarnLevel, true, sprintf(format, v...))
}

// Infof logs an informational message formatted with fmt.Sprintf.
func Infof(format string, v ...any) {
	emit(InfoLevel, true, sprintf(format, v...))
}

// Debugf logs a debug message formatted with fmt.Sprintf.
func Debugf(format string, v ...any) {
	emit(DebugLevel, true, sprintf(format, v...))
}

// Tracef logs a trace message formatted with fmt.Sprintf.
func Tracef(format string, v ...any) {
	emit(TraceLevel, true, sprintf(format, v...))
}

// --- Plain logging methods (Println style) ---

// Errorln logs an error message by joining arguments with fmt.Sprint.
func Errorln(v ...any) {
	emit(ErrorLevel, true, fmt.Sprint(v...))
}

// Warnln logs a warning message by joining arguments with fmt.Sprint.
func Warnln(v ...any) {
	emit(WarnLevel, true, fmt.Sprint(v...))
}

// Infoln logs an informational message by joining arguments with fmt.Sprint.
func Infoln(v ...any) {
	emit(InfoLevel, true, fmt.Sprint(v...))
}

// Debugln logs a debug message by joining arguments with fmt.Sprint.
func Debugln(v ...any) {
	emit(DebugLevel, true, fmt.Sprint(v...))
}

// Traceln logs a trace message by joining arguments with fmt.Sprint.
func Traceln(v ...any) {
	emit(TraceLevel, true, fmt.Sprint(v...))
}

// --- No-newline variants ---
//
// These render exactly like their formatted counterparts but omit the
// trailing line terminator, so the caller can continue the same visual
// line with subsequent output.

// ErrorfNoNewline logs an error message without a trailing newline.
func ErrorfNoNewline(format string, v ...any) {
	emit(ErrorLevel, false, sprintf(format, v...))
}

// WarnfNoNewline logs a warning message without a trailing newline.
func WarnfNoNewline(format string, v ...any) {
	emit(WarnLevel, false, sprintf(format, v...))
}

// InfofNoNewline logs an informational message without a trailing newline.
func InfofNoNewline(format string, v ...any) {
	emit(InfoLevel, false, sprintf(format, v...))
}

// DebugfNoNewline logs a debug message without a trailing newline.
func DebugfNoNewline(format string, v ...any) {
	emit(DebugLevel, false, sprintf(format, v...))
}

// TracefNoNewline logs a trace message without a trailing newline.
func TracefNoNewline(format string, v ...any) {
	emit(TraceLevel, false, sprintf(format, v...))
}

// sprintf skips formatting when there are no arguments, so a message
// containing stray verbs passes through untouched.
func sprintf(format string, v ...any) string {
	if len(v) == 0 {
		return format
	}
	return fmt.Sprintf(format, v...)
}
