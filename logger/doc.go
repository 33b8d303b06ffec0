// Package logger provides a leveled, colorized console logger with
// selectable line presets and call-site annotation.
//
// # Console Output
//
// Error and warning lines go to stderr, everything else to stdout.
// Output is ANSI-colorized when stdout is a terminal and degrades to
// plain text otherwise (or when Config.NoColor is set).
//
// # Features
//
//   - Global package-level functions (no dependency injection needed)
//   - Ordered verbosity threshold: error < warn < info < debug < trace
//   - FULL, THREAD and SIMPLE line presets
//   - strftime-style timestamp formats (Config.TimeFormat)
//   - Call-site file:line capture with configurable path depth
//   - Optional suppression of log calls originating outside the
//     project source tree (Config.OnlyProjectLogs)
//   - No-newline call variants for continuing a visual line
//   - Level override via the CONLOG_LEVEL environment variable
//
// # Usage
//
// Initialize once at startup:
//
//	cfg := logger.DefaultConfig()
//	cfg.Level = logger.DebugLevel
//	cfg.Preset = logger.PresetThread
//	if err := logger.Init(cfg); err != nil {
//		// invalid configuration, or Init was already called
//	}
//
// Init succeeds at most once per process; a second call returns
// logger.ErrAlreadyInitialized. Calls made before Init use
// logger.DefaultConfig.
//
// Use formatted logging:
//
//	logger.Infof("server started on port %d", 8080)
//	logger.Errorf("failed to connect: %v", err)
//
// Continue a line with the no-newline variants:
//
//	logger.InfofNoNewline("loading %d entries ", n)
//	// ... plain prints, then finish the line yourself
//
// # Guarantees
//
// A log call never panics and never reports an error to its caller;
// write failures on the output stream are dropped. Concurrent calls
// from multiple goroutines never interleave within a line.
package logger
