package logger_test

import "github.com/go-conlog/conlog/logger"

// This example shows a full setup with debug verbosity and the FULL preset.
func ExampleInit() {
	cfg := logger.DefaultConfig()
	cfg.Level = logger.DebugLevel
	if err := logger.Init(cfg); err != nil {
		// Init fails on an invalid config or when called twice.
		return
	}
	logger.Debugf("debug is on")
	logger.Infof("hello %s", "world")
	logger.Warnln("be careful")
	logger.Errorf("oops: %v", "boom")
}

// This example shows the SIMPLE preset: level tag and message only.
func ExampleInit_simplePreset() {
	cfg := logger.DefaultConfig()
	cfg.Preset = logger.PresetSimple
	logger.Init(cfg)

	logger.Infof("ready")
}

// This example keeps only log calls originating from the program's own
// source tree.
func ExampleInit_onlyProjectLogs() {
	cfg := logger.DefaultConfig()
	cfg.OnlyProjectLogs = true
	cfg.ProjectRoot = "/home/dev/myapp"
	logger.Init(cfg)

	logger.Infof("emitted only when called from under /home/dev/myapp")
}

// This example continues a visual line across several calls.
func ExampleInfofNoNewline() {
	cfg := logger.DefaultConfig()
	cfg.Preset = logger.PresetSimple
	logger.Init(cfg)

	logger.InfofNoNewline("loading %d entries ", 3)
	// subsequent plain output continues the same line
}

// This example parses level and preset names supplied by the user, for
// instance from command-line flags.
func ExampleParseLevel() {
	lvl, err := logger.ParseLevel("debug")
	if err != nil {
		return
	}
	preset, err := logger.ParsePreset("thread")
	if err != nil {
		return
	}
	logger.Init(logger.Config{
		Level:      lvl,
		Preset:     preset,
		PathDepth:  2,
		TimeFormat: "%H:%M:%S",
	})
}
