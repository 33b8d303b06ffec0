package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-conlog/conlog/logger"
)

// Example demonstrating conlog usage.
func main() {
	cfg := logger.DefaultConfig()
	cfg.Level = logger.TraceLevel
	cfg.PathDepth = 1

	// Usage: ./conlog [preset]
	// Example: ./conlog simple
	if len(os.Args) > 1 {
		preset, err := logger.ParsePreset(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg.Preset = preset
	}

	if err := logger.Init(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// One call per level; error and warn land on stderr.
	logger.Tracef("starting at %v", time.Now())
	logger.Debugf("config loaded: preset=%v depth=%d", cfg.Preset, cfg.PathDepth)
	logger.Infof("hello %s", "world")
	logger.Warnln("be careful")
	logger.Errorf("oops: %v", "something happened")

	// Continue a line across calls with the no-newline variants.
	logger.InfofNoNewline("counting ")
	for i := 1; i <= 3; i++ {
		fmt.Printf("%d ", i)
	}
	fmt.Println("done")

	// Log calls from goroutines carry their own goroutine id in the
	// FULL and THREAD presets.
	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Infof("hello from a worker goroutine")
	}()
	<-done
}
