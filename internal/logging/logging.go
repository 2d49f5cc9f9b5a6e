// Package logging initializes the process-wide zerolog logger with dual
// sinks: a console writer on stderr and a rotating file under the configured
// log directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init sets up the global logger. logDir is created if missing; verbose
// raises the level to debug. Called once from cmd/planner's root command
// before any subcommand runs.
func Init(logDir string, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339Nano,
		NoColor:    !isTerminal,
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to create log directory %q: %v\n", logDir, err)
		log.Logger = zerolog.New(consoleWriter).With().Timestamp().Logger()
		return
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "planner.log"),
		MaxSize:    16, // megabytes
		MaxBackups: 32,
		MaxAge:     365, // days
		Compress:   true,
	}

	multi := zerolog.MultiLevelWriter(io.Writer(consoleWriter), fileWriter)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	log.Debug().Str("log_dir", logDir).Bool("verbose", verbose).Msg("logging initialized")
}
