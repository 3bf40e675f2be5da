/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package logging configures zerolog for the command line tools.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level maps a verbosity count to a zerolog level:
// 0 warn, 1 info, 2 debug, 3 and above trace.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// New returns a console logger writing to w at the given verbosity.
// Caller information is added from debug verbosity up. Trace verbosity also
// lowers the zerolog global level, which filters trace events by default.
func New(w io.Writer, verbosity int) zerolog.Logger {
	if Level(verbosity) < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(Level(verbosity))
	}
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    w != os.Stderr,
	}

	logger := zerolog.New(console).Level(Level(verbosity)).With().Timestamp().Logger()
	if verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}
	return logger
}
