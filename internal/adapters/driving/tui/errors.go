package tui

import "errors"

// ErrMissingDeckService is returned when the deck service is not provided.
var ErrMissingDeckService = errors.New("tui: deck service is required")

// ErrMissingStudySession is returned when the study session is not provided.
var ErrMissingStudySession = errors.New("tui: study session is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")

// ErrWatchStopped is reported when a file watch ends without being cancelled.
var ErrWatchStopped = errors.New("tui: file watch stopped unexpectedly")
