package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Study File Errors.

	// ErrFileNotFound indicates the requested study file does not exist.
	ErrFileNotFound = errors.New("study file not found")

	// ErrDecode indicates the study file is not valid UTF-8 text.
	ErrDecode = errors.New("study file is not valid UTF-8")

	// ErrEmptyDeck indicates the study file was readable but produced no
	// question/answer pairs.
	ErrEmptyDeck = errors.New("no valid question/answer pairs")

	// ErrNoDeck indicates an operation needs a loaded deck and none is loaded.
	ErrNoDeck = errors.New("no deck loaded")
)

// Describe renders err as a message suitable for showing to the user.
// Known study file errors get a hint on how to fix them; anything else
// is returned as is.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFileNotFound):
		return "File not found. Check the path or pick another file."
	case errors.Is(err, ErrDecode):
		return "File could not be decoded. Save it as UTF-8 and try again."
	case errors.Is(err, ErrEmptyDeck):
		return "The file has no valid question/answer pairs."
	case errors.Is(err, ErrNoDeck):
		return "No study file loaded."
	default:
		return err.Error()
	}
}
