package cli

import (
	"errors"

	"github.com/vburojevic/logstat/internal/domain"
)

// outputErrorCommon normalizes error emission across commands, respecting
// the output format so scripts consuming ndjson always get a parseable failure.
func outputErrorCommon(globals *Globals, code, message, hint string) error {
	if globals != nil {
		if err := globals.Emitter().Error(code, message, hint); err != nil {
			globals.Debug("failed to write error: %v", err)
		}
	}
	return &CLIError{Code: code, Message: message, Hint: hint}
}

// outputProcessingError emits a log processing failure with its code and a hint
func outputProcessingError(globals *Globals, err error) error {
	code := "LOG_PROCESSING"
	var perr *domain.Error
	if errors.As(err, &perr) {
		code = perr.Code()
	}
	cliErr := outputErrorCommon(globals, code, err.Error(), hintForError(err)).(*CLIError)
	cliErr.Err = err
	return cliErr
}
