package cli

import (
	"bufio"
	"errors"
	"io/fs"

	"github.com/vburojevic/logstat/internal/domain"
)

func hintForError(err error) string {
	if err == nil {
		return ""
	}

	var perr *domain.Error
	if !errors.As(err, &perr) {
		return ""
	}

	switch perr.Kind {
	case domain.KindFileAccess:
		return hintForFileAccess(err)
	case domain.KindUnknownReport:
		return "Use --report average, count or user_agent"
	case domain.KindJSONDecode:
		return "Every line must be a JSON object; drop --strict to skip malformed lines"
	case domain.KindDataValidation:
		return "Every line needs timestamp and url fields and a numeric response time; --date expects YYYY-MM-DD (see `logstat config show` for field names)"
	}
	return ""
}

func hintForFileAccess(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "Check the --file path"
	case errors.Is(err, fs.ErrPermission):
		return "The log file is not readable by the current user"
	case errors.Is(err, bufio.ErrTooLong):
		return "A line exceeds 1 MiB; is this a newline-delimited JSON file?"
	}
	return ""
}
