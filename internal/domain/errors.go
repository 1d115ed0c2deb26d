package domain

import (
	"errors"
	"fmt"
)

// ErrorKind tags the failure classes a processing run can end with
type ErrorKind int

const (
	KindFileAccess ErrorKind = iota + 1
	KindJSONDecode
	KindDataValidation
	KindUnknownReport
)

// Code returns the machine-readable code emitted by the CLI
func (k ErrorKind) Code() string {
	switch k {
	case KindFileAccess:
		return "FILE_ACCESS"
	case KindJSONDecode:
		return "JSON_DECODE"
	case KindDataValidation:
		return "DATA_VALIDATION"
	case KindUnknownReport:
		return "UNKNOWN_REPORT"
	default:
		return "LOG_PROCESSING"
	}
}

func (k ErrorKind) String() string {
	switch k {
	case KindFileAccess:
		return "file access error"
	case KindJSONDecode:
		return "json decode error"
	case KindDataValidation:
		return "data validation error"
	case KindUnknownReport:
		return "unknown report kind"
	default:
		return "log processing error"
	}
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrFileAccess     = &Error{Kind: KindFileAccess}
	ErrJSONDecode     = &Error{Kind: KindJSONDecode}
	ErrDataValidation = &Error{Kind: KindDataValidation}
	ErrUnknownReport  = &Error{Kind: KindUnknownReport}
)

// Error is the single error type returned by log processing.
// Line is 1-based and set for JSON decode and data validation failures.
type Error struct {
	Kind   ErrorKind
	Path   string
	Line   int
	Report string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindFileAccess:
		if e.Err != nil {
			return fmt.Sprintf("cannot read log file %s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("cannot read log file %s", e.Path)
	case KindUnknownReport:
		return fmt.Sprintf("unknown report type: %q", e.Report)
	}

	msg := e.Kind.String()
	if e.Line > 0 {
		msg = fmt.Sprintf("%s at line %d", msg, e.Line)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Code returns the machine-readable code for the error's kind
func (e *Error) Code() string {
	return e.Kind.Code()
}

// NewFileAccessError wraps an I/O failure on path
func NewFileAccessError(path string, err error) *Error {
	return &Error{Kind: KindFileAccess, Path: path, Err: err}
}

// NewJSONDecodeError reports an undecodable line
func NewJSONDecodeError(line int, err error) *Error {
	return &Error{Kind: KindJSONDecode, Line: line, Err: err}
}

// NewValidationError reports a record that cannot be aggregated
func NewValidationError(line int, detail string, err error) *Error {
	return &Error{Kind: KindDataValidation, Line: line, Detail: detail, Err: err}
}

// NewUnknownReportError reports a report kind outside the supported set
func NewUnknownReportError(name string) *Error {
	return &Error{Kind: KindUnknownReport, Report: name}
}
