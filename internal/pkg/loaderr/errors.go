package loaderr

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	StageRead    = "read"
	StageSniff   = "sniff"
	StageParse   = "parse"
	StageConvert = "convert"
)

const (
	CodeFileAbsent         = "FILE_ABSENT"
	CodeFileUnreadable     = "FILE_UNREADABLE"
	CodeMalformedDocument  = "MALFORMED_DOCUMENT"
	CodeUnsupportedVersion = "UNSUPPORTED_VERSION"
	CodeUnconvertible      = "UNCONVERTIBLE"
)

var (
	// ErrFileAbsent is returned when a path does not resolve to a file.
	ErrFileAbsent = New(StageRead, CodeFileAbsent, "file does not exist")

	// ErrFileUnreadable is returned when a file exists but could not be read.
	ErrFileUnreadable = New(StageRead, CodeFileUnreadable, "file could not be read")

	// ErrMalformedDocument is returned when content is not a JSON object of the expected shape.
	ErrMalformedDocument = New(StageParse, CodeMalformedDocument, "document is malformed")

	// ErrUnsupportedVersion is returned when a document declares a version outside the allow-list.
	ErrUnsupportedVersion = New(StageSniff, CodeUnsupportedVersion, "document version is not supported")

	// ErrUnconvertible is returned when a legacy value has no exact unified counterpart.
	ErrUnconvertible = New(StageConvert, CodeUnconvertible, "legacy value has no unified counterpart")
)

type Extras map[string]interface{}

// Error is a pipeline stage failure. Values are never mutated once created: the With*
// methods return modified copies, so the package-level sentinels stay intact.
type Error struct {
	Stage   string
	Code    string
	Message string
	Extras  *Extras

	cause error
}

func New(stage string, code string, message string) *Error {
	return &Error{
		Stage:   stage,
		Code:    code,
		Message: message,
	}
}

func (e Error) WithMessage(format string, parts ...interface{}) *Error {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e Error) WithExtras(extras Extras) *Error {
	e.Extras = &extras
	return &e
}

func (e Error) WithCause(err error) *Error {
	e.cause = errors.WithStack(err)
	return &e
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.cause.Error())
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches errors by code, so a derived error still matches its sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
