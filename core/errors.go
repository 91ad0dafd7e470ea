package core

import (
	"errors"
	"fmt"
	"os"
)

// Error codes of the analysis taxonomy.
const (
	NOERROR   int = 0
	ELOOKUP   int = 122 // a letter or resource without entry, e.g. no phonetic mapping
	EINVALID  int = 123 // malformed sound, rule or parameter value
	EINPUT    int = 124 // unusable input, e.g. an empty word or too few lines
	EINTERNAL int = 125 // internal error
)

var codeTexts = map[int]string{
	NOERROR:   "OK",
	ELOOKUP:   "no entry for symbol",
	EINVALID:  "invalid sound, rule or value",
	EINPUT:    "unusable input",
	EINTERNAL: "internal error",
}

func codeText(code int) string {
	if t, ok := codeTexts[code]; ok {
		return t
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

// analysisError attaches a code and a message to a cause.
type analysisError struct {
	cause error
	code  int
	msg   string
}

var _ AppError = analysisError{}

func (e analysisError) Unwrap() error       { return e.cause }
func (e analysisError) ErrorCode() int      { return e.code }
func (e analysisError) UserMessage() string { return e.msg }

func (e analysisError) Error() string {
	if e.msg == "" || e.msg == e.cause.Error() {
		return fmt.Sprintf("[%d] %v", e.code, e.cause)
	}
	return fmt.Sprintf("[%d] %s: %v", e.code, e.msg, e.cause)
}

// ErrorWithCode adds an error code to err. A nil err is replaced by the
// text of the code.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(codeText(code))
	}
	return analysisError{cause: err, code: code, msg: codeText(code)}
}

// WrapError wraps err with a code and a formatted user message.
// A nil err is replaced by the text of the code.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(codeText(code))
	}
	return analysisError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Error creates an error with a code and a formatted user message.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// Code returns the code of the first AppError in err's chain, NOERROR for
// nil and EINTERNAL for errors without code.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the message of the first AppError in err's chain,
// or the text of err's code. It returns "" for nil.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return codeText(Code(err))
}

// UserError prints an error to stderr, preferring the user message of
// an AppError.
func UserError(err error) {
	var e AppError
	if errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
