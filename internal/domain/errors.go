package domain

import "errors"

// Repository sentinels.
var (
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrNoFieldsProvided = errors.New("no fields to update")
)

type Kind uint8

const (
	KindValidation Kind = iota + 1 // field rule violations, carries Errors
	KindBadRequest                 // malformed request envelope or parameter
	KindTooLarge
	KindNotFound
	KindConflict
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBadRequest:
		return "bad_request"
	case KindTooLarge:
		return "too_large"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}

// Error is the closed set of outcomes an operation can fail with.
type Error struct {
	Kind    Kind
	Message string
	Errors  []string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string, errs []string) error {
	return &Error{Kind: KindValidation, Message: msg, Errors: errs}
}
func BadRequest(msg string) error { return &Error{Kind: KindBadRequest, Message: msg} }
func TooLarge(msg string) error   { return &Error{Kind: KindTooLarge, Message: msg} }
func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) error   { return &Error{Kind: KindConflict, Message: msg} }
func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns KindInternal for errors outside the union.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
