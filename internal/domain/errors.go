package domain

import "errors"

type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindInvalidArgument
	KindConstraintViolation
)

// Error is a domain failure carrying a kind the transports map onto their
// wire codes and a message that is returned to the caller as-is.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func InvalidArgument(message string) error {
	return &Error{Kind: KindInvalidArgument, Message: message}
}

func ConstraintViolation(message string) error {
	return &Error{Kind: KindConstraintViolation, Message: message}
}

// KindOf returns the kind of err, or zero when err carries no domain kind.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

func IsConstraintViolation(err error) bool { return KindOf(err) == KindConstraintViolation }
