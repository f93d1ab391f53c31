package zerror

import (
	"errors"
	"fmt"
)

// ZError represents the error structure.
type ZError struct {
	parent error
	kind   Kind
	code   string
	msg    string
}

// NewZError initializes a ZError instance.
//
// code example: PRICE_NOT_POSITIVE
func NewZError(parent error, kind Kind, code, msg string) ZError {
	return ZError{
		parent: parent,
		kind:   kind,
		code:   code,
		msg:    msg,
	}
}

// Error returns the error message for the ZError.
func (e ZError) Error() string {
	if e.parent != nil {
		return fmt.Sprintf("%s [%s]: %s: %v", e.kind, e.code, e.msg, e.parent)
	}
	return fmt.Sprintf("%s [%s]: %s", e.kind, e.code, e.msg)
}

// WrapParent attaches an underlying error to an existing predefined ZError.
func (e ZError) WrapParent(parent error) ZError {
	if parent == nil {
		return e
	}
	e.parent = parent
	return e
}

// WithMsgf returns a copy of a predefined ZError carrying a specific message.
func (e ZError) WithMsgf(format string, args ...any) ZError {
	e.msg = fmt.Sprintf(format, args...)
	return e
}

// Unwrap returns the underlying error for the ZError.
func (e ZError) Unwrap() error {
	return e.parent
}

// Is matches another ZError with the same kind and code, so predefined
// templates can be used as errors.Is targets.
func (e ZError) Is(target error) bool {
	var t ZError
	if !errors.As(target, &t) {
		return false
	}
	return e.kind == t.kind && e.code == t.code
}

// Kind returns the violation kind of the ZError.
func (e ZError) Kind() Kind {
	return e.kind
}

// Code returns the code of the ZError.
func (e ZError) Code() string {
	return e.code
}

// Msg returns the message of the ZError.
func (e ZError) Msg() string {
	return e.msg
}

// Parent returns the underlying error for the ZError.
func (e ZError) Parent() error {
	return e.parent
}

// KindOf returns the kind of the first ZError in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var zErr ZError
	if errors.As(err, &zErr) {
		return zErr.kind
	}
	return KindUnknown
}

func NewStructuralMismatch(code, msg string) ZError {
	return NewZError(nil, KindStructuralMismatch, code, msg)
}

func NewConstraintViolation(code, msg string) ZError {
	return NewZError(nil, KindConstraintViolation, code, msg)
}

func NewProjectionViolation(code, msg string) ZError {
	return NewZError(nil, KindProjectionViolation, code, msg)
}

func NewRelevanceViolation(code, msg string) ZError {
	return NewZError(nil, KindRelevanceViolation, code, msg)
}

func NewTimingViolation(code, msg string) ZError {
	return NewZError(nil, KindTimingViolation, code, msg)
}
