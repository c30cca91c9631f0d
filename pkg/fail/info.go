package fail

import "strings"

// Info is the plain descriptor shape: a message and an optional cause.
type Info struct {
	message string
	cause   error
}

func (i Info) Message() string {
	return i.message
}

func (i Info) Error() string {
	return i.message
}

func (i Info) Cause() error {
	return i.cause
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (i Info) Unwrap() error {
	return i.cause
}

// Equal compares by case-insensitive message and cause equality.
func (i Info) Equal(other Failure) bool {
	if other == nil {
		return false
	}
	o, ok := other.(Info)
	if !ok {
		return false
	}
	return strings.EqualFold(i.message, o.message) && causesEqual(i.cause, o.cause)
}

// WithCause returns a copy of the descriptor carrying the given cause.
func (i Info) WithCause(cause error) Info {
	if cause == nil {
		panic("fail: WithCause requires a non-nil cause")
	}
	return Info{message: i.message, cause: cause}
}

// WithCode returns a coded descriptor with the given code and this
// descriptor's message as the description.
func (i Info) WithCode(code string) CodedInfo {
	return NewCoded(code, i.message).withCause(i.cause)
}

// AsCoded converts to the coded shape. The code is taken from the cause's
// runtime type name, or GenericCode when there is no cause.
func (i Info) AsCoded() CodedInfo {
	return i.WithCode(deriveCode(i.cause))
}
