package fail

import "strings"

// CodedInfo is the coded descriptor shape: a short code, a description and
// an optional cause. The message is derived as "code: description".
type CodedInfo struct {
	code        string
	description string
	cause       error
}

func (c CodedInfo) Code() string {
	return c.code
}

func (c CodedInfo) Description() string {
	return c.description
}

func (c CodedInfo) Message() string {
	return c.code + ": " + c.description
}

func (c CodedInfo) Error() string {
	return c.Message()
}

func (c CodedInfo) Cause() error {
	return c.cause
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (c CodedInfo) Unwrap() error {
	return c.cause
}

// Equal compares by case-insensitive code and description and cause
// equality. A plain descriptor never equals a coded one.
func (c CodedInfo) Equal(other Failure) bool {
	if other == nil {
		return false
	}
	o, ok := other.(CodedInfo)
	if !ok {
		return false
	}
	return strings.EqualFold(c.code, o.code) &&
		strings.EqualFold(c.description, o.description) &&
		causesEqual(c.cause, o.cause)
}

// WithCause returns a copy of the descriptor carrying the given cause.
func (c CodedInfo) WithCause(cause error) CodedInfo {
	if cause == nil {
		panic("fail: WithCause requires a non-nil cause")
	}
	return CodedInfo{code: c.code, description: c.description, cause: cause}
}

func (c CodedInfo) withCause(cause error) CodedInfo {
	return CodedInfo{code: c.code, description: c.description, cause: cause}
}

// AsInfo converts to the plain shape using the derived message.
func (c CodedInfo) AsInfo() Info {
	return Info{message: c.Message(), cause: c.cause}
}
