package fail

import "strings"

// New builds a plain descriptor from a message.
// Panics if message is blank.
func New(message string) Info {
	return Info{message: mustText("message", message)}
}

// NewCoded builds a coded descriptor. Code and description are trimmed.
// Panics if either is blank.
func NewCoded(code, description string) CodedInfo {
	return CodedInfo{
		code:        mustText("code", code),
		description: mustText("description", description),
	}
}

// Wrap builds a plain descriptor carrying the given cause.
// Panics if message is blank or cause is nil.
func Wrap(message string, cause error) Info {
	return Info{message: mustText("message", message), cause: mustCause(cause)}
}

// WrapCoded builds a coded descriptor carrying the given cause.
// Panics if code or description is blank or cause is nil.
func WrapCoded(code, description string, cause error) CodedInfo {
	return CodedInfo{
		code:        mustText("code", code),
		description: mustText("description", description),
		cause:       mustCause(cause),
	}
}

// FromError builds a plain descriptor whose message is err's message and
// whose cause is err itself. Panics if err is nil.
func FromError(err error) Info {
	err = mustCause(err)
	return Info{message: mustText("message", err.Error()), cause: err}
}

func mustText(name, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		panic("fail: " + name + " must not be blank")
	}
	return trimmed
}

func mustCause(cause error) error {
	if cause == nil {
		panic("fail: cause must not be nil")
	}
	return cause
}
