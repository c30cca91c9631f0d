package fail

import (
	"reflect"
	"strings"
)

// GenericCode is used when a coded descriptor is derived from a plain one
// that has no cause to take a code from.
const GenericCode = "failure"

// Failure describes why an operation did not succeed.
type Failure interface {
	error
	// Message returns the human-readable failure message. Never empty.
	Message() string
	// Cause returns the underlying error, or nil when there is none.
	Cause() error
	// Unwrap exposes the cause to errors.Is and errors.As. Returns nil
	// when there is no cause.
	Unwrap() error
}

// Coded extends Failure with a machine-readable short code.
type Coded interface {
	Failure
	// Code returns the short failure code. Never empty.
	Code() string
	// Description returns the failure description. Never empty.
	Description() string
}

// Equal reports whether two descriptors are equal under the variant's own
// equality rules. Nil descriptors are equal only to each other.
func Equal(a, b Failure) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch f := a.(type) {
	case Info:
		return f.Equal(b)
	case CodedInfo:
		return f.Equal(b)
	}

	// Unknown implementations compare by message and cause.
	return strings.EqualFold(a.Message(), b.Message()) && causesEqual(a.Cause(), b.Cause())
}

func causesEqual(a, b error) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b || a.Error() == b.Error()
}

// deriveCode synthesizes a code from the cause's runtime type name. The
// conversion is best effort: the original code is not recoverable from a
// plain descriptor.
func deriveCode(cause error) string {
	if cause == nil {
		return GenericCode
	}

	t := reflect.TypeOf(cause)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
