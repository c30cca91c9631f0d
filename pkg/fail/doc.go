// Package fail defines the failure descriptor carried by the container
// types in pkg/failor. A descriptor is a message plus an optional
// underlying cause.
//
// Two concrete shapes implement the Failure capability:
// - Info: a plain message with an optional cause
// - CodedInfo: a short code and a description, message derived as "code: description"
//
// Descriptors are immutable; WithCause/WithCode return new instances.
// Constructors validate their arguments and panic on blank strings or nil
// errors, since those are programming errors rather than domain failures.
package fail
