package command

import (
	"errors"
	"fmt"
)

// Status is the process exit code a command run resolves to. The values are
// part of the CLI contract and must not change.
type Status int

const (
	// StatusSuccess means the command completed.
	StatusSuccess Status = 0
	// StatusUnsupported means the device cannot perform the requested
	// operation, or an index exceeded the device's range.
	StatusUnsupported Status = 1
	// StatusUsage means the command line was malformed; the full usage
	// text is printed as a side effect.
	StatusUsage Status = 2
	// StatusDevice means the device was missing or invalid, or an
	// operation against it failed.
	StatusDevice Status = 3
)

// Error is a command failure carrying the status it resolves to. The message
// always includes the offending value (path, index or command name).
type Error struct {
	Status Status
	msg    string
}

// Error returns the failure message.
func (e *Error) Error() string { return e.msg }

// Usagef builds a usage error.
func Usagef(format string, args ...interface{}) error {
	return &Error{Status: StatusUsage, msg: fmt.Sprintf(format, args...)}
}

// Unsupportedf builds an unsupported-operation error.
func Unsupportedf(format string, args ...interface{}) error {
	return &Error{Status: StatusUnsupported, msg: fmt.Sprintf(format, args...)}
}

// Devicef builds a device error.
func Devicef(format string, args ...interface{}) error {
	return &Error{Status: StatusDevice, msg: fmt.Sprintf(format, args...)}
}

// StatusOf maps an error returned by a command run to its exit status. A nil
// error is success; errors without an explicit status are device errors.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Status
	}
	return StatusDevice
}
