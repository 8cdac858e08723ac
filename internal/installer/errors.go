package installer

import "fmt"

// InstallationError is the single failure kind of the installer. Every error
// that should cancel the run with a message to the user is one of these.
type InstallationError struct {
	Msg string
	Err error
}

func (e *InstallationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%v)", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *InstallationError) Unwrap() error { return e.Err }

// Errorf builds an InstallationError from a format string.
func Errorf(format string, a ...any) *InstallationError {
	return &InstallationError{Msg: fmt.Sprintf(format, a...)}
}

// Wrap attaches cause to a new InstallationError.
func Wrap(cause error, format string, a ...any) *InstallationError {
	return &InstallationError{Msg: fmt.Sprintf(format, a...), Err: cause}
}
