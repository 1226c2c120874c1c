package wallpaper

import (
	"errors"
	"fmt"
	"os/exec"
)

// FileOpenError reports that the destination file could not be opened or
// finalised. Op is "open" or "close".
type FileOpenError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// NetworkError reports a failed connection or an interrupted transfer.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("downloading %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// SetError reports that applying the wallpaper failed. Code is the exit
// status of the external command, or the Windows last-error value.
type SetError struct {
	Desktop string
	Command string
	Code    int
	Err     error
}

func (e *SetError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("setting wallpaper on %s (code %d): %v", e.Desktop, e.Code, e.Err)
	}
	return fmt.Sprintf("setting wallpaper on %s with %s (exit %d): %v", e.Desktop, e.Command, e.Code, e.Err)
}

func (e *SetError) Unwrap() error { return e.Err }

func newSetError(desktop, command string, err error) *SetError {
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &SetError{Desktop: desktop, Command: command, Code: code, Err: err}
}
