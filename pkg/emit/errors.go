package emit

import (
	"fmt"
	"strings"
)

// UnsupportedTargetError reports a target id with no registered emitter.
type UnsupportedTargetError struct {
	Target string
	Known  []string
}

func (e *UnsupportedTargetError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("emit: unsupported target %q", e.Target)
	}
	return fmt.Sprintf("emit: unsupported target %q (known targets: %s)", e.Target, strings.Join(e.Known, ", "))
}

// WriteFailureError reports an output path that could not be produced.
type WriteFailureError struct {
	Path string
	Err  error
}

func (e *WriteFailureError) Error() string {
	return fmt.Sprintf("emit: write %s: %v", e.Path, e.Err)
}

func (e *WriteFailureError) Unwrap() error {
	return e.Err
}
