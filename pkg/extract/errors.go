package extract

import "fmt"

// SourceNotFoundError reports a missing extraction input (bundle path,
// screenshot path, or an empty input set).
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	if e.Path == "" {
		return "extract: no source provided"
	}
	return fmt.Sprintf("extract: source not found: %s", e.Path)
}

// SourceUnreadableError reports an input that exists but cannot be opened or
// parsed (corrupt archive, undecodable image at the call boundary).
type SourceUnreadableError struct {
	Path string
	Err  error
}

func (e *SourceUnreadableError) Error() string {
	return fmt.Sprintf("extract: source unreadable: %s: %v", e.Path, e.Err)
}

func (e *SourceUnreadableError) Unwrap() error { return e.Err }
