package export

import "fmt"

// ExportError means rendering or writing an export failed. Exports
// never touch session state, so these are safe to surface and ignore.
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s to %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
