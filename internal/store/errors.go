package store

import "fmt"

// ConfigError means the store could not be constructed: unknown
// backend, missing snapshot file, malformed snapshot JSON, or an
// unresolvable database path.
type ConfigError struct {
	Backend string
	Path    string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("store config (%s, %s): %v", e.Backend, e.Path, e.Err)
	}
	return fmt.Sprintf("store config (%s): %v", e.Backend, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// StoreError means a backend read or write failed at runtime.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
