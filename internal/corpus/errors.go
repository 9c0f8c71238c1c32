package corpus

import "fmt"

// LoadError represents a failure to load or validate one of the corpus
// documents. Any LoadError leaves the assistant inert: a partially loaded
// corpus is never exposed.
type LoadError struct {
	Document string
	Message  string
	Cause    error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corpus load failed for %s: %s: %v", e.Document, e.Message, e.Cause)
	}
	return fmt.Sprintf("corpus load failed for %s: %s", e.Document, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NotFoundError represents a lookup of a job that no longer exists, e.g. a
// stale card reference. Callers treat it as a guarded no-op, never a crash.
type NotFoundError struct {
	JobID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("job %d not found", e.JobID)
}
