package gantt

import (
	"fmt"
)

// ErrIOUnavailable is returned when an input document cannot be read.
type ErrIOUnavailable struct {
	Source string
	Issue  error
}

func (e ErrIOUnavailable) Error() string {
	return fmt.Sprintf(
		"source %q unavailable: %v",
		e.Source,
		e.Issue,
	)
}

func (e ErrIOUnavailable) Unwrap() error {
	return e.Issue
}

// ErrMalformedData is returned when a required field is absent or has the wrong shape.
// Index is the position of the record in its document, -1 for document level issues.
type ErrMalformedData struct {
	Document string
	Field    string
	Issue    error
	Index    int
}

func (e ErrMalformedData) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf(
			"malformed %s document, field %q: %v",
			e.Document,
			e.Field,
			e.Issue,
		)
	}

	return fmt.Sprintf(
		"malformed %s document, record %d field %q: %v",
		e.Document,
		e.Index,
		e.Field,
		e.Issue,
	)
}

func (e ErrMalformedData) Unwrap() error {
	return e.Issue
}

// ErrLayoutValidation identifies the job and field that break the
// job to resource indexing contract.
type ErrLayoutValidation struct {
	Field string
	Issue error
	JobID int
}

func (e ErrLayoutValidation) Error() string {
	return fmt.Sprintf(
		"job %d, field %s: %v",
		e.JobID,
		e.Field,
		e.Issue,
	)
}

func (e ErrLayoutValidation) Unwrap() error {
	return e.Issue
}
