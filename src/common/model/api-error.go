package common_model

import (
	"fmt"

	"github.com/pterm/pterm"
)

// DescriptiveError is the JSON error envelope returned by every handler.
type DescriptiveError struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// ApiError wraps a user-facing message with the underlying cause and the
// component where it happened. An attached cause is logged and echoed in the
// envelope's description, so only attach causes the caller may see (parse and
// validation detail); handlers pass nil for provider and storage failures.
type ApiError struct {
	message  string
	location string
	err      error
}

func NewApiError(message string, err error, location string) *ApiError {
	return &ApiError{
		message:  message,
		location: location,
		err:      err,
	}
}

func NewParseJsonError(err error) *ApiError {
	return NewApiError("Unable to parse JSON body", err, "handler")
}

func NewValidationError(err error) *ApiError {
	return NewApiError("Request validation failed", err, "validators")
}

func (e *ApiError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

func (e *ApiError) Unwrap() error {
	return e.err
}

// Send logs the cause, fills the description from it when present, and
// returns the serializable envelope.
func (e *ApiError) Send() DescriptiveError {
	out := DescriptiveError{
		Message:  e.message,
		Location: e.location,
	}

	if e.err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("%s: %s: %v", e.location, e.message, e.err),
		)
		out.Description = e.err.Error()
	}

	return out
}
