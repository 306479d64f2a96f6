package jamf

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a serial number has no record in Jamf Pro. Devices
// legitimately absent from the MDM are an expected outcome, not a failure.
var ErrNotFound = errors.New("computer not found in jamf")

// LookupError indicates a serial number lookup failed with an unexpected
// non-2xx response. It is recovered per device: the run continues.
type LookupError struct {
	Serial     string
	StatusCode int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("jamf lookup for serial %s failed (status %d)", e.Serial, e.StatusCode)
}

// WriteError indicates a purchasing update failed with a non-2xx response.
// It is recovered per device and never retried within the same run.
type WriteError struct {
	ComputerID int
	StatusCode int
	Body       string
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("jamf update for computer %d failed (status %d): %s", e.ComputerID, e.StatusCode, e.Body)
}
