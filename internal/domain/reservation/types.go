package reservation

import "strings"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

// ParseStatus keeps statuses the portal does not know verbatim (upper-cased);
// the parking API may add states of its own.
func ParseStatus(raw string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(raw)))
}

func (s Status) IsCancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}
