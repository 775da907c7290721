package application

import "github.com/Natalia-Nic/construction-company-api/internal/httperr"

// ===============================
// Application Status
// ===============================

type Status string

const (
	StatusPending    Status = "Pending"
	StatusApproved   Status = "Approved"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
	StatusRejected   Status = "Rejected"
)

// MaxStatusLen matches the status column width.
const MaxStatusLen = 20

// Contractors may introduce their own workflow states, so transitions are
// not enforced; only the column limit is.
func ValidateStatus(s string) error {
	if s == "" || len(s) > MaxStatusLen {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
