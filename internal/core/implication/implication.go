package implication

import "time"

// Status tracks the approval lifecycle of a tag implication.
type Status string

const (
	// StatusPending marks an implication that has been requested but not yet approved.
	StatusPending Status = "pending"
	// StatusActive marks an approved implication that is applied to new uploads.
	StatusActive Status = "active"
)

// Record is a forward tag implication: every work tagged with the
// antecedent is implied to also carry the consequent.
//
// The artist ban workflow creates the pair (artist name -> avoid_posting)
// and removes it again on unban. The full implication approval workflow
// lives in the taxonomy service; Atelier only ensures the pair exists or
// is absent.
type Record struct {
	ID             int       `json:"id"`
	AntecedentName string    `json:"antecedent_name"`
	ConsequentName string    `json:"consequent_name"`
	Status         Status    `json:"status"`
	ApproverID     *string   `json:"approver_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
