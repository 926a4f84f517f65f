package entity

import (
	"time"
)

// Contract is drafted through the mail system and read here for placement analytics.
type Contract struct {
	ID          string        `json:"id" firestore:"id"`
	ProviderID  string        `json:"providerId" firestore:"providerId"` // recruiter, agency or freelancer
	ClientID    string        `json:"clientId" firestore:"clientId"`
	ClientName  string        `json:"clientName,omitempty" firestore:"clientName"`
	CandidateID string        `json:"candidateId,omitempty" firestore:"candidateId"`
	Type        string        `json:"type" firestore:"type"`
	Status      string        `json:"status" firestore:"status"`
	Terms       ContractTerms `json:"terms" firestore:"terms"`
	CreatedAt   time.Time     `json:"createdAt" firestore:"createdAt"`
	RespondedAt *time.Time    `json:"respondedAt,omitempty" firestore:"respondedAt"`
}

type ContractTerms struct {
	PaymentAmount float64    `json:"paymentAmount" firestore:"paymentAmount"`
	Currency      string     `json:"currency,omitempty" firestore:"currency"`
	StartDate     *time.Time `json:"startDate,omitempty" firestore:"startDate"`
	EndDate       *time.Time `json:"endDate,omitempty" firestore:"endDate"`
}

// Job/placement type tags.
const (
	ContractTypeFullTime   = "full_time"
	ContractTypePartTime   = "part_time"
	ContractTypeContract   = "contract"
	ContractTypeFreelance  = "freelance"
	ContractTypeInternship = "internship"
)

const (
	ContractStatusPending   = "pending"
	ContractStatusAccepted  = "accepted"
	ContractStatusActive    = "active"
	ContractStatusCompleted = "completed"
	ContractStatusRejected  = "rejected"
	ContractStatusCancelled = "cancelled"
)

// IsPlaced reports whether the candidate/provider was actually engaged.
func (c *Contract) IsPlaced() bool {
	switch c.Status {
	case ContractStatusAccepted, ContractStatusActive, ContractStatusCompleted:
		return true
	}
	return false
}

func (c *Contract) IsActive() bool {
	return c.Status == ContractStatusAccepted || c.Status == ContractStatusActive
}
