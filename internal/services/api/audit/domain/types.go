// Package domain holds the audit trail types and ports
package domain

import (
	"encoding/json"
	"time"
)

// Entity types recorded in the trail
const (
	EntityCustomer = "Customer"
	EntityCharge   = "Charge"
)

// Actions recorded in the trail
const (
	ActionCreate       = "CREATE"
	ActionUpdate       = "UPDATE"
	ActionDelete       = "DELETE"
	ActionUpdateStatus = "UPDATE_STATUS"
)

// NoCustomer is the customer id written for failures that happen before a charge exists
const NoCustomer = "N/A"

// Entry is one audit record
type Entry struct {
	ID         int64           `json:"id" example:"1729339200123456"`
	CustomerID string          `json:"customer_id" example:"7f4d52a9-f8b9-4a6e-bd8e-215ad48b1b42"`
	EntityType string          `json:"entity_type" example:"Charge"`
	Action     string          `json:"action" example:"CREATE"`
	UserID     *string         `json:"user_id,omitempty" example:"1d0f3c8e-6a0b-4f7e-9b51-0c7d3c6f2a11"`
	Details    json.RawMessage `json:"details" swaggertype:"object"`
	Message    string          `json:"message" example:"charge created for customer 7f4d52a9-f8b9-4a6e-bd8e-215ad48b1b42"`
	CreatedAt  time.Time       `json:"created_at" example:"2025-10-21T12:34:56Z"`
}

// NewEntry builds an entry, marshaling details to JSON
// details that cannot be marshaled are recorded as a Failure
func NewEntry(customerID, entity, action, userID string, details any, message string) Entry {
	raw := json.RawMessage(`{}`)
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			b, _ = json.Marshal(Failure{Error: err.Error()})
		}
		raw = b
	}
	e := Entry{
		CustomerID: customerID,
		EntityType: entity,
		Action:     action,
		Details:    raw,
		Message:    message,
	}
	if userID != "" {
		e.UserID = &userID
	}
	return e
}

// Change is the details payload of an update
type Change struct {
	Before any `json:"before"`
	After  any `json:"after"`
}

// Failure is the details payload of an error entry
type Failure struct {
	Error string `json:"error"`
}

// ListInput filters the trail
type ListInput struct {
	Page       int
	Limit      int
	CustomerID string
	Start      *time.Time
	End        *time.Time
}

// Offset is the number of rows skipped for the page
func (in ListInput) Offset() int { return (in.Page - 1) * in.Limit }
