// Package domain holds the charge types and ports
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how a charge is settled
type PaymentMethod string

// Payment methods
const (
	MethodPIX        PaymentMethod = "PIX"
	MethodCreditCard PaymentMethod = "CREDIT_CARD"
	MethodBankSlip   PaymentMethod = "BANK_SLIP"
)

// Status is the charge lifecycle state
type Status string

// Charge statuses
const (
	StatusPending  Status = "PENDING"
	StatusPaid     Status = "PAID"
	StatusFailed   Status = "FAILED"
	StatusCanceled Status = "CANCELED"
	StatusExpired  Status = "EXPIRED"
)

// CustomerSummary is the customer embedded in charge responses
type CustomerSummary struct {
	ID       uuid.UUID `json:"id" example:"d8c3f5a0-4c3e-4b71-92a7-9f1f9f524c92"`
	Name     string    `json:"name" example:"Anderson Alves"`
	Email    string    `json:"email" example:"anderson@email.com"`
	Document *string   `json:"document,omitempty" example:"52998224725"`
	Phone    *string   `json:"phone,omitempty" example:"(11) 99999-9999"`
}

// Charge is a payment request against a customer
type Charge struct {
	ID             uuid.UUID        `json:"id" example:"0b6f3f0e-7f57-4c0c-9a53-0f0c8c2b8f11"`
	CustomerID     uuid.UUID        `json:"customer_id" example:"d8c3f5a0-4c3e-4b71-92a7-9f1f9f524c92"`
	Amount         decimal.Decimal  `json:"amount" swaggertype:"string" example:"150.75"`
	Currency       string           `json:"currency" example:"BRL"`
	Description    *string          `json:"description,omitempty" example:"Premium plan, monthly"`
	Status         Status           `json:"status" enums:"PENDING,PAID,FAILED,CANCELED,EXPIRED" example:"PENDING"`
	PaymentMethod  PaymentMethod    `json:"payment_method" enums:"PIX,CREDIT_CARD,BANK_SLIP" example:"PIX"`
	IdempotencyKey string           `json:"idempotency_key" example:"8d19a6e0-bf2c-48b5-99db-72d94a74f882"`
	DueDate        *time.Time       `json:"due_date,omitempty" example:"2025-11-10T23:59:59Z"`
	PaidAt         *time.Time       `json:"paid_at,omitempty" example:"2025-11-09T10:00:00Z"`
	FailureReason  *string          `json:"failure_reason,omitempty" example:"insufficient funds"`
	Metadata       json.RawMessage  `json:"metadata,omitempty" swaggertype:"object"`
	Customer       *CustomerSummary `json:"customer,omitempty"`
	CreatedAt      time.Time        `json:"created_at" example:"2025-10-24T00:11:33.884Z"`
	UpdatedAt      time.Time        `json:"updated_at" example:"2025-10-24T01:11:33.884Z"`
	DeletedAt      *time.Time       `json:"deleted_at,omitempty"`
}

// CreateInput opens a charge
type CreateInput struct {
	CustomerID     uuid.UUID       `json:"customer_id" validate:"required" example:"d8c3f5a0-4c3e-4b71-92a7-9f1f9f524c92"`
	Amount         decimal.Decimal `json:"amount" validate:"decimal_gt0" swaggertype:"string" example:"199.99"`
	Currency       *string         `json:"currency,omitempty" validate:"omitempty,len=3,alpha" example:"BRL"`
	PaymentMethod  PaymentMethod   `json:"payment_method" validate:"required,oneof=PIX CREDIT_CARD BANK_SLIP" example:"PIX"`
	Description    *string         `json:"description,omitempty" validate:"omitempty,max=255" example:"Premium plan, monthly"`
	DueDate        *time.Time      `json:"due_date,omitempty" example:"2025-11-10T23:59:59Z"`
	IdempotencyKey string          `json:"idempotency_key" validate:"required,max=128" example:"8d19a6e0-bf2c-48b5-99db-72d94a74f882"`
	Metadata       json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// UpdateInput patches a charge, nil fields are left alone
type UpdateInput struct {
	Amount        *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,decimal_gt0" swaggertype:"string" example:"210.00"`
	Currency      *string          `json:"currency,omitempty" validate:"omitempty,len=3,alpha" example:"USD"`
	Description   *string          `json:"description,omitempty" validate:"omitempty,max=255" example:"Premium plan, yearly"`
	DueDate       *time.Time       `json:"due_date,omitempty" example:"2025-12-10T23:59:59Z"`
	FailureReason *string          `json:"failure_reason,omitempty" validate:"omitempty,max=255" example:"card declined"`
	Metadata      json.RawMessage  `json:"metadata,omitempty" swaggertype:"object"`
}

// Empty reports a patch without fields
func (in UpdateInput) Empty() bool {
	return in.Amount == nil && in.Currency == nil && in.Description == nil &&
		in.DueDate == nil && in.FailureReason == nil && len(in.Metadata) == 0
}

// StatusInput moves a charge to another status
type StatusInput struct {
	Status Status `json:"status" validate:"required,oneof=PENDING PAID FAILED CANCELED EXPIRED" example:"PAID"`
}

// ListInput filters the charge list
type ListInput struct {
	Page          int
	Limit         int
	CustomerID    *uuid.UUID
	Status        Status
	PaymentMethod PaymentMethod
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	Start         *time.Time
	End           *time.Time
}

// Offset is the number of rows skipped for the page
func (in ListInput) Offset() int { return (in.Page - 1) * in.Limit }

// CustomerCharges is every charge of one customer
type CustomerCharges struct {
	Total int      `json:"total" example:"2"`
	Data  []Charge `json:"data"`
}

// Removed is returned by delete
type Removed struct {
	Message string `json:"message" example:"charge 0b6f3f0e-7f57-4c0c-9a53-0f0c8c2b8f11 removed"`
	Data    Charge `json:"data"`
}
