// Package domain holds the customer types and ports
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a billable party
type Customer struct {
	ID        uuid.UUID  `json:"id" example:"d8c3f5a0-4c3e-4b71-92a7-9f1f9f524c92"`
	Name      string     `json:"name" example:"João da Silva"`
	Email     string     `json:"email" example:"joao.silva@paysystem.com"`
	Document  *string    `json:"document,omitempty" example:"52998224725"`
	Phone     *string    `json:"phone,omitempty" example:"(11) 98765-4321"`
	CreatedAt time.Time  `json:"created_at" example:"2025-10-24T00:11:33.884Z"`
	UpdatedAt time.Time  `json:"updated_at" example:"2025-10-25T01:11:33.884Z"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// CreateInput registers a customer
type CreateInput struct {
	Name     string  `json:"name" validate:"required,min=2,max=120" example:"João da Silva"`
	Email    string  `json:"email" validate:"required,email,max=254" example:"joao.silva@paysystem.com"`
	Document *string `json:"document,omitempty" validate:"omitempty,document" example:"529.982.247-25"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,phone" example:"(11) 98765-4321"`
}

// UpdateInput patches a customer, nil fields are left alone
// document and phone cannot be cleared, a blank value fails validation
type UpdateInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=120" example:"João da Silva"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=254" example:"joao@paysystem.com"`
	Document *string `json:"document,omitempty" validate:"omitempty,document" example:"11.222.333/0001-81"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,phone" example:"1133224455"`
}

// Empty reports a patch without fields
func (in UpdateInput) Empty() bool {
	return in.Name == nil && in.Email == nil && in.Document == nil && in.Phone == nil
}

// ListInput filters the customer list
type ListInput struct {
	Search string
	Page   int
	Limit  int
}

// Offset is the number of rows skipped for the page
func (in ListInput) Offset() int { return (in.Page - 1) * in.Limit }

// Removed is returned by delete
type Removed struct {
	Message string `json:"message" example:"customer d8c3f5a0-4c3e-4b71-92a7-9f1f9f524c92 removed"`
}
