// Package domain holds the auth types and ports
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user can hold
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is the stored account, Password is the bcrypt hash
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RegisterInput creates an account
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=50" example:"Anderson Alves"`
	Email    string `json:"email" validate:"required,email" example:"anderson@email.com"`
	Password string `json:"password" validate:"required,min=6,max=20" example:"SenhaForte123!"`
}

// LoginInput exchanges credentials for a token
type LoginInput struct {
	Email    string `json:"email" validate:"required,email" example:"anderson@email.com"`
	Password string `json:"password" validate:"required" example:"SenhaForte123!"`
}

// UserSummary is the public part of a user returned with tokens
type UserSummary struct {
	ID    uuid.UUID `json:"id" example:"1d0f3c8e-6a0b-4f7e-9b51-0c7d3c6f2a11"`
	Name  string    `json:"name" example:"Anderson Alves"`
	Email string    `json:"email" example:"anderson@email.com"`
	Role  string    `json:"role" example:"ADMIN"`
}

// Profile is what /auth/me returns
type Profile struct {
	UserSummary
	CreatedAt time.Time `json:"created_at" example:"2025-10-21T12:34:56Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-10-21T12:34:56Z"`
}

// Session is returned by register and login
type Session struct {
	AccessToken string      `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User        UserSummary `json:"user"`
}

// Summary strips the hash and timestamps
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Profile strips the hash
func (u User) Profile() Profile {
	return Profile{UserSummary: u.Summary(), CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}
