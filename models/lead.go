package models

import (
	"time"
)

// User type tags stored on a lead record. Every self-registered account is
// created as an administrator of its own tenant.
const (
	UserTypeAdministrator = "A"
)

// LeadSubmission is an incoming registration request. Field names follow the
// public API contract (pt-BR keys).
type LeadSubmission struct {
	Email string `json:"email"`
	Name  string `json:"nome"`
	CNPJ  string `json:"cnpj"`
	Phone string `json:"fone"`
	Note  string `json:"obs,omitempty"`
}

// Lead is a persisted lead record
type Lead struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	TradeName      string     `json:"trade_name"`
	CNPJ           string     `json:"cnpj"`
	Phone          string     `json:"phone"`
	Note           string     `json:"note,omitempty"`
	Identifier     string     `json:"identifier"`
	Email          string     `json:"email"`
	EmailValidated bool       `json:"email_validated"`
	ValidationKey  string     `json:"-"`
	UserType       string     `json:"user_type"`
	CreatedAt      time.Time  `json:"created_at"`
	ValidatedAt    *time.Time `json:"validated_at,omitempty"`
}

// LeadIdentity is the public-facing identity of a created lead
type LeadIdentity struct {
	Email      string `json:"email"`
	Identifier string `json:"identifier"`
}
