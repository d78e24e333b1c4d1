package models

import "time"

// Session is the state kept in redis behind a bearer token.
type Session struct {
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Actor is the authenticated caller every usecase operation receives.
type Actor struct {
	UserID    string
	SessionID string
	Role      string
	Name      string
	Email     string
	PatientID string
}
