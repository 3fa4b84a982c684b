// Package models holds the account types shared by the service, transport
// and client layers.
package models

import "time"

// User is the public account record. It never carries the password hash.
type User struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"ws_id"`
	FullName    string    `json:"fullname"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateUser is a sign-up request. Password is plaintext and is never
// persisted.
type CreateUser struct {
	WorkspaceID int64  `json:"ws_id"`
	FullName    string `json:"fullname"`
	Email       string `json:"email"`
	Workspace   string `json:"workspace"`
	Password    string `json:"password"`
}

// SignInUser is a sign-in request.
type SignInUser struct {
	WorkspaceID int64  `json:"ws_id"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}
