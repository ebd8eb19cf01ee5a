// ABOUTME: Local account model for offline auth.
// ABOUTME: Usernames are unique case-insensitively, credentials bcrypt-hashed.

package models

type Account struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Email        string `json:"email,omitempty"`
	CreatedAt    string `json:"createdAt"`
}
