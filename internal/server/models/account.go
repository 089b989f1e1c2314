// Package models holds server-only persistence types that never leave the
// backend, such as password hashes and refresh token rows.
package models

import shared "github.com/dmitrijs2005/nutritrack/internal/models"

// Account is a stored user: the public profile plus its password hash.
type Account struct {
	shared.User
	PasswordHash []byte
}
