package domain

import "time"

// AdminStatus represents whether an administrator may log in
type AdminStatus string

const (
	AdminActive   AdminStatus = "active"
	AdminDisabled AdminStatus = "disabled"
)

// AdminUser represents a dashboard administrator
type AdminUser struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt
	Status       AdminStatus
	LastLogin    *time.Time
	CreatedAt    time.Time
}

// AdminSession represents a login session; ID is the token's jti
type AdminSession struct {
	ID         string
	AdminID    int64
	SourceAddr string
	ExpiresAt  time.Time
	RevokedAt  *time.Time
	CreatedAt  time.Time
}
