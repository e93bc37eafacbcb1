package models

import "time"

// LoginRequest запрос на вход администратора
type LoginRequest struct {
	Username   string
	Password   string
	SourceAddr string
}

// LoginResponse выданная сессия
type LoginResponse struct {
	Token     string
	SessionID string
	AdminID   int64
	Username  string
	ExpiresAt time.Time
}

// LogoutRequest запрос на выход администратора
type LogoutRequest struct {
	AdminID    int64
	Username   string
	SessionID  string
	SourceAddr string
}
