package model

import "time"

// Admin is a dashboard operator allowed to sign in to salesdesk.
type Admin struct {
	ID           int64
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}
