package dto

import "time"

type LoginInput struct {
	Email string
}

type SessionOutput struct {
	Email           string
	Authenticated   bool
	AuthenticatedAt time.Time
}
