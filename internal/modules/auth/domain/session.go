package domain

import "time"

// Session is the client-side login state. It is not a security boundary:
// the check runs in the client and only gates what the UI shows.
type Session struct {
	Email           string
	Authenticated   bool
	AuthenticatedAt time.Time
}

// Gate admits exactly one email address. Comparison is byte-for-byte:
// no trimming, no case folding.
type Gate struct {
	authorized string
}

func NewGate(authorized string) Gate {
	return Gate{authorized: authorized}
}

func (g Gate) Allows(email string) bool {
	return g.authorized != "" && email == g.authorized
}
