package identity

import "github.com/google/uuid"

// Identity is the caller's authenticated identity, set once by the auth
// middleware and passed explicitly to anything that talks to the profile
// collaborator. Token is the raw bearer token forwarded upstream.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Token  string
}

func (id Identity) IsZero() bool {
	return id.Token == "" && id.UserID == uuid.Nil
}
