package model

// SessionIdentity is the identity the current session operates under.
// The zero value is anonymous; remote writes are only attempted for an
// authenticated identity.
type SessionIdentity struct {
	UserID      string `json:"userId,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// Anonymous is the identity of a signed-out session.
var Anonymous = SessionIdentity{}

// Authenticated reports whether the identity carries a user id.
func (i SessionIdentity) Authenticated() bool {
	return i.UserID != ""
}
