package entities

import "time"

// User is the principal issued by the identity provider.
type User struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	IDToken   string    `json:"idToken,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

// AuthState is one observation of the session: User is nil when signed out.
type AuthState struct {
	User *User
	At   time.Time
}

// SignedIn reports whether the state carries a principal.
func (s AuthState) SignedIn() bool { return s.User != nil }
