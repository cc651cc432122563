package request

import "strings"

type RegisterRequest struct {
	Email    string         `json:"email" binding:"required"`
	Password string         `json:"password" binding:"required"`
	Profile  map[string]any `json:"profile"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResolveEmail trims surrounding whitespace; case folding is left to the
// identity provider.
func ResolveEmail(email string) string {
	return strings.TrimSpace(email)
}
