package response

import (
	"time"

	"sistema_mdu/internal/domain/entities"
)

// The types below document the envelope bodies in the OpenAPI document. Handlers
// write pkg.Result values, which marshal to the same shapes.

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"get enderecos/abc: document not found"`
	Code    string `json:"code" example:"NOT_FOUND"`
}

type DoneResponse struct {
	Success bool `json:"success" example:"true"`
}

type IDResponse struct {
	Success bool   `json:"success" example:"true"`
	ID      string `json:"id" example:"7b1c6a0e-3c1f-4f43-9d1e-2f7f5f0a9f10"`
}

type UserResponse struct {
	Success bool         `json:"success" example:"true"`
	User    UserSnapshot `json:"user"`
}

type UserSnapshot struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	IDToken   string    `json:"idToken,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

type AddressListResponse struct {
	Success bool             `json:"success" example:"true"`
	Data    []map[string]any `json:"data"`
}

type ManagementResponse struct {
	Success bool             `json:"success" example:"true"`
	Data    map[string][]any `json:"data"`
}

type StatsResponse struct {
	Success bool           `json:"success" example:"true"`
	Data    entities.Stats `json:"data"`
}

type ImportResponse struct {
	Success  bool `json:"success" example:"true"`
	Imported int  `json:"imported" example:"42"`
}

type ImportReportResponse struct {
	Success bool                  `json:"success" example:"true"`
	Data    entities.ImportReport `json:"data"`
}

type ExportResponse struct {
	Success bool                `json:"success" example:"true"`
	Data    entities.ExportFile `json:"data"`
}

// FromUser maps the principal onto its response shape.
func FromUser(u entities.User) UserSnapshot {
	return UserSnapshot{UID: u.UID, Email: u.Email, IDToken: u.IDToken, ExpiresAt: u.ExpiresAt}
}
