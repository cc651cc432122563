package handlers

import (
	"errors"
	"net/http"
	"testing"

	"sistema_mdu/internal/usecase/interfaces"
	"sistema_mdu/pkg"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"email in use", pkg.NewAuthError(pkg.AuthCodeEmailInUse, errors.New("taken")), http.StatusConflict, pkg.AuthCodeEmailInUse},
		{"weak password", pkg.NewAuthError(pkg.AuthCodeWeakPassword, nil), http.StatusBadRequest, pkg.AuthCodeWeakPassword},
		{"invalid email", pkg.NewAuthError(pkg.AuthCodeInvalidEmail, nil), http.StatusBadRequest, pkg.AuthCodeInvalidEmail},
		{"bad credential", pkg.NewAuthError(pkg.AuthCodeInvalidCredential, nil), http.StatusUnauthorized, pkg.AuthCodeInvalidCredential},
		{"bad token", pkg.NewAuthError(pkg.AuthCodeInvalidToken, nil), http.StatusUnauthorized, pkg.AuthCodeInvalidToken},
		{"provider failure", pkg.NewAuthError(pkg.AuthCodeInternal, nil), http.StatusInternalServerError, pkg.AuthCodeInternal},
		{"validation", &pkg.ValidationError{Field: "category", Reason: "required"}, http.StatusBadRequest, "INVALID_INPUT"},
		{"not found", pkg.NewStoreError("update", "enderecos", "x", interfaces.ErrDocumentNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"exists", pkg.NewStoreError("create", "users", "x", interfaces.ErrDocumentExists), http.StatusConflict, "CONFLICT"},
		{"bad target", pkg.NewStoreError("get", "enderecos", "a/b", interfaces.ErrInvalidTarget), http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown", errors.New("network down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := mapError(tt.err)
			if appErr.HTTPStatus != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, appErr.HTTPStatus)
			}
			if appErr.Code != tt.code {
				t.Fatalf("expected code %q, got %q", tt.code, appErr.Code)
			}
			if appErr.Message != tt.err.Error() {
				t.Fatalf("expected message %q, got %q", tt.err.Error(), appErr.Message)
			}
		})
	}
}
