package handlers

import (
	"errors"
	"net/http"

	"sistema_mdu/internal/usecase/interfaces"
	"sistema_mdu/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errMissingToken   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
)

// respond writes res as the response body. Successful results use okStatus;
// failures are mapped onto an HTTP status while keeping the result's message.
func respond[T any](c *gin.Context, okStatus int, res pkg.Result[T]) {
	if res.Success {
		c.JSON(okStatus, res)
		return
	}
	appErr := mapError(res.Err())
	c.JSON(appErr.StatusOrDefault(), appErr.ToHTTPError())
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.StatusOrDefault(), appErr.ToHTTPError())
}

func mapError(err error) *pkg.AppError {
	var authErr *pkg.AuthError
	if errors.As(err, &authErr) {
		return pkg.NewDomainError(authErr.Code, err.Error(), err, authStatus(authErr.Code))
	}

	var validationErr *pkg.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("INVALID_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrDocumentNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, interfaces.ErrDocumentExists):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrInvalidTarget):
		return pkg.NewDomainError("INVALID_INPUT", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", err.Error(), err, http.StatusInternalServerError)
	}
}

func authStatus(code string) int {
	switch code {
	case pkg.AuthCodeEmailInUse:
		return http.StatusConflict
	case pkg.AuthCodeInvalidCredential, pkg.AuthCodeInvalidToken:
		return http.StatusUnauthorized
	case pkg.AuthCodeWeakPassword, pkg.AuthCodeInvalidEmail:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
