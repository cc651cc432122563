package handlers

import (
	"net/http"
	"strings"

	request "sistema_mdu/internal/adapter/http/dto/request"
	response "sistema_mdu/internal/adapter/http/dto/response"
	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/internal/usecase"
	"sistema_mdu/pkg"

	"github.com/gin-gonic/gin"
)

// principalKey is the gin context key holding the verified *entities.User.
const principalKey = "principal"

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Register godoc
// @Summary Create an account
// @Description Creates the credential, signs it in and stores its profile
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body request.RegisterRequest true "Credentials and profile"
// @Success 201 {object} response.UserResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	res := h.usecase.Register(c.Request.Context(), request.ResolveEmail(payload.Email), payload.Password, entities.Document(payload.Profile))
	respond(c, http.StatusCreated, res)
}

// Login godoc
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body request.LoginRequest true "Credentials"
// @Success 200 {object} response.UserResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	respond(c, http.StatusOK, h.usecase.Login(c.Request.Context(), request.ResolveEmail(payload.Email), payload.Password))
}

// Logout godoc
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} response.DoneResponse
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	respond(c, http.StatusOK, h.usecase.Logout(c.Request.Context()))
}

// Me godoc
// @Summary Current principal
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.UserResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := Principal(c)
	if !ok {
		abortWith(c, errMissingToken)
		return
	}
	c.JSON(http.StatusOK, pkg.OKAs(pkg.KeyUser, response.FromUser(*user)))
}

// RequireAuth rejects requests without a valid "Authorization: Bearer" id
// token and stores the verified principal on the context.
func (h *AuthHandler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token, found := strings.Cut(c.GetHeader("Authorization"), " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			abortWith(c, errMissingToken)
			return
		}
		res := h.usecase.VerifyToken(c.Request.Context(), token)
		if !res.Success {
			abortWith(c, mapError(res.Err()))
			return
		}
		user := res.Data
		c.Set(principalKey, &user)
		c.Next()
	}
}

// Principal returns the user verified by RequireAuth.
func Principal(c *gin.Context) (*entities.User, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entities.User)
	return user, ok && user != nil
}
