package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sistema_mdu/internal/adapter/http/handlers/mocks"
	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/register", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString(`{"email":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().
			Register(gomock.Any(), "ana@example.com", "secret1", entities.Document{"nome": "Ana"}).
			Return(pkg.OKAs(pkg.KeyUser, entities.User{UID: "u1", Email: "ana@example.com"}))

		r := gin.New()
		r.POST("/v1/auth/register", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register",
			bytes.NewBufferString(`{"email":" ana@example.com ","password":"secret1","profile":{"nome":"Ana"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		user, _ := body["user"].(map[string]any)
		if body["success"] != true || user["uid"] != "u1" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("email in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pkg.Fail[entities.User](pkg.NewAuthError(pkg.AuthCodeEmailInUse, errors.New("email already in use"))))

		r := gin.New()
		r.POST("/v1/auth/register", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString(`{"email":"a@b.com","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != false || body["code"] != pkg.AuthCodeEmailInUse {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestAuthHandler_LoginLogout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().Login(gomock.Any(), "a@b.com", "wrong").
			Return(pkg.Fail[entities.User](pkg.NewAuthError(pkg.AuthCodeInvalidCredential, nil)))

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"a@b.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"a@b.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("logout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().Logout(gomock.Any()).Return(pkg.Done())

		r := gin.New()
		r.POST("/v1/auth/logout", h.Logout)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil))

		if w.Code != http.StatusOK || w.Body.String() != `{"success":true}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestAuthHandler_RequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *AuthHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/auth/me", h.RequireAuth(), h.Me)
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl))

		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().VerifyToken(gomock.Any(), "expired").
			Return(pkg.Fail[entities.User](pkg.NewAuthError(pkg.AuthCodeInvalidToken, errors.New("token expired"))))

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer expired")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("verified principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().VerifyToken(gomock.Any(), "tok").
			Return(pkg.OKAs(pkg.KeyUser, entities.User{UID: "u1", Email: "a@b.com"}))

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set("Authorization", "bearer tok")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		user, _ := decodeBody(t, w)["user"].(map[string]any)
		if user["email"] != "a@b.com" {
			t.Fatalf("unexpected user %v", user)
		}
	})
}
