package usecase

import (
	"context"
	"sync/atomic"

	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/internal/usecase/interfaces"
	"sistema_mdu/pkg"

	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_usecase.go -destination=../adapter/http/handlers/mocks/mock_auth_usecase.go -package=mocks

// IAuthUseCase exposes account and session operations.
type IAuthUseCase interface {
	Register(ctx context.Context, email, password string, profile entities.Document) pkg.Result[entities.User]
	Login(ctx context.Context, email, password string) pkg.Result[entities.User]
	Logout(ctx context.Context) pkg.Result[struct{}]
	CurrentUser() *entities.User
	VerifyToken(ctx context.Context, token string) pkg.Result[entities.User]
	Subscribe(ctx context.Context) interfaces.AuthSubscription
	OnAuthStateChange(callback func(*entities.User)) (unsubscribe func())
}

type AuthUseCase struct {
	service
	provider interfaces.IIdentityProvider
	store    interfaces.IDocumentStore
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(provider interfaces.IIdentityProvider, store interfaces.IDocumentStore, opts ...Option) *AuthUseCase {
	return &AuthUseCase{service: newService("auth", opts), provider: provider, store: store}
}

// Register creates the account, then its profile document in the users
// collection. A profile failure leaves the account in place.
func (u *AuthUseCase) Register(ctx context.Context, email, password string, profile entities.Document) pkg.Result[entities.User] {
	return guard(u.service, "register", func() pkg.Result[entities.User] {
		user, err := u.provider.CreateAccount(ctx, email, password)
		if err != nil {
			return pkg.Fail[entities.User](err)
		}

		doc := make(entities.Document, len(profile)+3)
		for k, v := range profile {
			doc[k] = v
		}
		doc["uid"] = user.UID
		doc["email"] = user.Email
		doc[entities.FieldCreatedAt] = entities.ServerTimestamp

		if _, err := u.store.Add(ctx, UsersCollection, doc); err != nil {
			u.log.Warn("account created without profile", zap.String("uid", user.UID))
			return pkg.Fail[entities.User](err)
		}
		return pkg.OKAs(pkg.KeyUser, user)
	})
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) pkg.Result[entities.User] {
	return guard(u.service, "login", func() pkg.Result[entities.User] {
		user, err := u.provider.SignIn(ctx, email, password)
		if err != nil {
			return pkg.Fail[entities.User](err)
		}
		return pkg.OKAs(pkg.KeyUser, user)
	})
}

func (u *AuthUseCase) Logout(ctx context.Context) pkg.Result[struct{}] {
	return guard(u.service, "logout", func() pkg.Result[struct{}] {
		if err := u.provider.SignOut(ctx); err != nil {
			return pkg.Fail[struct{}](err)
		}
		return pkg.Done()
	})
}

func (u *AuthUseCase) CurrentUser() *entities.User {
	return u.provider.CurrentUser()
}

func (u *AuthUseCase) VerifyToken(ctx context.Context, token string) pkg.Result[entities.User] {
	return guard(u.service, "verifyToken", func() pkg.Result[entities.User] {
		user, err := u.provider.VerifyToken(ctx, token)
		if err != nil {
			return pkg.Fail[entities.User](err)
		}
		return pkg.OKAs(pkg.KeyUser, user)
	})
}

// Subscribe returns the auth-state stream: the current state first, then
// later transitions. A subscriber that falls behind receives only the latest
// state.
func (u *AuthUseCase) Subscribe(ctx context.Context) interfaces.AuthSubscription {
	return u.provider.Subscribe(ctx)
}

// OnAuthStateChange calls callback with the signed-in user, or nil once
// signed out, for the current state and every later transition. Callbacks
// run on a dedicated goroutine, one at a time. Transitions that happen while
// a callback is still running are coalesced: the next call sees only the
// latest state, never the intermediate ones. The returned function stops
// delivery, may be called from within the callback, and is safe to call more
// than once.
func (u *AuthUseCase) OnAuthStateChange(callback func(*entities.User)) (unsubscribe func()) {
	sub := u.provider.Subscribe(context.Background())
	var stopped atomic.Bool
	go func() {
		for state := range sub.Events() {
			if !stopped.Load() {
				callback(state.User)
			}
		}
	}()
	return func() {
		stopped.Store(true)
		sub.Close()
	}
}
