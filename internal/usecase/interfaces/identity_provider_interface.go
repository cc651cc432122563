package interfaces

import (
	"context"

	"sistema_mdu/internal/domain/entities"
)

//go:generate mockgen -source=identity_provider_interface.go -destination=mocks/mock_identity_provider.go -package=mock_interfaces

// AuthSubscription is a cancellable stream of session transitions.
type AuthSubscription interface {
	// Events delivers the current state first, then later transitions.
	// Transitions are coalesced while the reader is behind, so it only sees
	// the latest state. The channel is closed once the subscription ends.
	Events() <-chan entities.AuthState
	Close()
}

// IIdentityProvider abstracts email/password accounts and the process-wide
// session.
type IIdentityProvider interface {
	CreateAccount(ctx context.Context, email, password string) (entities.User, error)
	SignIn(ctx context.Context, email, password string) (entities.User, error)
	SignOut(ctx context.Context) error
	CurrentUser() *entities.User
	Subscribe(ctx context.Context) AuthSubscription
	VerifyToken(ctx context.Context, token string) (entities.User, error)
}
