package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"sistema_mdu/internal/config"
	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/internal/usecase/interfaces"
	"sistema_mdu/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AccountsCollection holds one document per account, keyed by a stable id
// derived from the normalised email.
const AccountsCollection = "accounts"

const (
	fieldUID          = "uid"
	fieldEmail        = "email"
	fieldPasswordHash = "passwordHash"
)

var (
	errEmailInUse        = errors.New("email already in use")
	errInvalidEmail      = errors.New("badly formatted email")
	errInvalidCredential = errors.New("invalid email or password")
	errInvalidToken      = errors.New("invalid or expired id token")
)

// Provider is an email/password identity provider backed by the document
// store. It keeps a single process-wide session, the way a browser client
// SDK does, and broadcasts every session transition to its subscribers.
type Provider struct {
	store       interfaces.IDocumentStore
	tokens      *tokenIssuer
	minPassword int
	hashCost    int
	validate    *validator.Validate
	log         *zap.Logger
	now         func() time.Time

	mu      sync.Mutex
	current *entities.User
	subs    map[*subscription]struct{}
}

var _ interfaces.IIdentityProvider = (*Provider)(nil)

func NewProvider(store interfaces.IDocumentStore, cfg config.AuthConfig, log *zap.Logger) (*Provider, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}
	if log == nil {
		log = zap.NewNop()
	}
	minPassword := cfg.MinPassword
	if minPassword <= 0 {
		minPassword = 6
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	p := &Provider{
		store:       store,
		minPassword: minPassword,
		hashCost:    bcrypt.DefaultCost,
		validate:    validator.New(),
		log:         log.Named("identity"),
		now:         time.Now,
		subs:        map[*subscription]struct{}{},
	}
	p.tokens = &tokenIssuer{key: []byte(cfg.JWTSecret), ttl: ttl, now: func() time.Time { return p.now() }}
	return p, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// accountKey derives the account document id from the email, so lookups and
// duplicate detection are single-key operations.
func accountKey(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String()
}

func (p *Provider) checkEmail(email string) error {
	if err := p.validate.Var(email, "required,email"); err != nil {
		return pkg.NewAuthError(pkg.AuthCodeInvalidEmail, errInvalidEmail)
	}
	return nil
}

func (p *Provider) CreateAccount(ctx context.Context, email, password string) (entities.User, error) {
	email = normalizeEmail(email)
	if err := p.checkEmail(email); err != nil {
		return entities.User{}, err
	}
	if utf8.RuneCountInString(password) < p.minPassword {
		return entities.User{}, pkg.NewAuthError(pkg.AuthCodeWeakPassword,
			fmt.Errorf("password should be at least %d characters", p.minPassword))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return entities.User{}, pkg.NewAuthError(pkg.AuthCodeWeakPassword, err)
		}
		return entities.User{}, pkg.NewAuthError(pkg.AuthCodeInternal, err)
	}

	uid := uuid.NewString()
	err = p.store.Create(ctx, AccountsCollection, accountKey(email), entities.Document{
		fieldUID:                uid,
		fieldEmail:              email,
		fieldPasswordHash:       string(hash),
		entities.FieldCreatedAt: entities.ServerTimestamp,
	})
	if errors.Is(err, interfaces.ErrDocumentExists) {
		return entities.User{}, pkg.NewAuthError(pkg.AuthCodeEmailInUse, errEmailInUse)
	}
	if err != nil {
		return entities.User{}, pkg.NewAuthError(pkg.AuthCodeInternal, err)
	}

	p.log.Info("account created", zap.String("uid", uid))
	return p.startSession(uid, email)
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (entities.User, error) {
	email = normalizeEmail(email)
	if err := p.checkEmail(email); err != nil {
		return entities.User{}, err
	}

	account, err := p.store.Get(ctx, AccountsCollection, accountKey(email))
	if errors.Is(err, interfaces.ErrDocumentNotFound) {
		return entities.User{}, pkg.NewAuthError(pkg.AuthCodeInvalidCredential, errInvalidCredential)
	}
	if err != nil {
		return entities.User{}, pkg.NewAuthError(pkg.AuthCodeInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.String(fieldPasswordHash)), []byte(password)); err != nil {
		return entities.User{}, pkg.NewAuthError(pkg.AuthCodeInvalidCredential, errInvalidCredential)
	}
	return p.startSession(account.String(fieldUID), email)
}

func (p *Provider) startSession(uid, email string) (entities.User, error) {
	token, expires, err := p.tokens.issue(uid, email)
	if err != nil {
		return entities.User{}, pkg.NewAuthError(pkg.AuthCodeInternal, err)
	}
	user := entities.User{UID: uid, Email: email, IDToken: token, ExpiresAt: expires}
	p.setCurrent(&user)
	return user, nil
}

// SignOut clears the session. Signing out while signed out is a no-op.
func (p *Provider) SignOut(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return pkg.NewAuthError(pkg.AuthCodeInternal, err)
	}
	p.setCurrent(nil)
	return nil
}

func (p *Provider) CurrentUser() *entities.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	u := *p.current
	return &u
}

// VerifyToken checks the signature and expiry of an ID token and that the
// account it names still exists.
func (p *Provider) VerifyToken(ctx context.Context, token string) (entities.User, error) {
	claims, err := p.tokens.parse(token)
	if err != nil {
		p.log.Debug("id token rejected", zap.Error(err))
		return entities.User{}, pkg.NewAuthError(pkg.AuthCodeInvalidToken, errInvalidToken)
	}

	account, err := p.store.Get(ctx, AccountsCollection, accountKey(claims.Email))
	if errors.Is(err, interfaces.ErrDocumentNotFound) {
		return entities.User{}, pkg.NewAuthError(pkg.AuthCodeInvalidToken, errInvalidToken)
	}
	if err != nil {
		return entities.User{}, pkg.NewAuthError(pkg.AuthCodeInternal, err)
	}
	if account.String(fieldUID) != claims.Subject {
		return entities.User{}, pkg.NewAuthError(pkg.AuthCodeInvalidToken, errInvalidToken)
	}

	return entities.User{
		UID:       claims.Subject,
		Email:     claims.Email,
		IDToken:   token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// setCurrent swaps the session principal and notifies subscribers when the
// signed-in identity changed.
func (p *Provider) setCurrent(u *entities.User) {
	p.mu.Lock()
	defer p.mu.Unlock()

	changed := (p.current == nil) != (u == nil) ||
		(p.current != nil && u != nil && p.current.UID != u.UID)
	p.current = u
	if !changed {
		return
	}

	state := p.stateLocked()
	for s := range p.subs {
		s.deliver(state)
	}
	if u == nil {
		p.log.Info("signed out")
	} else {
		p.log.Info("signed in", zap.String("uid", u.UID))
	}
}

func (p *Provider) stateLocked() entities.AuthState {
	state := entities.AuthState{At: p.now()}
	if p.current != nil {
		u := *p.current
		state.User = &u
	}
	return state
}
