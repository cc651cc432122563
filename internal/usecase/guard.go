package usecase

import (
	"fmt"
	"time"

	"sistema_mdu/internal/metrics"
	"sistema_mdu/pkg"

	"go.uber.org/zap"
)

// Collections used by the services.
const (
	AddressCollection    = "enderecos"
	UsersCollection      = "users"
	ManagementCollection = "gestao"
)

// Option configures the ambient dependencies of a service.
type Option func(*service)

func WithLogger(l *zap.Logger) Option {
	return func(s *service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithMetrics(r *metrics.Recorder) Option {
	return func(s *service) { s.metrics = r }
}

// service carries what every operation needs besides its collaborators.
type service struct {
	name    string
	log     *zap.Logger
	metrics *metrics.Recorder
}

func newService(name string, opts []Option) service {
	s := service{name: name, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}
	s.log = s.log.Named(name)
	return s
}

// guard runs one operation: a panic becomes a failure envelope, failures are
// logged, and the outcome is recorded.
func guard[T any](s service, op string, fn func() pkg.Result[T]) (res pkg.Result[T]) {
	started := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res = pkg.Fail[T](fmt.Errorf("%s: unexpected failure: %v", op, p))
		}
		elapsed := time.Since(started)
		s.metrics.Observe(s.name, op, res.Success, elapsed)
		if !res.Success {
			s.log.Error("operation failed", zap.String("op", op), zap.Error(res.Err()), zap.Duration("elapsed", elapsed))
			return
		}
		s.log.Debug("operation done", zap.String("op", op), zap.Duration("elapsed", elapsed))
	}()
	return fn()
}
