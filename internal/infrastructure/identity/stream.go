package identity

import (
	"context"
	"sync"

	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/internal/usecase/interfaces"
)

// subscription buffers a single state. A subscriber that falls behind only
// ever sees the latest state.
type subscription struct {
	p    *Provider
	ch   chan entities.AuthState
	done chan struct{}
	once sync.Once
}

var _ interfaces.AuthSubscription = (*subscription)(nil)

// Subscribe starts a stream that delivers the current session state first.
// The stream ends when Close is called or ctx is cancelled.
func (p *Provider) Subscribe(ctx context.Context) interfaces.AuthSubscription {
	s := &subscription{
		p:    p,
		ch:   make(chan entities.AuthState, 1),
		done: make(chan struct{}),
	}

	p.mu.Lock()
	s.deliver(p.stateLocked())
	p.subs[s] = struct{}{}
	p.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				s.Close()
			case <-s.done:
			}
		}()
	}
	return s
}

func (s *subscription) Events() <-chan entities.AuthState { return s.ch }

func (s *subscription) Close() {
	s.once.Do(func() {
		s.p.mu.Lock()
		delete(s.p.subs, s)
		close(s.ch)
		s.p.mu.Unlock()
		close(s.done)
	})
}

// deliver must be called with p.mu held; only the holder sends on ch, so the
// buffer always has room once the stale state is drained.
func (s *subscription) deliver(state entities.AuthState) {
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- state:
	default:
	}
}
