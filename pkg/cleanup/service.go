// Package cleanup provides data retention services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/greenroomlab/greenroom/pkg/services"
)

// Service periodically expires idempotency reservations past their TTL.
// Reservations only guard short-horizon client retries; anything older
// than the TTL can never be replayed legitimately.
//
// The sweep is idempotent and safe to run from multiple pods.
type Service struct {
	idempotency *services.IdempotencyService
	ttl         time.Duration
	interval    time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(idempotency *services.IdempotencyService, ttl, interval time.Duration) *Service {
	return &Service{
		idempotency: idempotency,
		ttl:         ttl,
		interval:    interval,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"idempotency_ttl", s.ttl,
		"interval", s.interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.expireIdempotencyKeys()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.expireIdempotencyKeys()
		}
	}
}

func (s *Service) expireIdempotencyKeys() {
	cutoff := time.Now().Add(-s.ttl)
	count, err := s.idempotency.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: idempotency sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: expired idempotency keys", "count", count)
	}
}
