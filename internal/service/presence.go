package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"mathew.com/nurserydirectory/internal/repository"
)

// PresenceService tracks which users are currently online. Clients
// heartbeat while active; a Redis key with a TTL holds the claim, and a
// background sweep flips users offline once their key expires. Without
// Redis, presence is a no-op and everyone stays offline.
type PresenceService interface {
	Heartbeat(ctx context.Context, userID uuid.UUID) error
	Sweep(ctx context.Context) error
	Run(ctx context.Context, interval time.Duration)
}

type presenceService struct {
	users       repository.UserRepository
	redisClient *redis.Client
	ttl         time.Duration
}

func NewPresenceService(users repository.UserRepository, redisClient *redis.Client, ttl time.Duration) PresenceService {
	return &presenceService{
		users:       users,
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (s *presenceService) Heartbeat(ctx context.Context, userID uuid.UUID) error {
	if s.redisClient == nil {
		return nil
	}

	if err := s.redisClient.Set(ctx, presenceKey(userID), "1", s.ttl).Err(); err != nil {
		return err
	}

	return s.users.SetOnline(ctx, userID, true)
}

// Sweep marks users offline whose presence key has expired.
func (s *presenceService) Sweep(ctx context.Context) error {
	if s.redisClient == nil {
		return nil
	}

	ids, err := s.users.ListOnlineIDs(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		exists, err := s.redisClient.Exists(ctx, presenceKey(id)).Result()
		if err != nil {
			return err
		}
		if exists == 0 {
			if err := s.users.SetOnline(ctx, id, false); err != nil {
				return err
			}
		}
	}

	return nil
}

// Run sweeps on a ticker until the context is cancelled.
func (s *presenceService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				log.Printf("[Presence]: sweep failed: %v", err)
			}
		}
	}
}

func presenceKey(userID uuid.UUID) string {
	return "presence:user:" + userID.String()
}
