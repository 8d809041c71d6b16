package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"mathew.com/nurserydirectory/internal/model"
	"mathew.com/nurserydirectory/internal/repository"
)

// AdminNotificationChannel is the Redis pub/sub channel the admin
// websocket stream subscribes to. All notifications go to admins; there
// are no per-user channels.
const AdminNotificationChannel = "admin_notifications"

type NotificationService interface {
	Notify(ctx context.Context, title, message, entity string, entityID string) error
	List(ctx context.Context, limit, offset int) ([]*model.Notification, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
	UnreadCount(ctx context.Context) (int64, error)
}

type notificationService struct {
	repo        repository.NotificationRepository
	redisClient *redis.Client
}

func NewNotificationService(repo repository.NotificationRepository, redisClient *redis.Client) NotificationService {
	return &notificationService{
		repo:        repo,
		redisClient: redisClient,
	}
}

func (s *notificationService) Notify(ctx context.Context, title, message, entity string, entityID string) error {
	notification := &model.Notification{
		Title:    title,
		Message:  message,
		Entity:   entity,
		EntityID: entityID,
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return err
	}

	// Publish to Redis if Redis is available
	if s.redisClient != nil {
		payload, err := json.Marshal(notification)
		if err == nil {
			s.redisClient.Publish(ctx, AdminNotificationChannel, payload)
		}
	}

	return nil
}

func (s *notificationService) List(ctx context.Context, limit, offset int) ([]*model.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string) error {
	return s.repo.MarkAsRead(ctx, id)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context) error {
	return s.repo.MarkAllAsRead(ctx)
}

func (s *notificationService) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx)
}
