package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"mathew.com/nurserydirectory/internal/dto"
	"mathew.com/nurserydirectory/internal/model"
	"mathew.com/nurserydirectory/internal/repository"
	"mathew.com/nurserydirectory/pkg/apperror"
)

type ReviewService interface {
	Submit(ctx context.Context, callerKey string, userID *uuid.UUID, input dto.SubmitReviewInput) (*model.Review, error)
	MyNurseryReviews(ctx context.Context, ownerID uuid.UUID, nurseryID string) (*dto.OwnerReviews, error)
}

type reviewService struct {
	reviews       repository.ReviewRepository
	nurseries     repository.NurseryRepository
	notifications NotificationService
	redisClient   *redis.Client
	rateLimit     time.Duration
}

func NewReviewService(
	reviews repository.ReviewRepository,
	nurseries repository.NurseryRepository,
	notifications NotificationService,
	redisClient *redis.Client,
	rateLimit time.Duration,
) ReviewService {
	return &reviewService{
		reviews:       reviews,
		nurseries:     nurseries,
		notifications: notifications,
		redisClient:   redisClient,
		rateLimit:     rateLimit,
	}
}

// Submit files a review against an approved nursery. The review starts
// pending and is invisible to the public until an admin approves it.
func (s *reviewService) Submit(ctx context.Context, callerKey string, userID *uuid.UUID, input dto.SubmitReviewInput) (*model.Review, error) {
	nursery, err := s.nurseries.FindByID(ctx, input.NurseryID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	if !nursery.IsApproved {
		return nil, apperror.ErrNotFound
	}

	allowed, err := CheckAndSetRateLimit(ctx, s.redisClient, callerKey, "submit_review", s.rateLimit)
	if err != nil {
		return nil, err
	}
	if !allowed {
		message := "please wait before submitting another review"
		if ttl, err := GetRateLimitTTL(ctx, s.redisClient, callerKey, "submit_review"); err == nil && ttl > 0 {
			message = fmt.Sprintf("please wait %d seconds before submitting another review", int(ttl.Seconds()))
		}
		return nil, apperror.New(http.StatusTooManyRequests, message, apperror.ErrRateLimitExceeded)
	}

	review := &model.Review{
		NurseryID:     nursery.ID,
		UserID:        userID,
		Title:         input.Title,
		Content:       input.Content,
		Connection:    input.Connection,
		VisitDate:     input.VisitDate,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Telephone:     input.Telephone,
		InitialsOnly:  input.InitialsOnly,
		OverallRating: input.OverallRating,
		Activities:    input.Activities,
		Care:          input.Care,
		Cleanliness:   input.Cleanliness,
		Facilities:    input.Facilities,
		Food:          input.Food,
		Learning:      input.Learning,
		Management:    input.Management,
		Resources:     input.Resources,
		Safeguarding:  input.Safeguarding,
		Staff:         input.Staff,
		Value:         input.Value,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := s.notifications.Notify(ctx, "New Review Submitted",
		fmt.Sprintf("A review was submitted for %s", nursery.Name),
		model.NotificationEntityReview, review.ID.String()); err != nil {
		log.Printf("[Notification]: failed to record review event: %v", err)
	}

	return review, nil
}

// MyNurseryReviews returns every review for one of the owner's
// nurseries, all lifecycle states included, with a stats header over
// the counted ones.
func (s *reviewService) MyNurseryReviews(ctx context.Context, ownerID uuid.UUID, nurseryID string) (*dto.OwnerReviews, error) {
	nursery, err := s.nurseries.FindByID(ctx, nurseryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	if nursery.OwnerID != ownerID {
		return nil, apperror.ErrForbidden
	}

	reviews, err := s.reviews.ListByNursery(ctx, nursery.ID)
	if err != nil {
		return nil, err
	}

	var counted []float64
	var pending int64
	for _, review := range reviews {
		if review.Counted() {
			counted = append(counted, review.OverallRating)
		}
		if review.Status() == model.ReviewStatusPending {
			pending++
		}
	}

	summary := SummarizeRatings(counted)

	return &dto.OwnerReviews{
		Reviews: reviews,
		Stats: dto.OwnerReviewStats{
			AverageRating:   summary.AverageRating,
			TotalReviews:    int64(len(reviews)),
			PendingApproval: pending,
		},
	}, nil
}
