package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"mathew.com/nurserydirectory/internal/model"
)

// ListReviewsOptions narrows admin review listings. Status accepts
// "pending", "approved" or "rejected"; empty means all.
type ListReviewsOptions struct {
	Search    string
	SortBy    string
	SortOrder string
	Status    string
	Page      int
	Limit     int
}

// ReviewCreation carries the fields the dashboard stats need per review.
type ReviewCreation struct {
	CreatedAt  time.Time
	IsApproved bool
}

var reviewSortFields = map[string]string{
	"":          "reviews.created_at",
	"createdAt": "reviews.created_at",
	"rating":    "reviews.overall_rating",
	"nursery":   "nurseries.name",
}

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByID(ctx context.Context, id string) (*model.Review, error)
	Update(ctx context.Context, review *model.Review) error
	ListByNursery(ctx context.Context, nurseryID uuid.UUID) ([]*model.Review, error)
	ListCountedByNursery(ctx context.Context, nurseryID uuid.UUID, limit int) ([]*model.Review, error)
	CountedRatings(ctx context.Context, nurseryID uuid.UUID) ([]float64, error)
	ListAdmin(ctx context.Context, opts ListReviewsOptions) ([]*model.Review, int64, error)
	Count(ctx context.Context) (int64, error)
	CountRejected(ctx context.Context) (int64, error)
	CreatedSince(ctx context.Context, since time.Time) ([]ReviewCreation, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id string) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).
		Preload("Nursery").
		Where("id = ?", id).
		First(&review).Error; err != nil {
		return nil, err
	}

	return &review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) ListByNursery(ctx context.Context, nurseryID uuid.UUID) ([]*model.Review, error) {
	var reviews []*model.Review
	if err := r.db.WithContext(ctx).
		Where("nursery_id = ?", nurseryID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepository) ListCountedByNursery(ctx context.Context, nurseryID uuid.UUID, limit int) ([]*model.Review, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Where("nursery_id = ? AND is_approved = ? AND is_rejected = ?", nurseryID, true, false).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var reviews []*model.Review
	if err := q.Find(&reviews).Error; err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepository) CountedRatings(ctx context.Context, nurseryID uuid.UUID) ([]float64, error) {
	var ratings []float64
	if err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("nursery_id = ? AND is_approved = ? AND is_rejected = ?", nurseryID, true, false).
		Pluck("overall_rating", &ratings).Error; err != nil {
		return nil, err
	}

	return ratings, nil
}

func (r *reviewRepository) ListAdmin(ctx context.Context, opts ListReviewsOptions) ([]*model.Review, int64, error) {
	order, err := sortClause(reviewSortFields, opts.SortBy, opts.SortOrder)
	if err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).Model(&model.Review{}).
		Joins("JOIN nurseries ON nurseries.id = reviews.nursery_id").
		Preload("Nursery").
		Preload("User")

	switch opts.Status {
	case "pending":
		q = q.Where("reviews.is_approved = ? AND reviews.is_rejected = ?", false, false)
	case "approved":
		q = q.Where("reviews.is_approved = ? AND reviews.is_rejected = ?", true, false)
	case "rejected":
		q = q.Where("reviews.is_rejected = ?", true)
	}

	if opts.Search != "" {
		pattern := likePattern(opts.Search)
		q = q.Where(
			"reviews.first_name ILIKE ? OR reviews.last_name ILIKE ? OR reviews.content ILIKE ? OR reviews.email ILIKE ? OR nurseries.name ILIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if opts.Page > 0 && opts.Limit > 0 {
		q = q.Offset((opts.Page - 1) * opts.Limit).Limit(opts.Limit)
	}

	var reviews []*model.Review
	if err := q.Order(order).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Review{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reviewRepository) CountRejected(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("is_rejected = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reviewRepository) CreatedSince(ctx context.Context, since time.Time) ([]ReviewCreation, error) {
	var rows []ReviewCreation
	if err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("created_at", "is_approved").
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
