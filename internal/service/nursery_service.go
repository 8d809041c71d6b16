package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"mathew.com/nurserydirectory/internal/dto"
	"mathew.com/nurserydirectory/internal/model"
	"mathew.com/nurserydirectory/internal/repository"
	"mathew.com/nurserydirectory/pkg/apperror"
)

type NurseryService interface {
	ListPublic(ctx context.Context, query dto.PublicNurseryQuery) ([]dto.NurseryWithRating, dto.PaginationMeta, error)
	GetBySlug(ctx context.Context, slug string) (*dto.NurseryWithRating, error)
	PreviewBySlug(ctx context.Context, slug string, ownerID uuid.UUID, role string) (*dto.NurseryWithRating, error)
	MyNurseries(ctx context.Context, ownerID uuid.UUID) ([]dto.NurseryWithRating, error)
	Create(ctx context.Context, ownerID uuid.UUID, input dto.CreateNurseryInput) (*model.Nursery, error)
	Update(ctx context.Context, actorID uuid.UUID, role string, id string, input dto.UpdateNurseryInput) (*model.Nursery, error)
	Delete(ctx context.Context, actorID uuid.UUID, role string, id string) error
}

type nurseryService struct {
	nurseries     repository.NurseryRepository
	groups        repository.GroupRepository
	reviews       repository.ReviewRepository
	notifications NotificationService

	// previewUnapproved opens the public detail lookup to unapproved
	// nurseries. Owners always have the preview endpoint regardless.
	previewUnapproved bool
}

func NewNurseryService(
	nurseries repository.NurseryRepository,
	groups repository.GroupRepository,
	reviews repository.ReviewRepository,
	notifications NotificationService,
	previewUnapproved bool,
) NurseryService {
	return &nurseryService{
		nurseries:         nurseries,
		groups:            groups,
		reviews:           reviews,
		notifications:     notifications,
		previewUnapproved: previewUnapproved,
	}
}

func (s *nurseryService) ListPublic(ctx context.Context, query dto.PublicNurseryQuery) ([]dto.NurseryWithRating, dto.PaginationMeta, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 100
	}

	nurseries, total, err := s.nurseries.ListPublic(ctx, repository.PublicNurseryFilter{
		City:       query.City,
		Search:     query.Search,
		AgeRanges:  query.AgeRanges,
		Facilities: query.Facilities,
		Page:       query.Page,
		Limit:      query.Limit,
	})
	if err != nil {
		return nil, dto.PaginationMeta{}, err
	}

	items := make([]dto.NurseryWithRating, 0, len(nurseries))
	for _, nursery := range nurseries {
		rated, err := s.withRating(ctx, nursery)
		if err != nil {
			return nil, dto.PaginationMeta{}, err
		}
		items = append(items, *rated)
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))
	meta := dto.PaginationMeta{
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: totalPages,
	}

	return items, meta, nil
}

// GetBySlug serves the public nursery page. An unapproved nursery is
// NotFound here unless preview mode is enabled globally.
func (s *nurseryService) GetBySlug(ctx context.Context, slug string) (*dto.NurseryWithRating, error) {
	nursery, err := s.nurseries.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if !nursery.IsApproved && !s.previewUnapproved {
		return nil, apperror.ErrNotFound
	}

	return s.detailWithReviews(ctx, nursery)
}

// PreviewBySlug lets the nursery's owner (or an admin) see the page as
// it would render, approved or not.
func (s *nurseryService) PreviewBySlug(ctx context.Context, slug string, ownerID uuid.UUID, role string) (*dto.NurseryWithRating, error) {
	nursery, err := s.nurseries.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if nursery.OwnerID != ownerID && role != model.RoleAdmin {
		return nil, apperror.ErrForbidden
	}

	return s.detailWithReviews(ctx, nursery)
}

func (s *nurseryService) MyNurseries(ctx context.Context, ownerID uuid.UUID) ([]dto.NurseryWithRating, error) {
	nurseries, err := s.nurseries.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.NurseryWithRating, 0, len(nurseries))
	for _, nursery := range nurseries {
		rated, err := s.withRating(ctx, nursery)
		if err != nil {
			return nil, err
		}
		items = append(items, *rated)
	}

	return items, nil
}

// Create adds a nursery under the owner's group. The owner must have
// saved their group settings first. New nurseries go live immediately;
// admins are notified and can deactivate afterwards.
func (s *nurseryService) Create(ctx context.Context, ownerID uuid.UUID, input dto.CreateNurseryInput) (*model.Nursery, error) {
	group, err := s.groups.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusBadRequest, "create your group before adding nurseries", apperror.ErrBadRequest)
		}
		return nil, err
	}

	slug, err := AssignSlug(ctx, s.nurseries, input.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}

	nursery := &model.Nursery{
		Name:        input.Name,
		Slug:        slug,
		City:        input.City,
		Town:        input.Town,
		Description: input.Description,
		Address:     input.Address,
		Postcode:    input.Postcode,
		Phone:       input.Phone,
		Email:       input.Email,
		Website:     input.Website,
		AgeRange:    input.AgeRange,
		Capacity:    input.Capacity,
		Fees:        input.Fees,
		Facilities:  input.Facilities,
		AboutUs:     input.AboutUs,
		Philosophy:  input.Philosophy,
		CardImage:   input.CardImage,
		VideoURL:    input.VideoURL,
		IsApproved:  true,
		OwnerID:     ownerID,
		GroupID:     &group.ID,
	}
	if input.Images != nil {
		nursery.Images = *input.Images
	}
	if input.OpeningTime != nil && input.ClosingTime != nil {
		nursery.OpeningHours = &model.OpeningHours{
			OpeningTime: *input.OpeningTime,
			ClosingTime: *input.ClosingTime,
		}
	}

	if err := s.nurseries.Create(ctx, nursery); err != nil {
		return nil, translateSlugConflict(err)
	}

	s.notify(ctx, "New Nursery Created",
		fmt.Sprintf("%s was added in %s", nursery.Name, nursery.City),
		model.NotificationEntityNursery, nursery.ID)

	return nursery, nil
}

func (s *nurseryService) Update(ctx context.Context, actorID uuid.UUID, role string, id string, input dto.UpdateNurseryInput) (*model.Nursery, error) {
	nursery, err := s.nurseries.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if nursery.OwnerID != actorID && role != model.RoleAdmin {
		return nil, apperror.ErrForbidden
	}

	if input.Name != nil && *input.Name != nursery.Name {
		slug, err := AssignSlug(ctx, s.nurseries, *input.Name, nursery.ID)
		if err != nil {
			return nil, err
		}
		nursery.Name = *input.Name
		nursery.Slug = slug
	}

	applyNurseryInput(nursery, input)

	if err := s.nurseries.Update(ctx, nursery); err != nil {
		return nil, translateSlugConflict(err)
	}

	return nursery, nil
}

func (s *nurseryService) Delete(ctx context.Context, actorID uuid.UUID, role string, id string) error {
	nursery, err := s.nurseries.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	if nursery.OwnerID != actorID && role != model.RoleAdmin {
		return apperror.ErrForbidden
	}

	return s.nurseries.Delete(ctx, id)
}

func (s *nurseryService) withRating(ctx context.Context, nursery *model.Nursery) (*dto.NurseryWithRating, error) {
	ratings, err := s.reviews.CountedRatings(ctx, nursery.ID)
	if err != nil {
		return nil, err
	}

	return &dto.NurseryWithRating{
		Nursery:       nursery,
		RatingSummary: SummarizeRatings(ratings),
	}, nil
}

func (s *nurseryService) detailWithReviews(ctx context.Context, nursery *model.Nursery) (*dto.NurseryWithRating, error) {
	reviews, err := s.reviews.ListCountedByNursery(ctx, nursery.ID, 0)
	if err != nil {
		return nil, err
	}

	nursery.Reviews = make([]model.Review, 0, len(reviews))
	for _, review := range reviews {
		nursery.Reviews = append(nursery.Reviews, *review)
	}

	return s.withRating(ctx, nursery)
}

// notify records a moderation event; a failed notification never fails
// the operation that triggered it.
func (s *nurseryService) notify(ctx context.Context, title, message, entity string, entityID uuid.UUID) {
	if err := s.notifications.Notify(ctx, title, message, entity, entityID.String()); err != nil {
		log.Printf("[Notification]: failed to record %s event: %v", entity, err)
	}
}

func applyNurseryInput(nursery *model.Nursery, input dto.UpdateNurseryInput) {
	if input.City != nil {
		nursery.City = *input.City
	}
	if input.Town != nil {
		nursery.Town = input.Town
	}
	if input.Description != nil {
		nursery.Description = input.Description
	}
	if input.Address != nil {
		nursery.Address = input.Address
	}
	if input.Postcode != nil {
		nursery.Postcode = input.Postcode
	}
	if input.Phone != nil {
		nursery.Phone = input.Phone
	}
	if input.Email != nil {
		nursery.Email = input.Email
	}
	if input.Website != nil {
		nursery.Website = input.Website
	}
	if input.AgeRange != nil {
		nursery.AgeRange = input.AgeRange
	}
	if input.Capacity != nil {
		nursery.Capacity = input.Capacity
	}
	if input.Fees != nil {
		nursery.Fees = input.Fees
	}
	if input.Facilities != nil {
		nursery.Facilities = *input.Facilities
	}
	if input.AboutUs != nil {
		nursery.AboutUs = input.AboutUs
	}
	if input.Philosophy != nil {
		nursery.Philosophy = input.Philosophy
	}
	if input.CardImage != nil {
		nursery.CardImage = input.CardImage
	}
	if input.Images != nil {
		nursery.Images = *input.Images
	}
	if input.VideoURL != nil {
		nursery.VideoURL = input.VideoURL
	}
	if input.OpeningTime != nil || input.ClosingTime != nil {
		hours := model.OpeningHours{}
		if nursery.OpeningHours != nil {
			hours = *nursery.OpeningHours
		}
		if input.OpeningTime != nil {
			hours.OpeningTime = *input.OpeningTime
		}
		if input.ClosingTime != nil {
			hours.ClosingTime = *input.ClosingTime
		}
		nursery.OpeningHours = &hours
	}
}
