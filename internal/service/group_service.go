package service

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"mathew.com/nurserydirectory/internal/dto"
	"mathew.com/nurserydirectory/internal/model"
	"mathew.com/nurserydirectory/internal/repository"
	"mathew.com/nurserydirectory/pkg/apperror"
)

type GroupService interface {
	ListPublic(ctx context.Context) ([]*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	MyGroup(ctx context.Context, ownerID uuid.UUID) (*model.Group, error)
	SaveMyGroup(ctx context.Context, ownerID uuid.UUID, input dto.SaveGroupInput) (*model.Group, error)
}

type groupService struct {
	groups repository.GroupRepository
}

func NewGroupService(groups repository.GroupRepository) GroupService {
	return &groupService{groups: groups}
}

func (s *groupService) ListPublic(ctx context.Context) ([]*model.Group, error) {
	return s.groups.ListActive(ctx)
}

// GetBySlug serves the public group page. Deactivated groups are
// indistinguishable from missing ones.
func (s *groupService) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	group, err := s.groups.FindActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return group, nil
}

func (s *groupService) MyGroup(ctx context.Context, ownerID uuid.UUID) (*model.Group, error) {
	group, err := s.groups.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return group, nil
}

// SaveMyGroup creates the owner's group on first save and patches it on
// later ones. A rename reassigns the slug; keeping the current name
// keeps the current slug.
func (s *groupService) SaveMyGroup(ctx context.Context, ownerID uuid.UUID, input dto.SaveGroupInput) (*model.Group, error) {
	group, err := s.groups.FindByOwner(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return s.createGroup(ctx, ownerID, input)
	}

	if input.Name != "" && input.Name != group.Name {
		slug, err := AssignSlug(ctx, s.groups, input.Name, group.ID)
		if err != nil {
			return nil, err
		}
		group.Name = input.Name
		group.Slug = slug
	}

	applyGroupInput(group, input)

	if err := s.groups.Update(ctx, group); err != nil {
		return nil, translateSlugConflict(err)
	}

	return group, nil
}

func (s *groupService) createGroup(ctx context.Context, ownerID uuid.UUID, input dto.SaveGroupInput) (*model.Group, error) {
	if input.Name == "" {
		return nil, apperror.New(http.StatusBadRequest, "group name is required", apperror.ErrInvalidInput)
	}

	slug, err := AssignSlug(ctx, s.groups, input.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}

	group := &model.Group{
		Name:     input.Name,
		Slug:     slug,
		OwnerID:  ownerID,
		IsActive: true,
	}
	applyGroupInput(group, input)

	if err := s.groups.Create(ctx, group); err != nil {
		return nil, translateSlugConflict(err)
	}

	log.Printf("[Group]: created %q (%s) for owner %s", group.Name, group.Slug, ownerID)
	return group, nil
}

func applyGroupInput(group *model.Group, input dto.SaveGroupInput) {
	if input.Logo != nil {
		group.Logo = input.Logo
	}
	if input.CardImage != nil {
		group.CardImage = input.CardImage
	}
	if input.Images != nil {
		group.Images = *input.Images
	}
	if input.AboutUs != nil {
		group.AboutUs = input.AboutUs
	}
	if input.Description != nil {
		group.Description = input.Description
	}
	if input.City != nil {
		group.City = *input.City
	}
	if input.Town != nil {
		group.Town = input.Town
	}
}

// translateSlugConflict maps a unique index violation on the slug
// column to a conflict error. Concurrent creates can both pass the
// probe and race to insert; the index settles it.
func translateSlugConflict(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.New(http.StatusConflict, "slug already taken", apperror.ErrConflict)
	}
	return err
}
