package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"mathew.com/nurserydirectory/internal/model"
)

// ListGroupsOptions narrows admin group listings.
type ListGroupsOptions struct {
	Search      string
	SortBy      string
	SortOrder   string
	OwnerOnline *bool
}

var groupSortFields = map[string]string{
	"":          "groups.created_at",
	"createdAt": "groups.created_at",
	"name":      "groups.name",
	"city":      "groups.city",
	"updatedAt": "groups.updated_at",
	"owner":     "users.first_name",
}

type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) error
	FindByID(ctx context.Context, id string) (*model.Group, error)
	FindBySlug(ctx context.Context, slug string) (*model.Group, error)
	FindActiveBySlug(ctx context.Context, slug string) (*model.Group, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Group, error)
	ListActive(ctx context.Context) ([]*model.Group, error)
	ListAdmin(ctx context.Context, opts ListGroupsOptions) ([]*model.Group, error)
	Update(ctx context.Context, group *model.Group) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	SearchActive(ctx context.Context, term string, limit int) ([]*model.Group, error)
	FindActiveByCity(ctx context.Context, city string, limit int) ([]*model.Group, error)
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *model.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *groupRepository) FindByID(ctx context.Context, id string) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&group).Error; err != nil {
		return nil, err
	}

	return &group, nil
}

func (r *groupRepository) FindBySlug(ctx context.Context, slug string) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&group).Error; err != nil {
		return nil, err
	}

	return &group, nil
}

func (r *groupRepository) FindActiveBySlug(ctx context.Context, slug string) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&group).Error; err != nil {
		return nil, err
	}

	return &group, nil
}

func (r *groupRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&group).Error; err != nil {
		return nil, err
	}

	return &group, nil
}

func (r *groupRepository) ListActive(ctx context.Context) ([]*model.Group, error) {
	var groups []*model.Group
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&groups).Error; err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *groupRepository) ListAdmin(ctx context.Context, opts ListGroupsOptions) ([]*model.Group, error) {
	order, err := sortClause(groupSortFields, opts.SortBy, opts.SortOrder)
	if err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).Model(&model.Group{}).
		Joins("JOIN users ON users.id = groups.owner_id").
		Preload("Owner")

	if opts.Search != "" {
		pattern := likePattern(opts.Search)
		q = q.Where(
			"groups.name ILIKE ? OR groups.city ILIKE ? OR users.first_name ILIKE ? OR users.last_name ILIKE ? OR users.email ILIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}
	if opts.OwnerOnline != nil {
		q = q.Where("users.is_online = ?", *opts.OwnerOnline)
	}

	var groups []*model.Group
	if err := q.Order(order).Find(&groups).Error; err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *groupRepository) Update(ctx context.Context, group *model.Group) error {
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *groupRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Group{}, "id = ?", id).Error
}

func (r *groupRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Group{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *groupRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Group{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *groupRepository) SearchActive(ctx context.Context, term string, limit int) ([]*model.Group, error) {
	pattern := likePattern(term)

	var groups []*model.Group
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("name ILIKE ? OR city ILIKE ? OR town ILIKE ?", pattern, pattern, pattern).
		Limit(limit).
		Find(&groups).Error; err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *groupRepository) FindActiveByCity(ctx context.Context, city string, limit int) ([]*model.Group, error) {
	var groups []*model.Group
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("LOWER(city) = LOWER(?)", city).
		Order("created_at DESC").
		Limit(limit).
		Find(&groups).Error; err != nil {
		return nil, err
	}

	return groups, nil
}
