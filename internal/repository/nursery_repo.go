package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"mathew.com/nurserydirectory/internal/model"
)

// ListNurseriesOptions narrows admin nursery listings.
type ListNurseriesOptions struct {
	Search      string
	SortBy      string
	SortOrder   string
	OwnerOnline *bool
}

// PublicNurseryFilter narrows the public approved-only listing.
type PublicNurseryFilter struct {
	City       string
	Search     string
	AgeRanges  []string
	Facilities []string
	Page       int
	Limit      int
}

var nurserySortFields = map[string]string{
	"":          "nurseries.created_at",
	"createdAt": "nurseries.created_at",
	"name":      "nurseries.name",
	"city":      "nurseries.city",
	"updatedAt": "nurseries.updated_at",
	"owner":     "users.first_name",
	"group":     "groups.name",
}

type NurseryRepository interface {
	Create(ctx context.Context, nursery *model.Nursery) error
	FindByID(ctx context.Context, id string) (*model.Nursery, error)
	FindBySlug(ctx context.Context, slug string) (*model.Nursery, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Nursery, error)
	ListPublic(ctx context.Context, filter PublicNurseryFilter) ([]*model.Nursery, int64, error)
	ListAdmin(ctx context.Context, opts ListNurseriesOptions) ([]*model.Nursery, error)
	Update(ctx context.Context, nursery *model.Nursery) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountApprovedByGroup(ctx context.Context, groupID uuid.UUID) (int64, error)
	CountsByGroup(ctx context.Context) (map[uuid.UUID]int64, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	SearchApproved(ctx context.Context, term string, limit int) ([]*model.Nursery, error)
	FindApprovedByCity(ctx context.Context, city string, limit int) ([]*model.Nursery, error)
}

type nurseryRepository struct {
	db *gorm.DB
}

func NewNurseryRepository(db *gorm.DB) NurseryRepository {
	return &nurseryRepository{db: db}
}

func (r *nurseryRepository) Create(ctx context.Context, nursery *model.Nursery) error {
	return r.db.WithContext(ctx).Create(nursery).Error
}

func (r *nurseryRepository) FindByID(ctx context.Context, id string) (*model.Nursery, error) {
	var nursery model.Nursery
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Group").
		Where("id = ?", id).
		First(&nursery).Error; err != nil {
		return nil, err
	}

	return &nursery, nil
}

func (r *nurseryRepository) FindBySlug(ctx context.Context, slug string) (*model.Nursery, error) {
	var nursery model.Nursery
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Group").
		Where("slug = ?", slug).
		First(&nursery).Error; err != nil {
		return nil, err
	}

	return &nursery, nil
}

func (r *nurseryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Nursery, error) {
	var nurseries []*model.Nursery
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&nurseries).Error; err != nil {
		return nil, err
	}

	return nurseries, nil
}

func (r *nurseryRepository) ListPublic(ctx context.Context, filter PublicNurseryFilter) ([]*model.Nursery, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Nursery{}).
		Where("is_approved = ?", true)

	if filter.City != "" {
		q = q.Where("city ILIKE ?", likePattern(filter.City))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if len(filter.AgeRanges) > 0 {
		q = q.Where("age_range IN ?", filter.AgeRanges)
	}
	// Facilities are stored as a JSON array; require every requested one.
	for _, facility := range filter.Facilities {
		q = q.Where("facilities::jsonb @> ?", `["`+facility+`"]`)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	var nurseries []*model.Nursery
	if err := q.
		Preload("Group").
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&nurseries).Error; err != nil {
		return nil, 0, err
	}

	return nurseries, total, nil
}

func (r *nurseryRepository) ListAdmin(ctx context.Context, opts ListNurseriesOptions) ([]*model.Nursery, error) {
	order, err := sortClause(nurserySortFields, opts.SortBy, opts.SortOrder)
	if err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).Model(&model.Nursery{}).
		Joins("JOIN users ON users.id = nurseries.owner_id").
		Joins("LEFT JOIN groups ON groups.id = nurseries.group_id").
		Preload("Owner").
		Preload("Group")

	if opts.Search != "" {
		pattern := likePattern(opts.Search)
		q = q.Where(
			"nurseries.name ILIKE ? OR nurseries.city ILIKE ? OR users.first_name ILIKE ? OR users.last_name ILIKE ? OR groups.name ILIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}
	if opts.OwnerOnline != nil {
		q = q.Where("users.is_online = ?", *opts.OwnerOnline)
	}

	var nurseries []*model.Nursery
	if err := q.Order(order).Find(&nurseries).Error; err != nil {
		return nil, err
	}

	return nurseries, nil
}

func (r *nurseryRepository) Update(ctx context.Context, nursery *model.Nursery) error {
	return r.db.WithContext(ctx).Save(nursery).Error
}

func (r *nurseryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Nursery{}, "id = ?", id).Error
}

func (r *nurseryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Nursery{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *nurseryRepository) CountApprovedByGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Nursery{}).
		Where("group_id = ? AND is_approved = ?", groupID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *nurseryRepository) CountsByGroup(ctx context.Context) (map[uuid.UUID]int64, error) {
	var rows []struct {
		GroupID uuid.UUID
		Count   int64
	}
	if err := r.db.WithContext(ctx).Model(&model.Nursery{}).
		Select("group_id", "COUNT(*) AS count").
		Where("group_id IS NOT NULL").
		Group("group_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.GroupID] = row.Count
	}

	return counts, nil
}

func (r *nurseryRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Nursery{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *nurseryRepository) SearchApproved(ctx context.Context, term string, limit int) ([]*model.Nursery, error) {
	pattern := likePattern(term)

	var nurseries []*model.Nursery
	if err := r.db.WithContext(ctx).
		Preload("Group").
		Where("is_approved = ?", true).
		Where("name ILIKE ? OR city ILIKE ? OR town ILIKE ?", pattern, pattern, pattern).
		Limit(limit).
		Find(&nurseries).Error; err != nil {
		return nil, err
	}

	return nurseries, nil
}

func (r *nurseryRepository) FindApprovedByCity(ctx context.Context, city string, limit int) ([]*model.Nursery, error) {
	var nurseries []*model.Nursery
	if err := r.db.WithContext(ctx).
		Preload("Group").
		Where("is_approved = ?", true).
		Where("LOWER(city) = LOWER(?)", city).
		Order("created_at DESC").
		Limit(limit).
		Find(&nurseries).Error; err != nil {
		return nil, err
	}

	return nurseries, nil
}
