package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"mathew.com/nurserydirectory/internal/model"
	"mathew.com/nurserydirectory/pkg/apperror"
)

// ListUsersOptions narrows admin user listings. SortBy must be one of
// the allowlisted keys; anything else is rejected before a query is built.
type ListUsersOptions struct {
	Search       string
	SortBy       string
	SortOrder    string
	Roles        []string
	Online       *bool
	OnlyInactive bool
}

var userSortFields = map[string]string{
	"":          "created_at",
	"createdAt": "created_at",
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"role":      "role",
}

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, opts ListUsersOptions) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountInactive(ctx context.Context) (int64, error)
	CreatedSince(ctx context.Context, since time.Time) ([]time.Time, error)
	SetOnline(ctx context.Context, id uuid.UUID, online bool) error
	ListOnlineIDs(ctx context.Context) ([]uuid.UUID, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) List(ctx context.Context, opts ListUsersOptions) ([]*model.User, error) {
	order, err := sortClause(userSortFields, opts.SortBy, opts.SortOrder)
	if err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).Model(&model.User{})

	if len(opts.Roles) > 0 {
		q = q.Where("role IN ?", opts.Roles)
	}
	if opts.OnlyInactive {
		q = q.Where("is_active = ?", false)
	}
	if opts.Online != nil {
		q = q.Where("is_online = ?", *opts.Online)
	}
	if opts.Search != "" {
		pattern := likePattern(opts.Search)
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}

	var users []*model.User
	if err := q.Order(order).Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) CountInactive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("is_active = ?", false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) CreatedSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	var stamps []time.Time
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("created_at >= ?", since).
		Pluck("created_at", &stamps).Error; err != nil {
		return nil, err
	}
	return stamps, nil
}

func (r *userRepository) SetOnline(ctx context.Context, id uuid.UUID, online bool) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("is_online", online).Error
}

func (r *userRepository) ListOnlineIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("is_online = ?", true).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// sortClause validates the requested sort key against an allowlist and
// builds the ORDER BY clause. Unknown keys are rejected, not passed
// through.
func sortClause(fields map[string]string, sortBy, sortOrder string) (string, error) {
	column, ok := fields[sortBy]
	if !ok {
		return "", apperror.ErrInvalidInput
	}

	switch sortOrder {
	case "", "desc":
		return column + " DESC", nil
	case "asc":
		return column + " ASC", nil
	default:
		return "", apperror.ErrInvalidInput
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps a search term for a substring ILIKE match. LIKE
// metacharacters in the term are escaped so they match literally.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
