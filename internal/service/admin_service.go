package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"
	"mathew.com/nurserydirectory/internal/dto"
	"mathew.com/nurserydirectory/internal/model"
	"mathew.com/nurserydirectory/internal/repository"
	"mathew.com/nurserydirectory/pkg/apperror"
)

// monthlyStatsWindow is how far back the dashboard charts go.
const monthlyStatsWindow = 12

type AdminService interface {
	ListUsers(ctx context.Context, query dto.ListQuery) ([]*model.User, error)
	ListOwners(ctx context.Context, query dto.ListQuery) ([]dto.AdminOwnerRow, error)
	ListPendingUsers(ctx context.Context, query dto.ListQuery) ([]*model.User, error)
	ApproveUser(ctx context.Context, id string) (*model.User, error)
	RejectUser(ctx context.Context, id string) error

	ListGroups(ctx context.Context, query dto.ListQuery) ([]dto.AdminGroupRow, error)
	UpdateGroup(ctx context.Context, id string, input dto.AdminUpdateGroupInput) (*model.Group, error)
	ToggleGroupActive(ctx context.Context, id string) (*model.Group, error)
	DeleteGroup(ctx context.Context, id string) error

	ListNurseries(ctx context.Context, query dto.ListQuery) ([]dto.AdminNurseryRow, error)
	ToggleNurseryApproved(ctx context.Context, id string) (*model.Nursery, error)
	DeleteNursery(ctx context.Context, id string) error

	ListReviews(ctx context.Context, query dto.ReviewListQuery) (*dto.PaginatedReviews, error)
	ApproveReview(ctx context.Context, id string) (*model.Review, error)
	RejectReview(ctx context.Context, id string, reason string) (*model.Review, error)

	DashboardStats(ctx context.Context) (*dto.DashboardStats, error)
	MonthlyUserStats(ctx context.Context) (*dto.MonthlyUserStats, error)
	MonthlyReviewStats(ctx context.Context) (*dto.MonthlyReviewStats, error)
}

type adminService struct {
	users         repository.UserRepository
	groups        repository.GroupRepository
	nurseries     repository.NurseryRepository
	reviews       repository.ReviewRepository
	notifications NotificationService
}

func NewAdminService(
	users repository.UserRepository,
	groups repository.GroupRepository,
	nurseries repository.NurseryRepository,
	reviews repository.ReviewRepository,
	notifications NotificationService,
) AdminService {
	return &adminService{
		users:         users,
		groups:        groups,
		nurseries:     nurseries,
		reviews:       reviews,
		notifications: notifications,
	}
}

// ListUsers covers the non-owner population; owners have their own
// listing with group and nursery counts attached.
func (s *adminService) ListUsers(ctx context.Context, query dto.ListQuery) ([]*model.User, error) {
	switch query.Status {
	case "", "pending", "online", "offline":
	default:
		return nil, apperror.ErrInvalidInput
	}

	opts := repository.ListUsersOptions{
		Search:    query.Search,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Roles:     []string{model.RoleUser, model.RoleParent},
		Online:    onlineFilter(query.Status),
	}
	if query.Status == "pending" {
		opts.OnlyInactive = true
	}

	return s.listUsers(ctx, opts)
}

func (s *adminService) ListOwners(ctx context.Context, query dto.ListQuery) ([]dto.AdminOwnerRow, error) {
	switch query.Status {
	case "", "online", "offline":
	default:
		return nil, apperror.ErrInvalidInput
	}

	owners, err := s.listUsers(ctx, repository.ListUsersOptions{
		Search:    query.Search,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Roles:     []string{model.RoleNurseryOwner},
		Online:    onlineFilter(query.Status),
	})
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AdminOwnerRow, 0, len(owners))
	for _, owner := range owners {
		row := dto.AdminOwnerRow{User: owner}

		group, err := s.groups.FindByOwner(ctx, owner.ID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		} else {
			row.GroupName = &group.Name
		}

		nurseries, err := s.nurseries.FindByOwner(ctx, owner.ID)
		if err != nil {
			return nil, err
		}
		row.NurseriesCount = int64(len(nurseries))

		rows = append(rows, row)
	}

	return rows, nil
}

func (s *adminService) ListPendingUsers(ctx context.Context, query dto.ListQuery) ([]*model.User, error) {
	return s.listUsers(ctx, repository.ListUsersOptions{
		Search:       query.Search,
		SortBy:       query.SortBy,
		SortOrder:    query.SortOrder,
		OnlyInactive: true,
	})
}

func (s *adminService) listUsers(ctx context.Context, opts repository.ListUsersOptions) ([]*model.User, error) {
	users, err := s.users.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		user.PasswordHash = ""
	}

	return users, nil
}

// ApproveUser activates a pending account and records the event. This
// is what unlocks signin for nursery owners.
func (s *adminService) ApproveUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	user.IsActive = true
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.notify(ctx, "User Approved",
		fmt.Sprintf("%s %s (%s) was approved", user.FirstName, user.LastName, user.Email),
		model.NotificationEntityUser, user.ID.String())

	user.PasswordHash = ""
	return user, nil
}

// RejectUser removes the account outright. Rejection is not a state;
// rejected signups simply stop existing, and no notification is
// recorded.
func (s *adminService) RejectUser(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	return s.users.Delete(ctx, id)
}

func (s *adminService) ListGroups(ctx context.Context, query dto.ListQuery) ([]dto.AdminGroupRow, error) {
	switch query.Status {
	case "", "online", "offline":
	default:
		return nil, apperror.ErrInvalidInput
	}

	groups, err := s.groups.ListAdmin(ctx, repository.ListGroupsOptions{
		Search:      query.Search,
		SortBy:      query.SortBy,
		SortOrder:   query.SortOrder,
		OwnerOnline: onlineFilter(query.Status),
	})
	if err != nil {
		return nil, err
	}

	counts, err := s.nurseries.CountsByGroup(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AdminGroupRow, 0, len(groups))
	for _, group := range groups {
		row := dto.AdminGroupRow{
			ID:             group.ID,
			Name:           group.Name,
			Slug:           group.Slug,
			City:           group.City,
			Town:           group.Town,
			IsActive:       group.IsActive,
			CreatedAt:      group.CreatedAt,
			UpdatedAt:      group.UpdatedAt,
			OwnerID:        group.OwnerID,
			NurseriesCount: counts[group.ID],
		}
		if group.Owner != nil {
			row.OwnerFirstName = group.Owner.FirstName
			row.OwnerLastName = group.Owner.LastName
			row.OwnerEmail = group.Owner.Email
			row.OwnerPhone = group.Owner.Phone
			row.OwnerIsOnline = group.Owner.IsOnline
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (s *adminService) UpdateGroup(ctx context.Context, id string, input dto.AdminUpdateGroupInput) (*model.Group, error) {
	group, err := s.groups.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if input.Name != nil && *input.Name != group.Name {
		slug, err := AssignSlug(ctx, s.groups, *input.Name, group.ID)
		if err != nil {
			return nil, err
		}
		group.Name = *input.Name
		group.Slug = slug
	}

	applyGroupInput(group, dto.SaveGroupInput{
		Logo:        input.Logo,
		CardImage:   input.CardImage,
		Images:      input.Images,
		AboutUs:     input.AboutUs,
		Description: input.Description,
		City:        input.City,
		Town:        input.Town,
	})
	if input.Email != nil {
		group.Email = input.Email
	}
	if input.Phone != nil {
		group.Phone = input.Phone
	}

	if err := s.groups.Update(ctx, group); err != nil {
		return nil, translateSlugConflict(err)
	}

	return group, nil
}

// ToggleGroupActive flips visibility. The data is untouched; an
// inactive group just disappears from public reads. No notification.
func (s *adminService) ToggleGroupActive(ctx context.Context, id string) (*model.Group, error) {
	group, err := s.groups.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	group.IsActive = !group.IsActive
	if err := s.groups.Update(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

func (s *adminService) DeleteGroup(ctx context.Context, id string) error {
	if _, err := s.groups.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	return s.groups.Delete(ctx, id)
}

func (s *adminService) ListNurseries(ctx context.Context, query dto.ListQuery) ([]dto.AdminNurseryRow, error) {
	switch query.Status {
	case "", "online", "offline":
	default:
		return nil, apperror.ErrInvalidInput
	}

	nurseries, err := s.nurseries.ListAdmin(ctx, repository.ListNurseriesOptions{
		Search:      query.Search,
		SortBy:      query.SortBy,
		SortOrder:   query.SortOrder,
		OwnerOnline: onlineFilter(query.Status),
	})
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AdminNurseryRow, 0, len(nurseries))
	for _, nursery := range nurseries {
		ratings, err := s.reviews.CountedRatings(ctx, nursery.ID)
		if err != nil {
			return nil, err
		}
		summary := SummarizeRatings(ratings)

		row := dto.AdminNurseryRow{
			ID:            nursery.ID,
			Name:          nursery.Name,
			Slug:          nursery.Slug,
			City:          nursery.City,
			Town:          nursery.Town,
			IsApproved:    nursery.IsApproved,
			IsVerified:    nursery.IsVerified,
			CreatedAt:     nursery.CreatedAt,
			UpdatedAt:     nursery.UpdatedAt,
			OwnerID:       nursery.OwnerID,
			GroupID:       nursery.GroupID,
			AverageRating: summary.AverageRating,
			ReviewsCount:  summary.ReviewsCount,
		}
		if nursery.Owner != nil {
			row.OwnerFirstName = nursery.Owner.FirstName
			row.OwnerLastName = nursery.Owner.LastName
			row.OwnerEmail = nursery.Owner.Email
			row.OwnerPhone = nursery.Owner.Phone
			row.OwnerIsOnline = nursery.Owner.IsOnline
		}
		if nursery.Group != nil {
			row.GroupName = &nursery.Group.Name
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ToggleNurseryApproved flips the nursery in and out of public view.
// No notification; only creation and review events page the admins.
func (s *adminService) ToggleNurseryApproved(ctx context.Context, id string) (*model.Nursery, error) {
	nursery, err := s.nurseries.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	nursery.IsApproved = !nursery.IsApproved
	if err := s.nurseries.Update(ctx, nursery); err != nil {
		return nil, err
	}

	return nursery, nil
}

func (s *adminService) DeleteNursery(ctx context.Context, id string) error {
	if _, err := s.nurseries.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	return s.nurseries.Delete(ctx, id)
}

func (s *adminService) ListReviews(ctx context.Context, query dto.ReviewListQuery) (*dto.PaginatedReviews, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 20
	}

	switch query.Status {
	case "", "pending", "approved", "rejected":
	default:
		return nil, apperror.ErrInvalidInput
	}

	reviews, total, err := s.reviews.ListAdmin(ctx, repository.ListReviewsOptions{
		Search:    query.Search,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Status:    query.Status,
		Page:      query.Page,
		Limit:     query.Limit,
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.ReviewWithStatus, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, dto.ReviewWithStatus{
			Review: review,
			Status: review.Status(),
		})
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))

	return &dto.PaginatedReviews{
		Reviews: items,
		Pagination: dto.PaginationMeta{
			Page:       query.Page,
			Limit:      query.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// ApproveReview moves a pending review into the public rating pool.
// Only pending reviews can be approved; rejection is the terminal state.
func (s *adminService) ApproveReview(ctx context.Context, id string) (*model.Review, error) {
	review, err := s.findReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.Status() != model.ReviewStatusPending {
		return nil, apperror.New(http.StatusConflict, "review has already been moderated", apperror.ErrConflict)
	}

	review.IsApproved = true
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// RejectReview takes a pending or approved review out of the public
// pool. Rejection is terminal; a rejected review cannot be moderated
// again, and rejecting an approved review drops it from the rating.
func (s *adminService) RejectReview(ctx context.Context, id string, reason string) (*model.Review, error) {
	review, err := s.findReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.IsRejected {
		return nil, apperror.New(http.StatusConflict, "review has already been rejected", apperror.ErrConflict)
	}

	now := time.Now()
	review.IsRejected = true
	review.RejectionReason = &reason
	review.RejectedAt = &now
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *adminService) findReview(ctx context.Context, id string) (*model.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return review, nil
}

func (s *adminService) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	var err error
	if stats.TotalNurseries, err = s.nurseries.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalGroups, err = s.groups.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalReviews, err = s.reviews.Count(ctx); err != nil {
		return nil, err
	}
	if stats.RejectedReviews, err = s.reviews.CountRejected(ctx); err != nil {
		return nil, err
	}

	if stats.PendingApprovals, err = s.users.CountInactive(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *adminService) MonthlyUserStats(ctx context.Context) (*dto.MonthlyUserStats, error) {
	months, since := statsMonths(time.Now())

	stamps, err := s.users.CreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]int, len(months))
	for _, stamp := range stamps {
		buckets[stamp.Format("Jan 2006")]++
	}

	result := &dto.MonthlyUserStats{MonthlyUsers: make([]dto.MonthlyUserStat, 0, len(months))}
	for _, month := range months {
		count := buckets[month]
		result.MonthlyUsers = append(result.MonthlyUsers, dto.MonthlyUserStat{Month: month, Users: count})
		result.TotalUsers += count
	}

	return result, nil
}

func (s *adminService) MonthlyReviewStats(ctx context.Context) (*dto.MonthlyReviewStats, error) {
	months, since := statsMonths(time.Now())

	creations, err := s.reviews.CreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	type bucket struct{ total, approved int }
	buckets := make(map[string]bucket, len(months))
	for _, creation := range creations {
		key := creation.CreatedAt.Format("Jan 2006")
		b := buckets[key]
		b.total++
		if creation.IsApproved {
			b.approved++
		}
		buckets[key] = b
	}

	result := &dto.MonthlyReviewStats{MonthlyReviews: make([]dto.MonthlyReviewStat, 0, len(months))}
	for _, month := range months {
		b := buckets[month]
		result.MonthlyReviews = append(result.MonthlyReviews, dto.MonthlyReviewStat{
			Month:    month,
			Reviews:  b.total,
			Approved: b.approved,
			Pending:  b.total - b.approved,
		})
		result.TotalReviews += b.total
		result.TotalApproved += b.approved
	}

	return result, nil
}

// onlineFilter maps the listing status param onto the presence filter.
// Statuses that are not about presence leave the filter unset.
func onlineFilter(status string) *bool {
	switch status {
	case "online":
		online := true
		return &online
	case "offline":
		online := false
		return &online
	default:
		return nil
	}
}

// statsMonths returns the chart's month labels, oldest first, and the
// start of the oldest month.
func statsMonths(now time.Time) ([]string, time.Time) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(monthlyStatsWindow - 1), 0)

	months := make([]string, 0, monthlyStatsWindow)
	for i := 0; i < monthlyStatsWindow; i++ {
		months = append(months, first.AddDate(0, i, 0).Format("Jan 2006"))
	}

	return months, first
}

func (s *adminService) notify(ctx context.Context, title, message, entity, entityID string) {
	if err := s.notifications.Notify(ctx, title, message, entity, entityID); err != nil {
		log.Printf("[Notification]: failed to record %s event: %v", entity, err)
	}
}
