package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"mathew.com/nurserydirectory/internal/model"
	"mathew.com/nurserydirectory/internal/repository"
)

// In-memory fakes for the repository interfaces. They keep insertion
// order where listings promise newest-first and ignore sort options;
// allowlist validation is covered by the repository package.

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	user, ok := r.users[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) List(_ context.Context, opts repository.ListUsersOptions) ([]*model.User, error) {
	var users []*model.User
	for _, user := range r.users {
		if len(opts.Roles) > 0 && !contains(opts.Roles, user.Role) {
			continue
		}
		if opts.OnlyInactive && user.IsActive {
			continue
		}
		if opts.Online != nil && user.IsOnline != *opts.Online {
			continue
		}
		if opts.Search != "" && !strings.Contains(strings.ToLower(user.Email), strings.ToLower(opts.Search)) {
			continue
		}
		clone := *user
		users = append(users, &clone)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, parsed)
	return nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountInactive(_ context.Context) (int64, error) {
	var count int64
	for _, user := range r.users {
		if !user.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) CreatedSince(_ context.Context, since time.Time) ([]time.Time, error) {
	var stamps []time.Time
	for _, user := range r.users {
		if !user.CreatedAt.Before(since) {
			stamps = append(stamps, user.CreatedAt)
		}
	}
	return stamps, nil
}

func (r *fakeUserRepo) SetOnline(_ context.Context, id uuid.UUID, online bool) error {
	user, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.IsOnline = online
	return nil
}

func (r *fakeUserRepo) ListOnlineIDs(_ context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, user := range r.users {
		if user.IsOnline {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type fakeGroupRepo struct {
	groups        map[uuid.UUID]*model.Group
	lastAdminOpts repository.ListGroupsOptions
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: make(map[uuid.UUID]*model.Group)}
}

func (r *fakeGroupRepo) Create(_ context.Context, group *model.Group) error {
	if group.ID == uuid.Nil {
		group.ID = uuid.New()
	}
	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now()
	}
	for _, existing := range r.groups {
		if existing.Slug == group.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	clone := *group
	r.groups[group.ID] = &clone
	return nil
}

func (r *fakeGroupRepo) FindByID(_ context.Context, id string) (*model.Group, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	group, ok := r.groups[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *group
	return &clone, nil
}

func (r *fakeGroupRepo) FindBySlug(_ context.Context, slug string) (*model.Group, error) {
	for _, group := range r.groups {
		if group.Slug == slug {
			clone := *group
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGroupRepo) FindActiveBySlug(ctx context.Context, slug string) (*model.Group, error) {
	group, err := r.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !group.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return group, nil
}

func (r *fakeGroupRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) (*model.Group, error) {
	for _, group := range r.groups {
		if group.OwnerID == ownerID {
			clone := *group
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGroupRepo) ListActive(_ context.Context) ([]*model.Group, error) {
	var groups []*model.Group
	for _, group := range r.groups {
		if group.IsActive {
			clone := *group
			groups = append(groups, &clone)
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].CreatedAt.After(groups[j].CreatedAt) })
	return groups, nil
}

func (r *fakeGroupRepo) ListAdmin(_ context.Context, opts repository.ListGroupsOptions) ([]*model.Group, error) {
	r.lastAdminOpts = opts
	var groups []*model.Group
	for _, group := range r.groups {
		clone := *group
		groups = append(groups, &clone)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].CreatedAt.After(groups[j].CreatedAt) })
	return groups, nil
}

func (r *fakeGroupRepo) Update(_ context.Context, group *model.Group) error {
	if _, ok := r.groups[group.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for id, existing := range r.groups {
		if id != group.ID && existing.Slug == group.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	clone := *group
	r.groups[group.ID] = &clone
	return nil
}

func (r *fakeGroupRepo) Delete(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	delete(r.groups, parsed)
	return nil
}

func (r *fakeGroupRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.groups)), nil
}

func (r *fakeGroupRepo) SlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for id, group := range r.groups {
		if group.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeGroupRepo) SearchActive(_ context.Context, term string, limit int) ([]*model.Group, error) {
	term = strings.ToLower(term)
	var groups []*model.Group
	for _, group := range r.groups {
		if !group.IsActive {
			continue
		}
		town := ""
		if group.Town != nil {
			town = *group.Town
		}
		haystack := strings.ToLower(group.Name + " " + group.City + " " + town)
		if strings.Contains(haystack, term) {
			clone := *group
			groups = append(groups, &clone)
		}
	}
	if len(groups) > limit {
		groups = groups[:limit]
	}
	return groups, nil
}

func (r *fakeGroupRepo) FindActiveByCity(_ context.Context, city string, limit int) ([]*model.Group, error) {
	var groups []*model.Group
	for _, group := range r.groups {
		if group.IsActive && strings.EqualFold(group.City, city) {
			clone := *group
			groups = append(groups, &clone)
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].CreatedAt.After(groups[j].CreatedAt) })
	if len(groups) > limit {
		groups = groups[:limit]
	}
	return groups, nil
}

type fakeNurseryRepo struct {
	nurseries     map[uuid.UUID]*model.Nursery
	lastAdminOpts repository.ListNurseriesOptions
}

func newFakeNurseryRepo() *fakeNurseryRepo {
	return &fakeNurseryRepo{nurseries: make(map[uuid.UUID]*model.Nursery)}
}

func (r *fakeNurseryRepo) Create(_ context.Context, nursery *model.Nursery) error {
	if nursery.ID == uuid.Nil {
		nursery.ID = uuid.New()
	}
	if nursery.CreatedAt.IsZero() {
		nursery.CreatedAt = time.Now()
	}
	for _, existing := range r.nurseries {
		if existing.Slug == nursery.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	clone := *nursery
	r.nurseries[nursery.ID] = &clone
	return nil
}

func (r *fakeNurseryRepo) FindByID(_ context.Context, id string) (*model.Nursery, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	nursery, ok := r.nurseries[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *nursery
	return &clone, nil
}

func (r *fakeNurseryRepo) FindBySlug(_ context.Context, slug string) (*model.Nursery, error) {
	for _, nursery := range r.nurseries {
		if nursery.Slug == slug {
			clone := *nursery
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeNurseryRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*model.Nursery, error) {
	var nurseries []*model.Nursery
	for _, nursery := range r.nurseries {
		if nursery.OwnerID == ownerID {
			clone := *nursery
			nurseries = append(nurseries, &clone)
		}
	}
	sort.Slice(nurseries, func(i, j int) bool { return nurseries[i].CreatedAt.After(nurseries[j].CreatedAt) })
	return nurseries, nil
}

func (r *fakeNurseryRepo) ListPublic(_ context.Context, filter repository.PublicNurseryFilter) ([]*model.Nursery, int64, error) {
	var matched []*model.Nursery
	for _, nursery := range r.nurseries {
		if !nursery.IsApproved {
			continue
		}
		if filter.City != "" && !strings.Contains(strings.ToLower(nursery.City), strings.ToLower(filter.City)) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(nursery.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if len(filter.AgeRanges) > 0 && (nursery.AgeRange == nil || !contains(filter.AgeRanges, *nursery.AgeRange)) {
			continue
		}
		if !containsAll(nursery.Facilities, filter.Facilities) {
			continue
		}
		clone := *nursery
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *fakeNurseryRepo) ListAdmin(_ context.Context, opts repository.ListNurseriesOptions) ([]*model.Nursery, error) {
	r.lastAdminOpts = opts
	var nurseries []*model.Nursery
	for _, nursery := range r.nurseries {
		clone := *nursery
		nurseries = append(nurseries, &clone)
	}
	sort.Slice(nurseries, func(i, j int) bool { return nurseries[i].CreatedAt.After(nurseries[j].CreatedAt) })
	return nurseries, nil
}

func (r *fakeNurseryRepo) Update(_ context.Context, nursery *model.Nursery) error {
	if _, ok := r.nurseries[nursery.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for id, existing := range r.nurseries {
		if id != nursery.ID && existing.Slug == nursery.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	clone := *nursery
	r.nurseries[nursery.ID] = &clone
	return nil
}

func (r *fakeNurseryRepo) Delete(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	delete(r.nurseries, parsed)
	return nil
}

func (r *fakeNurseryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.nurseries)), nil
}

func (r *fakeNurseryRepo) CountApprovedByGroup(_ context.Context, groupID uuid.UUID) (int64, error) {
	var count int64
	for _, nursery := range r.nurseries {
		if nursery.IsApproved && nursery.GroupID != nil && *nursery.GroupID == groupID {
			count++
		}
	}
	return count, nil
}

func (r *fakeNurseryRepo) CountsByGroup(_ context.Context) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64)
	for _, nursery := range r.nurseries {
		if nursery.GroupID != nil {
			counts[*nursery.GroupID]++
		}
	}
	return counts, nil
}

func (r *fakeNurseryRepo) SlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for id, nursery := range r.nurseries {
		if nursery.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeNurseryRepo) SearchApproved(_ context.Context, term string, limit int) ([]*model.Nursery, error) {
	term = strings.ToLower(term)
	var nurseries []*model.Nursery
	for _, nursery := range r.nurseries {
		if !nursery.IsApproved {
			continue
		}
		town := ""
		if nursery.Town != nil {
			town = *nursery.Town
		}
		haystack := strings.ToLower(nursery.Name + " " + nursery.City + " " + town)
		if strings.Contains(haystack, term) {
			clone := *nursery
			nurseries = append(nurseries, &clone)
		}
	}
	if len(nurseries) > limit {
		nurseries = nurseries[:limit]
	}
	return nurseries, nil
}

func (r *fakeNurseryRepo) FindApprovedByCity(_ context.Context, city string, limit int) ([]*model.Nursery, error) {
	var nurseries []*model.Nursery
	for _, nursery := range r.nurseries {
		if nursery.IsApproved && strings.EqualFold(nursery.City, city) {
			clone := *nursery
			nurseries = append(nurseries, &clone)
		}
	}
	sort.Slice(nurseries, func(i, j int) bool { return nurseries[i].CreatedAt.After(nurseries[j].CreatedAt) })
	if len(nurseries) > limit {
		nurseries = nurseries[:limit]
	}
	return nurseries, nil
}

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*model.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*model.Review)}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *model.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *fakeReviewRepo) FindByID(_ context.Context, id string) (*model.Review, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	review, ok := r.reviews[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *review
	return &clone, nil
}

func (r *fakeReviewRepo) Update(_ context.Context, review *model.Review) error {
	if _, ok := r.reviews[review.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *fakeReviewRepo) ListByNursery(_ context.Context, nurseryID uuid.UUID) ([]*model.Review, error) {
	var reviews []*model.Review
	for _, review := range r.reviews {
		if review.NurseryID == nurseryID {
			clone := *review
			reviews = append(reviews, &clone)
		}
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].CreatedAt.After(reviews[j].CreatedAt) })
	return reviews, nil
}

func (r *fakeReviewRepo) ListCountedByNursery(ctx context.Context, nurseryID uuid.UUID, limit int) ([]*model.Review, error) {
	all, err := r.ListByNursery(ctx, nurseryID)
	if err != nil {
		return nil, err
	}
	var reviews []*model.Review
	for _, review := range all {
		if review.Counted() {
			reviews = append(reviews, review)
		}
	}
	if limit > 0 && len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}

func (r *fakeReviewRepo) CountedRatings(_ context.Context, nurseryID uuid.UUID) ([]float64, error) {
	var ratings []float64
	for _, review := range r.reviews {
		if review.NurseryID == nurseryID && review.Counted() {
			ratings = append(ratings, review.OverallRating)
		}
	}
	return ratings, nil
}

func (r *fakeReviewRepo) ListAdmin(_ context.Context, opts repository.ListReviewsOptions) ([]*model.Review, int64, error) {
	var matched []*model.Review
	for _, review := range r.reviews {
		if opts.Status != "" && review.Status() != opts.Status {
			continue
		}
		clone := *review
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	if opts.Page > 0 && opts.Limit > 0 {
		start := (opts.Page - 1) * opts.Limit
		if start > len(matched) {
			start = len(matched)
		}
		end := start + opts.Limit
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (r *fakeReviewRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.reviews)), nil
}

func (r *fakeReviewRepo) CountRejected(_ context.Context) (int64, error) {
	var count int64
	for _, review := range r.reviews {
		if review.IsRejected {
			count++
		}
	}
	return count, nil
}

func (r *fakeReviewRepo) CreatedSince(_ context.Context, since time.Time) ([]repository.ReviewCreation, error) {
	var rows []repository.ReviewCreation
	for _, review := range r.reviews {
		if !review.CreatedAt.Before(since) {
			rows = append(rows, repository.ReviewCreation{
				CreatedAt:  review.CreatedAt,
				IsApproved: review.IsApproved,
			})
		}
	}
	return rows, nil
}

type fakeNotificationRepo struct {
	notifications []*model.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *model.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	clone := *notification
	r.notifications = append(r.notifications, &clone)
	return nil
}

func (r *fakeNotificationRepo) List(_ context.Context, limit, offset int) ([]*model.Notification, error) {
	if offset > len(r.notifications) {
		offset = len(r.notifications)
	}
	end := offset + limit
	if end > len(r.notifications) {
		end = len(r.notifications)
	}
	return r.notifications[offset:end], nil
}

func (r *fakeNotificationRepo) MarkAsRead(_ context.Context, id string) error {
	for _, notification := range r.notifications {
		if notification.ID.String() == id {
			notification.IsRead = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeNotificationRepo) MarkAllAsRead(_ context.Context) error {
	for _, notification := range r.notifications {
		notification.IsRead = true
	}
	return nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context) (int64, error) {
	var count int64
	for _, notification := range r.notifications {
		if !notification.IsRead {
			count++
		}
	}
	return count, nil
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

func containsAll(haystack, needles []string) bool {
	for _, needle := range needles {
		if !contains(haystack, needle) {
			return false
		}
	}
	return true
}
