package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mathew.com/nurserydirectory/internal/dto"
	"mathew.com/nurserydirectory/internal/model"
	"mathew.com/nurserydirectory/pkg/apperror"
)

type reviewFixture struct {
	svc       ReviewService
	nurseries *fakeNurseryRepo
	reviews   *fakeReviewRepo
	notifRepo *fakeNotificationRepo
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	nurseries := newFakeNurseryRepo()
	reviews := newFakeReviewRepo()
	notifRepo := &fakeNotificationRepo{}

	return &reviewFixture{
		svc:       NewReviewService(reviews, nurseries, NewNotificationService(notifRepo, nil), nil, 0),
		nurseries: nurseries,
		reviews:   reviews,
		notifRepo: notifRepo,
	}
}

func reviewInput(nurseryID uuid.UUID, rating float64) dto.SubmitReviewInput {
	return dto.SubmitReviewInput{
		NurseryID:     nurseryID,
		Content:       "warm and welcoming",
		FirstName:     "Pat",
		LastName:      "Lee",
		Email:         "pat@example.com",
		OverallRating: rating,
	}
}

func TestSubmitReviewStartsPending(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	nursery := &model.Nursery{Name: "Acorn House", Slug: "acorn-house", City: "Leeds", IsApproved: true, OwnerID: uuid.New()}
	require.NoError(t, f.nurseries.Create(ctx, nursery))

	review, err := f.svc.Submit(ctx, "ip:203.0.113.9", nil, reviewInput(nursery.ID, 5))
	require.NoError(t, err)

	assert.False(t, review.IsApproved)
	assert.False(t, review.IsRejected)
	assert.Nil(t, review.UserID)

	require.Len(t, f.notifRepo.notifications, 1)
	assert.Equal(t, "New Review Submitted", f.notifRepo.notifications[0].Title)
	assert.Equal(t, model.NotificationEntityReview, f.notifRepo.notifications[0].Entity)
}

func TestSubmitReviewAttachesSignedInUser(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	nursery := &model.Nursery{Name: "Acorn House", Slug: "acorn-house", City: "Leeds", IsApproved: true, OwnerID: uuid.New()}
	require.NoError(t, f.nurseries.Create(ctx, nursery))

	userID := uuid.New()
	review, err := f.svc.Submit(ctx, "user:"+userID.String(), &userID, reviewInput(nursery.ID, 4))
	require.NoError(t, err)

	require.NotNil(t, review.UserID)
	assert.Equal(t, userID, *review.UserID)
}

func TestSubmitReviewUnapprovedNurseryLooksMissing(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	nursery := &model.Nursery{Name: "Hidden", Slug: "hidden", City: "Leeds", IsApproved: false, OwnerID: uuid.New()}
	require.NoError(t, f.nurseries.Create(ctx, nursery))

	_, err := f.svc.Submit(ctx, "ip:203.0.113.9", nil, reviewInput(nursery.ID, 5))
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = f.svc.Submit(ctx, "ip:203.0.113.9", nil, reviewInput(uuid.New(), 5))
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestMyNurseryReviews(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	owner := uuid.New()
	nursery := &model.Nursery{Name: "Acorn House", Slug: "acorn-house", City: "Leeds", IsApproved: true, OwnerID: owner}
	require.NoError(t, f.nurseries.Create(ctx, nursery))

	seed := func(rating float64, approved, rejected bool) {
		require.NoError(t, f.reviews.Create(ctx, &model.Review{
			NurseryID:     nursery.ID,
			Content:       "x",
			FirstName:     "A",
			LastName:      "B",
			Email:         "a@b.c",
			OverallRating: rating,
			IsApproved:    approved,
			IsRejected:    rejected,
		}))
	}
	seed(5, true, false)
	seed(4, true, false)
	seed(1, false, true)
	seed(3, false, false)

	result, err := f.svc.MyNurseryReviews(ctx, owner, nursery.ID.String())
	require.NoError(t, err)

	assert.Len(t, result.Reviews, 4, "owners see every lifecycle state")
	assert.Equal(t, 4.5, result.Stats.AverageRating, "only counted reviews feed the average")
	assert.Equal(t, int64(4), result.Stats.TotalReviews)
	assert.Equal(t, int64(1), result.Stats.PendingApproval)
}

func TestMyNurseryReviewsForeignNursery(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	nursery := &model.Nursery{Name: "Acorn House", Slug: "acorn-house", City: "Leeds", IsApproved: true, OwnerID: uuid.New()}
	require.NoError(t, f.nurseries.Create(ctx, nursery))

	_, err := f.svc.MyNurseryReviews(ctx, uuid.New(), nursery.ID.String())
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	_, err = f.svc.MyNurseryReviews(ctx, uuid.New(), uuid.NewString())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
