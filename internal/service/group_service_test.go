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

func TestSaveMyGroupCreates(t *testing.T) {
	groups := newFakeGroupRepo()
	svc := NewGroupService(groups)
	ctx := context.Background()
	owner := uuid.New()

	city := "Leeds"
	group, err := svc.SaveMyGroup(ctx, owner, dto.SaveGroupInput{Name: "Bright Stars Group", City: &city})
	require.NoError(t, err)

	assert.Equal(t, "bright-stars-group", group.Slug)
	assert.True(t, group.IsActive)
	assert.Equal(t, owner, group.OwnerID)
	assert.Equal(t, "Leeds", group.City)
}

func TestSaveMyGroupRequiresNameOnCreate(t *testing.T) {
	svc := NewGroupService(newFakeGroupRepo())

	_, err := svc.SaveMyGroup(context.Background(), uuid.New(), dto.SaveGroupInput{})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestSaveMyGroupPatches(t *testing.T) {
	groups := newFakeGroupRepo()
	svc := NewGroupService(groups)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.SaveMyGroup(ctx, owner, dto.SaveGroupInput{Name: "Bright Stars"})
	require.NoError(t, err)

	about := "Family-run since 1998."
	patched, err := svc.SaveMyGroup(ctx, owner, dto.SaveGroupInput{AboutUs: &about})
	require.NoError(t, err)

	assert.Equal(t, created.ID, patched.ID, "second save patches, never creates a sibling")
	assert.Equal(t, "bright-stars", patched.Slug)
	require.NotNil(t, patched.AboutUs)
	assert.Equal(t, about, *patched.AboutUs)
}

func TestSaveMyGroupRename(t *testing.T) {
	groups := newFakeGroupRepo()
	svc := NewGroupService(groups)
	ctx := context.Background()
	owner := uuid.New()

	_, err := svc.SaveMyGroup(ctx, owner, dto.SaveGroupInput{Name: "Bright Stars"})
	require.NoError(t, err)

	renamed, err := svc.SaveMyGroup(ctx, owner, dto.SaveGroupInput{Name: "Little Acorns"})
	require.NoError(t, err)
	assert.Equal(t, "little-acorns", renamed.Slug)

	// Saving the same name again leaves the slug alone.
	same, err := svc.SaveMyGroup(ctx, owner, dto.SaveGroupInput{Name: "Little Acorns"})
	require.NoError(t, err)
	assert.Equal(t, "little-acorns", same.Slug)
}

func TestGetBySlugHidesInactiveGroups(t *testing.T) {
	groups := newFakeGroupRepo()
	svc := NewGroupService(groups)
	ctx := context.Background()

	require.NoError(t, groups.Create(ctx, &model.Group{Name: "Dormant", Slug: "dormant", IsActive: false, OwnerID: uuid.New()}))
	require.NoError(t, groups.Create(ctx, &model.Group{Name: "Open", Slug: "open", IsActive: true, OwnerID: uuid.New()}))

	_, err := svc.GetBySlug(ctx, "dormant")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	group, err := svc.GetBySlug(ctx, "open")
	require.NoError(t, err)
	assert.Equal(t, "Open", group.Name)

	listed, err := svc.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "open", listed[0].Slug)
}

func TestMyGroup(t *testing.T) {
	groups := newFakeGroupRepo()
	svc := NewGroupService(groups)
	ctx := context.Background()
	owner := uuid.New()

	_, err := svc.MyGroup(ctx, owner)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, groups.Create(ctx, &model.Group{Name: "Mine", Slug: "mine", IsActive: true, OwnerID: owner}))

	group, err := svc.MyGroup(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "mine", group.Slug)
}
