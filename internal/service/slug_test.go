package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mathew.com/nurserydirectory/internal/model"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Acorn House", "acorn-house"},
		{"collapses runs", "Bright  &  Early!!", "bright-early"},
		{"trims hyphens", "--Sunshine--", "sunshine"},
		{"keeps digits", "Stage 1 Nursery", "stage-1-nursery"},
		{"unicode stripped", "Café Kids", "caf-kids"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestAssignSlug(t *testing.T) {
	ctx := context.Background()

	t.Run("free slug is taken as is", func(t *testing.T) {
		groups := newFakeGroupRepo()
		slug, err := AssignSlug(ctx, groups, "Acorn House", uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, "acorn-house", slug)
	})

	t.Run("taken slug gets numeric suffixes", func(t *testing.T) {
		groups := newFakeGroupRepo()
		require.NoError(t, groups.Create(ctx, &model.Group{Name: "Acorn House", Slug: "acorn-house", OwnerID: uuid.New()}))
		require.NoError(t, groups.Create(ctx, &model.Group{Name: "Acorn House", Slug: "acorn-house-1", OwnerID: uuid.New()}))

		slug, err := AssignSlug(ctx, groups, "Acorn House", uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, "acorn-house-2", slug)
	})

	t.Run("rename keeps own slug", func(t *testing.T) {
		groups := newFakeGroupRepo()
		group := &model.Group{Name: "Acorn House", Slug: "acorn-house", OwnerID: uuid.New()}
		require.NoError(t, groups.Create(ctx, group))

		slug, err := AssignSlug(ctx, groups, "Acorn House", group.ID)
		require.NoError(t, err)
		assert.Equal(t, "acorn-house", slug)
	})

	t.Run("empty name falls back", func(t *testing.T) {
		groups := newFakeGroupRepo()
		slug, err := AssignSlug(ctx, groups, "!!!", uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, "entry", slug)
	})
}
