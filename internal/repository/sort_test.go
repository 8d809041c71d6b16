package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mathew.com/nurserydirectory/pkg/apperror"
)

func TestSortClause(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{name: "defaults to newest first", sortBy: "", sortOrder: "", want: "created_at DESC"},
		{name: "explicit desc", sortBy: "email", sortOrder: "desc", want: "email DESC"},
		{name: "explicit asc", sortBy: "firstName", sortOrder: "asc", want: "first_name ASC"},
		{name: "camelCase key maps to column", sortBy: "lastName", sortOrder: "", want: "last_name DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sortClause(userSortFields, tt.sortBy, tt.sortOrder)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortClauseRejectsUnknownInput(t *testing.T) {
	// Raw SQL must never reach ORDER BY; anything outside the allowlist
	// is an error, not a passthrough.
	_, err := sortClause(userSortFields, "email; DROP TABLE users", "")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = sortClause(userSortFields, "password_hash", "asc")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = sortClause(userSortFields, "email", "descending")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{name: "plain term", term: "acorn", want: "%acorn%"},
		{name: "percent matches literally", term: "100% organic", want: `%100\% organic%`},
		{name: "underscore matches literally", term: "little_stars", want: `%little\_stars%`},
		{name: "backslash escaped first", term: `a\b`, want: `%a\\b%`},
		{name: "empty term matches everything", term: "", want: "%%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, likePattern(tt.term))
		})
	}
}

func TestSortFieldsJoinPrefixes(t *testing.T) {
	// The joined listings qualify their columns so owner and group
	// sorts hit the joined tables.
	assert.Equal(t, "users.first_name", groupSortFields["owner"])
	assert.Equal(t, "groups.name", nurserySortFields["group"])
	assert.Equal(t, "nurseries.name", reviewSortFields["nursery"])
	assert.Equal(t, "reviews.overall_rating", reviewSortFields["rating"])
}
