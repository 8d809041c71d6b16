package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// SlugNamespace answers whether a slug is already taken within one
// entity's namespace. excludeID lets renames keep their own slug.
type SlugNamespace interface {
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the name, collapses every run of non-alphanumeric
// characters into a single hyphen and trims hyphens from both ends.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// AssignSlug derives a slug from name and probes the namespace with
// numeric suffixes (-1, -2, ...) until a free one is found. The unique
// index on the slug column backstops concurrent assignments.
func AssignSlug(ctx context.Context, ns SlugNamespace, name string, excludeID uuid.UUID) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = "entry"
	}

	slug := base
	for counter := 1; ; counter++ {
		taken, err := ns.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = base + "-" + strconv.Itoa(counter)
	}
}
