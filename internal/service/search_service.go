package service

import (
	"context"
	"strings"

	"mathew.com/nurserydirectory/internal/dto"
	"mathew.com/nurserydirectory/internal/geo"
	"mathew.com/nurserydirectory/internal/repository"
)

// cityPanelSize caps the groups and nurseries shown on the exact-city
// panel.
const cityPanelSize = 2

type SearchService interface {
	Autocomplete(ctx context.Context, term string) (*dto.AutocompleteResult, error)
	SearchByCity(ctx context.Context, city string) (*dto.CitySearchResult, error)
}

type searchService struct {
	groups    repository.GroupRepository
	nurseries repository.NurseryRepository
	reviews   repository.ReviewRepository
	limit     int
}

func NewSearchService(
	groups repository.GroupRepository,
	nurseries repository.NurseryRepository,
	reviews repository.ReviewRepository,
	limit int,
) SearchService {
	return &searchService{
		groups:    groups,
		nurseries: nurseries,
		reviews:   reviews,
		limit:     limit,
	}
}

// Autocomplete merges place names with matching groups and nurseries.
// An empty term returns the head of the place lists with no entities,
// so the search box has suggestions before the first keystroke.
func (s *searchService) Autocomplete(ctx context.Context, term string) (*dto.AutocompleteResult, error) {
	term = strings.TrimSpace(term)

	result := &dto.AutocompleteResult{
		Groups:    []dto.GroupSummary{},
		Nurseries: []dto.NurserySummary{},
	}

	if term == "" {
		result.Cities = geo.Head(geo.Cities, s.limit)
		result.Towns = geo.Head(geo.Towns, s.limit)
		return result, nil
	}

	result.Cities = geo.FilterCities(term, s.limit)
	result.Towns = geo.FilterTowns(term, s.limit)

	groups, err := s.groups.SearchActive(ctx, term, s.limit)
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		result.Groups = append(result.Groups, dto.NewGroupSummary(group))
	}

	nurseries, err := s.nurseries.SearchApproved(ctx, term, s.limit)
	if err != nil {
		return nil, err
	}
	for _, nursery := range nurseries {
		result.Nurseries = append(result.Nurseries, dto.NewNurserySummary(nursery))
	}

	return result, nil
}

// SearchByCity builds the featured panel for an exact city name: the
// newest active groups (with their approved-nursery counts) and the
// newest approved nurseries (with ratings).
func (s *searchService) SearchByCity(ctx context.Context, city string) (*dto.CitySearchResult, error) {
	result := &dto.CitySearchResult{
		City:      city,
		Groups:    []dto.CityGroup{},
		Nurseries: []dto.NurseryWithRating{},
	}

	groups, err := s.groups.FindActiveByCity(ctx, city, cityPanelSize)
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		count, err := s.nurseries.CountApprovedByGroup(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		result.Groups = append(result.Groups, dto.CityGroup{
			GroupSummary: dto.NewGroupSummary(group),
			Logo:         group.Logo,
			Description:  group.Description,
			NurseryCount: count,
		})
	}

	nurseries, err := s.nurseries.FindApprovedByCity(ctx, city, cityPanelSize)
	if err != nil {
		return nil, err
	}
	for _, nursery := range nurseries {
		ratings, err := s.reviews.CountedRatings(ctx, nursery.ID)
		if err != nil {
			return nil, err
		}
		result.Nurseries = append(result.Nurseries, dto.NurseryWithRating{
			Nursery:       nursery,
			RatingSummary: SummarizeRatings(ratings),
		})
	}

	return result, nil
}
