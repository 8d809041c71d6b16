package dto

import (
	"github.com/google/uuid"
	"mathew.com/nurserydirectory/internal/model"
)

// SaveGroupInput is the owner settings payload. The first save creates
// the group (name required then); later saves patch it.
type SaveGroupInput struct {
	Name        string    `json:"name"`
	Logo        *string   `json:"logo"`
	CardImage   *string   `json:"card_image"`
	Images      *[]string `json:"images"`
	AboutUs     *string   `json:"about_us"`
	Description *string   `json:"description"`
	City        *string   `json:"city"`
	Town        *string   `json:"town"`
}

// GroupSummary is the compact shape used by autocomplete and the
// city search panel.
type GroupSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	City      string    `json:"city"`
	Town      *string   `json:"town,omitempty"`
	CardImage *string   `json:"card_image,omitempty"`
}

// CityGroup extends the summary with the approved-nursery count for the
// featured city panel.
type CityGroup struct {
	GroupSummary
	Logo         *string `json:"logo,omitempty"`
	Description  *string `json:"description,omitempty"`
	NurseryCount int64   `json:"nursery_count"`
}

func NewGroupSummary(g *model.Group) GroupSummary {
	return GroupSummary{
		ID:        g.ID,
		Name:      g.Name,
		Slug:      g.Slug,
		City:      g.City,
		Town:      g.Town,
		CardImage: g.CardImage,
	}
}
