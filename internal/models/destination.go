package model

type Destination struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Region          *string  `json:"region,omitempty"`
	Description     *string  `json:"description,omitempty"`
	ImageURL        *string  `json:"imageUrl,omitempty"`
	Rating          *int     `json:"rating,omitempty"`
	BestTimeToVisit *string  `json:"bestTimeToVisit,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

type InsertDestination struct {
	Name            string   `json:"name" validate:"required"`
	Region          *string  `json:"region"`
	Description     *string  `json:"description"`
	ImageURL        *string  `json:"imageUrl"`
	Rating          *int     `json:"rating"`
	BestTimeToVisit *string  `json:"bestTimeToVisit"`
	Tags            []string `json:"tags"`
}
