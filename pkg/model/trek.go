package model

import "time"

type Trek struct {
	ID           string     `json:"id,omitempty" bson:"_id,omitempty"`
	Title        string     `json:"title" bson:"title" validate:"required"`
	Slug         *string    `json:"slug" bson:"slug"`
	Region       string     `json:"region" bson:"region" validate:"required"`
	Difficulty   string     `json:"difficulty" bson:"difficulty" validate:"required"`
	DurationDays int        `json:"duration_days" bson:"duration_days" validate:"required,min=1"`
	PriceUSD     *float64   `json:"price_usd" bson:"price_usd" validate:"required,min=0"`
	MaxAltitudeM *int       `json:"max_altitude_m" bson:"max_altitude_m" validate:"omitempty,min=0"`
	Highlights   []string   `json:"highlights" bson:"highlights"`
	Overview     string     `json:"overview" bson:"overview" validate:"required"`
	Itinerary    []string   `json:"itinerary" bson:"itinerary"`
	Inclusions   []string   `json:"inclusions" bson:"inclusions"`
	Exclusions   []string   `json:"exclusions" bson:"exclusions"`
	Images       []string   `json:"images" bson:"images"`
	IsFeatured   bool       `json:"is_featured" bson:"is_featured"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// TrekFilter holds the optional list constraints. A nil field means no
// constraint on it.
type TrekFilter struct {
	Region     *string
	Difficulty *string
	MinDays    *int
	MaxDays    *int
	Search     *string
	Featured   *bool
}
