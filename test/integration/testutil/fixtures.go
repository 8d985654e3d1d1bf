package testutil

import (
	"fmt"
	"time"

	"jumatrek/pkg/model"
)

type TrekBuilder struct {
	trek model.Trek
}

// NewTrekBuilder starts from a valid trek whose title is unique per call so
// parallel runs can find their own records.
func NewTrekBuilder() *TrekBuilder {
	price := 1450.0
	return &TrekBuilder{
		trek: model.Trek{
			Title:        fmt.Sprintf("E2E Trek %d", time.Now().UnixNano()),
			Region:       "Everest",
			Difficulty:   "Moderate",
			DurationDays: 12,
			PriceUSD:     &price,
			Highlights:   []string{"Kala Patthar sunrise"},
			Overview:     "Classic route to base camp.",
		},
	}
}

func (b *TrekBuilder) WithRegion(region string) *TrekBuilder {
	b.trek.Region = region
	return b
}

func (b *TrekBuilder) WithDuration(days int) *TrekBuilder {
	b.trek.DurationDays = days
	return b
}

func (b *TrekBuilder) Featured() *TrekBuilder {
	b.trek.IsFeatured = true
	return b
}

func (b *TrekBuilder) Build() *model.Trek {
	trek := b.trek
	return &trek
}

func ValidInquiry() *model.Inquiry {
	return &model.Inquiry{
		Name:    "E2E Visitor",
		Email:   fmt.Sprintf("visitor+%d@example.com", time.Now().UnixNano()),
		Message: "Is October a good month?",
	}
}
