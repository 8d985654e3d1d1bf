package model

import "time"

type BlogPost struct {
	ID          string     `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title" validate:"required"`
	Slug        *string    `json:"slug" bson:"slug"`
	Excerpt     *string    `json:"excerpt" bson:"excerpt"`
	Content     string     `json:"content" bson:"content" validate:"required"`
	CoverImage  *string    `json:"cover_image" bson:"cover_image"`
	Tags        []string   `json:"tags" bson:"tags"`
	Published   *bool      `json:"published" bson:"published"`
	PublishedOn *Date      `json:"published_on" bson:"published_on"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

type BlogPostFilter struct {
	Tag    *string
	Search *string
}
