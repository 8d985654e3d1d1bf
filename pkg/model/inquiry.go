package model

import "time"

type Inquiry struct {
	ID                 string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name               string    `json:"name" bson:"name" validate:"required"`
	Email              string    `json:"email" bson:"email" validate:"required,email"`
	TrekID             *string   `json:"trek_id" bson:"trek_id"`
	Subject            *string   `json:"subject" bson:"subject"`
	Message            string    `json:"message" bson:"message" validate:"required"`
	PreferredStartDate *Date     `json:"preferred_start_date" bson:"preferred_start_date"`
	Travelers          *int      `json:"travelers" bson:"travelers" validate:"omitempty,min=1"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
}

// TravelerCount is the party size, defaulting to one.
func (i *Inquiry) TravelerCount() int {
	if i.Travelers == nil {
		return 1
	}
	return *i.Travelers
}
