package models

import "time"

// Subscription is a digest recipient. GenreName and PersonTMDBID are stored
// but not yet applied when composing the digest; the job currently sends the
// same unfiltered "upcoming" summary to every subscriber.
type Subscription struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"not null;index" json:"email" example:"fan@example.com"`
	GenreName    *string   `json:"genre_name,omitempty" example:"Drama"`
	PersonTMDBID *int      `json:"person_tmdb_id,omitempty" example:"6193"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
