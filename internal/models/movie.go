package models

import (
	"time"
)

type Movie struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	TMDBID      *int      `gorm:"uniqueIndex" json:"tmdb_id,omitempty" example:"550"`
	Title       string    `gorm:"not null;index" json:"title" example:"Fight Club"`
	Overview    string    `gorm:"type:text" json:"overview"`
	ReleaseDate string    `gorm:"index" json:"release_date" example:"1999-10-15"`
	VoteAverage float64   `gorm:"index" json:"vote_average" example:"8.4"`
	Runtime     int       `gorm:"not null" json:"runtime" example:"139"`
	Genres      []Genre   `gorm:"many2many:movie_genres;" json:"genres,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieFilter holds the optional predicates for catalog queries. Absent
// fields impose no constraint; provided fields are combined conjunctively.
type MovieFilter struct {
	Title     string   `json:"title"`
	Genre     string   `json:"genre"`
	Year      *int     `json:"year"`
	MinRating *float64 `json:"min_rating"`
	MaxRating *float64 `json:"max_rating"`
}

// Empty reports whether no predicate was provided.
func (f MovieFilter) Empty() bool {
	return f.Title == "" && f.Genre == "" && f.Year == nil && f.MinRating == nil && f.MaxRating == nil
}
