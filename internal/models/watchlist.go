package models

import "time"

// WatchlistEntry pairs a user with a movie. The composite unique index is
// the backstop that turns a racing duplicate add into a constraint error
// instead of a silent duplicate row.
type WatchlistEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_watchlist_user_movie" json:"user_id"`
	MovieID   uint      `gorm:"not null;uniqueIndex:idx_watchlist_user_movie" json:"movie_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	Movie     *Movie    `gorm:"foreignKey:MovieID" json:"movie,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (WatchlistEntry) TableName() string {
	return "watchlist_entries"
}

// WatchlistItem is the projection returned to clients.
type WatchlistItem struct {
	ID         uint   `json:"id"`
	MovieID    uint   `json:"movie_id"`
	MovieTitle string `json:"movie_title"`
}
