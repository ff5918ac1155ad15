package entity

import "time"

// Post is a user-authored destination story. Hidden posts stay in the store
// but are excluded from public listings and search.
type Post struct {
	ID          int64     `json:"post_id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CategoryID  *int64    `json:"category_id,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Destination string    `json:"destination"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Hidden      bool      `json:"hidden"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
}

// Category groups posts.
type Category struct {
	ID        int64     `json:"category_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
