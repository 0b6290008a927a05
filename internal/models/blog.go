package models

import "time"

// BlogPost is a published article. Posts are populated out-of-band and
// read-only from this service's perspective.
type BlogPost struct {
	ID          int64     `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Slug        string    `bson:"slug" json:"slug"`
	Excerpt     string    `bson:"excerpt" json:"excerpt"`
	Content     string    `bson:"content" json:"content"`
	Category    string    `bson:"category" json:"category"`
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	PublishedAt time.Time `bson:"published_at" json:"published_at"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
