package entity

import "time"

// Post is a single blog article. Images are opaque absolute URLs in
// display order; the store does not check reachability or content type.
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
}
