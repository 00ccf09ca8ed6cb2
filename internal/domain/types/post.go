package types

import "io"

// Post is an announcement visible to all authenticated users.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	AuthorID  int64     `json:"author_id,omitempty"`
	CreatedAt Timestamp `json:"created_at"`
}

// PostDraft is the input for creating a post. Image is optional; when set,
// ImageName carries the filename sent in the multipart part.
type PostDraft struct {
	Title     string
	Content   string
	ImageName string
	Image     io.Reader
}
