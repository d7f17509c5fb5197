package domain

import "time"

// BookSummary is the lightweight book view used in listings and cart lines.
type BookSummary struct {
	ID         int64  `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	CoverImage string `json:"cover_image,omitempty"`
	Price      string `json:"price"`
	Currency   string `json:"currency"`
	FileFormat string `json:"file_format,omitempty"`
}

// Book is the full detail view of a catalog entry.
type Book struct {
	BookSummary
	Description string    `json:"description"`
	Authors     []string  `json:"authors"`
	Categories  []string  `json:"categories"`
	Tags        []string  `json:"tags"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

// BlogPost is a read-only display entity. Content may contain rich-text HTML
// produced by the upstream editor; it is passed through untouched.
type BlogPost struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content,omitempty"`
	Excerpt       string    `json:"excerpt,omitempty"`
	AuthorName    string    `json:"author_name,omitempty"`
	FeaturedImage string    `json:"featured_image,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
