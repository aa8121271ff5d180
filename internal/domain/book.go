package domain

import "time"

// TitleMaxLength is the maximum number of characters allowed in a book title.
const TitleMaxLength = 1000

// PublishedYearMin is the earliest publication year a book may carry.
const PublishedYearMin = -3000

// PublishedYearSlack is how many years past the current year a publication
// year may lie (to allow announced-but-unreleased titles).
const PublishedYearSlack = 10

// Book represents a single book record stored in the books table.
//
// Title, Author and Published are required. The remaining fields are
// optional and map to nullable columns, hence the pointer types: nil
// means the field was never supplied.
type Book struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Published   int       `json:"published"`
	ISBN        *string   `json:"isbn,omitempty"`
	Genre       *string   `json:"genre,omitempty"`
	Description *string   `json:"description,omitempty"`
	Pages       *int      `json:"pages,omitempty"`
	Publisher   *string   `json:"publisher,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PublishedYearMax returns the latest acceptable publication year relative
// to now.
func PublishedYearMax(now time.Time) int {
	return now.Year() + PublishedYearSlack
}
