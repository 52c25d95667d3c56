package models

import "time"

// Tip is a community tip as stored. UserID identifies the author and is
// never exposed by the read API.
type Tip struct {
	ID                string    `json:"id" db:"id"`
	Title             string    `json:"title" db:"title"`
	Content           string    `json:"content" db:"content"`
	UserID            string    `json:"user_id" db:"user_id"`
	AttachmentFileURL *string   `json:"attachment_file_url,omitempty" db:"attachment_file_url"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// Category groups tips by the keywords in their title and content.
type Category string

const (
	CategoryAll          Category = "all"
	CategoryApplications Category = "applications"
	CategoryAcademics    Category = "academics"
	CategoryAdmissions   Category = "admissions"
	CategoryAdvice       Category = "advice"
)

// CategorizedTip is a tip with every category it belongs to.
type CategorizedTip struct {
	*Tip
	Categories []Category
}

// Listing is one page of the tips browser. Counts cover every stored tip,
// not only the filtered ones; the "all" count is the total.
type Listing struct {
	Tips   []CategorizedTip
	Counts map[Category]int
}
