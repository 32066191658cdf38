package blogportal

import (
	"time"
)

// Post is an article identified by a URL slug.
type Post struct {
	ID        string
	Title     string
	Excerpt   string
	Content   string
	Category  string
	Author    string
	Date      string
	ReadTime  string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// CreateParams carries the fields for a new post. ReadTime is optional and
// estimated from Content when empty.
type CreateParams struct {
	Title    string
	Excerpt  string
	Content  string
	Category string
	Author   string
	ReadTime string
}

// UpdateParams carries a partial update; nil fields are left untouched.
// ReadTime is recomputed when Content changes and ReadTime is not supplied.
type UpdateParams struct {
	Title    *string
	Excerpt  *string
	Content  *string
	Category *string
	Author   *string
	ReadTime *string
}

// PostCategories is the suggested category set rendered by the UI's create
// form. It is advisory only, the store accepts any category string.
var PostCategories = []string{
	"AI Development",
	"Development",
	"Tutorial",
	"Open Source",
}
