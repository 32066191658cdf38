package rest

import (
	"time"

	"github.com/devbloghq/blog-portal/internal/blogportal"
)

type Post struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Excerpt   string     `json:"excerpt"`
	Content   string     `json:"content"`
	Category  string     `json:"category"`
	Author    string     `json:"author"`
	Date      string     `json:"date"`
	ReadTime  string     `json:"readTime"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type CreatePostRequest struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Author   string `json:"author"`
	ReadTime string `json:"readTime,omitempty"`
}

type UpdatePostRequest struct {
	Title    *string `json:"title,omitempty"`
	Excerpt  *string `json:"excerpt,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
	Author   *string `json:"author,omitempty"`
	ReadTime *string `json:"readTime,omitempty"`
}

// ErrorResponse is the classified failure shape rendered to the UI.
type ErrorResponse struct {
	Title    string                   `json:"title"`
	Message  string                   `json:"message"`
	Category blogportal.FaultCategory `json:"category"`
	Docs     string                   `json:"docs,omitempty"`
}
