package rpc

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

type PostByIDRequest struct {
	//id post slug
	ID string `json:"id"`
}

type CreatePostRequest struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Author   string `json:"author"`
	//readTime optional, estimated from content when empty
	ReadTime string `json:"readTime,omitempty"`
}

type UpdatePostRequest struct {
	ID       string  `json:"id"`
	Title    *string `json:"title,omitempty"`
	Excerpt  *string `json:"excerpt,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
	Author   *string `json:"author,omitempty"`
	ReadTime *string `json:"readTime,omitempty"`
}

func NewPost(p blogportal.Post) Post {
	return Post{
		ID:        p.ID,
		Title:     p.Title,
		Excerpt:   p.Excerpt,
		Content:   p.Content,
		Category:  p.Category,
		Author:    p.Author,
		Date:      p.Date,
		ReadTime:  p.ReadTime,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func NewPosts(list []blogportal.Post) []Post {
	posts := make([]Post, len(list))
	for i := range list {
		posts[i] = NewPost(list[i])
	}
	return posts
}
