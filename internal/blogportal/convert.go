package blogportal

import (
	"github.com/devbloghq/blog-portal/internal/db"
)

func NewPost(p *db.Post) Post {
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

func NewPosts(list []db.Post) []Post {
	posts := make([]Post, len(list))
	for i := range list {
		posts[i] = NewPost(&list[i])
	}
	return posts
}
