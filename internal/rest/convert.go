package rest

import "github.com/devbloghq/blog-portal/internal/blogportal"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
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
	return Map(list, NewPost)
}

func NewErrorResponse(f blogportal.Fault) ErrorResponse {
	return ErrorResponse{
		Title:    f.Title,
		Message:  f.Message,
		Category: f.Category,
		Docs:     f.Docs,
	}
}
