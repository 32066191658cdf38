package rpc

import (
	"context"
	"errors"

	"github.com/devbloghq/blog-portal/internal/blogportal"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// BlogService provides RPC methods for post operations. It is the
// render-time binding of the post manager: the static-site renderer calls it
// at build time, while interactive clients go through the REST API. Both
// bindings share the same manager and therefore the same semantics.
type BlogService struct {
	zenrpc.Service
	manager *blogportal.Manager
}

func NewBlogService(manager *blogportal.Manager) *BlogService {
	return &BlogService{manager: manager}
}

// List retrieves all posts sorted by date DESC.
//
//zenrpc:return list of posts
//zenrpc:500 internal server error
func (s *BlogService) List(ctx context.Context) ([]Post, error) {
	posts, err := s.manager.Posts(ctx)
	if err != nil {
		return nil, serviceError(err)
	}

	return NewPosts(posts), nil
}

// ByID retrieves a single post by its slug id.
//
//zenrpc:id post slug
//zenrpc:return post with full content
//zenrpc:400 id must not be empty
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) ByID(ctx context.Context, req PostByIDRequest) (*Post, error) {
	if req.ID == "" {
		return nil, zenrpc.NewStringError(400, "id must not be empty")
	}

	post, err := s.manager.PostByID(ctx, req.ID)
	if err != nil {
		return nil, serviceError(err)
	}

	if post == nil {
		return nil, zenrpc.NewStringError(404, "post not found")
	}

	result := NewPost(*post)
	return &result, nil
}

// Create persists a new post with a unique slug id derived from the title.
//
//zenrpc:return created post
//zenrpc:400 title produces an empty slug
//zenrpc:409 slug conflict
//zenrpc:500 internal server error
func (s *BlogService) Create(ctx context.Context, req CreatePostRequest) (*Post, error) {
	post, err := s.manager.Create(ctx, blogportal.CreateParams{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Author:   req.Author,
		ReadTime: req.ReadTime,
	})
	if err != nil {
		return nil, serviceError(err)
	}

	result := NewPost(*post)
	return &result, nil
}

// Update applies the supplied fields to an existing post.
//
//zenrpc:return updated post
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) Update(ctx context.Context, req UpdatePostRequest) (*Post, error) {
	post, err := s.manager.Update(ctx, req.ID, blogportal.UpdateParams{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Author:   req.Author,
		ReadTime: req.ReadTime,
	})
	if err != nil {
		return nil, serviceError(err)
	}

	if post == nil {
		return nil, zenrpc.NewStringError(404, "post not found")
	}

	result := NewPost(*post)
	return &result, nil
}

// Delete removes a post by its slug id.
//
//zenrpc:id post slug
//zenrpc:return true when the post existed
//zenrpc:500 internal server error
func (s *BlogService) Delete(ctx context.Context, req PostByIDRequest) (bool, error) {
	deleted, err := s.manager.Delete(ctx, req.ID)
	if err != nil {
		return false, serviceError(err)
	}

	return deleted, nil
}

// Categories returns the suggested category list.
//
//zenrpc:return list of categories
func (s *BlogService) Categories(ctx context.Context) ([]string, error) {
	return s.manager.Categories(), nil
}

// serviceError maps manager failures onto RPC errors carrying the classified
// user-facing message.
func serviceError(err error) error {
	code := 500
	switch {
	case errors.Is(err, blogportal.ErrEmptySlug):
		code = 400
	case errors.Is(err, blogportal.ErrSlugConflict), errors.Is(err, blogportal.ErrSlugExhausted):
		code = 409
	}

	fault := blogportal.Classify(err)
	return zenrpc.NewStringError(code, fault.Title+": "+fault.Message)
}
