package blogportal

import (
	"context"
	"fmt"
	"time"

	"github.com/devbloghq/blog-portal/internal/db"
)

const dateLayout = "2006-01-02"

type Manager struct {
	db *db.Repository
}

func NewPostManager(repo *db.Repository) *Manager {
	return &Manager{
		db: repo,
	}
}

// Create allocates a unique slug from the title, fills in read time and date,
// and persists the post. A unique violation on insert means a concurrent
// create claimed the slug after our probe; the slug is re-resolved once and
// the insert retried, then the conflict is surfaced.
func (m *Manager) Create(ctx context.Context, in CreateParams) (*Post, error) {
	base := Slugify(in.Title)
	if base == "" {
		return nil, ErrEmptySlug
	}

	slug, err := uniqueSlug(ctx, m.db, base)
	if err != nil {
		return nil, err
	}

	readTime := in.ReadTime
	if readTime == "" {
		readTime = EstimateReadTime(in.Content)
	}

	post := &db.Post{
		ID:        slug,
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Category:  in.Category,
		Author:    in.Author,
		Date:      time.Now().UTC().Format(dateLayout),
		ReadTime:  readTime,
		CreatedAt: time.Now().UTC(),
	}

	err = m.db.InsertPost(ctx, post)
	if db.IsUniqueViolation(err) {
		post.ID, err = uniqueSlug(ctx, m.db, base)
		if err != nil {
			return nil, err
		}

		err = m.db.InsertPost(ctx, post)
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %q", ErrSlugConflict, post.ID)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("db insert post: %w", err)
	}

	result := NewPost(post)
	return &result, nil
}

// Posts retrieves all posts sorted by date DESC. Posts sharing a date come
// back in the store's natural order.
func (m *Manager) Posts(ctx context.Context) ([]Post, error) {
	dbPosts, err := m.db.Posts(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	return NewPosts(dbPosts), nil
}

// PostByID returns nil, nil when no post has the given id.
func (m *Manager) PostByID(ctx context.Context, id string) (*Post, error) {
	dbPost, err := m.db.PostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if dbPost == nil {
		return nil, nil
	}

	result := NewPost(dbPost)
	return &result, nil
}

// Update applies the supplied fields to an existing post. The id never
// changes. Read time is recomputed when content changes unless the caller
// supplied an explicit value. Returns nil, nil when the post is absent.
func (m *Manager) Update(ctx context.Context, id string, in UpdateParams) (*Post, error) {
	dbPost, err := m.db.PostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if dbPost == nil {
		return nil, nil
	}

	if in.Title != nil {
		dbPost.Title = *in.Title
	}
	if in.Excerpt != nil {
		dbPost.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		dbPost.Content = *in.Content
		if in.ReadTime == nil {
			dbPost.ReadTime = EstimateReadTime(*in.Content)
		}
	}
	if in.Category != nil {
		dbPost.Category = *in.Category
	}
	if in.Author != nil {
		dbPost.Author = *in.Author
	}
	if in.ReadTime != nil {
		dbPost.ReadTime = *in.ReadTime
	}

	now := time.Now().UTC()
	dbPost.UpdatedAt = &now

	if err := m.db.UpdatePost(ctx, dbPost); err != nil {
		return nil, fmt.Errorf("db update post: %w", err)
	}

	result := NewPost(dbPost)
	return &result, nil
}

// Delete removes the post. Returns false when the post was absent.
func (m *Manager) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := m.db.DeletePost(ctx, id)
	if err != nil {
		return false, fmt.Errorf("db delete post: %w", err)
	}

	return deleted, nil
}

// Categories returns the suggested category list for the create form.
func (m *Manager) Categories() []string {
	return PostCategories
}
