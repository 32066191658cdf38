package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Posts retrieves all posts sorted by date DESC (most recent first).
// Relative order of posts sharing the same date is the store's natural
// order and is not guaranteed.
func (r *Repository) Posts(ctx context.Context) ([]Post, error) {
	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		OrderExpr(`"t"."date" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) PostByID(ctx context.Context, id string) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// SlugExists reports whether a post with the given id is already present.
func (r *Repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."id" = ?`, slug).
		Exists()

	if err != nil {
		return false, fmt.Errorf("failed to check slug %q: %w", slug, err)
	}

	return exists, nil
}

func (r *Repository) InsertPost(ctx context.Context, post *Post) error {
	_, err := r.db.ModelContext(ctx, post).Insert()
	if err != nil {
		return fmt.Errorf("failed to insert post %q: %w", post.ID, err)
	}

	return nil
}

func (r *Repository) UpdatePost(ctx context.Context, post *Post) error {
	_, err := r.db.ModelContext(ctx, post).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update post %q: %w", post.ID, err)
	}

	return nil
}

// DeletePost removes the post. Returns false when no row matched.
func (r *Repository) DeletePost(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete post %q: %w", id, err)
	}

	return res.RowsAffected() > 0, nil
}
