package blogportal

import (
	"context"
	"errors"
	"fmt"
)

// maxSlugProbes bounds the suffix search so a pathological store can not
// make slug allocation loop forever.
const maxSlugProbes = 1000

var (
	// ErrEmptySlug is returned by Create when the title slugifies to "".
	ErrEmptySlug = errors.New("title produces an empty slug")
	// ErrSlugExhausted is returned when no free suffix was found within
	// maxSlugProbes attempts.
	ErrSlugExhausted = errors.New("could not allocate a unique identifier")
	// ErrSlugConflict is returned when the insert still hits the primary-key
	// constraint after re-resolving, i.e. the probe race was lost twice.
	ErrSlugConflict = errors.New("post id already exists")
)

// slugProber answers whether a slug is already taken. Satisfied by
// *db.Repository; tests use a map-backed fake.
type slugProber interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// uniqueSlug returns base if it is free, otherwise the first free slug among
// base-1, base-2, ... This is a best-effort pre-check: a concurrent create
// can claim the slug between the probe and the insert, so the caller must
// still treat a unique violation on insert as a lost race. The blogs
// primary key is the authoritative guarantee.
func uniqueSlug(ctx context.Context, prober slugProber, base string) (string, error) {
	taken, err := prober.SlugExists(ctx, base)
	if err != nil {
		return "", fmt.Errorf("probe slug %q: %w", base, err)
	}
	if !taken {
		return base, nil
	}

	for i := 1; i <= maxSlugProbes; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		taken, err := prober.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("probe slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: tried %d suffixes for %q", ErrSlugExhausted, maxSlugProbes, base)
}
