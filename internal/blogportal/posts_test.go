package blogportal

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/devbloghq/blog-portal/internal/db"
	"github.com/go-pg/pg/v10"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(db.TestDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		os.Exit(1)
	}

	testDB = pg.Connect(opt)

	if err := testDB.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "test database unavailable, integration tests will be skipped:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = testDB.Close()
		testDB = nil
		os.Exit(m.Run())
	}

	if err := db.ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.RunMigrations(ctx, db.MigrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.EnsureTablesExist(ctx, testDB, []string{"blogs"}); err != nil {
		fmt.Fprintf(os.Stderr, "schema verification failed: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.LoadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func withTx(t *testing.T) (context.Context, *Manager, *db.Repository) {
	t.Helper()
	if testDB == nil {
		t.Skip("test database unavailable, run: docker-compose -f docker-compose.test.yml up -d")
	}
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	repo := db.New(tx)
	return ctx, NewPostManager(repo), repo
}

func TestManager_Create_Integration(t *testing.T) {
	ctx, manager, _ := withTx(t)

	t.Run("RoundTrip", func(t *testing.T) {
		created, err := manager.Create(ctx, CreateParams{
			Title:    "A Fresh Take on Testing",
			Excerpt:  "Why integration tests earn their keep.",
			Content:  "Testing against a real database catches what mocks hide.",
			Category: "Development",
			Author:   "Tester",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if created.ID != "a-fresh-take-on-testing" {
			t.Errorf("slug = %q, want %q", created.ID, "a-fresh-take-on-testing")
		}
		if created.ReadTime != "1 min read" {
			t.Errorf("readTime = %q, want estimated %q", created.ReadTime, "1 min read")
		}
		if created.Date != time.Now().UTC().Format("2006-01-02") {
			t.Errorf("date = %q, want today", created.Date)
		}

		got, err := manager.PostByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("PostByID failed: %v", err)
		}
		if got == nil {
			t.Fatal("created post not readable")
		}
		if got.Title != created.Title || got.Excerpt != created.Excerpt ||
			got.Content != created.Content || got.Category != created.Category ||
			got.Author != created.Author || got.ReadTime != created.ReadTime {
			t.Errorf("round trip mismatch:\ncreated %+v\ngot     %+v", created, got)
		}
	})

	t.Run("SuppliedReadTimeWins", func(t *testing.T) {
		created, err := manager.Create(ctx, CreateParams{
			Title:    "Post With Explicit Read Time",
			Content:  "short",
			ReadTime: "7 min read",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if created.ReadTime != "7 min read" {
			t.Errorf("readTime = %q, want supplied value", created.ReadTime)
		}
	})

	t.Run("DuplicateTitleGetsSuffix", func(t *testing.T) {
		first, err := manager.Create(ctx, CreateParams{Title: "Same Title Twice", Content: "x"})
		if err != nil {
			t.Fatalf("first Create failed: %v", err)
		}
		second, err := manager.Create(ctx, CreateParams{Title: "Same Title Twice", Content: "y"})
		if err != nil {
			t.Fatalf("second Create failed: %v", err)
		}

		if first.ID != "same-title-twice" {
			t.Errorf("first slug = %q", first.ID)
		}
		if second.ID != "same-title-twice-1" {
			t.Errorf("second slug = %q, want %q", second.ID, "same-title-twice-1")
		}
	})

	t.Run("EmptySlugRejected", func(t *testing.T) {
		_, err := manager.Create(ctx, CreateParams{Title: "!!!", Content: "x"})
		if err == nil {
			t.Fatal("expected error for punctuation-only title")
		}
		if err != ErrEmptySlug {
			t.Errorf("err = %v, want ErrEmptySlug", err)
		}
	})
}

func TestManager_UniqueSlug_Integration(t *testing.T) {
	ctx, manager, repo := withTx(t)

	for _, id := range []string{"post", "post-1", "post-2"} {
		err := repo.InsertPost(ctx, &db.Post{
			ID: id, Title: "Post", Content: "x", Date: "2024-02-01",
			ReadTime: "1 min read", CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("seed insert %q failed: %v", id, err)
		}
	}

	created, err := manager.Create(ctx, CreateParams{Title: "Post", Content: "x"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != "post-3" {
		t.Errorf("slug = %q, want %q", created.ID, "post-3")
	}
}

func TestManager_Posts_Integration(t *testing.T) {
	ctx, manager, _ := withTx(t)

	posts, err := manager.Posts(ctx)
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 fixture posts, got %d", len(posts))
	}

	for i := 1; i < len(posts); i++ {
		if posts[i-1].Date < posts[i].Date {
			t.Errorf("posts not sorted by date DESC: %q before %q",
				posts[i-1].Date, posts[i].Date)
		}
	}
}

func TestManager_Update_Integration(t *testing.T) {
	ctx, manager, _ := withTx(t)

	t.Run("ContentChangeRecomputesReadTime", func(t *testing.T) {
		longContent := ""
		for i := 0; i < 450; i++ {
			longContent += "word "
		}

		updated, err := manager.Update(ctx, "getting-started-with-go", UpdateParams{
			Content: &longContent,
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated == nil {
			t.Fatal("expected updated post, got nil")
		}
		if updated.ReadTime != "3 min read" {
			t.Errorf("readTime = %q, want recomputed %q", updated.ReadTime, "3 min read")
		}
		if updated.UpdatedAt == nil {
			t.Error("updatedAt not set")
		}
	})

	t.Run("TitleChangeKeepsID", func(t *testing.T) {
		newTitle := "A Completely Different Title"
		updated, err := manager.Update(ctx, "acknowledging-github-copilot", UpdateParams{
			Title: &newTitle,
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.ID != "acknowledging-github-copilot" {
			t.Errorf("id changed to %q, slug must be immutable", updated.ID)
		}
		if updated.Title != newTitle {
			t.Errorf("title = %q, want %q", updated.Title, newTitle)
		}
	})

	t.Run("SuppliedReadTimeWinsOverRecompute", func(t *testing.T) {
		content := "fresh content"
		readTime := "9 min read"
		updated, err := manager.Update(ctx, "open-source-maintenance", UpdateParams{
			Content:  &content,
			ReadTime: &readTime,
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.ReadTime != readTime {
			t.Errorf("readTime = %q, want supplied %q", updated.ReadTime, readTime)
		}
	})

	t.Run("AbsentPost", func(t *testing.T) {
		title := "x"
		updated, err := manager.Update(ctx, "no-such-post", UpdateParams{Title: &title})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated != nil {
			t.Errorf("expected nil for absent post, got %+v", updated)
		}
	})
}

func TestManager_Delete_Integration(t *testing.T) {
	ctx, manager, _ := withTx(t)

	deleted, err := manager.Delete(ctx, "open-source-maintenance")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report true")
	}

	got, err := manager.PostByID(ctx, "open-source-maintenance")
	if err != nil {
		t.Fatalf("PostByID failed: %v", err)
	}
	if got != nil {
		t.Error("deleted post still readable")
	}

	deleted, err = manager.Delete(ctx, "open-source-maintenance")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted {
		t.Error("second delete must report false")
	}
}
