package feed

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/tasklit/internal/cli"
	feedsvc "github.com/julianstephens/tasklit/internal/feed"
	"github.com/julianstephens/tasklit/internal/ledger"
	"github.com/julianstephens/tasklit/internal/models"
	"github.com/julianstephens/tasklit/internal/session"
	"github.com/julianstephens/tasklit/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	ctx := cli.NewContext(store)
	ctx.Session = session.New(store, ctx.Feed, nil)
	return ctx
}

func addTask(t *testing.T, ctx *cli.Context, title string) models.Task {
	t.Helper()
	task, err := ctx.Session.AddTask(ledger.Candidate{
		Title:      title,
		Category:   models.CategoryCreative,
		Difficulty: models.DifficultyLarge,
	})
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	return task
}

func TestFeedPostCmd(t *testing.T) {
	ctx := setupTestDB(t)
	task := addTask(t, ctx, "Sketch")
	addTask(t, ctx, "Paint")

	// Open tasks cannot be shared
	err := (&FeedPostCmd{Task: task.ID, Photo: "sketch.jpg"}).Run(ctx)
	if !errors.Is(err, ledger.ErrValidation) {
		t.Fatalf("expected validation error for open task, got %v", err)
	}

	if _, err := ctx.Session.ToggleTask(task.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	err = (&FeedPostCmd{Task: "1", Photo: "  "}).Run(ctx)
	var uerr *cli.UserError
	if !errors.As(err, &uerr) || uerr.Message != "Please take a photo first" {
		t.Fatalf("expected missing photo error, got %v", err)
	}

	if err := (&FeedPostCmd{Task: "1", Photo: "sketch.jpg", Caption: "done!"}).Run(ctx); err != nil {
		t.Fatalf("post failed: %v", err)
	}

	posts, err := ctx.Feed.List(0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].TaskTitle != "Sketch" || posts[0].ImageRef != "sketch.jpg" || posts[0].Caption != "done!" {
		t.Errorf("unexpected post: %+v", posts[0])
	}
	if posts[0].Author.Name != "You" {
		t.Errorf("expected default author, got %q", posts[0].Author.Name)
	}
}

func TestFeedLikeCmd(t *testing.T) {
	ctx := setupTestDB(t)
	post, err := ctx.Feed.PublishCelebration(models.Author{Name: "Sarah"}, 3)
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if err := (&FeedLikeCmd{ID: post.ID}).Run(ctx); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	got, err := ctx.Store.GetPost(post.ID)
	if err != nil {
		t.Fatalf("get post failed: %v", err)
	}
	if !got.Liked || got.Likes != 1 {
		t.Errorf("expected liked with 1 like, got liked=%v likes=%d", got.Liked, got.Likes)
	}

	if err := (&FeedLikeCmd{ID: post.ID}).Run(ctx); err != nil {
		t.Fatalf("unlike failed: %v", err)
	}
	got, _ = ctx.Store.GetPost(post.ID)
	if got.Liked || got.Likes != 0 {
		t.Errorf("expected unliked with 0 likes, got liked=%v likes=%d", got.Liked, got.Likes)
	}

	err = (&FeedLikeCmd{ID: "missing"}).Run(ctx)
	if !errors.Is(err, feedsvc.ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}

func TestFeedListCmd(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&FeedListCmd{}).Run(ctx); err != nil {
		t.Errorf("list on empty feed failed: %v", err)
	}
	if _, err := ctx.Feed.PublishCelebration(models.Author{Name: "Sarah"}, 3); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if err := (&FeedListCmd{Limit: 5, ShowIDs: true}).Run(ctx); err != nil {
		t.Errorf("list failed: %v", err)
	}
}

func TestFormatPost(t *testing.T) {
	p := models.Post{
		ID:             "p1",
		Kind:           models.PostKindTask,
		Author:         models.Author{Name: "Sarah Chen", Username: "@sarahc"},
		TaskTitle:      "Morning Run",
		TaskCategory:   "Fitness",
		TaskDifficulty: models.DifficultyMedium,
		ImageRef:       "run.jpg",
		Caption:        "5k!",
		Likes:          24,
		Comments:       3,
		Liked:          true,
		CreatedAt:      time.Now(),
	}

	out := formatPost(p, "2h ago", true)
	for _, want := range []string{"Sarah Chen @sarahc · 2h ago", "(ID: p1)", "Fitness · Medium +25", "run.jpg", "♥ 24"} {
		if !strings.Contains(out, want) {
			t.Errorf("formatPost() missing %q in:\n%s", want, out)
		}
	}
}
