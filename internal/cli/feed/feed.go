package feed

import (
	"fmt"

	"github.com/julianstephens/tasklit/internal/cli"
	"github.com/julianstephens/tasklit/internal/constants"
	feedsvc "github.com/julianstephens/tasklit/internal/feed"
	"github.com/julianstephens/tasklit/internal/models"
)

type FeedListCmd struct {
	Limit   int  `short:"n" help:"Number of posts to show." default:"20"`
	ShowIDs bool `help:"Show post IDs." name:"show-ids"`
}

func (c *FeedListCmd) Run(ctx *cli.Context) error {
	posts, err := ctx.Feed.List(c.Limit)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Println("No posts yet. Complete a task and share it with 'tasklit feed post'.")
		return nil
	}

	now := ctx.Now()
	for _, p := range posts {
		fmt.Println(formatPost(p, feedsvc.TimeAgo(p.CreatedAt, now), c.ShowIDs))
		fmt.Println()
	}
	return nil
}

func formatPost(p models.Post, ago string, showID bool) string {
	heart := "♡"
	if p.Liked {
		heart = "♥"
	}

	header := fmt.Sprintf("%s %s · %s", p.Author.Name, p.Author.Username, ago)
	if showID {
		header += fmt.Sprintf(" (ID: %s)", p.ID)
	}

	badge := fmt.Sprintf("%s · %s +%d", p.TaskCategory, p.TaskDifficulty, p.Points())
	body := p.TaskTitle
	if p.Kind == models.PostKindCelebration {
		body = fmt.Sprintf("🏆 %s (%d tasks)", p.TaskTitle, p.TasksCompleted)
	}

	out := fmt.Sprintf("%s\n  %s\n  %s\n", header, body, badge)
	if p.ImageRef != "" {
		out += fmt.Sprintf("  📷 %s\n", p.ImageRef)
	}
	if p.Caption != "" {
		out += fmt.Sprintf("  %s\n", p.Caption)
	}
	out += fmt.Sprintf("  %s %d  💬 %d", heart, p.Likes, p.Comments)
	return out
}

type FeedLikeCmd struct {
	ID string `arg:"" help:"Post ID."`
}

func (c *FeedLikeCmd) Run(ctx *cli.Context) error {
	post, err := ctx.Feed.ToggleLike(c.ID)
	if err != nil {
		return err
	}
	if post.Liked {
		fmt.Printf("♥ Liked %s's post (%d likes)\n", post.Author.Name, post.Likes)
	} else {
		fmt.Printf("♡ Unliked %s's post (%d likes)\n", post.Author.Name, post.Likes)
	}
	return nil
}

type FeedPostCmd struct {
	Task    string `arg:"" help:"Completed task: exact ID, list position, or unique ID prefix (checked in that order)."`
	Photo   string `short:"p" help:"Photo reference (path or URL) proving completion." required:""`
	Caption string `short:"m" help:"Caption for the post."`
}

func (c *FeedPostCmd) Run(ctx *cli.Context) error {
	task, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return cli.Friendly(err)
	}

	author := ctx.Session.Settings().Author()
	if _, err := ctx.Feed.PublishTask(author, task, c.Photo, c.Caption); err != nil {
		return cli.Friendly(err)
	}

	fmt.Println(constants.PostedTitle)
	fmt.Println(constants.PostedMessage)
	return nil
}
