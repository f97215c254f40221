package models

import "time"

type PostKind string

const (
	PostKindTask        PostKind = "task"
	PostKindCelebration PostKind = "celebration"
)

type Author struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type Post struct {
	ID             string     `json:"id"`
	Kind           PostKind   `json:"kind"`
	Author         Author     `json:"author"`
	TaskTitle      string     `json:"task_title"`
	TaskCategory   string     `json:"task_category"`
	TaskDifficulty Difficulty `json:"task_difficulty"`
	ImageRef       string     `json:"image_ref,omitempty"`
	Caption        string     `json:"caption"`
	Likes          int        `json:"likes"`
	Comments       int        `json:"comments"`
	Liked          bool       `json:"liked"`
	TasksCompleted int        `json:"tasks_completed,omitempty"` // celebration posts only
	CreatedAt      time.Time  `json:"created_at"`
}

// Points returns the difficulty points shown on the post badge.
func (p Post) Points() int {
	return p.TaskDifficulty.Points()
}
