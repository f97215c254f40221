package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/tasklit/internal/models"
	"github.com/julianstephens/tasklit/internal/storage"
)

const postColumns = `id, kind, author_name, author_username, author_avatar_url, task_title, task_category,
	task_difficulty, image_ref, caption, likes, comments, liked, tasks_completed, created_at`

// timestampLayout is fixed-width so created_at sorts correctly as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.Post, error) {
	var p models.Post
	var kind, difficulty, createdAt string
	var liked int
	err := row.Scan(&p.ID, &kind, &p.Author.Name, &p.Author.Username, &p.Author.AvatarURL,
		&p.TaskTitle, &p.TaskCategory, &difficulty, &p.ImageRef, &p.Caption,
		&p.Likes, &p.Comments, &liked, &p.TasksCompleted, &createdAt)
	if err != nil {
		return models.Post{}, err
	}
	p.Kind = models.PostKind(kind)
	p.TaskDifficulty = models.Difficulty(difficulty)
	p.Liked = liked != 0
	p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to parse created_at for post %s: %w", p.ID, err)
	}
	return p, nil
}

func (s *Store) AddPost(p models.Post) error {
	_, err := s.db.Exec(`INSERT INTO posts (`+postColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, string(p.Kind), p.Author.Name, p.Author.Username, p.Author.AvatarURL,
		p.TaskTitle, p.TaskCategory, string(p.TaskDifficulty), p.ImageRef, p.Caption,
		p.Likes, p.Comments, boolToInt(p.Liked), p.TasksCompleted,
		p.CreatedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to add post %s: %w", p.ID, err)
	}
	return nil
}

func (s *Store) GetPost(id string) (models.Post, error) {
	p, err := scanPost(s.db.QueryRow("SELECT "+postColumns+" FROM posts WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, fmt.Errorf("post %s: %w", id, storage.ErrNotFound)
	}
	return p, err
}

// UpdatePost persists the mutable engagement fields of a post.
func (s *Store) UpdatePost(p models.Post) error {
	res, err := s.db.Exec("UPDATE posts SET likes = ?, comments = ?, liked = ?, caption = ? WHERE id = ?",
		p.Likes, p.Comments, boolToInt(p.Liked), p.Caption, p.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("post %s: %w", p.ID, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) GetPosts(limit int) ([]models.Post, error) {
	query := "SELECT " + postColumns + " FROM posts ORDER BY created_at DESC, id"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
