package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/tasklit/internal/models"
	"github.com/julianstephens/tasklit/internal/storage"
)

const postColumns = "id, kind, author_name, author_username, author_avatar_url, task_title, task_category, " +
	"task_difficulty, image_ref, caption, likes, comments, liked, tasks_completed, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.Post, error) {
	var p models.Post
	var kind, difficulty string
	err := row.Scan(&p.ID, &kind, &p.Author.Name, &p.Author.Username, &p.Author.AvatarURL,
		&p.TaskTitle, &p.TaskCategory, &difficulty, &p.ImageRef, &p.Caption,
		&p.Likes, &p.Comments, &p.Liked, &p.TasksCompleted, &p.CreatedAt)
	if err != nil {
		return models.Post{}, err
	}
	p.Kind = models.PostKind(kind)
	p.TaskDifficulty = models.Difficulty(difficulty)
	return p, nil
}

func (s *Store) AddPost(p models.Post) error {
	_, err := s.db.Exec("INSERT INTO posts ("+postColumns+") "+
		"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)",
		p.ID, string(p.Kind), p.Author.Name, p.Author.Username, p.Author.AvatarURL,
		p.TaskTitle, p.TaskCategory, string(p.TaskDifficulty), p.ImageRef, p.Caption,
		p.Likes, p.Comments, p.Liked, p.TasksCompleted, p.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to add post %s: %w", p.ID, err)
	}
	return nil
}

func (s *Store) GetPost(id string) (models.Post, error) {
	p, err := scanPost(s.db.QueryRow("SELECT "+postColumns+" FROM posts WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, fmt.Errorf("post %s: %w", id, storage.ErrNotFound)
	}
	return p, err
}

func (s *Store) UpdatePost(p models.Post) error {
	res, err := s.db.Exec("UPDATE posts SET likes = $1, comments = $2, liked = $3, caption = $4 WHERE id = $5",
		p.Likes, p.Comments, p.Liked, p.Caption, p.ID)
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
		query += " LIMIT $1"
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
