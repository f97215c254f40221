package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/tasklit/internal/models"
	"github.com/julianstephens/tasklit/internal/storage"
)

const taskColumns = "id, title, category, difficulty, completed, time_estimate, description, completed_at"

func (s *Store) GetDay(date string) (models.DayRecord, error) {
	var locked bool
	err := s.db.QueryRow("SELECT add_locked FROM days WHERE date = $1", date).Scan(&locked)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DayRecord{}, fmt.Errorf("day %s: %w", date, storage.ErrNotFound)
	}
	if err != nil {
		return models.DayRecord{}, err
	}

	tasks, err := s.getTasksForDay(date)
	if err != nil {
		return models.DayRecord{}, err
	}

	return models.DayRecord{Date: date, AddLocked: locked, Tasks: tasks}, nil
}

func (s *Store) GetDays(startDate, endDate string) ([]models.DayRecord, error) {
	rows, err := s.db.Query(
		"SELECT date, add_locked FROM days WHERE date >= $1 AND date <= $2 ORDER BY date",
		startDate, endDate,
	)
	if err != nil {
		return nil, err
	}

	var days []models.DayRecord
	for rows.Next() {
		var rec models.DayRecord
		if err := rows.Scan(&rec.Date, &rec.AddLocked); err != nil {
			rows.Close()
			return nil, err
		}
		days = append(days, rec)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range days {
		tasks, err := s.getTasksForDay(days[i].Date)
		if err != nil {
			return nil, err
		}
		days[i].Tasks = tasks
	}

	return days, nil
}

func (s *Store) getTasksForDay(date string) ([]models.Task, error) {
	rows, err := s.db.Query("SELECT "+taskColumns+" FROM tasks WHERE day = $1 ORDER BY position", date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		var category, difficulty string
		var completedAt sql.NullTime
		if err := rows.Scan(&t.ID, &t.Title, &category, &difficulty, &t.Completed,
			&t.TimeEstimate, &t.Description, &completedAt); err != nil {
			return nil, err
		}
		t.Category = models.Category(category)
		t.Difficulty = models.Difficulty(difficulty)
		if completedAt.Valid {
			ts := completedAt.Time
			t.CompletedAt = &ts
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (s *Store) SaveDay(rec models.DayRecord) error {
	for _, t := range rec.Tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("invalid task in day %s: %w", rec.Date, err)
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO days (date, add_locked, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (date) DO UPDATE SET add_locked = EXCLUDED.add_locked, updated_at = EXCLUDED.updated_at`,
		rec.Date, rec.AddLocked, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save day %s: %w", rec.Date, err)
	}

	if _, err := tx.Exec("DELETE FROM tasks WHERE day = $1", rec.Date); err != nil {
		return err
	}

	for i, t := range rec.Tasks {
		var completedAt sql.NullTime
		if t.CompletedAt != nil {
			completedAt = sql.NullTime{Time: t.CompletedAt.UTC(), Valid: true}
		}
		_, err := tx.Exec(`
			INSERT INTO tasks (id, day, position, title, category, difficulty, completed, time_estimate, description, completed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			t.ID, rec.Date, i, t.Title, string(t.Category), string(t.Difficulty),
			t.Completed, t.TimeEstimate, t.Description, completedAt)
		if err != nil {
			return fmt.Errorf("failed to save task %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}
