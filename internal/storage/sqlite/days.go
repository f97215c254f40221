package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/tasklit/internal/models"
	"github.com/julianstephens/tasklit/internal/storage"
)

func (s *Store) GetDay(date string) (models.DayRecord, error) {
	var locked int
	err := s.db.QueryRow("SELECT add_locked FROM days WHERE date = ?", date).Scan(&locked)
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

	return models.DayRecord{
		Date:      date,
		AddLocked: locked != 0,
		Tasks:     tasks,
	}, nil
}

func (s *Store) GetDays(startDate, endDate string) ([]models.DayRecord, error) {
	rows, err := s.db.Query(
		"SELECT date, add_locked FROM days WHERE date >= ? AND date <= ? ORDER BY date",
		startDate, endDate,
	)
	if err != nil {
		return nil, err
	}

	var days []models.DayRecord
	for rows.Next() {
		var rec models.DayRecord
		var locked int
		if err := rows.Scan(&rec.Date, &locked); err != nil {
			rows.Close()
			return nil, err
		}
		rec.AddLocked = locked != 0
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
	rows, err := s.db.Query(`
		SELECT id, title, category, difficulty, completed, time_estimate, description, completed_at
		FROM tasks WHERE day = ? ORDER BY position`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		var category, difficulty string
		var completed int
		var completedAt sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &category, &difficulty, &completed,
			&t.TimeEstimate, &t.Description, &completedAt); err != nil {
			return nil, err
		}
		t.Category = models.Category(category)
		t.Difficulty = models.Difficulty(difficulty)
		t.Completed = completed != 0
		if completedAt.Valid {
			ts, err := time.Parse(time.RFC3339, completedAt.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse completed_at for task %s: %w", t.ID, err)
			}
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
		INSERT INTO days (date, add_locked, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET add_locked = excluded.add_locked, updated_at = excluded.updated_at`,
		rec.Date, boolToInt(rec.AddLocked), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save day %s: %w", rec.Date, err)
	}

	if _, err := tx.Exec("DELETE FROM tasks WHERE day = ?", rec.Date); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tasks (id, day, position, title, category, difficulty, completed, time_estimate, description, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, t := range rec.Tasks {
		var completedAt sql.NullString
		if t.CompletedAt != nil {
			completedAt = sql.NullString{String: t.CompletedAt.UTC().Format(time.RFC3339), Valid: true}
		}
		_, err := stmt.Exec(t.ID, rec.Date, i, t.Title, string(t.Category), string(t.Difficulty),
			boolToInt(t.Completed), t.TimeEstimate, t.Description, completedAt)
		if err != nil {
			return fmt.Errorf("failed to save task %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
