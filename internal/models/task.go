package models

import (
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryFitness   Category = "Fitness"
	CategoryLearning  Category = "Learning"
	CategoryWork      Category = "Work"
	CategoryLifestyle Category = "Lifestyle"
	CategoryCreative  Category = "Creative"
	CategorySocial    Category = "Social"
)

// Categories lists the task categories in display order.
var Categories = []Category{
	CategoryFitness,
	CategoryLearning,
	CategoryWork,
	CategoryLifestyle,
	CategoryCreative,
	CategorySocial,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type Difficulty string

const (
	DifficultySmall  Difficulty = "Small"
	DifficultyMedium Difficulty = "Medium"
	DifficultyLarge  Difficulty = "Large"
)

var Difficulties = []Difficulty{DifficultySmall, DifficultyMedium, DifficultyLarge}

// Points returns the score awarded for completing a task of this difficulty.
func (d Difficulty) Points() int {
	switch d {
	case DifficultySmall:
		return 10
	case DifficultyMedium:
		return 25
	case DifficultyLarge:
		return 50
	default:
		return 0
	}
}

func (d Difficulty) Valid() bool {
	return d.Points() > 0
}

func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Category     Category   `json:"category"`
	Difficulty   Difficulty `json:"difficulty"`
	Completed    bool       `json:"completed"`
	TimeEstimate string     `json:"time_estimate"`
	Description  string     `json:"description,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// Points returns the difficulty points the task is worth.
func (t Task) Points() int {
	return t.Difficulty.Points()
}

// Validate checks the fields a stored task must carry.
func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title is required")
	}
	if !t.Category.Valid() {
		return fmt.Errorf("invalid category %q", t.Category)
	}
	if !t.Difficulty.Valid() {
		return fmt.Errorf("invalid difficulty %q", t.Difficulty)
	}
	return nil
}
