package models

import "testing"

func TestDifficultyPoints(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		want       int
	}{
		{DifficultySmall, 10},
		{DifficultyMedium, 25},
		{DifficultyLarge, 50},
		{Difficulty("Huge"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			if got := tt.difficulty.Points(); got != tt.want {
				t.Errorf("Points() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"fitness", CategoryFitness, false},
		{" Creative ", CategoryCreative, false},
		{"SOCIAL", CategorySocial, false},
		{"Achievement", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	if d, err := ParseDifficulty("large"); err != nil || d != DifficultyLarge {
		t.Errorf("ParseDifficulty(large) = %q, %v", d, err)
	}
	if _, err := ParseDifficulty("epic"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestTaskValidate(t *testing.T) {
	valid := Task{ID: "1", Title: "Morning Run", Category: CategoryFitness, Difficulty: DifficultyMedium}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	tests := []struct {
		name string
		task Task
	}{
		{"missing id", Task{Title: "x", Category: CategoryWork, Difficulty: DifficultySmall}},
		{"blank title", Task{ID: "1", Title: "   ", Category: CategoryWork, Difficulty: DifficultySmall}},
		{"bad category", Task{ID: "1", Title: "x", Category: "Chores", Difficulty: DifficultySmall}},
		{"bad difficulty", Task{ID: "1", Title: "x", Category: CategoryWork, Difficulty: "Tiny"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.task.Validate(); err == nil {
				t.Error("Validate() expected error, got nil")
			}
		})
	}
}

func TestDayRecordIsPerfect(t *testing.T) {
	if (DayRecord{}).IsPerfect() {
		t.Error("empty day must not be perfect")
	}
	day := DayRecord{Tasks: []Task{{Completed: true}, {Completed: true}}}
	if !day.IsPerfect() {
		t.Error("all-complete day should be perfect")
	}
	day.Tasks = append(day.Tasks, Task{})
	if day.IsPerfect() || day.CompletedCount() != 2 {
		t.Errorf("partial day: perfect=%v completed=%d", day.IsPerfect(), day.CompletedCount())
	}
}
