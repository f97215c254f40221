package models

// DayRecord is the persisted snapshot of a single day's ledger.
type DayRecord struct {
	Date      string `json:"date"` // YYYY-MM-DD format
	AddLocked bool   `json:"add_locked"`
	Tasks     []Task `json:"tasks"`
}

// CompletedCount returns the number of completed tasks in the record.
func (d DayRecord) CompletedCount() int {
	n := 0
	for _, t := range d.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// IsPerfect reports whether the day had tasks and all of them were completed.
func (d DayRecord) IsPerfect() bool {
	return len(d.Tasks) > 0 && d.CompletedCount() == len(d.Tasks)
}
