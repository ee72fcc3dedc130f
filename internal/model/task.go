package model

import "time"

// DefaultCategory is assigned to tasks saved without a category.
const DefaultCategory = "General"

// Task is a single dictated to-do item.
type Task struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Done      bool       `json:"done"`
	Pinned    bool       `json:"pinned"`
	DueDate   *time.Time `json:"dueDate"`
	Category  string     `json:"category"`
	Notified  bool       `json:"notified,omitempty"` // set once a reminder fired, never reset
	CreatedAt time.Time  `json:"createdAt"`
}

// HasDueDate reports whether the task carries a due date.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}
