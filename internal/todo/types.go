package todo

import (
	"time"

	"voice-todo/internal/model"
)

// Filter selects tasks by status in the derived view.
type Filter string

const (
	FilterAll        Filter = "All"
	FilterPinned     Filter = "Pinned"
	FilterCompleted  Filter = "Completed"
	FilterIncomplete Filter = "Incomplete"
)

// Filters lists the status filters in display order.
var Filters = []Filter{FilterAll, FilterPinned, FilterCompleted, FilterIncomplete}

// CategoryAll disables category filtering, same as an empty category filter.
const CategoryAll = "All"

// PresetCategories are the categories offered when saving a task.
var PresetCategories = []string{model.DefaultCategory, "Work", "Personal", "Shopping"}

const (
	// ReminderTitle is the title of every due reminder.
	ReminderTitle = "⏰ Task Reminder!"
	// ReminderLookahead is how far ahead of the due date a reminder fires.
	ReminderLookahead = time.Hour
)

// --- UseCase Inputs ---

type AddTaskInput struct {
	Text     string
	DueDate  *time.Time
	Category string
}

type ListInput struct {
	Filter   Filter
	Category string
}

type SaveTranscriptInput struct {
	DueDate  *time.Time
	Category string
}

// --- UseCase Outputs ---

type AddTaskOutput struct {
	Task    model.Task
	Created bool // false when the text was blank
}

type MutateOutput struct {
	Task  model.Task
	Found bool // false when no task has the requested id
}

type ListOutput struct {
	Tasks []model.Task
	Stats Stats
}

type ScanOutput struct {
	Notified []model.Task
}

type CategoriesOutput struct {
	Presets []string
	InUse   []string
}

// Stats summarises completion of the whole list.
type Stats struct {
	Done     int
	Total    int
	Progress float64 // percent, 0..100
}
