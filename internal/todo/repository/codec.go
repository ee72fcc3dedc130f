package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"voice-todo/internal/model"
)

// Key is the fixed key the task list is stored under.
const Key = "tasks"

//go:embed tasks.schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("tasks.schema.json", schemaJSON)

// Layouts accepted for dueDate, besides RFC3339. The zone-less forms are what
// an HTML datetime-local input produces.
var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// record mirrors model.Task with a raw dueDate so lists written by older
// clients (no id, local datetime strings) still decode.
type record struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Done      bool    `json:"done"`
	Pinned    bool    `json:"pinned"`
	DueDate   *string `json:"dueDate"`
	Category  *string `json:"category"`
	Notified  bool    `json:"notified"`
	CreatedAt string  `json:"createdAt"`
}

// Encode serialises tasks as a JSON array. A nil list encodes as [].
func Encode(tasks []model.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return data, nil
}

// Decode validates data against the task list schema and converts it.
// Zone-less due dates are read in loc.
func Decode(data []byte, loc *time.Location) ([]model.Task, error) {
	if loc == nil {
		loc = time.Local
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	tasks := make([]model.Task, 0, len(records))
	for i, r := range records {
		t, err := r.toTask(loc)
		if err != nil {
			return nil, fmt.Errorf("%w: task %d: %v", ErrMalformed, i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (r record) toTask(loc *time.Location) (model.Task, error) {
	t := model.Task{
		ID:       r.ID,
		Text:     r.Text,
		Done:     r.Done,
		Pinned:   r.Pinned,
		Category: model.DefaultCategory,
		Notified: r.Notified,
	}
	if r.Category != nil && *r.Category != "" {
		t.Category = *r.Category
	}

	if r.DueDate != nil && strings.TrimSpace(*r.DueDate) != "" {
		due, err := parseDueDate(strings.TrimSpace(*r.DueDate), loc)
		if err != nil {
			return model.Task{}, err
		}
		t.DueDate = &due
	}

	if r.CreatedAt != "" {
		created, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
		if err != nil {
			return model.Task{}, fmt.Errorf("createdAt: %w", err)
		}
		t.CreatedAt = created
	}
	return t, nil
}

func parseDueDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("dueDate %q: unsupported format", s)
}
