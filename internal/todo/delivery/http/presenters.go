package http

import (
	"time"

	"voice-todo/internal/model"
	"voice-todo/internal/speech"
	"voice-todo/internal/todo"
	"voice-todo/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Filter   string `form:"filter"`
	Category string `form:"category"`
}

func (r listReq) toInput() (todo.ListInput, error) {
	f, err := todo.ParseFilter(r.Filter)
	if err != nil {
		return todo.ListInput{}, err
	}
	return todo.ListInput{Filter: f, Category: r.Category}, nil
}

// ---

type createReq struct {
	Text     string `json:"text"     binding:"max=1000"`
	DueDate  string `json:"due_date"`
	Category string `json:"category" binding:"max=64"`
}

func (r createReq) toInput(due *time.Time) todo.AddTaskInput {
	return todo.AddTaskInput{
		Text:     r.Text,
		DueDate:  due,
		Category: r.Category,
	}
}

// ---

type transcriptReq struct {
	Text string `json:"text" binding:"required"`
}

// ---

type saveReq struct {
	DueDate  string `json:"due_date"`
	Category string `json:"category" binding:"max=64"`
}

func (r saveReq) toInput(due *time.Time) todo.SaveTranscriptInput {
	return todo.SaveTranscriptInput{
		DueDate:  due,
		Category: r.Category,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string             `json:"id"`
	Text      string             `json:"text"`
	Done      bool               `json:"done"`
	Pinned    bool               `json:"pinned"`
	DueDate   *time.Time         `json:"due_date"`
	Category  string             `json:"category"`
	Notified  bool               `json:"notified"`
	CreatedAt *response.DateTime `json:"created_at,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	var created *response.DateTime
	if !t.CreatedAt.IsZero() {
		created = response.NewDateTime(&t.CreatedAt)
	}
	return taskResp{
		ID:        t.ID,
		Text:      t.Text,
		Done:      t.Done,
		Pinned:    t.Pinned,
		DueDate:   t.DueDate,
		Category:  t.Category,
		Notified:  t.Notified,
		CreatedAt: created,
	}
}

type statsResp struct {
	Done     int     `json:"done"`
	Total    int     `json:"total"`
	Progress float64 `json:"progress"`
}

func newStatsResp(s todo.Stats) statsResp {
	return statsResp{Done: s.Done, Total: s.Total, Progress: s.Progress}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Stats statsResp  `json:"stats"`
}

func (h *handler) newListResp(out todo.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Stats: newStatsResp(out.Stats)}
}

type addResp struct {
	Created bool      `json:"created"`
	Task    *taskResp `json:"task,omitempty"`
}

func (h *handler) newAddResp(out todo.AddTaskOutput) addResp {
	if !out.Created {
		return addResp{}
	}
	t := newTaskResp(out.Task)
	return addResp{Created: true, Task: &t}
}

type taskItemResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskItemResp(out todo.MutateOutput) taskItemResp {
	return taskItemResp{Task: newTaskResp(out.Task)}
}

type categoriesResp struct {
	Presets []string `json:"presets"`
	InUse   []string `json:"in_use"`
}

func (h *handler) newCategoriesResp(out todo.CategoriesOutput) categoriesResp {
	return categoriesResp{Presets: out.Presets, InUse: out.InUse}
}

type speechResp struct {
	Supported  bool   `json:"supported"`
	Listening  bool   `json:"listening"`
	Transcript string `json:"transcript"`
}

func (h *handler) newSpeechResp() speechResp {
	s := speech.Snapshot(h.speech)
	return speechResp{Supported: s.Supported, Listening: s.Listening, Transcript: s.Transcript}
}
