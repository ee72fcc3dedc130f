package todo

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"voice-todo/internal/model"
)

// ParseFilter resolves a status filter name case-insensitively. Empty means All.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range Filters {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", ErrInvalidFilter
}

// Matches reports whether t passes the status filter. Unknown filters pass everything.
func (f Filter) Matches(t model.Task) bool {
	switch f {
	case FilterPinned:
		return t.Pinned
	case FilterCompleted:
		return t.Done
	case FilterIncomplete:
		return !t.Done
	default:
		return true
	}
}

// DeriveView filters tasks by status and category and sorts the result.
// Pinned tasks come first. Inside each pin group the due-dated tasks are
// ordered by ascending due date among the positions they occupy, while
// tasks without a due date keep their place. The input slice is not modified.
func DeriveView(tasks []model.Task, filter Filter, categoryFilter string) []model.Task {
	pinned := make([]model.Task, 0)
	unpinned := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !filter.Matches(t) {
			continue
		}
		if categoryFilter != "" && categoryFilter != CategoryAll && t.Category != categoryFilter {
			continue
		}
		if t.Pinned {
			pinned = append(pinned, t)
		} else {
			unpinned = append(unpinned, t)
		}
	}

	sortByDueDate(pinned)
	sortByDueDate(unpinned)

	return append(pinned, unpinned...)
}

// sortByDueDate reorders the due-dated tasks of group in place.
func sortByDueDate(group []model.Task) {
	var slots []int
	var dated []model.Task
	for i, t := range group {
		if t.HasDueDate() {
			slots = append(slots, i)
			dated = append(dated, t)
		}
	}
	if len(dated) < 2 {
		return
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].DueDate.Before(*dated[j].DueDate)
	})
	for k, i := range slots {
		group[i] = dated[k]
	}
}

// Progress returns the completed share of tasks in percent, 0 for an empty list.
func Progress(tasks []model.Task) float64 {
	return ComputeStats(tasks).Progress
}

// ComputeStats counts done and total tasks.
func ComputeStats(tasks []model.Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			s.Done++
		}
	}
	if s.Total > 0 {
		s.Progress = float64(s.Done) / float64(s.Total) * 100
	}
	return s
}

// UniqueCategories returns the distinct categories in first-seen order.
func UniqueCategories(tasks []model.Task) []string {
	seen := make(map[string]struct{}, len(tasks))
	out := make([]string, 0)
	for _, t := range tasks {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}

// IsReminderDue reports whether a reminder for t should fire at now.
func IsReminderDue(t model.Task, now time.Time) bool {
	if !t.HasDueDate() || t.Done || t.Notified {
		return false
	}
	diff := t.DueDate.Sub(now)
	return diff > 0 && diff <= ReminderLookahead
}

// ReminderBody is the notification body for t.
func ReminderBody(t model.Task) string {
	return fmt.Sprintf("Task \"%s\" is due soon!", t.Text)
}
