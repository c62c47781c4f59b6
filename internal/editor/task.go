package editor

import (
	"time"

	"wedding-planner/internal/models"
)

// TaskPatch lists the task fields that may be changed. An empty DueDate
// clears the due date.
type TaskPatch struct {
	Title     *string
	Completed *bool
	DueDate   *string
	Priority  *models.Priority
}

// Validate checks the patch before it is merged. Titles may be empty while
// the user is still typing.
func (p TaskPatch) Validate() error {
	if p.DueDate != nil && *p.DueDate != "" {
		if _, err := time.Parse(models.DateLayout, *p.DueDate); err != nil {
			return invalid("bad due date %q", *p.DueDate)
		}
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return invalid("unknown priority %q", *p.Priority)
	}
	return nil
}

// Apply merges the patch into t.
func (p TaskPatch) Apply(t models.Task) models.Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	return t
}

// AddTask puts a new incomplete, medium-priority task at the top of the
// list. An empty title becomes the default title.
func AddTask(tasks []models.Task, title, id string) ([]models.Task, models.Task) {
	if title == "" {
		title = models.DefaultTaskTitle
	}
	t := models.Task{
		ID:       id,
		Title:    title,
		Priority: models.PriorityMedium,
	}
	return Prepend(tasks, t), t
}

// UpdateTask merges p into the task with the given id.
func UpdateTask(tasks []models.Task, id string, p TaskPatch) ([]models.Task, bool, error) {
	if err := p.Validate(); err != nil {
		return tasks, false, err
	}
	out, found := Replace(tasks, id, p.Apply)
	return out, found, nil
}

// ToggleTask flips the completion flag of the task with the given id.
func ToggleTask(tasks []models.Task, id string) ([]models.Task, bool) {
	return Replace(tasks, id, func(t models.Task) models.Task {
		t.Completed = !t.Completed
		return t
	})
}

// RemoveTask drops the task with the given id.
func RemoveTask(tasks []models.Task, id string) ([]models.Task, bool) {
	return Remove(tasks, id)
}
