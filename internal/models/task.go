package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the format of task due dates and the wedding date.
const DateLayout = "2006-01-02"

// DefaultTaskTitle is the title given to freshly added tasks.
const DefaultTaskTitle = "Nova Tarefa"

// Task is a planning to-do item
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Completed bool     `json:"completed"`
	DueDate   string   `json:"dueDate,omitempty"`
	Priority  Priority `json:"priority"`
}

// Priority of a task
type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Média"
	PriorityLow    Priority = "Baixa"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ParsePriority accepts the stored value or an English alias.
func ParsePriority(v string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "alta", "high":
		return PriorityHigh, nil
	case "média", "media", "medium":
		return PriorityMedium, nil
	case "baixa", "low":
		return PriorityLow, nil
	}
	return "", fmt.Errorf("unknown priority %q", v)
}

// Key returns the task id.
func (t Task) Key() string { return t.ID }

// Due parses the due date. ok is false when none is set.
func (t Task) Due() (due time.Time, ok bool, err error) {
	if t.DueDate == "" {
		return time.Time{}, false, nil
	}
	due, err = time.Parse(DateLayout, t.DueDate)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("task %s: bad due date: %w", t.ID, err)
	}
	return due, true, nil
}

// Validate checks the shape of a stored task.
func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task has empty id")
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("task %s: invalid priority %q", t.ID, t.Priority)
	}
	if _, _, err := t.Due(); err != nil {
		return err
	}
	return nil
}

// ValidateTasks checks every task and id uniqueness.
func ValidateTasks(tasks []Task) error {
	return validateAll(tasks)
}
