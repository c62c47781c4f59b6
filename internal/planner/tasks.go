package planner

import (
	"wedding-planner/internal/editor"
	"wedding-planner/internal/models"
	"wedding-planner/internal/storage"
)

func (p *Planner) setTasks(t []models.Task) { p.tasks = t }

// AddTask puts a new task at the top of the list.
func (p *Planner) AddTask(title string) (models.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, task := editor.AddTask(p.tasks, title, p.ids.New(p.now()))
	if err := commit(p, storage.KeyTasks, next, p.setTasks); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask merges patch into the task.
func (p *Planner) UpdateTask(id string, patch editor.TaskPatch) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, found, err := editor.UpdateTask(p.tasks, id, patch)
	if err != nil || !found {
		return false, err
	}
	return true, commit(p, storage.KeyTasks, next, p.setTasks)
}

// ToggleTask flips the task's completion flag.
func (p *Planner) ToggleTask(id string) (models.Task, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, found := editor.ToggleTask(p.tasks, id)
	if !found {
		return models.Task{}, false, nil
	}
	if err := commit(p, storage.KeyTasks, next, p.setTasks); err != nil {
		return models.Task{}, true, err
	}
	t, _ := editor.Find(next, id)
	return t, true, nil
}

// RemoveTask deletes the task.
func (p *Planner) RemoveTask(id string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, found := editor.RemoveTask(p.tasks, id)
	if !found {
		return false, nil
	}
	return true, commit(p, storage.KeyTasks, next, p.setTasks)
}
