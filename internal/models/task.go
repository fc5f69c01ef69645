package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NoSelection is the index reported by the list view when nothing is selected
const NoSelection = -1

// CompletedPrefix marks a completed task in the list view
const CompletedPrefix = "✓ "

var (
	// ErrEmptyTask is returned when the entered text is blank or the placeholder
	ErrEmptyTask = errors.New("task text is empty")
	// ErrNoSelection is returned when an operation needs a selected task
	ErrNoSelection = errors.New("no task selected")
	// ErrTaskNotFound is returned for an index or ID that is not in the list
	ErrTaskNotFound = errors.New("task not found")
)

// Task represents a single to-do entry
type Task struct {
	ID        uuid.UUID
	Text      string
	Completed bool
	CreatedAt time.Time
}

// DisplayText returns the text shown in the list view
func (t Task) DisplayText() string {
	if t.Completed {
		return CompletedPrefix + t.Text
	}
	return t.Text
}

// Status is the summary shown in the status line
type Status struct {
	Total     int
	Completed int
}

func (s Status) String() string {
	return fmt.Sprintf("Tasks: %d | Completed: %d", s.Total, s.Completed)
}

// TaskList holds the ordered tasks. Insertion order is display order.
// It is owned by the UI goroutine and does no locking.
type TaskList struct {
	tasks       []Task
	placeholder string
	now         func() time.Time
}

// NewTaskList creates an empty list. Text equal to placeholder is rejected by Add.
func NewTaskList(placeholder string) *TaskList {
	return &TaskList{
		tasks:       make([]Task, 0),
		placeholder: strings.TrimSpace(placeholder),
		now:         time.Now,
	}
}

// Add appends a new incomplete task
func (l *TaskList) Add(text string) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" || (l.placeholder != "" && text == l.placeholder) {
		return Task{}, ErrEmptyTask
	}

	task := Task{
		ID:        uuid.New(),
		Text:      text,
		CreatedAt: l.now(),
	}
	l.tasks = append(l.tasks, task)
	return task, nil
}

// Delete removes the task at index, shifting later tasks down
func (l *TaskList) Delete(index int) (Task, error) {
	if err := l.checkIndex(index); err != nil {
		return Task{}, err
	}

	removed := l.tasks[index]
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return removed, nil
}

// Complete marks the task at index as completed. Completing an already
// completed task is a no-op and reports changed=false.
func (l *TaskList) Complete(index int) (changed bool, err error) {
	if err := l.checkIndex(index); err != nil {
		return false, err
	}

	if l.tasks[index].Completed {
		return false, nil
	}
	l.tasks[index].Completed = true
	return true, nil
}

// DeleteByID removes the task with the given ID
func (l *TaskList) DeleteByID(id uuid.UUID) (Task, error) {
	index := l.IndexOf(id)
	if index < 0 {
		return Task{}, ErrTaskNotFound
	}
	return l.Delete(index)
}

// CompleteByID marks the task with the given ID as completed
func (l *TaskList) CompleteByID(id uuid.UUID) (bool, error) {
	index := l.IndexOf(id)
	if index < 0 {
		return false, ErrTaskNotFound
	}
	return l.Complete(index)
}

// IndexOf returns the current position of the task with the given ID, or -1
func (l *TaskList) IndexOf(id uuid.UUID) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Status counts total and completed tasks with a full scan
func (l *TaskList) Status() Status {
	status := Status{Total: len(l.tasks)}
	for _, t := range l.tasks {
		if t.Completed {
			status.Completed++
		}
	}
	return status
}

// Len returns the number of tasks
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// At returns the task at index
func (l *TaskList) At(index int) (Task, error) {
	if err := l.checkIndex(index); err != nil {
		return Task{}, err
	}
	return l.tasks[index], nil
}

// Tasks returns a copy of the tasks in display order
func (l *TaskList) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *TaskList) checkIndex(index int) error {
	if index == NoSelection {
		return ErrNoSelection
	}
	if index < 0 || index >= len(l.tasks) {
		return ErrTaskNotFound
	}
	return nil
}
