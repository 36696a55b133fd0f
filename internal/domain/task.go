package domain

import "fmt"

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// ParseStatus converts a string into a Status, rejecting anything outside
// the three allowed values.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusTodo, StatusInProgress, StatusDone:
		return Status(s), nil
	default:
		return "", fmt.Errorf("invalid status %q (must be %q, %q or %q)", s, StatusTodo, StatusInProgress, StatusDone)
	}
}

// Task represents a unit of work, optionally assigned to an employee.
// Created and Updated are local timestamps in the minute-resolution layout
// used throughout the store; Updated is refreshed on every status change.
type Task struct {
	ID          int64
	Title       string
	Description string
	AssigneeID  *int64
	Status      Status
	Deadline    *string
	Created     string
	Updated     string
}

// TaskSummary is a task joined with its assignee's name for listing.
// AssigneeName is nil when the task is unassigned.
type TaskSummary struct {
	ID           int64
	Title        string
	AssigneeName *string
	Status       Status
	Deadline     *string
}
