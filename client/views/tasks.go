package views

import (
	"context"
	"strings"
	"time"

	"github.com/Rampandiyar/Volunteer/client"
	"github.com/Rampandiyar/Volunteer/internal/models"
)

// Priority buckets derived from how many skills a task demands.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// StatusFilterAll disables status filtering on the board.
const StatusFilterAll = "All"

// TaskItem is one card on the task board.
type TaskItem struct {
	TaskID         uint
	AssignmentID   uint
	Name           string
	Description    string
	RequiredSkills models.SkillList
	Status         models.TaskStatus
	Priority       string
	DueDate        time.Time
}

// TaskBoard is the task management screen for one volunteer.
type TaskBoard struct {
	api   *client.Client
	Items []TaskItem
}

// NewTaskBoard creates a board bound to the given API client.
func NewTaskBoard(api *client.Client) *TaskBoard {
	return &TaskBoard{api: api}
}

// DerivePriority buckets a task by its required-skill count.
func DerivePriority(skills models.SkillList) string {
	switch {
	case len(skills) > 3:
		return PriorityHigh
	case len(skills) > 1:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func itemFromRow(row client.AssignedTask) TaskItem {
	year, month, day := row.AssignedAt.Date()
	return TaskItem{
		TaskID:         row.TaskID,
		AssignmentID:   row.AssignmentID,
		Name:           row.TaskName,
		Description:    row.Description,
		RequiredSkills: row.RequiredSkills,
		Status:         row.TaskStatus,
		Priority:       DerivePriority(row.RequiredSkills),
		DueDate:        time.Date(year, month, day, 0, 0, 0, 0, row.AssignedAt.Location()),
	}
}

// Load fetches the user's assigned tasks and derives the board items.
func (b *TaskBoard) Load(ctx context.Context, userID uint) error {
	rows, err := b.api.UserAssignments(ctx, userID)
	if err != nil {
		return err
	}

	items := make([]TaskItem, len(rows))
	for i, row := range rows {
		items[i] = itemFromRow(row)
	}
	b.Items = items
	return nil
}

// Filter returns the items matching a status and a case-insensitive
// name search. Status "All" (or empty) matches every status.
func (b *TaskBoard) Filter(status, search string) []TaskItem {
	search = strings.ToLower(strings.TrimSpace(search))

	var out []TaskItem
	for _, item := range b.Items {
		if status != "" && status != StatusFilterAll && string(item.Status) != status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// UpdateTask PUTs the edit and merges the result back into the board by
// task id. The board is not re-fetched.
func (b *TaskBoard) UpdateTask(ctx context.Context, taskID uint, input client.TaskInput) error {
	updated, err := b.api.UpdateTask(ctx, taskID, input)
	if err != nil {
		return err
	}

	for i := range b.Items {
		if b.Items[i].TaskID == taskID {
			b.Items[i].Name = updated.TaskName
			b.Items[i].Description = updated.Description
			b.Items[i].RequiredSkills = updated.RequiredSkills
			b.Items[i].Status = updated.Status
			b.Items[i].Priority = DerivePriority(updated.RequiredSkills)
			break
		}
	}
	return nil
}
