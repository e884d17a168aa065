package views

import (
	"context"
	"errors"

	"github.com/Rampandiyar/Volunteer/client"
	"github.com/Rampandiyar/Volunteer/internal/models"
)

// ErrAssignmentFormIncomplete is returned when the form lacks a task or
// user selection.
var ErrAssignmentFormIncomplete = errors.New("task and user must be selected")

// AssignmentForm is the add/edit form state.
type AssignmentForm struct {
	AssignmentID uint
	TaskID       uint
	UserID       uint
	Status       string
}

// AssignmentsPage is the admin screen managing task assignments. Edit
// and feedback share one modal, keyed by IsEditing.
type AssignmentsPage struct {
	api *client.Client

	Assignments []models.Assignment
	Form        AssignmentForm
	Selected    *models.Assignment
	IsEditing   bool
}

// NewAssignmentsPage creates the page bound to the given API client.
func NewAssignmentsPage(api *client.Client) *AssignmentsPage {
	return &AssignmentsPage{api: api}
}

// Load fetches the full assignment list.
func (p *AssignmentsPage) Load(ctx context.Context) error {
	assignments, err := p.api.ListAssignments(ctx)
	if err != nil {
		return err
	}
	p.Assignments = assignments
	return nil
}

func (p *AssignmentsPage) resetForm() {
	p.Form = AssignmentForm{}
	p.Selected = nil
	p.IsEditing = false
}

// Add validates the form, creates the assignment, and re-fetches the
// list. The form resets after every successful mutation.
func (p *AssignmentsPage) Add(ctx context.Context) error {
	if p.Form.TaskID == 0 || p.Form.UserID == 0 {
		return ErrAssignmentFormIncomplete
	}

	if _, err := p.api.CreateAssignment(ctx, client.AssignmentInput{
		TaskID: p.Form.TaskID,
		UserID: p.Form.UserID,
		Status: p.Form.Status,
	}); err != nil {
		return err
	}

	if err := p.Load(ctx); err != nil {
		return err
	}
	p.resetForm()
	return nil
}

// StartEdit opens the shared modal on an assignment in edit mode.
func (p *AssignmentsPage) StartEdit(assignment *models.Assignment) {
	p.Selected = assignment
	p.IsEditing = true
	p.Form = AssignmentForm{
		AssignmentID: assignment.ID,
		TaskID:       assignment.TaskID,
		UserID:       assignment.UserID,
		Status:       assignment.Status,
	}
}

// StartFeedback opens the shared modal on an assignment in feedback mode.
func (p *AssignmentsPage) StartFeedback(assignment *models.Assignment) {
	p.Selected = assignment
	p.IsEditing = false
}

// Edit validates the form, updates the selected assignment, and
// re-fetches the list.
func (p *AssignmentsPage) Edit(ctx context.Context) error {
	if p.Form.TaskID == 0 || p.Form.UserID == 0 {
		return ErrAssignmentFormIncomplete
	}
	if p.Form.AssignmentID == 0 {
		return errors.New("no assignment selected")
	}

	if _, err := p.api.UpdateAssignment(ctx, p.Form.AssignmentID, client.AssignmentInput{
		TaskID: p.Form.TaskID,
		UserID: p.Form.UserID,
		Status: p.Form.Status,
	}); err != nil {
		return err
	}

	if err := p.Load(ctx); err != nil {
		return err
	}
	p.resetForm()
	return nil
}

// Remove deletes an assignment and re-fetches the list.
func (p *AssignmentsPage) Remove(ctx context.Context, assignmentID uint) error {
	if err := p.api.DeleteAssignment(ctx, assignmentID); err != nil {
		return err
	}

	if err := p.Load(ctx); err != nil {
		return err
	}
	p.resetForm()
	return nil
}

// SubmitFeedback records feedback on the selected assignment.
func (p *AssignmentsPage) SubmitFeedback(ctx context.Context, rating int, comment string) error {
	if p.Selected == nil {
		return errors.New("no assignment selected")
	}

	_, err := p.api.SubmitFeedback(ctx, client.FeedbackInput{
		AssignmentID: p.Selected.ID,
		UserID:       p.Selected.UserID,
		Rating:       rating,
		Comment:      comment,
	})
	if err != nil {
		return err
	}
	p.resetForm()
	return nil
}
