// Package client is a typed Go consumer of the volunteer management API.
// It mirrors the browser front end: a Session standing in for local
// storage, one method per endpoint, and API errors surfaced as Go errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Rampandiyar/Volunteer/internal/dto"
	apierrors "github.com/Rampandiyar/Volunteer/internal/errors"
	"github.com/Rampandiyar/Volunteer/internal/models"
)

const defaultTimeout = 15 * time.Second

// AssignedTask is one row of the task+assignment join served by
// GET /api/tasks/:id.
type AssignedTask struct {
	TaskID         uint              `json:"task_id"`
	TaskName       string            `json:"task_name"`
	Description    string            `json:"description"`
	RequiredSkills models.SkillList  `json:"required_skills"`
	TaskStatus     models.TaskStatus `json:"task_status"`
	AssignmentID   uint              `json:"assignment_id"`
	AssignedAt     time.Time         `json:"assigned_at"`
}

// SignupInput carries the signup form fields.
type SignupInput struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone,omitempty"`
	Role       string `json:"role,omitempty"`
	Year       string `json:"year,omitempty"`
	Department string `json:"department,omitempty"`
}

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	Username     string           `json:"username"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	Year         string           `json:"year"`
	Department   string           `json:"department"`
	Skills       models.SkillList `json:"skills"`
	Interests    string           `json:"interests"`
	Availability string           `json:"availability"`
}

// TaskInput carries the task create/update fields.
type TaskInput struct {
	TaskName       string            `json:"task_name"`
	Description    string            `json:"description,omitempty"`
	RequiredSkills models.SkillList  `json:"required_skills,omitempty"`
	Status         models.TaskStatus `json:"status,omitempty"`
}

// AssignmentInput carries the assignment create/update fields.
type AssignmentInput struct {
	TaskID      uint       `json:"task_id,omitempty"`
	UserID      uint       `json:"user_id,omitempty"`
	Status      string     `json:"status,omitempty"`
	HoursLogged *int       `json:"hours_logged,omitempty"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
}

// FeedbackInput carries a feedback submission.
type FeedbackInput struct {
	AssignmentID uint   `json:"assignment_id"`
	UserID       uint   `json:"user_id"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment,omitempty"`
}

// EventInput carries an event submission.
type EventInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

// Client talks to the volunteer management API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

// New creates a Client against baseURL using the given session. Pass a
// nil httpClient to get one with a sane timeout.
func New(baseURL string, session *Session, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		session:    session,
	}
}

// Session returns the session the client was built with.
func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr apierrors.APIError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			return &apiErr
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Signup registers a new user.
func (c *Client) Signup(ctx context.Context, input SignupInput) (dto.UserDTO, error) {
	var user dto.UserDTO
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", input, &user)
	return user, err
}

// Login authenticates and initializes the session with the issued token.
func (c *Client) Login(ctx context.Context, username, password string) (dto.UserDTO, error) {
	var resp struct {
		Token string      `json:"token"`
		User  dto.UserDTO `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &resp); err != nil {
		return dto.UserDTO{}, err
	}
	c.session.Init(resp.User.UserID, resp.Token)
	return resp.User, nil
}

// Logout clears the session. The server-side session is best-effort.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	c.session.Clear()
	return err
}

// CurrentUser returns the logged-in user's profile.
func (c *Client) CurrentUser(ctx context.Context) (dto.UserDTO, error) {
	var user dto.UserDTO
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user)
	return user, err
}

// ListUsers returns every user.
func (c *Client) ListUsers(ctx context.Context) ([]dto.UserDTO, error) {
	var users []dto.UserDTO
	err := c.do(ctx, http.MethodGet, "/api/users/all", nil, &users)
	return users, err
}

// GetUser returns one user.
func (c *Client) GetUser(ctx context.Context, id uint) (dto.UserDTO, error) {
	var user dto.UserDTO
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, &user)
	return user, err
}

// UpdateUser applies profile edits.
func (c *Client) UpdateUser(ctx context.Context, id uint, input ProfileInput) (dto.UserDTO, error) {
	var user dto.UserDTO
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), input, &user)
	return user, err
}

// UserStats returns a volunteer's assignment totals.
func (c *Client) UserStats(ctx context.Context, id uint) (dto.TaskStatistics, error) {
	var stats dto.TaskStatistics
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d/stats", id), nil, &stats)
	return stats, err
}

// CreateTask creates a task.
func (c *Client) CreateTask(ctx context.Context, input TaskInput) (models.Task, error) {
	var task models.Task
	err := c.do(ctx, http.MethodPost, "/api/tasks", input, &task)
	return task, err
}

// ListTasks returns all tasks.
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &tasks)
	return tasks, err
}

// UserAssignments returns the task+assignment join for one user.
func (c *Client) UserAssignments(ctx context.Context, userID uint) ([]AssignedTask, error) {
	var rows []AssignedTask
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tasks/%d", userID), nil, &rows)
	return rows, err
}

// UpdateTask applies partial edits to a task.
func (c *Client) UpdateTask(ctx context.Context, id uint, input TaskInput) (models.Task, error) {
	var task models.Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), input, &task)
	return task, err
}

// DeleteTask removes a task and its assignments.
func (c *Client) DeleteTask(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, nil)
}

// CreateAssignment assigns a task to a user.
func (c *Client) CreateAssignment(ctx context.Context, input AssignmentInput) (models.Assignment, error) {
	var resp struct {
		Assignment models.Assignment `json:"assignment"`
	}
	err := c.do(ctx, http.MethodPost, "/api/assignments", input, &resp)
	return resp.Assignment, err
}

// ListAssignments returns every assignment.
func (c *Client) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := c.do(ctx, http.MethodGet, "/api/assignments", nil, &assignments)
	return assignments, err
}

// UpdateAssignment applies partial edits to an assignment.
func (c *Client) UpdateAssignment(ctx context.Context, id uint, input AssignmentInput) (models.Assignment, error) {
	var resp struct {
		Assignment models.Assignment `json:"assignment"`
	}
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/assignments/%d", id), input, &resp)
	return resp.Assignment, err
}

// DeleteAssignment removes an assignment.
func (c *Client) DeleteAssignment(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/assignments/%d", id), nil, nil)
}

// SendNotification sends a message to one user.
func (c *Client) SendNotification(ctx context.Context, userID uint, message string) (models.Notification, error) {
	var resp struct {
		Notification models.Notification `json:"notification"`
	}
	err := c.do(ctx, http.MethodPost, "/api/notifications", map[string]interface{}{
		"user_id": userID,
		"message": message,
	}, &resp)
	return resp.Notification, err
}

// ListNotifications returns a user's notifications, newest first.
func (c *Client) ListNotifications(ctx context.Context, userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/notifications/%d", userID), nil, &notifications)
	return notifications, err
}

// MarkNotificationRead marks one notification read.
func (c *Client) MarkNotificationRead(ctx context.Context, id uint) (models.Notification, error) {
	var resp struct {
		Notification models.Notification `json:"notification"`
	}
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/notifications/%d/read", id), nil, &resp)
	return resp.Notification, err
}

// MarkNotificationsRead marks a batch of notifications read and returns
// how many rows the server touched.
func (c *Client) MarkNotificationsRead(ctx context.Context, ids []uint) (int64, error) {
	var resp struct {
		UpdatedCount int64 `json:"updated_count"`
	}
	err := c.do(ctx, http.MethodPut, "/api/notifications/read-multiple", map[string]interface{}{
		"notification_ids": ids,
	}, &resp)
	return resp.UpdatedCount, err
}

// SubmitFeedback records feedback on an assignment.
func (c *Client) SubmitFeedback(ctx context.Context, input FeedbackInput) (models.Feedback, error) {
	var resp struct {
		Feedback models.Feedback `json:"feedback"`
	}
	err := c.do(ctx, http.MethodPost, "/api/feedback", input, &resp)
	return resp.Feedback, err
}

// ListFeedback returns the feedback left on one assignment.
func (c *Client) ListFeedback(ctx context.Context, assignmentID uint) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/feedback/assignment/%d", assignmentID), nil, &feedback)
	return feedback, err
}

// ListEvents returns events soonest first.
func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := c.do(ctx, http.MethodGet, "/api/events", nil, &events)
	return events, err
}

// CreateEvent adds an event.
func (c *Client) CreateEvent(ctx context.Context, input EventInput) (models.Event, error) {
	var event models.Event
	err := c.do(ctx, http.MethodPost, "/api/events", input, &event)
	return event, err
}
