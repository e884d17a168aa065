// Package views holds the screen-level state machines behind the
// volunteer UI. Each view owns its slice of server state, loads it on
// demand, and re-fetches after the mutations that require it.
package views

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Rampandiyar/Volunteer/client"
	"github.com/Rampandiyar/Volunteer/internal/constants"
	"github.com/Rampandiyar/Volunteer/internal/dto"
	"github.com/Rampandiyar/Volunteer/internal/models"
)

// Task decisions made on the dashboard live only in the view; the
// server keeps no accepted/rejected state.
const (
	DecisionAccepted = "Accepted"
	DecisionRejected = "Rejected"
)

// Dashboard is the volunteer landing screen: assigned tasks, upcoming
// events, workload statistics and the notification feed.
type Dashboard struct {
	api *client.Client

	mu            sync.Mutex
	AssignedTasks []client.AssignedTask
	Events        []models.Event
	Stats         dto.TaskStatistics
	Notifications []models.Notification
	TaskDecisions map[uint]string
	AppliedEvents map[uint]bool
}

// NewDashboard creates a dashboard bound to the given API client.
func NewDashboard(api *client.Client) *Dashboard {
	return &Dashboard{
		api:           api,
		TaskDecisions: make(map[uint]string),
		AppliedEvents: make(map[uint]bool),
	}
}

// Load fetches everything the dashboard shows for the logged-in user.
func (d *Dashboard) Load(ctx context.Context) error {
	userID := d.api.Session().UserID()

	tasks, err := d.api.UserAssignments(ctx, userID)
	if err != nil {
		return fmt.Errorf("load assigned tasks: %w", err)
	}
	events, err := d.api.ListEvents(ctx)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	stats, err := d.api.UserStats(ctx, userID)
	if err != nil {
		return fmt.Errorf("load statistics: %w", err)
	}
	notifications, err := d.api.ListNotifications(ctx, userID)
	if err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.AssignedTasks = tasks
	d.Events = events
	d.Stats = stats
	d.Notifications = notifications
	return nil
}

// RefreshNotifications re-fetches only the notification feed. Safe to
// call from the poller; each call is an independent idempotent GET.
func (d *Dashboard) RefreshNotifications(ctx context.Context) error {
	notifications, err := d.api.ListNotifications(ctx, d.api.Session().UserID())
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.Notifications = notifications
	return nil
}

// StartPolling re-fetches notifications every interval until ctx is
// cancelled. Pass 0 for the default interval. Poll errors are dropped;
// the next tick retries.
func (d *Dashboard) StartPolling(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = constants.NotificationPollInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = d.RefreshNotifications(ctx)
			}
		}
	}()
}

// UnreadCount counts notifications not yet marked Read.
func (d *Dashboard) UnreadCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	count := 0
	for _, n := range d.Notifications {
		if n.Status != models.NotificationStatusRead {
			count++
		}
	}
	return count
}

// MarkAsRead marks one notification read on the server, then flips the
// local copy. Sent to Read is the only transition.
func (d *Dashboard) MarkAsRead(ctx context.Context, id uint) error {
	if _, err := d.api.MarkNotificationRead(ctx, id); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.Notifications {
		if d.Notifications[i].ID == id {
			d.Notifications[i].Status = models.NotificationStatusRead
			break
		}
	}
	return nil
}

// MarkAllAsRead batches every unread notification through the
// mark-multiple endpoint, then flips the local copies.
func (d *Dashboard) MarkAllAsRead(ctx context.Context) error {
	d.mu.Lock()
	var ids []uint
	for _, n := range d.Notifications {
		if n.Status != models.NotificationStatusRead {
			ids = append(ids, n.ID)
		}
	}
	d.mu.Unlock()

	if len(ids) == 0 {
		return nil
	}
	if _, err := d.api.MarkNotificationsRead(ctx, ids); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.Notifications {
		d.Notifications[i].Status = models.NotificationStatusRead
	}
	return nil
}

// AcceptTask records a local accept. No API call is made.
func (d *Dashboard) AcceptTask(assignmentID uint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.TaskDecisions[assignmentID] = DecisionAccepted
}

// RejectTask records a local reject. No API call is made.
func (d *Dashboard) RejectTask(assignmentID uint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.TaskDecisions[assignmentID] = DecisionRejected
}

// ApplyForEventTask records interest in an event locally.
func (d *Dashboard) ApplyForEventTask(eventID uint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.AppliedEvents[eventID] = true
}

// RelativeTime renders a timestamp the way the notification feed shows
// it: minutes and hours for the recent past, then days, then the date.
func RelativeTime(t time.Time, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
