package service

import (
	"fmt"
	"log"

	"lokerhub/internal/domain"
	"lokerhub/internal/models"
)

// NotificationStore is the slice of the notification repository this
// service writes through.
type NotificationStore interface {
	Create(n *models.Notification) error
}

// Pusher delivers a payload to every open session of a user.
type Pusher interface {
	BroadcastToUser(userID uint, payload interface{})
}

// NotificationService turns workflow and job-posting events into per-user
// notification rows and pushes them to open sessions over the hub.
// Delivery is at-least-once; clients dedupe by notification id.
type NotificationService struct {
	repo NotificationStore
	hub  Pusher
}

func NewNotificationService(repo NotificationStore, hub Pusher) *NotificationService {
	return &NotificationService{repo: repo, hub: hub}
}

// Emit persists a notification row and pushes it.
func (s *NotificationService) Emit(userID uint, notifType, title, message string) (*models.Notification, error) {
	n := &models.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}
	if err := s.repo.Create(n); err != nil {
		return nil, err
	}
	s.Push(n)
	return n, nil
}

// Push delivers an already-persisted row to the recipient's open sessions.
func (s *NotificationService) Push(n *models.Notification) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToUser(n.UserID, map[string]interface{}{
		"type":         "notification",
		"notification": n,
	})
}

// NotifyNewJob fans a fresh active posting out to the jobseekers who saved a
// job from this company. Failures for individual recipients are logged and
// do not stop the fan-out.
func (s *NotificationService) NotifyNewJob(userIDs []uint, job *models.Job, companyName string) {
	title := "New job posted"
	message := fmt.Sprintf("%s posted a new job: %q.", companyName, job.Title)
	for _, id := range userIDs {
		if _, err := s.Emit(id, domain.NotifNewJob, title, message); err != nil {
			log.Printf("[notify] new job fan-out to user %d failed: %v", id, err)
		}
	}
}
