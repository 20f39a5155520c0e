package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"lokerhub/internal/domain"
	"lokerhub/internal/models"

	"gorm.io/gorm"
)

// ApplicationStore is the slice of the application repository the workflow
// needs. Transition must be atomic: the status compare-and-swap and the
// notification insert either both commit or neither does.
type ApplicationStore interface {
	Create(a *models.Application) error
	GetByID(id uint) (*models.Application, error)
	Transition(id uint, from, to domain.Status, notify *models.Notification) error
	SetInterview(id uint, fields map[string]interface{}) error
}

type JobStore interface {
	GetByID(id uint) (*models.Job, error)
}

// Notifier persists and pushes notifications. Push delivers an
// already-persisted row to open sessions.
type Notifier interface {
	Emit(userID uint, notifType, title, message string) (*models.Notification, error)
	Push(n *models.Notification)
}

// WorkflowService enforces the application status lifecycle. It is the sole
// writer of status, interview_date, interview_link and interview_notes.
type WorkflowService struct {
	apps     ApplicationStore
	jobs     JobStore
	notifier Notifier
}

func NewWorkflowService(apps ApplicationStore, jobs JobStore, notifier Notifier) *WorkflowService {
	return &WorkflowService{apps: apps, jobs: jobs, notifier: notifier}
}

// Apply creates a Pending application for an active job. The store's unique
// (job, jobseeker) index is the authoritative duplicate guard; the company
// is notified of the new applicant.
func (s *WorkflowService) Apply(jobseekerID, jobID uint, coverLetter string) (*models.Application, error) {
	job, err := s.jobs.GetByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if !job.IsActive {
		return nil, domain.ErrInvalidTransition
	}
	app := &models.Application{
		JobID:       jobID,
		JobseekerID: jobseekerID,
		Status:      domain.StatusPending,
		AppliedAt:   time.Now(),
		CoverLetter: coverLetter,
	}
	if err := s.apps.Create(app); err != nil {
		return nil, err
	}
	if _, err := s.notifier.Emit(job.CompanyID, domain.NotifApplicationReceived,
		"New applicant", fmt.Sprintf("You have a new applicant for %q.", job.Title)); err != nil {
		// The application exists either way; the company still sees it in
		// the applicant list.
		log.Printf("[workflow] notify company %d failed: %v", job.CompanyID, err)
	}
	return app, nil
}

// Transition moves an application to a new status on behalf of the owning
// company. The write is conditioned on the observed prior status, and the
// jobseeker notification commits in the same transaction.
func (s *WorkflowService) Transition(actorUserID, applicationID uint, to domain.Status) (*models.Application, error) {
	if !domain.ValidStatus(to) {
		return nil, domain.ErrInvalidTransition
	}
	app, err := s.apps.GetByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if app.Job.CompanyID != actorUserID {
		return nil, domain.ErrUnauthorized
	}
	if !domain.CanTransition(app.Status, to) {
		return nil, domain.ErrInvalidTransition
	}
	n := statusNotification(app.JobseekerID, app.Job.Title, to)
	if err := s.apps.Transition(applicationID, app.Status, to, n); err != nil {
		return nil, err
	}
	s.notifier.Push(n)
	app.Status = to
	return app, nil
}

// ScheduleInterview sets the interview details while the application is in
// Interview. It never changes status, and repeated calls reschedule
// (idempotent overwrite). The store write is conditioned on the status
// still being Interview, so losing a race against a terminal transition
// surfaces as ErrStaleTransition. No notification is emitted for
// scheduling.
func (s *WorkflowService) ScheduleInterview(actorUserID, applicationID uint, date time.Time, link, notes string) (*models.Application, error) {
	app, err := s.apps.GetByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if app.Job.CompanyID != actorUserID {
		return nil, domain.ErrUnauthorized
	}
	if app.Status != domain.StatusInterview {
		return nil, domain.ErrInvalidTransition
	}
	fields := map[string]interface{}{
		"interview_date":  date,
		"interview_link":  link,
		"interview_notes": notes,
	}
	if err := s.apps.SetInterview(applicationID, fields); err != nil {
		return nil, err
	}
	app.InterviewDate = &date
	app.InterviewLink = link
	app.InterviewNotes = notes
	return app, nil
}

// statusNotification builds the jobseeker-facing row for a transition. The
// row is inserted inside the transition transaction, then pushed.
func statusNotification(jobseekerID uint, jobTitle string, to domain.Status) *models.Notification {
	var notifType, title, message string
	switch to {
	case domain.StatusReview:
		notifType = domain.NotifApplicationReview
		title = "Application under review"
		message = fmt.Sprintf("Your application for %q is under review.", jobTitle)
	case domain.StatusInterview:
		notifType = domain.NotifApplicationInterview
		title = "Interview scheduled"
		message = fmt.Sprintf("You have been invited to interview for %q. Check your schedule for details.", jobTitle)
	case domain.StatusAccepted:
		notifType = domain.NotifApplicationAccepted
		title = "Application accepted"
		message = fmt.Sprintf("Congratulations! Your application for %q was accepted.", jobTitle)
	case domain.StatusRejected:
		notifType = domain.NotifApplicationRejected
		title = "Application rejected"
		message = fmt.Sprintf("Your application for %q was not successful.", jobTitle)
	}
	return &models.Notification{
		UserID:  jobseekerID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}
}
