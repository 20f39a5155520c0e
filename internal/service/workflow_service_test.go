package service

import (
	"testing"
	"time"

	"lokerhub/internal/domain"
	"lokerhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	companyID   = uint(10)
	jobseekerID = uint(20)
	jobID       = uint(1)
	appID       = uint(100)
)

type transitionCall struct {
	id     uint
	from   domain.Status
	to     domain.Status
	notify *models.Notification
}

type fakeAppStore struct {
	apps            map[uint]*models.Application
	createErr       error
	transitionErr   error
	setInterviewErr error
	created         []*models.Application
	transitions     []transitionCall
	interviews      []map[string]interface{}
}

func (f *fakeAppStore) Create(a *models.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	a.ID = appID
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAppStore) GetByID(id uint) (*models.Application, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppStore) Transition(id uint, from, to domain.Status, notify *models.Notification) error {
	if f.transitionErr != nil {
		return f.transitionErr
	}
	f.transitions = append(f.transitions, transitionCall{id: id, from: from, to: to, notify: notify})
	if a, ok := f.apps[id]; ok {
		a.Status = to
	}
	if notify != nil {
		notify.ID = uint(len(f.transitions))
	}
	return nil
}

func (f *fakeAppStore) SetInterview(id uint, fields map[string]interface{}) error {
	if f.setInterviewErr != nil {
		return f.setInterviewErr
	}
	f.interviews = append(f.interviews, fields)
	return nil
}

type fakeJobStore struct {
	jobs map[uint]*models.Job
}

func (f *fakeJobStore) GetByID(id uint) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return j, nil
}

type emitted struct {
	userID    uint
	notifType string
}

type fakeNotifier struct {
	emits  []emitted
	pushes []*models.Notification
}

func (f *fakeNotifier) Emit(userID uint, notifType, title, message string) (*models.Notification, error) {
	f.emits = append(f.emits, emitted{userID: userID, notifType: notifType})
	return &models.Notification{UserID: userID, Type: notifType, Title: title, Message: message}, nil
}

func (f *fakeNotifier) Push(n *models.Notification) {
	f.pushes = append(f.pushes, n)
}

func newFixture(status domain.Status) (*WorkflowService, *fakeAppStore, *fakeJobStore, *fakeNotifier) {
	job := &models.Job{ID: jobID, CompanyID: companyID, Title: "Backend Engineer", IsActive: true}
	apps := &fakeAppStore{apps: map[uint]*models.Application{
		appID: {ID: appID, JobID: jobID, JobseekerID: jobseekerID, Status: status, Job: *job},
	}}
	jobs := &fakeJobStore{jobs: map[uint]*models.Job{jobID: job}}
	notifier := &fakeNotifier{}
	return NewWorkflowService(apps, jobs, notifier), apps, jobs, notifier
}

func TestApply(t *testing.T) {
	svc, apps, jobs, notifier := newFixture(domain.StatusPending)

	app, err := svc.Apply(jobseekerID, jobID, "hire me")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, app.Status)
	assert.Equal(t, "hire me", app.CoverLetter)
	assert.False(t, app.AppliedAt.IsZero())
	require.Len(t, apps.created, 1)

	// Company is told about the new applicant.
	require.Len(t, notifier.emits, 1)
	assert.Equal(t, companyID, notifier.emits[0].userID)
	assert.Equal(t, domain.NotifApplicationReceived, notifier.emits[0].notifType)

	// Inactive job refuses new applications.
	jobs.jobs[jobID].IsActive = false
	_, err = svc.Apply(jobseekerID, jobID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Unknown job.
	_, err = svc.Apply(jobseekerID, 999, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyDuplicate(t *testing.T) {
	svc, apps, _, notifier := newFixture(domain.StatusPending)
	apps.createErr = domain.ErrDuplicateApplication

	_, err := svc.Apply(jobseekerID, jobID, "")
	assert.ErrorIs(t, err, domain.ErrDuplicateApplication)
	assert.Empty(t, notifier.emits, "duplicate apply must not notify")
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.Status
		to      domain.Status
		wantErr error
	}{
		{"pending to review", domain.StatusPending, domain.StatusReview, nil},
		{"review to interview", domain.StatusReview, domain.StatusInterview, nil},
		{"interview to accepted", domain.StatusInterview, domain.StatusAccepted, nil},
		{"interview to rejected", domain.StatusInterview, domain.StatusRejected, nil},
		{"pending rejected early", domain.StatusPending, domain.StatusRejected, nil},
		{"pending straight to accepted", domain.StatusPending, domain.StatusAccepted, domain.ErrInvalidTransition},
		{"review straight to accepted", domain.StatusReview, domain.StatusAccepted, domain.ErrInvalidTransition},
		{"reopen accepted", domain.StatusAccepted, domain.StatusReview, domain.ErrInvalidTransition},
		{"unknown status", domain.StatusPending, domain.Status("Archived"), domain.ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, apps, _, notifier := newFixture(tt.from)
			app, err := svc.Transition(companyID, appID, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, apps.transitions, "invalid transition must not write")
				assert.Empty(t, notifier.pushes, "invalid transition must not notify")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, app.Status)
			require.Len(t, apps.transitions, 1)
			call := apps.transitions[0]
			assert.Equal(t, tt.from, call.from)
			assert.Equal(t, tt.to, call.to)
			// Notification rides in the same transaction, addressed to the applicant.
			require.NotNil(t, call.notify)
			assert.Equal(t, jobseekerID, call.notify.UserID)
			require.Len(t, notifier.pushes, 1)
			assert.Equal(t, call.notify, notifier.pushes[0])
		})
	}
}

func TestTransitionAuthorization(t *testing.T) {
	svc, apps, _, _ := newFixture(domain.StatusPending)

	// The applicant cannot advance their own application.
	_, err := svc.Transition(jobseekerID, appID, domain.StatusReview)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Neither can another company.
	_, err = svc.Transition(uint(77), appID, domain.StatusReview)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, apps.transitions)

	_, err = svc.Transition(companyID, 999, domain.StatusReview)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransitionRace(t *testing.T) {
	svc, apps, _, notifier := newFixture(domain.StatusReview)
	apps.transitionErr = domain.ErrStaleTransition

	_, err := svc.Transition(companyID, appID, domain.StatusInterview)
	assert.ErrorIs(t, err, domain.ErrStaleTransition)
	assert.Empty(t, notifier.pushes, "lost race must not push a notification")
}

func TestScheduleInterview(t *testing.T) {
	svc, apps, _, notifier := newFixture(domain.StatusInterview)
	date := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	app, err := svc.ScheduleInterview(companyID, appID, date, "https://meet.example.com/abc", "bring portfolio")
	require.NoError(t, err)
	require.NotNil(t, app.InterviewDate)
	assert.Equal(t, date, *app.InterviewDate)
	assert.Equal(t, "https://meet.example.com/abc", app.InterviewLink)
	require.Len(t, apps.interviews, 1)
	assert.Empty(t, notifier.emits, "scheduling does not notify")
	assert.Empty(t, notifier.pushes)

	// Rescheduling overwrites; still no status change, still no notification.
	later := date.Add(48 * time.Hour)
	app, err = svc.ScheduleInterview(companyID, appID, later, "", "")
	require.NoError(t, err)
	assert.Equal(t, later, *app.InterviewDate)
	assert.Len(t, apps.interviews, 2)
	assert.Empty(t, notifier.emits)
}

func TestScheduleInterviewGuards(t *testing.T) {
	date := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for _, status := range []domain.Status{domain.StatusPending, domain.StatusReview, domain.StatusAccepted, domain.StatusRejected} {
		svc, apps, _, _ := newFixture(status)
		_, err := svc.ScheduleInterview(companyID, appID, date, "", "")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "status %s", status)
		assert.Empty(t, apps.interviews)
	}

	svc, _, _, _ := newFixture(domain.StatusInterview)
	_, err := svc.ScheduleInterview(jobseekerID, appID, date, "", "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = svc.ScheduleInterview(companyID, 999, date, "", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScheduleInterviewRace(t *testing.T) {
	// The application was still in Interview when read, but a terminal
	// transition committed before the conditional write landed.
	svc, apps, _, notifier := newFixture(domain.StatusInterview)
	apps.setInterviewErr = domain.ErrStaleTransition

	date := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	_, err := svc.ScheduleInterview(companyID, appID, date, "", "")
	assert.ErrorIs(t, err, domain.ErrStaleTransition)
	assert.Empty(t, apps.interviews)
	assert.Empty(t, notifier.pushes)
}

// Full walk of the happy path: apply, review, interview, schedule, accept.
// The applicant ends with exactly one notification per transition and none
// for the date being set; the company gets the new-applicant notification.
func TestWorkflowScenario(t *testing.T) {
	svc, apps, _, notifier := newFixture(domain.StatusPending)

	_, err := svc.Apply(jobseekerID, jobID, "cover letter")
	require.NoError(t, err)

	for _, to := range []domain.Status{domain.StatusReview, domain.StatusInterview} {
		_, err := svc.Transition(companyID, appID, to)
		require.NoError(t, err)
	}

	date := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	_, err = svc.ScheduleInterview(companyID, appID, date, "https://meet.example.com/xyz", "")
	require.NoError(t, err)

	app, err := svc.Transition(companyID, appID, domain.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, app.Status)

	require.Len(t, notifier.pushes, 3)
	wantTypes := []string{domain.NotifApplicationReview, domain.NotifApplicationInterview, domain.NotifApplicationAccepted}
	for i, n := range notifier.pushes {
		assert.Equal(t, jobseekerID, n.UserID)
		assert.Equal(t, wantTypes[i], n.Type)
	}
	require.Len(t, notifier.emits, 1)
	assert.Equal(t, companyID, notifier.emits[0].userID)

	// Interview details survive the acceptance.
	stored := apps.apps[appID]
	assert.Equal(t, domain.StatusAccepted, stored.Status)
	require.Len(t, apps.interviews, 1)
	assert.Equal(t, date, apps.interviews[0]["interview_date"])
}
