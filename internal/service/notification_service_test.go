package service

import (
	"errors"
	"testing"

	"lokerhub/internal/domain"
	"lokerhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifStore struct {
	rows    []*models.Notification
	failFor map[uint]bool
}

func (f *fakeNotifStore) Create(n *models.Notification) error {
	if f.failFor[n.UserID] {
		return errors.New("insert failed")
	}
	n.ID = uint(len(f.rows) + 1)
	f.rows = append(f.rows, n)
	return nil
}

type fakePusher struct {
	sent map[uint][]interface{}
}

func (f *fakePusher) BroadcastToUser(userID uint, payload interface{}) {
	if f.sent == nil {
		f.sent = map[uint][]interface{}{}
	}
	f.sent[userID] = append(f.sent[userID], payload)
}

func TestEmit(t *testing.T) {
	store := &fakeNotifStore{}
	pusher := &fakePusher{}
	svc := NewNotificationService(store, pusher)

	n, err := svc.Emit(7, domain.NotifApplicationReview, "Application under review", "msg")
	require.NoError(t, err)
	assert.NotZero(t, n.ID, "persisted row carries its id for client dedupe")
	require.Len(t, store.rows, 1)

	require.Len(t, pusher.sent[7], 1)
	payload, ok := pusher.sent[7][0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "notification", payload["type"])
	assert.Equal(t, n, payload["notification"])
}

func TestEmitStoreFailure(t *testing.T) {
	store := &fakeNotifStore{failFor: map[uint]bool{7: true}}
	pusher := &fakePusher{}
	svc := NewNotificationService(store, pusher)

	_, err := svc.Emit(7, domain.NotifNewJob, "t", "m")
	assert.Error(t, err)
	assert.Empty(t, pusher.sent, "nothing pushed when the row did not persist")
}

func TestPushNilHub(t *testing.T) {
	svc := NewNotificationService(&fakeNotifStore{}, nil)
	assert.NotPanics(t, func() {
		svc.Push(&models.Notification{UserID: 1})
	})
}

func TestNotifyNewJob(t *testing.T) {
	store := &fakeNotifStore{failFor: map[uint]bool{3: true}}
	pusher := &fakePusher{}
	svc := NewNotificationService(store, pusher)

	job := &models.Job{ID: 1, Title: "Data Engineer"}
	svc.NotifyNewJob([]uint{2, 3, 4}, job, "Acme Corp")

	// One row per reachable recipient; the failing one is skipped, not fatal.
	require.Len(t, store.rows, 2)
	for _, n := range store.rows {
		assert.Equal(t, domain.NotifNewJob, n.Type)
		assert.Contains(t, n.Message, "Acme Corp")
		assert.Contains(t, n.Message, "Data Engineer")
	}
	assert.Len(t, pusher.sent[2], 1)
	assert.Len(t, pusher.sent[4], 1)
	assert.Empty(t, pusher.sent[3])
}
