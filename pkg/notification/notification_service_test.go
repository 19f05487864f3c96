package notification

import (
	"BeerExpiryTracker/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBeerRepository struct {
	due        []*entities.Beer
	findCalled bool
	findErr    error
	updated    []*entities.Beer
	updateErr  error
}

func (f *fakeBeerRepository) AddBeer(ctx context.Context, b *entities.Beer) error { return nil }

func (f *fakeBeerRepository) GetBeerByID(ctx context.Context, id string) (*entities.Beer, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBeerRepository) UpdateBeer(ctx context.Context, b *entities.Beer) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, b)
	return nil
}

func (f *fakeBeerRepository) DeleteBeer(ctx context.Context, id string) error { return nil }

func (f *fakeBeerRepository) GetBeersByUser(ctx context.Context, userID string) ([]*entities.Beer, error) {
	return nil, nil
}

func (f *fakeBeerRepository) SearchBeers(ctx context.Context, userID, query string) ([]*entities.Beer, error) {
	return nil, nil
}

func (f *fakeBeerRepository) GetBeersByExpiryRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.Beer, error) {
	return nil, nil
}

func (f *fakeBeerRepository) FindBeersNeedingReminders(ctx context.Context, today time.Time) ([]*entities.Beer, error) {
	f.findCalled = true
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.due, nil
}

type fakePushSender struct {
	err   error
	calls int
}

func (f *fakePushSender) Send(ctx context.Context, deviceToken, title, body, beerID string) error {
	f.calls++
	return f.err
}

type fakeMailSender struct {
	err      error
	calls    int
	lastTo   string
	lastBody string
}

func (f *fakeMailSender) Send(to, subject, body string) error {
	f.calls++
	f.lastTo = to
	f.lastBody = body
	return f.err
}

func dueBeer(deviceToken, email string) *entities.Beer {
	b := &entities.Beer{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		BrandName:   "Heineken",
		ProductName: "Lager",
		User: &entities.User{
			ID:          uuid.New(),
			Username:    "alice",
			Email:       email,
			DeviceToken: deviceToken,
		},
	}
	b.SetExpiryDate(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	return b
}

// a Monday
var monday = time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

func TestRunSkipsWeekends(t *testing.T) {
	repo := &fakeBeerRepository{due: []*entities.Beer{dueBeer("token", "alice@example.com")}}
	push := &fakePushSender{}
	mail := &fakeMailSender{}
	service := NewNotificationService(repo, push, mail, true)

	saturday := time.Date(2024, 5, 4, 9, 0, 0, 0, time.UTC)
	require.NoError(t, service.Run(context.Background(), saturday))

	sunday := time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC)
	require.NoError(t, service.Run(context.Background(), sunday))

	assert.False(t, repo.findCalled)
	assert.Zero(t, push.calls)
	assert.Zero(t, mail.calls)
}

func TestRunPushSuccessIncrementsCount(t *testing.T) {
	b := dueBeer("token", "alice@example.com")
	repo := &fakeBeerRepository{due: []*entities.Beer{b}}
	push := &fakePushSender{}
	mail := &fakeMailSender{}
	service := NewNotificationService(repo, push, mail, true)

	require.NoError(t, service.Run(context.Background(), monday))

	assert.Equal(t, 1, push.calls)
	assert.Zero(t, mail.calls)
	assert.True(t, b.ReminderSent)
	assert.Equal(t, 1, b.ReminderCount)
	require.Len(t, repo.updated, 1)
}

func TestRunPushFailureFallsBackToEmail(t *testing.T) {
	b := dueBeer("token", "alice@example.com")
	repo := &fakeBeerRepository{due: []*entities.Beer{b}}
	push := &fakePushSender{err: errors.New("provider down")}
	mail := &fakeMailSender{}
	service := NewNotificationService(repo, push, mail, true)

	require.NoError(t, service.Run(context.Background(), monday))

	assert.Equal(t, 1, push.calls)
	assert.Equal(t, 1, mail.calls)
	assert.Equal(t, "alice@example.com", mail.lastTo)
	assert.Equal(t, 1, b.ReminderCount)
}

func TestRunPushDisabledUsesEmail(t *testing.T) {
	b := dueBeer("token", "alice@example.com")
	repo := &fakeBeerRepository{due: []*entities.Beer{b}}
	push := &fakePushSender{}
	mail := &fakeMailSender{}
	service := NewNotificationService(repo, push, mail, false)

	require.NoError(t, service.Run(context.Background(), monday))

	assert.Zero(t, push.calls)
	assert.Equal(t, 1, mail.calls)
	assert.True(t, b.ReminderSent)
	assert.Equal(t, 1, b.ReminderCount)
}

func TestRunNoDeviceTokenUsesEmail(t *testing.T) {
	b := dueBeer("", "alice@example.com")
	repo := &fakeBeerRepository{due: []*entities.Beer{b}}
	push := &fakePushSender{}
	mail := &fakeMailSender{}
	service := NewNotificationService(repo, push, mail, true)

	require.NoError(t, service.Run(context.Background(), monday))

	assert.Zero(t, push.calls)
	assert.Equal(t, 1, mail.calls)
	assert.Equal(t, 1, b.ReminderCount)
}

func TestRunNoChannelLeavesBeerUnchanged(t *testing.T) {
	b := dueBeer("", "")
	repo := &fakeBeerRepository{due: []*entities.Beer{b}}
	push := &fakePushSender{}
	mail := &fakeMailSender{}
	service := NewNotificationService(repo, push, mail, true)

	require.NoError(t, service.Run(context.Background(), monday))

	assert.Zero(t, push.calls)
	assert.Zero(t, mail.calls)
	assert.False(t, b.ReminderSent)
	assert.Zero(t, b.ReminderCount)
	assert.Empty(t, repo.updated)
}

func TestRunEmailFailureDoesNotCount(t *testing.T) {
	b := dueBeer("", "alice@example.com")
	repo := &fakeBeerRepository{due: []*entities.Beer{b}}
	push := &fakePushSender{}
	mail := &fakeMailSender{err: errors.New("smtp unreachable")}
	service := NewNotificationService(repo, push, mail, true)

	require.NoError(t, service.Run(context.Background(), monday))

	assert.Equal(t, 1, mail.calls)
	assert.False(t, b.ReminderSent)
	assert.Zero(t, b.ReminderCount)
	assert.Empty(t, repo.updated)
}

func TestRunSkipsExpiredBeers(t *testing.T) {
	expired := dueBeer("token", "alice@example.com")
	expired.SetExpiryDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	expiringToday := dueBeer("token", "alice@example.com")
	expiringToday.SetExpiryDate(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC))
	repo := &fakeBeerRepository{due: []*entities.Beer{expired, expiringToday}}
	push := &fakePushSender{}
	mail := &fakeMailSender{}
	service := NewNotificationService(repo, push, mail, true)

	require.NoError(t, service.Run(context.Background(), monday))

	assert.Zero(t, push.calls)
	assert.Zero(t, mail.calls)
	assert.Zero(t, expired.ReminderCount)
	assert.Zero(t, expiringToday.ReminderCount)
	assert.Empty(t, repo.updated)
}

func TestRunPersistsWithoutOwnerRow(t *testing.T) {
	b := dueBeer("token", "alice@example.com")
	repo := &fakeBeerRepository{due: []*entities.Beer{b}}
	push := &fakePushSender{}
	mail := &fakeMailSender{}
	service := NewNotificationService(repo, push, mail, true)

	require.NoError(t, service.Run(context.Background(), monday))

	require.Len(t, repo.updated, 1)
	assert.Nil(t, repo.updated[0].User)
	assert.Equal(t, b.ID, repo.updated[0].ID)
	assert.Equal(t, 1, repo.updated[0].ReminderCount)
	assert.NotNil(t, b.User)
}

func TestRunRespectsReminderCap(t *testing.T) {
	b := dueBeer("token", "alice@example.com")
	b.ReminderCount = entities.MaxReminderCount
	repo := &fakeBeerRepository{due: []*entities.Beer{b}}
	push := &fakePushSender{}
	mail := &fakeMailSender{}
	service := NewNotificationService(repo, push, mail, true)

	require.NoError(t, service.Run(context.Background(), monday))

	assert.Zero(t, push.calls)
	assert.Zero(t, mail.calls)
	assert.Equal(t, entities.MaxReminderCount, b.ReminderCount)
}

func TestRunFailureIsolatedPerBeer(t *testing.T) {
	failing := dueBeer("token", "")
	healthy := dueBeer("", "bob@example.com")
	repo := &fakeBeerRepository{due: []*entities.Beer{failing, healthy}}
	push := &fakePushSender{err: errors.New("provider down")}
	mail := &fakeMailSender{}
	service := NewNotificationService(repo, push, mail, true)

	require.NoError(t, service.Run(context.Background(), monday))

	assert.Zero(t, failing.ReminderCount)
	assert.Equal(t, 1, healthy.ReminderCount)
}

func TestFormatReminderMessage(t *testing.T) {
	b := dueBeer("", "")
	today := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

	message := formatReminderMessage(b, today)

	assert.Equal(t,
		"Reminder: Heineken Lager will expire on June 15, 2024 (in 40 days). Please check your inventory.",
		message)
}
