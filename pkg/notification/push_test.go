package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFCMSender(apiKey, endpoint string) *fcmSender {
	return &fcmSender{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: time.Second},
	}
}

func TestFCMSenderSendsExpectedPayload(t *testing.T) {
	var got fcmPayload
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := newTestFCMSender("secret-key", server.URL)
	err := sender.Send(context.Background(), "device-token", "Beer Expiry Alert", "message body", "beer-id")

	require.NoError(t, err)
	assert.Equal(t, "key=secret-key", authHeader)
	assert.Equal(t, "device-token", got.To)
	assert.Equal(t, "Beer Expiry Alert", got.Notification.Title)
	assert.Equal(t, "message body", got.Notification.Body)
	assert.Equal(t, "default", got.Notification.Sound)
	assert.Equal(t, "beer-id", got.Data.BeerID)
	assert.Equal(t, "FLUTTER_NOTIFICATION_CLICK", got.Data.ClickAction)
}

func TestFCMSenderNonOKStatusIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid registration", http.StatusBadRequest)
	}))
	defer server.Close()

	sender := newTestFCMSender("secret-key", server.URL)
	err := sender.Send(context.Background(), "device-token", "title", "body", "beer-id")

	assert.Error(t, err)
}

func TestFCMSenderTransportErrorIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	sender := newTestFCMSender("secret-key", server.URL)
	err := sender.Send(context.Background(), "device-token", "title", "body", "beer-id")

	assert.Error(t, err)
}
