package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const fcmEndpoint = "https://fcm.googleapis.com/fcm/send"

type (
	PushSender interface {
		Send(ctx context.Context, deviceToken, title, body, beerID string) error
	}

	fcmSender struct {
		apiKey   string
		endpoint string
		client   *http.Client
	}

	fcmPayload struct {
		To           string          `json:"to"`
		Notification fcmNotification `json:"notification"`
		Data         fcmData         `json:"data"`
	}

	fcmNotification struct {
		Title string `json:"title"`
		Body  string `json:"body"`
		Sound string `json:"sound"`
	}

	fcmData struct {
		BeerID      string `json:"beerId"`
		ClickAction string `json:"click_action"`
	}
)

func NewFCMSender(apiKey string) PushSender {
	return &fcmSender{
		apiKey:   apiKey,
		endpoint: fcmEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *fcmSender) Send(ctx context.Context, deviceToken, title, body, beerID string) error {
	payload := fcmPayload{
		To: deviceToken,
		Notification: fcmNotification{
			Title: title,
			Body:  body,
			Sound: "default",
		},
		Data: fcmData{
			BeerID:      beerID,
			ClickAction: "FLUTTER_NOTIFICATION_CLICK",
		},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewBuffer(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("push provider error: %s - %s", resp.Status, string(respBody))
	}

	return nil
}
